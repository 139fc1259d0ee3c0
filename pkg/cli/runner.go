// Package cli wires the stylefmt commands.
package cli

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/stylefmt/pkg/cli/flag"
	"github.com/suzuki-shunsuke/stylefmt/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/stylefmt/pkg/cli/run"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *stdutil.LDFlags
	LogE    *logrus.Entry
}

// Command returns the root command.
// urfave.Command adds the version and help-all subcommands and enables shell completion.
func (r *Runner) Command() *cli.Command {
	globalFlags := &flag.GlobalFlags{}
	return urfave.Command(r.LDFlags, &cli.Command{
		Name:      "stylefmt",
		Usage:     "Format style linter results as a text report. https://github.com/suzuki-shunsuke/stylefmt",
		Flags:     globalFlags.Flags(),
		Reader:    r.Stdin,
		Writer:    r.Stdout,
		ErrWriter: r.Stderr,
		Commands: []*cli.Command{
			initcmd.New(r.LogE, globalFlags),
			run.New(r.LogE, globalFlags, &run.IO{
				Stdin:  r.Stdin,
				Stdout: r.Stdout,
			}, r.LDFlags.Version),
		},
	})
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	return r.Command().Run(ctx, args) //nolint:wrapcheck
}
