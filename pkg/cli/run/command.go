// Package run implements the 'stylefmt run' command.
package run

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/stylefmt/pkg/cli/flag"
	"github.com/suzuki-shunsuke/stylefmt/pkg/config"
	"github.com/suzuki-shunsuke/stylefmt/pkg/controller/run"
	"github.com/suzuki-shunsuke/stylefmt/pkg/log"
	"github.com/urfave/cli/v3"
)

type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
}

type Flags struct {
	Format string
	Color  bool
	Check  bool
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, stdio *IO, version string) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		io:          stdio,
		version:     version,
		fs:          afero.NewOsFs(),
	}
	return r.Command()
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	io          *IO
	version     string
	fs          afero.Fs
}

func (r *runner) Command() *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:  "run",
		Usage: "Format lint results",
		Description: `Read lint results as JSON and output a report.
If no argument is passed, stylefmt reads lint results from the standard input.

$ stylelint --formatter json "**/*.css" | stylefmt run

You can also pass results file paths as arguments. "-" means the standard input.

e.g.

$ stylefmt run results-app.json results-lib.json
`,
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.action(ctx, c, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format. text or sarif",
				Sources:     cli.EnvVars("STYLEFMT_FORMAT"),
				Destination: &flags.Format,
			},
			&cli.BoolFlag{
				Name:        "color",
				Usage:       "Colorize severities in the text report",
				Destination: &flags.Color,
			},
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "Exit with a non-zero status code if a reported message has the severity error",
				Destination: &flags.Check,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command, flags *Flags) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	param := &run.ParamRun{
		ResultFiles:    c.Args().Slice(),
		ConfigFilePath: r.globalFlags.Config,
		Format:         flags.Format,
		Color:          flags.Color,
		Check:          flags.Check,
		Version:        r.version,
		Stdin:          r.io.Stdin,
		Stdout:         r.io.Stdout,
	}
	ctrl := run.New(r.fs, config.NewFinder(r.fs), config.NewReader(r.fs), param)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}
