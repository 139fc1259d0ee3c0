// Package initcmd implements the 'stylefmt init' command.
package initcmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/stylefmt/pkg/cli/flag"
	"github.com/suzuki-shunsuke/stylefmt/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/stylefmt/pkg/log"
	"github.com/urfave/cli/v3"
)

const defaultConfigFilePath = ".stylefmt.yaml"

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
	}
	return r.Command()
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .stylefmt.yaml if it doesn't exist",
		Description: `Create .stylefmt.yaml if it doesn't exist

$ stylefmt init

You can also pass configuration file path.

e.g.

$ stylefmt init .github/stylefmt.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = defaultConfigFilePath
	}
	r.logE.WithField("config", configFilePath).Debug("create a configuration file")
	return initcmd.New(afero.NewOsFs()).Init(configFilePath) //nolint:wrapcheck
}
