// Package run implements `stylefmt run`.
// The controller finds and reads the configuration file, reads lint results
// from files or standard input, drops results of ignored sources, validates
// the rest and writes a report in the selected format. It is kept free of CLI
// concerns so that it can be driven by tests with an in-memory filesystem.
package run

import (
	"io"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/stylefmt/pkg/config"
)

type Controller struct {
	fs        afero.Fs
	cfg       *config.Config
	param     *ParamRun
	cfgFinder ConfigFinder
	cfgReader ConfigReader
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type ParamRun struct {
	ResultFiles    []string
	ConfigFilePath string
	// Format overrides the format in the configuration file if it isn't empty.
	Format string
	// Color enables colors even if the configuration file doesn't.
	Color   bool
	Check   bool
	Version string
	Stdin   io.Reader
	Stdout  io.Writer
}

func New(fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamRun) *Controller {
	return &Controller{
		param:     param,
		fs:        fs,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		cfg:       &config.Config{},
	}
}
