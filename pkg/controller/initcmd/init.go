// Package initcmd creates a stylefmt configuration file.
package initcmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/go-stdutil"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/stylefmt/refs/heads/main/json-schema/stylefmt.json
# stylefmt - https://github.com/suzuki-shunsuke/stylefmt
# format: text # text or sarif
# color: false

ignore_sources:
# - pattern: "vendor/**"
#   format: glob
# - pattern: \.min\.css$
#   format: regexp
`
)

type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}

// Init creates a configuration file with a commented template.
// An existing file is left untouched.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), stdutil.DefaultFilePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
