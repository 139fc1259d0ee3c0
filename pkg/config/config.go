package config

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	FormatText  = "text"
	FormatSARIF = "sarif"
)

type Config struct {
	Format        string          `json:"format,omitempty" jsonschema:"enum=text,enum=sarif,description=Output format. The default is text"`
	Color         bool            `json:"color,omitempty" jsonschema:"description=Colorize severities in the text report"`
	IgnoreSources []*IgnoreSource `json:"ignore_sources,omitempty" yaml:"ignore_sources" jsonschema:"description=Source files whose results are dropped from the report"`
}

// Validate checks the fields that aren't checked while decoding.
func (c *Config) Validate() error {
	switch c.Format {
	case "", FormatText, FormatSARIF:
		return nil
	default:
		return fmt.Errorf("format must be text or sarif: %s", c.Format)
	}
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

type IgnoreSource struct {
	Pattern string `json:"pattern" jsonschema:"description=A pattern matched against the source of each lint result"`
	Format  string `json:"format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp"`
	regexp  *regexp.Regexp
}

func (is *IgnoreSource) Init() error {
	if is.Pattern == "" {
		return errors.New("pattern is required")
	}
	switch is.Format {
	case formatFixedString:
		return nil
	case formatGlob:
		if !doublestar.ValidatePattern(is.Pattern) {
			return fmt.Errorf("parse pattern as a glob: %s", is.Pattern)
		}
		return nil
	case formatRegexp:
		r, err := regexp.Compile(is.Pattern)
		if err != nil {
			return fmt.Errorf("compile pattern as a regular expression: %w", err)
		}
		is.regexp = r
		return nil
	case "":
		return errors.New("format is required")
	default:
		return errors.New("format must be fixed_string, glob, or regexp")
	}
}

func (is *IgnoreSource) Match(source string) (bool, error) {
	switch is.Format {
	case formatFixedString:
		return source == is.Pattern, nil
	case formatGlob:
		f, err := doublestar.Match(is.Pattern, source)
		if err != nil {
			return false, fmt.Errorf("match as a glob: %w", err)
		}
		return f, nil
	case formatRegexp:
		if is.regexp == nil {
			return false, errors.New("the regular expression isn't initialized")
		}
		return is.regexp.MatchString(source), nil
	default:
		return false, errors.New("unexpected format: " + is.Format)
	}
}

// Ignored reports whether source matches one of IgnoreSources.
func (c *Config) Ignored(source string) (bool, error) {
	for _, is := range c.IgnoreSources {
		f, err := is.Match(source)
		if err != nil {
			return false, fmt.Errorf("match a source with ignore_sources: %w", err)
		}
		if f {
			return true, nil
		}
	}
	return false, nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".stylefmt.yaml", ".github/stylefmt.yaml", ".stylefmt.yml", ".github/stylefmt.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate a configuration file: %w", err)
	}
	for _, is := range cfg.IgnoreSources {
		if err := is.Init(); err != nil {
			return fmt.Errorf("initialize ignore_sources: %w", err)
		}
	}
	return nil
}
