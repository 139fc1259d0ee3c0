package run

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/stylefmt/pkg/config"
	"github.com/suzuki-shunsuke/stylefmt/pkg/formatter"
	"github.com/suzuki-shunsuke/stylefmt/pkg/lint"
)

// ErrErrorsFound is returned in check mode when a reported message has the severity "error".
var ErrErrorsFound = errors.New("lint results contain errors")

const (
	stdinPath     = "-"
	severityError = "error"
)

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	results, err := c.readResults(ctx, logE)
	if err != nil {
		return err
	}
	results, err = c.filterResults(logE, results)
	if err != nil {
		return err
	}
	if err := formatter.Validate(results); err != nil {
		return fmt.Errorf("validate lint results: %w", err)
	}
	f, err := c.newFormatter()
	if err != nil {
		return err
	}
	if err := f.Format(c.param.Stdout, results); err != nil {
		return fmt.Errorf("output a report: %w", err)
	}
	if c.param.Check && hasError(results) {
		return ErrErrorsFound
	}
	return nil
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return fmt.Errorf("read a config file: %w", err)
	}
	c.cfg = cfg
	return nil
}

func (c *Controller) readResults(ctx context.Context, logE *logrus.Entry) ([]lint.FileResult, error) {
	paths := c.param.ResultFiles
	if len(paths) == 0 {
		paths = []string{stdinPath}
	}
	results := []lint.FileResult{}
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read lint results: %w", err)
		}
		logE := logE.WithField("results_file", p)
		rs, err := c.readResultFile(p)
		if err != nil {
			return nil, logerr.WithFields(err, logrus.Fields{ //nolint:wrapcheck
				"results_file": p,
			})
		}
		logE.WithField("num_of_results", len(rs)).Debug("read lint results")
		results = append(results, rs...)
	}
	return results, nil
}

func (c *Controller) readResultFile(p string) ([]lint.FileResult, error) {
	var r io.Reader
	if p == stdinPath {
		r = c.param.Stdin
	} else {
		f, err := c.fs.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open a lint results file: %w", err)
		}
		defer f.Close()
		r = f
	}
	results, err := lint.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("read lint results: %w", err)
	}
	return results, nil
}

func (c *Controller) filterResults(logE *logrus.Entry, results []lint.FileResult) ([]lint.FileResult, error) {
	if len(c.cfg.IgnoreSources) == 0 {
		return results, nil
	}
	ret := make([]lint.FileResult, 0, len(results))
	for _, r := range results {
		ignored, err := c.cfg.Ignored(r.Source)
		if err != nil {
			return nil, fmt.Errorf("check if a source is ignored: %w", logerr.WithFields(err, logrus.Fields{
				"source": r.Source,
			}))
		}
		if ignored {
			logE.WithField("source", r.Source).Debug("ignore lint results")
			continue
		}
		ret = append(ret, r)
	}
	return ret, nil
}

func (c *Controller) newFormatter() (formatter.Formatter, error) { //nolint:ireturn
	format := c.param.Format
	if format == "" {
		format = c.cfg.Format
	}
	switch format {
	case "", config.FormatText:
		return &formatter.TextFormatter{
			Color: c.param.Color || c.cfg.Color,
		}, nil
	case config.FormatSARIF:
		return &formatter.SARIFFormatter{
			Version: c.param.Version,
		}, nil
	default:
		return nil, fmt.Errorf("format must be text or sarif: %s", format)
	}
}

func hasError(results []lint.FileResult) bool {
	for _, r := range results {
		for _, msgs := range [][]lint.Message{r.Warnings, r.Deprecations, r.InvalidOptionWarnings} {
			for _, m := range msgs {
				if m.Severity == severityError {
					return true
				}
			}
		}
	}
	return false
}
