package formatter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/suzuki-shunsuke/stylefmt/pkg/lint"
)

// Formatter writes a report of results to w.
type Formatter interface {
	Format(w io.Writer, results []lint.FileResult) error
}

type colorFunc func(a ...any) string

// TextFormatter writes the plain text report.
// When Color is true, error severities are printed in red and warnings in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes the text report of results to w, colorizing severities when Color is set.
func (f *TextFormatter) Format(w io.Writer, results []lint.FileResult) error {
	s := Format(results)
	if f.Color {
		s = format(results, newSeverityColorizer())
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write a text report: %w", err)
	}
	return nil
}

func newSeverityColorizer() func(string) string {
	red := color.New(color.FgRed)
	red.EnableColor()
	yellow := color.New(color.FgYellow)
	yellow.EnableColor()
	funcs := map[string]colorFunc{
		severityError:   red.SprintFunc(),
		severityWarning: yellow.SprintFunc(),
	}
	return func(severity string) string {
		if fn, ok := funcs[severity]; ok {
			return fn(severity)
		}
		return severity
	}
}
