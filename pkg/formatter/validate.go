package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suzuki-shunsuke/stylefmt/pkg/lint"
)

// ErrInvalidResult is wrapped by every error Validate returns.
var ErrInvalidResult = errors.New("invalid lint result")

// Validate checks that results can be rendered one line per message.
// Format does not call it. Callers that read results from outside the
// process should validate them first.
func Validate(results []lint.FileResult) error {
	for i, r := range results {
		if err := validateResult(r); err != nil {
			return fmt.Errorf("results[%d]: %w", i, err)
		}
	}
	return nil
}

func validateResult(r lint.FileResult) error {
	if r.Source == "" {
		return fmt.Errorf("%w: source is empty", ErrInvalidResult)
	}
	if strings.ContainsAny(r.Source, "\r\n") {
		return fmt.Errorf("%w: source contains a line break: %q", ErrInvalidResult, r.Source)
	}
	// The linter emits deprecations and invalid option warnings as bare
	// {text} objects, so only warnings must carry a severity.
	for _, g := range []struct {
		name            string
		messages        []lint.Message
		requireSeverity bool
	}{
		{name: "warnings", messages: r.Warnings, requireSeverity: true},
		{name: "deprecations", messages: r.Deprecations},
		{name: "invalidOptionWarnings", messages: r.InvalidOptionWarnings},
	} {
		for i, m := range g.messages {
			if err := validateMessage(m, g.requireSeverity); err != nil {
				return fmt.Errorf("source %s: %s[%d]: %w", r.Source, g.name, i, err)
			}
		}
	}
	return nil
}

func validateMessage(m lint.Message, requireSeverity bool) error {
	if requireSeverity && m.Severity == "" {
		return fmt.Errorf("%w: severity is empty", ErrInvalidResult)
	}
	if m.Line < 0 {
		return fmt.Errorf("%w: line must not be negative: %d", ErrInvalidResult, m.Line)
	}
	if m.Column < 0 {
		return fmt.Errorf("%w: column must not be negative: %d", ErrInvalidResult, m.Column)
	}
	if strings.ContainsAny(m.Text, "\r\n") {
		return fmt.Errorf("%w: text contains a line break: %q", ErrInvalidResult, m.Text)
	}
	return nil
}
