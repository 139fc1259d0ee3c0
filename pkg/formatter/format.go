// Package formatter renders lint results as a report.
// Format builds the plain text report. TextFormatter and SARIFFormatter
// write a report to an io.Writer and are selected by the run controller.
package formatter

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/suzuki-shunsuke/stylefmt/pkg/lint"
)

type group int

const (
	groupWarning group = iota
	groupDeprecation
	groupInvalidOption
)

type entry struct {
	group   group
	message lint.Message
}

// entries concatenates warnings, deprecations and invalid option warnings
// and sorts them by line and column.
// The sort is stable, so ties keep the concatenated order.
func entries(r lint.FileResult) []entry {
	es := make([]entry, 0, r.Len())
	for _, m := range r.Warnings {
		es = append(es, entry{group: groupWarning, message: m})
	}
	for _, m := range r.Deprecations {
		es = append(es, entry{group: groupDeprecation, message: m})
	}
	for _, m := range r.InvalidOptionWarnings {
		es = append(es, entry{group: groupInvalidOption, message: m})
	}
	slices.SortStableFunc(es, func(a, b entry) int {
		if c := cmp.Compare(a.message.Line, b.message.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.message.Column, b.message.Column)
	})
	return es
}

// Sort returns the messages of r in report order.
// The returned slice is newly allocated and r is left untouched.
func Sort(r lint.FileResult) []lint.Message {
	es := entries(r)
	msgs := make([]lint.Message, len(es))
	for i, e := range es {
		msgs[i] = e.message
	}
	return msgs
}

// Format renders results as a plain text report.
//
// Each message becomes one line:
//
//	<severity>: <source> (<line>, <column>): <text>
//
// Every file block ends with a newline and blocks are joined by a newline.
// Files without messages are omitted and an empty input yields "".
func Format(results []lint.FileResult) string {
	return format(results, func(s string) string { return s })
}

func format(results []lint.FileResult, severity func(string) string) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		block := formatFile(r, severity)
		if strings.TrimSpace(block) == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}

func formatFile(r lint.FileResult, severity func(string) string) string {
	msgs := Sort(r)
	if len(msgs) == 0 {
		return ""
	}
	lines := make([]string, len(msgs))
	for i, m := range msgs {
		lines[i] = formatMessage(r.Source, m, severity)
	}
	return strings.Join(lines, "\n") + "\n"
}

func formatMessage(source string, m lint.Message, severity func(string) string) string {
	return severity(m.Severity) + ": " + source +
		" (" + strconv.Itoa(m.Line) + ", " + strconv.Itoa(m.Column) + "): " + m.Text
}
