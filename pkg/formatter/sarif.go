package formatter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/suzuki-shunsuke/stylefmt/pkg/lint"
	"github.com/suzuki-shunsuke/stylefmt/pkg/sarif"
)

const (
	severityError   = "error"
	severityWarning = "warning"

	ruleDeprecation   = "deprecation"
	ruleInvalidOption = "invalid-option"
	ruleUnknown       = "unknown"
)

// SARIFFormatter writes results as a SARIF 2.1.0 log.
type SARIFFormatter struct {
	Version string
}

// Format writes results to w as an indented SARIF 2.1.0 log with a single run.
func (f *SARIFFormatter) Format(w io.Writer, results []lint.FileResult) error {
	log := sarif.Log{
		Schema:  sarif.Schema,
		Version: sarif.Version,
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "stylefmt",
						InformationURI: "https://github.com/suzuki-shunsuke/stylefmt",
						Version:        f.Version,
						Rules: []sarif.Rule{
							{
								ID: ruleDeprecation,
								ShortDescription: sarif.Message{
									Text: "A rule or option used by the configuration is deprecated",
								},
							},
							{
								ID: ruleInvalidOption,
								ShortDescription: sarif.Message{
									Text: "A rule option in the configuration is invalid",
								},
							},
						},
					},
				},
				Results: buildSARIFResults(results),
			},
		},
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func buildSARIFResults(results []lint.FileResult) []sarif.Result {
	n := 0
	for _, r := range results {
		n += r.Len()
	}
	ret := make([]sarif.Result, 0, n)
	for _, r := range results {
		for _, e := range entries(r) {
			ret = append(ret, sarif.Result{
				RuleID:  ruleID(e),
				Level:   sarifLevel(e.message.Severity),
				Message: sarif.Message{Text: e.message.Text},
				Locations: []sarif.Location{
					{
						PhysicalLocation: sarif.PhysicalLocation{
							ArtifactLocation: sarif.ArtifactLocation{
								URI: r.Source,
							},
							Region: sarif.NewRegion(e.message.Line, e.message.Column),
						},
					},
				},
			})
		}
	}
	return ret
}

func ruleID(e entry) string {
	if e.message.Rule != "" {
		return e.message.Rule
	}
	switch e.group {
	case groupDeprecation:
		return ruleDeprecation
	case groupInvalidOption:
		return ruleInvalidOption
	default:
		return ruleUnknown
	}
}

func sarifLevel(severity string) string {
	switch severity {
	case severityError:
		return sarif.LevelError
	case severityWarning:
		return sarif.LevelWarning
	default:
		return sarif.LevelNote
	}
}
