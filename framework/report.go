package framework

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const reportTimestampFormat = "2006-01-02T15:04:05.000Z07:00"

const separatorWidth = 60

// Report is the JSON document written at the end of a test run.
type Report struct {
	Summary ReportSummary `json:"summary"`
	Results []ReportEntry `json:"results"`
}

type ReportSummary struct {
	Total       int    `json:"total"`
	Passed      int    `json:"passed"`
	Failed      int    `json:"failed"`
	SuccessRate string `json:"success_rate"`
}

type ReportEntry struct {
	Test      string `json:"test"`
	Success   bool   `json:"success"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

// NewReport converts Results into the report format. Entries are in execution order.
func NewReport(results Results) Report {
	summary := results.Summary()
	entries := make([]ReportEntry, 0, len(results.Tests))
	for _, t := range results.Tests {
		entries = append(entries, ReportEntry{
			Test:      t.TestID.Name(),
			Success:   t.Success,
			Details:   t.Details,
			Timestamp: t.Timestamp.Format(reportTimestampFormat),
		})
	}
	return Report{
		Summary: ReportSummary{
			Total:       summary.Total,
			Passed:      summary.Passed,
			Failed:      summary.Failed,
			SuccessRate: summary.FormatSuccessRate(),
		},
		Results: entries,
	}
}

// WriteReport writes the JSON report to the specified file, replacing any existing file.
func WriteReport(path string, results Results) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create report file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close report file: %w", closeErr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(NewReport(results)); err != nil {
		return fmt.Errorf("could not write report file: %w", err)
	}
	return nil
}

// PrintResults writes the summary block that ends a test run, followed by the details of every
// failed check.
func PrintResults(out io.Writer, results Results) {
	separator := strings.Repeat("=", separatorWidth)
	summary := results.Summary()

	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, "TEST SUMMARY")
	fmt.Fprintln(out, separator)
	fmt.Fprintf(out, "Total Tests: %d\n", summary.Total)
	fmt.Fprintf(out, "Passed: %s\n", color.GreenString("%d", summary.Passed))
	if summary.Failed > 0 {
		fmt.Fprintf(out, "Failed: %s\n", color.RedString("%d", summary.Failed))
	} else {
		fmt.Fprintf(out, "Failed: %d\n", summary.Failed)
	}
	fmt.Fprintf(out, "Success Rate: %s\n", summary.FormatSuccessRate())

	if len(results.Failures) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "FAILED TESTS:")
		for _, f := range results.Failures {
			fmt.Fprintf(out, "%s %s: %s\n", color.RedString("❌"), f.TestID.Name(), f.Details)
		}
	}
}
