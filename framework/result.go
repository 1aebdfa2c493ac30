package framework

import (
	"fmt"
	"strings"
	"time"
)

// Results is the ordered outcome of a test run. Tests holds one entry per check that ran, in the
// order the checks were executed; Failures is the subset of Tests that failed.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestID
}

// TestResult is the outcome of a single check. It is never modified after it has been appended to
// Results.
type TestResult struct {
	TestID    TestID
	Success   bool
	Details   string
	Errors    []error
	Timestamp time.Time
}

// Summary contains the counts derived from a Results.
type Summary struct {
	Total       int
	Passed      int
	Failed      int
	SuccessRate float64
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Summary computes pass/fail counts from the recorded results. SuccessRate is a percentage, and is
// zero if nothing ran.
func (r Results) Summary() Summary {
	s := Summary{Total: len(r.Tests)}
	for _, t := range r.Tests {
		if t.Success {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	if s.Total > 0 {
		s.SuccessRate = float64(s.Passed) * 100 / float64(s.Total)
	}
	return s
}

func (s Summary) FormatSuccessRate() string {
	return fmt.Sprintf("%.1f%%", s.SuccessRate)
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name returns the last component of the test path, which is the name that was passed to Run.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

// Depth is 1 for a top-level group, 2 for a check inside it, and so on.
func (t TestID) Depth() int {
	return len(t.Path)
}
