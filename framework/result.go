package framework

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID   TestID
	Metadata Metadata
	Errors   []error
	Skipped  bool
	Group    bool // true if this test ran subtests of its own
	Duration time.Duration
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Passed returns the number of tests that ran and did not fail.
func (r Results) Passed() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Group && !t.Skipped && !t.Failed() {
			n++
		}
	}
	return n
}

// Skipped returns the number of tests that were skipped after they started. Tests excluded
// by a filter never start, so they are not counted here.
func (r Results) Skipped() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Group && t.Skipped {
			n++
		}
	}
	return n
}

// Ran returns the number of tests that ran to completion, whether they passed or failed.
func (r Results) Ran() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Group && !t.Skipped {
			n++
		}
	}
	return n
}

func (r TestResult) Failed() bool {
	return len(r.Errors) != 0 && !r.Skipped
}

type TestID struct {
	Path []string
}

// Plus returns a new TestID for a subtest of this one.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a summary of failed tests, followed by the overall outcome.
func PrintResults(w io.Writer, results Results) {
	if results.OK() && results.Ran() == 0 {
		fmt.Fprintln(w, "No tests were run")
		return
	}
	if results.OK() {
		fmt.Fprintf(w, "All tests passed (%d passed, %d skipped)\n", results.Passed(), results.Skipped())
		return
	}
	fmt.Fprintln(w, color.New(color.FgRed, color.Bold).Sprintf("FAILED TESTS (%d):", len(results.Failures)))
	for _, f := range results.Failures {
		fmt.Fprintf(w, "* %s\n", f.TestID)
		for _, e := range f.Errors {
			for _, line := range strings.Split(e.Error(), "\n") {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}
}
