package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dog-api-tests/dog-api-contract-tests/framework"

	"github.com/olekukonko/tablewriter"
)

// PrintSummary writes a table with one row per test, followed by totals.
func PrintSummary(w io.Writer, results framework.Results) {
	entries := Entries(results)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No tests were run")
		return
	}

	var buffer strings.Builder
	table := tablewriter.NewWriter(&buffer)
	table.Header("Test", "Feature", "Severity", "Result", "Duration (ms)")
	for _, e := range entries {
		_ = table.Append([]string{
			e.ID,
			e.Feature,
			e.Severity,
			strings.ToUpper(e.Status),
			fmt.Sprintf("%d", e.DurationMS),
		})
	}
	_ = table.Render()

	fmt.Fprint(w, buffer.String())
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Status]++
	}
	fmt.Fprintf(w, "Passed: %d, Failed: %d, Skipped: %d\n",
		counts[StatusPassed], counts[StatusFailed], counts[StatusSkipped])
}
