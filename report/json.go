package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dog-api-tests/dog-api-contract-tests/framework"

	"github.com/pkg/errors"
)

type jsonReport struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	Skipped     int       `json:"skipped"`
	Tests       []Entry   `json:"tests"`
}

// WriteJSON writes the results as a single JSON document.
func WriteJSON(path string, results framework.Results) error {
	entries := Entries(results)
	r := jsonReport{
		GeneratedAt: time.Now().UTC(),
		Tests:       entries,
	}
	for _, e := range entries {
		switch e.Status {
		case StatusPassed:
			r.Passed++
		case StatusFailed:
			r.Failed++
		case StatusSkipped:
			r.Skipped++
		}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "couldn't encode JSON report")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "couldn't write JSON report to %s", path)
	}
	return nil
}
