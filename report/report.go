// Package report writes the results of a test run in forms meant for people and tools other
// than the console test logger. Reports use the metadata attached to each test; they have no
// influence on how tests run.
package report

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dog-api-tests/dog-api-contract-tests/framework"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	JSONFormat = "json"
	XLSXFormat = "xlsx"
)

// Formats lists the report formats that Write accepts.
var Formats = []string{JSONFormat, XLSXFormat}

func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// Entry is the reported form of one test.
type Entry struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Feature    string   `json:"feature,omitempty"`
	Severity   string   `json:"severity,omitempty"`
	Status     string   `json:"status"`
	DurationMS int64    `json:"durationMs"`
	Errors     []string `json:"errors,omitempty"`
}

const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Entries converts results to report entries. Tests that only grouped subtests are left out
// unless they failed outside of any subtest.
func Entries(results framework.Results) []Entry {
	var ret []Entry
	for _, r := range results.Tests {
		if r.Group && !r.Failed() {
			continue
		}
		e := Entry{
			ID:         r.TestID.String(),
			Name:       r.Metadata.DisplayName,
			Feature:    r.Metadata.Feature,
			Severity:   string(r.Metadata.Severity),
			Status:     StatusPassed,
			DurationMS: r.Duration.Milliseconds(),
		}
		if e.Name == "" {
			e.Name = e.ID
		}
		switch {
		case r.Skipped:
			e.Status = StatusSkipped
		case r.Failed():
			e.Status = StatusFailed
		}
		for _, err := range r.Errors {
			e.Errors = append(e.Errors, err.Error())
		}
		ret = append(ret, e)
	}
	return ret
}

// Write writes a report file in each of the specified formats to the directory, creating it if
// necessary. It returns the paths of the files that were written. A failure to write one format
// does not prevent the others from being written.
func Write(dir, name string, formats []string, results framework.Results) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "couldn't create report directory %s", dir)
	}
	var paths []string
	var result *multierror.Error
	for _, format := range formats {
		path := filepath.Join(dir, name+"."+strings.ToLower(format))
		var err error
		switch format {
		case JSONFormat:
			err = WriteJSON(path, results)
		case XLSXFormat:
			err = WriteXLSX(path, results)
		default:
			err = errors.Errorf("unknown report format %q", format)
		}
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths, result.ErrorOrNil()
}
