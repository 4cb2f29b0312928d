package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfTestRunPasses(t *testing.T) {
	dir := t.TempDir()
	status := run([]string{"dog-api-contract-tests", "--config", "", "--self-test", "--quiet",
		"--report-path", dir, "--report-name", "self-test", "--report-format", "json,xlsx"})

	assert.Equal(t, 0, status)
	assert.FileExists(t, filepath.Join(dir, "self-test.json"))
	assert.FileExists(t, filepath.Join(dir, "self-test.xlsx"))
}

func TestSelfTestRunWithFilter(t *testing.T) {
	status := run([]string{"dog-api-contract-tests", "--config", "", "--self-test", "--quiet",
		"--run", "random image"})
	assert.Equal(t, 0, status)
}

func TestRunFailsWhenAPIIsUnreachable(t *testing.T) {
	status := run([]string{"dog-api-contract-tests", "--config", "", "--quiet",
		"--url", "http://127.0.0.1:1/api", "--timeout", "2s"})
	assert.Equal(t, 1, status)
}

func TestRunRejectsInvalidParams(t *testing.T) {
	assert.Equal(t, 1, run([]string{"dog-api-contract-tests", "--config", "", "--log-format", "xml"}))
	assert.Equal(t, 0, run([]string{"dog-api-contract-tests", "--help"}))
}

func TestRunFailsWhenNoTestsMatchFilter(t *testing.T) {
	status := run([]string{"dog-api-contract-tests", "--config", "", "--self-test", "--quiet",
		"--run", "no such test"})
	assert.Equal(t, 1, status)
}

func TestRunFilterMatchingOnlyATestName(t *testing.T) {
	status := run([]string{"dog-api-contract-tests", "--config", "", "--self-test", "--quiet",
		"--run", "hound"})
	assert.Equal(t, 0, status)
}
