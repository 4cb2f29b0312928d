package dogtests

import (
	"context"

	"github.com/dog-api-tests/dog-api-contract-tests/contract"
	"github.com/dog-api-tests/dog-api-contract-tests/framework"
)

// T represents a test or subtest in our dog API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, and with some extra features such as debug logging that are convenient for
// our use case. Those features are provided by our lower-level framework package.
//
// It also provides functionality that is specific to the dog API. Every T has access to the HTTP
// client that is shared by the whole test run, and to the Params describing what the API is expected
// to return.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it were
// a *testing.T. The Require methods of T also make assertions, causing the test to immediately fail
// if something unexpected happens, to reduce the amount of boilerplate logic in tests.
type T struct {
	context *framework.Context
	env     *environment
}

type environment struct {
	client *contract.Client
	params Params
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// RunGroup runs a subtest that only contains other subtests. Group names are not required to
// match --run patterns; the tests inside them are.
func (t *T) RunGroup(name string, action func(*T)) {
	t.context.RunGroup(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Params returns the expected values for this test run.
func (t *T) Params() Params {
	return t.env.params
}

// Feature sets the feature name reported for this test and its subtests.
func (t *T) Feature(name string) {
	t.context.Annotate(framework.Metadata{Feature: name})
}

// Severity sets the severity reported for this test and its subtests.
func (t *T) Severity(severity framework.Severity) {
	t.context.Annotate(framework.Metadata{Severity: severity})
}

// DisplayName sets a human-readable name reported for this test only.
func (t *T) DisplayName(name string) {
	t.context.Annotate(framework.Metadata{DisplayName: name})
}

// Get makes the request described by the Endpoint. If no response was received, or the response
// body was not a valid envelope, the test fails and immediately exits.
//
// The status code is not checked; use RequireStatus, RequireSuccess, or RequireError for that.
func (t *T) Get(endpoint contract.Endpoint) contract.Outcome {
	o, err := t.env.client.Run(context.Background(), endpoint, t.context.DebugLogger())
	t.requireNoError(err)
	return o
}

// RequireStatus fails the test and immediately exits if the response did not have the expected
// status code.
func (t *T) RequireStatus(o contract.Outcome, expected int) {
	t.requireNoError(contract.CheckStatus(o, expected))
}

// RequireSuccess verifies that the response has the Endpoint's expected status, that the envelope
// reports success with a message of the specified kind, and that the message passes all of the
// checks. The test fails and immediately exits at the first check that does not pass.
func (t *T) RequireSuccess(o contract.Outcome, kind contract.MessageKind, checks ...contract.Check) {
	t.RequireStatus(o, o.Endpoint.ExpectedStatus)
	t.requireNoError(contract.CheckSuccessShape(o.Envelope, kind, checks...))
}

// RequireError verifies that the response has the Endpoint's expected status, and that the
// envelope reports an error with that same code and exactly the specified message.
func (t *T) RequireError(o contract.Outcome, message string) {
	t.RequireStatus(o, o.Endpoint.ExpectedStatus)
	t.requireNoError(contract.CheckErrorShape(o.Envelope, o.Endpoint.ExpectedStatus, message))
}

// GetSuccess is a shortcut for calling Get and then RequireSuccess.
func (t *T) GetSuccess(endpoint contract.Endpoint, kind contract.MessageKind, checks ...contract.Check) contract.Outcome {
	o := t.Get(endpoint)
	t.RequireSuccess(o, kind, checks...)
	return o
}

// GetError is a shortcut for calling Get and then RequireError.
func (t *T) GetError(endpoint contract.Endpoint, message string) contract.Outcome {
	o := t.Get(endpoint)
	t.RequireError(o, message)
	return o
}

func (t *T) requireNoError(err error) {
	if err != nil {
		t.Errorf("%s", err)
		t.FailNow()
	}
}
