// Package framework contains the low-level implementation of test runner infrastructure that
// can be reused for different kinds of contract tests.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a hierarchical test identifier and to
// accumulate success/failure results. Tests run outside of the Go test runner, so that the
// suite can be shipped as a standalone executable and pointed at any deployment of the
// service being verified.
//
// 2. Each test can capture debug output, which is only shown if the test fails (or if the
// user asked to see all output), and can carry descriptive metadata for reporters.
//
// 3. Tests can be selected or excluded by regular expressions matched against their IDs.
//
// The domain-specific code that knows what is being tested is responsible for issuing the
// requests and providing a domain-specific test API on top of the test context.
package framework
