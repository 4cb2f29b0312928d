// Package contract executes a declared HTTP call against a JSON API and verifies that the
// response matches an expected contract.
//
// A test case describes its request with an Endpoint, runs it through a shared Client to get
// an Outcome, and then applies assertions to the decoded Envelope. Every assertion function
// returns an error rather than failing a test directly, so the package can be used from any
// test runner; failures are reported as *AssertionFailure, transport problems as
// *NetworkError, and unparseable bodies as *MalformedResponse.
package contract
