// Package dogtests contains the dog API contract tests themselves and their supporting API.
//
// Infrastructure that is not specific to the dog API, such as the test context and result
// handling, is in the lower-level framework package; making requests and checking response
// envelopes is done by the contract package.
package dogtests
