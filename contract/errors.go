package contract

import (
	"errors"
	"fmt"
)

const maxBodyInErrorMessage = 500

// ErrClientClosed is returned by Client.Run after the Client has been closed.
var ErrClientClosed = errors.New("client has already been closed")

// NetworkError means that no HTTP response was received, or its body could not be read.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponse means that a response was received but its body was not a JSON envelope.
type MalformedResponse struct {
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *MalformedResponse) Error() string {
	return fmt.Sprintf("malformed response from %s (HTTP %d): %s; body was: %s",
		e.URL, e.StatusCode, e.Err, truncate(string(e.Body), maxBodyInErrorMessage))
}

func (e *MalformedResponse) Unwrap() error { return e.Err }

// AssertionFailure means that a response was decoded but did not match the expected contract.
type AssertionFailure struct {
	Description string
	Expected    string
	Actual      string
}

func (e *AssertionFailure) Error() string {
	return fmt.Sprintf("%s\n  expected: %s\n  actual:   %s", e.Description, e.Expected, e.Actual)
}

func IsNetworkError(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

func IsMalformedResponse(err error) bool {
	var target *MalformedResponse
	return errors.As(err, &target)
}

func IsAssertionFailure(err error) bool {
	var target *AssertionFailure
	return errors.As(err, &target)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
