package contract

import "fmt"

// CheckStatus verifies that the response had the expected HTTP status code.
func CheckStatus(o Outcome, expected int) error {
	if o.StatusCode == expected {
		return nil
	}
	return &AssertionFailure{
		Description: fmt.Sprintf("unexpected HTTP status from %s", o.URL),
		Expected:    fmt.Sprint(expected),
		Actual:      fmt.Sprint(o.StatusCode),
	}
}

// CheckSuccessShape verifies that the envelope reports success and has a message of the
// expected kind, then evaluates each check against the message in order. It returns the
// first failure.
func CheckSuccessShape(env Envelope, kind MessageKind, checks ...Check) error {
	if env.Status != StatusSuccess {
		return &AssertionFailure{Description: "envelope status", Expected: fmt.Sprintf("%q", StatusSuccess), Actual: fmt.Sprintf("%q", env.Status)}
	}
	if actualKind := env.MessageKind(); actualKind != kind {
		return &AssertionFailure{Description: "message kind", Expected: string(kind), Actual: describeValue(env.Message)}
	}
	for _, c := range checks {
		if err := c.Evaluate(env.Message); err != nil {
			return err
		}
	}
	return nil
}

// CheckErrorShape verifies that the envelope reports an error with exactly the expected
// code and message.
func CheckErrorShape(env Envelope, code int, message string) error {
	if env.Status != StatusError {
		return &AssertionFailure{Description: "envelope status", Expected: fmt.Sprintf("%q", StatusError), Actual: fmt.Sprintf("%q", env.Status)}
	}
	if !env.Code.IsDefined() {
		return &AssertionFailure{Description: "error code", Expected: fmt.Sprint(code), Actual: "no code"}
	}
	if env.Code.IntValue() != code {
		return &AssertionFailure{Description: "error code", Expected: fmt.Sprint(code), Actual: fmt.Sprint(env.Code.IntValue())}
	}
	if !env.Message.IsString() {
		return &AssertionFailure{Description: "error message kind", Expected: string(KindString), Actual: describeValue(env.Message)}
	}
	if env.Message.StringValue() != message {
		return &AssertionFailure{Description: "error message", Expected: fmt.Sprintf("%q", message), Actual: fmt.Sprintf("%q", env.Message.StringValue())}
	}
	return nil
}
