package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, body string) Envelope {
	env, err := DecodeEnvelope([]byte(body))
	require.NoError(t, err)
	return env
}

func TestCheckStatus(t *testing.T) {
	o := Outcome{URL: "http://x/breeds/list/all", StatusCode: 404}
	assert.NoError(t, CheckStatus(o, 404))

	failure := requireAssertionFailure(t, CheckStatus(o, 200))
	assert.Equal(t, "200", failure.Expected)
	assert.Equal(t, "404", failure.Actual)
	assert.Contains(t, failure.Description, "http://x/breeds/list/all")
}

func TestCheckSuccessShape(t *testing.T) {
	env := mustDecode(t, `{"status":"success","message":["a","b"]}`)
	assert.NoError(t, CheckSuccessShape(env, KindArray, NotEmpty(), Unique()))

	failure := requireAssertionFailure(t, CheckSuccessShape(env, KindObject))
	assert.Equal(t, "message kind", failure.Description)

	failure = requireAssertionFailure(t, CheckSuccessShape(env, KindArray, MinCount(1), MinCount(5), MinCount(10)))
	assert.Equal(t, ">= 5 elements", failure.Expected, "first failing check should be reported")
}

func TestCheckSuccessShapeRejectsErrorStatus(t *testing.T) {
	env := mustDecode(t, `{"status":"error","message":"x","code":404}`)
	failure := requireAssertionFailure(t, CheckSuccessShape(env, KindString))
	assert.Equal(t, "envelope status", failure.Description)
	assert.Equal(t, `"error"`, failure.Actual)
}

func TestCheckErrorShape(t *testing.T) {
	const message = "Breed not found (main breed does not exist)"
	env := mustDecode(t, `{"status":"error","message":"Breed not found (main breed does not exist)","code":404}`)
	assert.NoError(t, CheckErrorShape(env, 404, message))

	failure := requireAssertionFailure(t, CheckErrorShape(env, 404, message+"."))
	assert.Equal(t, "error message", failure.Description)

	failure = requireAssertionFailure(t, CheckErrorShape(env, 400, message))
	assert.Equal(t, "error code", failure.Description)
	assert.Equal(t, "404", failure.Actual)
}

func TestCheckErrorShapeFailures(t *testing.T) {
	for name, tc := range map[string]struct {
		body        string
		description string
	}{
		"success status":     {`{"status":"success","message":"x","code":404}`, "envelope status"},
		"no code":            {`{"status":"error","message":"x"}`, "error code"},
		"non-string message": {`{"status":"error","message":["x"],"code":404}`, "error message kind"},
	} {
		t.Run(name, func(t *testing.T) {
			failure := requireAssertionFailure(t, CheckErrorShape(mustDecode(t, tc.body), 404, "x"))
			assert.Equal(t, tc.description, failure.Description)
		})
	}
}
