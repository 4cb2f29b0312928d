package contract

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func parseValue(t *testing.T, jsonString string) ldvalue.Value {
	v := ldvalue.Parse([]byte(jsonString))
	require.NotEqual(t, ldvalue.NullType, v.Type(), "test data should be valid non-null JSON: %s", jsonString)
	return v
}

func requireAssertionFailure(t *testing.T, err error) *AssertionFailure {
	require.Error(t, err)
	failure, ok := err.(*AssertionFailure)
	require.True(t, ok, "expected *AssertionFailure, got %T: %s", err, err)
	return failure
}

func TestNotEmptyAndEmpty(t *testing.T) {
	for _, s := range []string{`[1]`, `{"a":1}`, `"x"`} {
		assert.NoError(t, NotEmpty().Evaluate(parseValue(t, s)), s)
		assert.Error(t, Empty().Evaluate(parseValue(t, s)), s)
	}
	for _, s := range []string{`[]`, `{}`, `""`} {
		assert.Error(t, NotEmpty().Evaluate(parseValue(t, s)), s)
		assert.NoError(t, Empty().Evaluate(parseValue(t, s)), s)
	}
	assert.Error(t, NotEmpty().Evaluate(ldvalue.Null()))
	assert.Error(t, Empty().Evaluate(ldvalue.Null()))
}

func TestMinCountAndMoreThan(t *testing.T) {
	v := parseValue(t, `{"a":[],"b":[],"c":[]}`)
	assert.NoError(t, MinCount(3).Evaluate(v))
	assert.Error(t, MinCount(4).Evaluate(v))
	assert.NoError(t, MoreThan(2).Evaluate(v))

	failure := requireAssertionFailure(t, MoreThan(3).Evaluate(v))
	assert.Equal(t, "> 3 elements", failure.Expected)
	assert.Equal(t, "3 elements", failure.Actual)

	assert.Error(t, MinCount(0).Evaluate(parseValue(t, `"abc"`)), "strings are not collections")
}

func TestHasKeys(t *testing.T) {
	v := parseValue(t, `{"bulldog":[],"hound":["afghan"]}`)
	assert.NoError(t, HasKeys("bulldog", "hound").Evaluate(v))

	failure := requireAssertionFailure(t, HasKeys("bulldog", "retriever", "pug").Evaluate(v))
	assert.Equal(t, "missing retriever, pug", failure.Actual)

	assert.Error(t, HasKeys("a").Evaluate(parseValue(t, `["a"]`)))
}

func TestKey(t *testing.T) {
	v := parseValue(t, `{"australian":["shepherd"],"affenpinscher":[],"odd":"x"}`)

	assert.NoError(t, Key("australian", KindArray, NotEmpty(), Each(LowercaseAlpha())).Evaluate(v))
	assert.NoError(t, Key("affenpinscher", KindArray, Empty()).Evaluate(v))

	failure := requireAssertionFailure(t, Key("affenpinscher", KindArray, NotEmpty()).Evaluate(v))
	assert.Equal(t, `key "affenpinscher"`, failure.Description)
	assert.Contains(t, failure.Expected, "non-empty value")

	failure = requireAssertionFailure(t, Key("missing", KindArray).Evaluate(v))
	assert.Equal(t, "not present", failure.Actual)

	failure = requireAssertionFailure(t, Key("odd", KindArray).Evaluate(v))
	assert.Equal(t, "array value", failure.Expected)
	assert.Contains(t, failure.Actual, "string value")
}

func TestIncludes(t *testing.T) {
	v := parseValue(t, `["kelpie","shepherd"]`)
	assert.NoError(t, Includes("shepherd").Evaluate(v))
	assert.Error(t, Includes("collie").Evaluate(v))
	assert.Error(t, Includes("shepherd").Evaluate(parseValue(t, `"shepherd"`)))
}

func TestUnique(t *testing.T) {
	assert.NoError(t, Unique().Evaluate(parseValue(t, `["a","b","c"]`)))
	assert.NoError(t, Unique().Evaluate(parseValue(t, `[]`)))

	failure := requireAssertionFailure(t, Unique().Evaluate(parseValue(t, `["a","b","a"]`)))
	assert.Equal(t, `element 2 duplicates element 0: "a"`, failure.Actual)
}

func TestEachReportsFirstFailingElement(t *testing.T) {
	v := parseValue(t, `["https://x/a.jpg","https://x/b.gif","ftp://x/c.gif"]`)
	check := Each(HasPrefix("https://"), HasAnySuffix(".jpg", ".png"))

	failure := requireAssertionFailure(t, check.Evaluate(v))
	assert.Equal(t, `element 1 is "https://x/b.gif"`, failure.Actual)
	assert.Contains(t, failure.Expected, `ends with one of ".jpg", ".png"`)

	failure = requireAssertionFailure(t, Each().Evaluate(parseValue(t, `["a",1]`)))
	assert.Contains(t, failure.Actual, "element 1 is number")
}

func TestValue(t *testing.T) {
	check := Value(NotEmptyString(), HasPrefix("https://images.dog.ceo/breeds/"), HasSuffix(".jpg"))
	assert.NoError(t, check.Evaluate(ldvalue.String("https://images.dog.ceo/breeds/pug/1.jpg")))
	assert.Error(t, check.Evaluate(ldvalue.String("")))
	assert.Error(t, check.Evaluate(ldvalue.String("https://images.dog.ceo/breeds/pug/1.png")))
	assert.Error(t, check.Evaluate(parseValue(t, `["https://images.dog.ceo/breeds/pug/1.jpg"]`)))
}

func TestEqualsAndContains(t *testing.T) {
	assert.True(t, Equals("hound").Match("hound"))
	assert.False(t, Equals("hound").Match("Hound"))
	assert.True(t, Contains("breeds/hound").Match("https://images.dog.ceo/breeds/hound-afghan/1.jpg"))
	assert.False(t, Contains("breeds/hound").Match("https://images.dog.ceo/breeds/pug/1.jpg"))
}

func TestLowercaseAlpha(t *testing.T) {
	p := LowercaseAlpha()
	assert.True(t, p.Match("shepherd"))
	for _, s := range []string{"", "Shepherd", "german-shepherd", "shepherd2", "shép"} {
		assert.False(t, p.Match(s), s)
	}

	properties := gopter.NewProperties(nil)
	properties.Property("matches exactly the non-empty strings of a-z", prop.ForAll(
		func(s string) bool {
			expected := s != "" && strings.Trim(s, "abcdefghijklmnopqrstuvwxyz") == ""
			return p.Match(s) == expected
		},
		gen.AnyString(),
	))
	properties.Property("accepts generated lowercase identifiers", prop.ForAll(
		func(s string) bool { return p.Match(s) },
		gen.AlphaString().Map(strings.ToLower).SuchThat(func(s string) bool { return s != "" }),
	))
	properties.TestingRun(t)
}

func TestAssertionFailureMessage(t *testing.T) {
	err := &AssertionFailure{Description: "error message", Expected: `"a"`, Actual: `"b"`}
	assert.Equal(t, "error message\n  expected: \"a\"\n  actual:   \"b\"", err.Error())
	assert.True(t, IsAssertionFailure(err))
	assert.False(t, IsNetworkError(err))
}
