package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRegexList(t *testing.T, patterns ...string) RegexList {
	var r RegexList
	for _, p := range patterns {
		require.NoError(t, r.Set(p))
	}
	return r
}

func testID(path string) TestID {
	return TestID{Path: strings.Split(path, "/")}
}

func TestEmptyFiltersAllowEverything(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.IncludeTest(testID("breeds list/success")))
}

func TestMustMatchFilter(t *testing.T) {
	filters := RegexFilters{MustMatch: makeRegexList(t, "^breeds", "random")}
	assert.True(t, filters.IncludeTest(testID("breeds list/success")))
	assert.True(t, filters.IncludeTest(testID("random image/success")))
	assert.False(t, filters.IncludeTest(testID("images by breed/hound")))
}

func TestMustNotMatchFilter(t *testing.T) {
	filters := RegexFilters{MustNotMatch: makeRegexList(t, "invalid route")}
	assert.True(t, filters.IncludeTest(testID("breeds list/success")))
	assert.False(t, filters.IncludeTest(testID("breeds list/invalid route")))
}

func TestMustNotMatchTakesPrecedence(t *testing.T) {
	filters := RegexFilters{
		MustMatch:    makeRegexList(t, "breeds list"),
		MustNotMatch: makeRegexList(t, "success"),
	}
	assert.False(t, filters.IncludeTest(testID("breeds list/success")))
	assert.True(t, filters.IncludeTest(testID("breeds list/invalid route")))
}

func TestGroupsAreOnlyExcludedByMustNotMatch(t *testing.T) {
	filters := RegexFilters{
		MustMatch:    makeRegexList(t, "hound"),
		MustNotMatch: makeRegexList(t, "^random"),
	}
	assert.True(t, filters.IncludeGroup(testID("images by breed")))
	assert.True(t, filters.IncludeGroup(testID("breeds list")))
	assert.False(t, filters.IncludeGroup(testID("random image")))
	assert.True(t, filters.IncludeTest(testID("images by breed/hound")))
	assert.False(t, filters.IncludeTest(testID("images by breed/unknown breed")))
}

func TestFilterFunc(t *testing.T) {
	f := FilterFunc(func(id TestID) bool { return id.String() == "a" })
	assert.True(t, f.IncludeTest(testID("a")))
	assert.True(t, f.IncludeGroup(testID("a")))
	assert.False(t, f.IncludeGroup(testID("b")))
}

func TestInvalidRegex(t *testing.T) {
	var r RegexList
	err := r.Set("[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
	assert.False(t, r.IsDefined())
}

func TestRegexListString(t *testing.T) {
	r := makeRegexList(t, "a", "b+")
	assert.Equal(t, `"a" or "b+"`, r.String())
	assert.Equal(t, "regex", r.Type())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf strings.Builder
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	PrintFilterDescription(&buf, RegexFilters{
		MustMatch:    makeRegexList(t, "a"),
		MustNotMatch: makeRegexList(t, "b"),
	})
	assert.Contains(t, buf.String(), `skip any not matching "a"`)
	assert.Contains(t, buf.String(), `skip any matching "b"`)
}
