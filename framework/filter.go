package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter determines whether to run a specific test or group of tests. Groups are asked
// separately because whether a group is wanted may depend on the names of tests inside it,
// which are not known until the group runs.
type Filter interface {
	IncludeTest(id TestID) bool
	IncludeGroup(id TestID) bool
}

// FilterFunc is a Filter that applies the same function to tests and groups.
type FilterFunc func(TestID) bool

func (f FilterFunc) IncludeTest(id TestID) bool  { return f(id) }
func (f FilterFunc) IncludeGroup(id TestID) bool { return f(id) }

// RegexFilters selects tests by matching patterns against the full test ID. MustMatch only
// applies to tests, so that "--run hound" reaches "images by breed/hound"; MustNotMatch also
// excludes whole groups.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) IncludeTest(id TestID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

func (r RegexFilters) IncludeGroup(id TestID) bool {
	return !r.MustNotMatch.AnyMatch(id.String())
}

// RegexList is a list of regular expressions that can be built up from repeated command-line
// flags. It implements pflag.Value.
type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) Type() string {
	return "regex"
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func PrintFilterDescription(w io.Writer, filters RegexFilters) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Fprintln(w, "Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Fprintf(w, "  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Fprintf(w, "  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Fprintln(w)
	}
}
