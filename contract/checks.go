package contract

import (
	"fmt"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const maxValueInFailureMessage = 300

// Check is a declarative condition on a JSON value, usually an envelope's "message" field.
type Check struct {
	Description string
	test        func(v ldvalue.Value) (expected, actual string, ok bool)
}

// Evaluate returns nil if the value satisfies the check, or an *AssertionFailure if not.
func (c Check) Evaluate(v ldvalue.Value) error {
	expected, actual, ok := c.test(v)
	if ok {
		return nil
	}
	return &AssertionFailure{Description: c.Description, Expected: expected, Actual: actual}
}

// StringPredicate is a named condition on a string.
type StringPredicate struct {
	Description string
	Match       func(string) bool
}

func HasPrefix(prefix string) StringPredicate {
	return StringPredicate{
		Description: fmt.Sprintf("starts with %q", prefix),
		Match:       func(s string) bool { return strings.HasPrefix(s, prefix) },
	}
}

func HasSuffix(suffix string) StringPredicate {
	return StringPredicate{
		Description: fmt.Sprintf("ends with %q", suffix),
		Match:       func(s string) bool { return strings.HasSuffix(s, suffix) },
	}
}

func HasAnySuffix(suffixes ...string) StringPredicate {
	quoted := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		quoted = append(quoted, fmt.Sprintf("%q", s))
	}
	return StringPredicate{
		Description: "ends with one of " + strings.Join(quoted, ", "),
		Match: func(s string) bool {
			for _, suffix := range suffixes {
				if strings.HasSuffix(s, suffix) {
					return true
				}
			}
			return false
		},
	}
}

func Contains(substring string) StringPredicate {
	return StringPredicate{
		Description: fmt.Sprintf("contains %q", substring),
		Match:       func(s string) bool { return strings.Contains(s, substring) },
	}
}

func Equals(expected string) StringPredicate {
	return StringPredicate{
		Description: fmt.Sprintf("equals %q", expected),
		Match:       func(s string) bool { return s == expected },
	}
}

func NotEmptyString() StringPredicate {
	return StringPredicate{
		Description: "is not empty",
		Match:       func(s string) bool { return s != "" },
	}
}

// LowercaseAlpha matches non-empty strings made up only of the letters a-z.
func LowercaseAlpha() StringPredicate {
	return StringPredicate{
		Description: "is lowercase alphabetic",
		Match: func(s string) bool {
			if s == "" {
				return false
			}
			for _, ch := range s {
				if ch < 'a' || ch > 'z' {
					return false
				}
			}
			return true
		},
	}
}

// NotEmpty requires a non-empty array, object, or string.
func NotEmpty() Check {
	return Check{
		Description: "value should not be empty",
		test: func(v ldvalue.Value) (string, string, bool) {
			return "non-empty value", describeValue(v), !isEmpty(v)
		},
	}
}

// Empty requires an empty array, object, or string.
func Empty() Check {
	return Check{
		Description: "value should be empty",
		test: func(v ldvalue.Value) (string, string, bool) {
			return "empty value", describeValue(v), isEmpty(v) && v.Type() != ldvalue.NullType
		},
	}
}

// MinCount requires an array or object with at least n elements.
func MinCount(n int) Check {
	return Check{
		Description: fmt.Sprintf("value should have at least %d elements", n),
		test: func(v ldvalue.Value) (string, string, bool) {
			return fmt.Sprintf(">= %d elements", n), countDescription(v), isCollection(v) && v.Count() >= n
		},
	}
}

// MoreThan requires an array or object with more than n elements.
func MoreThan(n int) Check {
	return Check{
		Description: fmt.Sprintf("value should have more than %d elements", n),
		test: func(v ldvalue.Value) (string, string, bool) {
			return fmt.Sprintf("> %d elements", n), countDescription(v), isCollection(v) && v.Count() > n
		},
	}
}

// HasKeys requires an object that has all of the specified keys.
func HasKeys(keys ...string) Check {
	return Check{
		Description: fmt.Sprintf("object should have keys %s", strings.Join(keys, ", ")),
		test: func(v ldvalue.Value) (string, string, bool) {
			if v.Type() != ldvalue.ObjectType {
				return "object", describeValue(v), false
			}
			var missing []string
			for _, k := range keys {
				if _, ok := v.TryGetByKey(k); !ok {
					missing = append(missing, k)
				}
			}
			if len(missing) != 0 {
				return "keys " + strings.Join(keys, ", "), "missing " + strings.Join(missing, ", "), false
			}
			return "", "", true
		},
	}
}

// Key requires an object with the specified key, whose value is of the specified kind and
// satisfies all of the nested checks in order.
func Key(key string, kind MessageKind, checks ...Check) Check {
	return Check{
		Description: fmt.Sprintf("key %q", key),
		test: func(v ldvalue.Value) (string, string, bool) {
			if v.Type() != ldvalue.ObjectType {
				return "object", describeValue(v), false
			}
			value, ok := v.TryGetByKey(key)
			if !ok {
				return fmt.Sprintf("key %q to be present", key), "not present", false
			}
			if actualKind := KindOf(value); actualKind != kind {
				return fmt.Sprintf("%s value", kind), fmt.Sprintf("%s value %s", actualKind, describeValue(value)), false
			}
			for _, c := range checks {
				if expected, actual, ok := c.test(value); !ok {
					return expected + " (" + c.Description + ")", actual, false
				}
			}
			return "", "", true
		},
	}
}

// Includes requires an array with at least one string element equal to s.
func Includes(s string) Check {
	return Check{
		Description: fmt.Sprintf("array should include %q", s),
		test: func(v ldvalue.Value) (string, string, bool) {
			if v.Type() != ldvalue.ArrayType {
				return "array", describeValue(v), false
			}
			for i := 0; i < v.Count(); i++ {
				if item := v.GetByIndex(i); item.IsString() && item.StringValue() == s {
					return "", "", true
				}
			}
			return fmt.Sprintf("array including %q", s), describeValue(v), false
		},
	}
}

// Unique requires an array with no two equal elements.
func Unique() Check {
	return Check{
		Description: "array should not contain duplicates",
		test: func(v ldvalue.Value) (string, string, bool) {
			if v.Type() != ldvalue.ArrayType {
				return "array", describeValue(v), false
			}
			seen := make(map[string]int, v.Count())
			for i := 0; i < v.Count(); i++ {
				key := v.GetByIndex(i).JSONString()
				if first, ok := seen[key]; ok {
					return "no duplicate elements",
						fmt.Sprintf("element %d duplicates element %d: %s", i, first, truncate(key, maxValueInFailureMessage)),
						false
				}
				seen[key] = i
			}
			return "", "", true
		},
	}
}

// Each requires an array in which every element is a string that satisfies all of the
// predicates. The first element that does not is reported.
func Each(preds ...StringPredicate) Check {
	return Check{
		Description: "every element should be a string that " + describePredicates(preds),
		test: func(v ldvalue.Value) (string, string, bool) {
			if v.Type() != ldvalue.ArrayType {
				return "array", describeValue(v), false
			}
			for i := 0; i < v.Count(); i++ {
				item := v.GetByIndex(i)
				if !item.IsString() {
					return "string elements", fmt.Sprintf("element %d is %s", i, describeValue(item)), false
				}
				for _, p := range preds {
					if !p.Match(item.StringValue()) {
						return "element that " + p.Description, fmt.Sprintf("element %d is %q", i, item.StringValue()), false
					}
				}
			}
			return "", "", true
		},
	}
}

// Value requires a string that satisfies all of the predicates.
func Value(preds ...StringPredicate) Check {
	return Check{
		Description: "value should be a string that " + describePredicates(preds),
		test: func(v ldvalue.Value) (string, string, bool) {
			if !v.IsString() {
				return "string", describeValue(v), false
			}
			for _, p := range preds {
				if !p.Match(v.StringValue()) {
					return "string that " + p.Description, fmt.Sprintf("%q", v.StringValue()), false
				}
			}
			return "", "", true
		},
	}
}

func describePredicates(preds []StringPredicate) string {
	descriptions := make([]string, 0, len(preds))
	for _, p := range preds {
		descriptions = append(descriptions, p.Description)
	}
	return strings.Join(descriptions, " and ")
}

func isCollection(v ldvalue.Value) bool {
	return v.Type() == ldvalue.ArrayType || v.Type() == ldvalue.ObjectType
}

func isEmpty(v ldvalue.Value) bool {
	switch v.Type() {
	case ldvalue.ArrayType, ldvalue.ObjectType:
		return v.Count() == 0
	case ldvalue.StringType:
		return v.StringValue() == ""
	case ldvalue.NullType:
		return true
	default:
		return false
	}
}

func countDescription(v ldvalue.Value) string {
	if !isCollection(v) {
		return describeValue(v)
	}
	return fmt.Sprintf("%d elements", v.Count())
}

func describeValue(v ldvalue.Value) string {
	return fmt.Sprintf("%s %s", KindOf(v), truncate(v.JSONString(), maxValueInFailureMessage))
}
