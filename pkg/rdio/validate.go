package rdio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxActivityCount is the largest count getActivityStream accepts.
const MaxActivityCount = 30

var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// validate returns the first non-nil error. All checks are pure, so
// evaluating every one of them up front is harmless.
func validate(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// checkRequired rejects an empty mandatory string argument.
func checkRequired(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return &InvalidArgumentError{Param: param, Value: value, Bound: "non-empty"}
	}
	return nil
}

// checkEnum requires value to be one of allowed.
func checkEnum[T ~string](param string, value T, allowed []T) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &InvalidArgumentError{Param: param, Value: string(value), Allowed: stringsOf(allowed)}
}

// checkOptEnum is checkEnum for optional arguments, where the zero value
// means "not supplied".
func checkOptEnum[T ~string](param string, value T, allowed []T) error {
	if value == "" {
		return nil
	}
	return checkEnum(param, value, allowed)
}

// checkIntEnum requires an integer value to be one of allowed.
func checkIntEnum[T ~int](param string, value T, allowed []T) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &InvalidArgumentError{Param: param, Value: int(value), Allowed: intStringsOf(allowed)}
}

// checkEnumList validates every element of a list argument. An empty list is
// valid.
func checkEnumList[T ~string](param string, values []T, allowed []T) error {
	for i, v := range values {
		if err := checkEnum(param, v, allowed); err != nil {
			ia := err.(*InvalidArgumentError)
			ia.Param = fmt.Sprintf("%s[%d]", param, i)
			return ia
		}
	}
	return nil
}

// checkNonNegativeList rejects negative elements of an integer list.
func checkNonNegativeList[T ~int](param string, values []T) error {
	for i, v := range values {
		if v < 0 {
			return &InvalidArgumentError{Param: fmt.Sprintf("%s[%d]", param, i), Value: int(v), Bound: ">= 0"}
		}
	}
	return nil
}

// checkNonEmptyList rejects a list that must carry at least one element.
func checkNonEmptyList[T any](param string, values []T) error {
	if len(values) == 0 {
		return &InvalidArgumentError{Param: param, Value: values, Bound: "a non-empty list"}
	}
	return nil
}

// checkKeys requires a non-empty list of object keys. Keys travel
// comma-joined, so a key may not itself contain a comma.
func checkKeys(param string, keys []string) error {
	if err := checkNonEmptyList(param, keys); err != nil {
		return err
	}
	for i, k := range keys {
		if strings.TrimSpace(k) == "" || strings.Contains(k, ",") {
			return &InvalidArgumentError{
				Param: fmt.Sprintf("%s[%d]", param, i),
				Value: k,
				Bound: "a non-empty key without commas",
			}
		}
	}
	return nil
}

// checkMax enforces a ceiling; the ceiling itself is accepted.
func checkMax(param string, value *int, max int) error {
	if value != nil && *value > max {
		return &InvalidArgumentError{Param: param, Value: *value, Bound: fmt.Sprintf("<= %d", max)}
	}
	return nil
}

// checkNonNegative rejects negative offsets and counts.
func checkNonNegative(param string, value *int) error {
	if value != nil && *value < 0 {
		return &InvalidArgumentError{Param: param, Value: *value, Bound: ">= 0"}
	}
	return nil
}

// checkPage validates the usual start/count pair.
func checkPage(start, count *int) error {
	return validate(
		checkNonNegative("start", start),
		checkNonNegative("count", count),
	)
}

// checkCountryCode requires two upper-case letters. Empty means not supplied.
func checkCountryCode(param, value string) error {
	if value == "" || countryCodePattern.MatchString(value) {
		return nil
	}
	return &InvalidArgumentError{Param: param, Value: value, Bound: "two upper-case letters (ISO 3166-1 alpha-2)"}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func intStringsOf[T ~int](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(int(v))
	}
	return out
}

// enumArg turns an optional enumerated value into an Arg.
func enumArg[T ~string](value T) Arg {
	return NonEmpty(string(value))
}
