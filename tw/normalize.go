package tw

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches an optionally negative integer or decimal at the start of a value.
var leadingNumber = regexp.MustCompile(`^-?[0-9]*\.?[0-9]+`)

// Normalize strips any unit or trailing text from a stored value and returns
// the leading numeric literal: "16px" → "16", "-4.5rem" → "-4.5".
// Empty input yields "". A non-empty value with no numeric prefix ("auto")
// is returned unchanged, so size and position callers must handle keywords
// before treating the result as a number.
func Normalize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if m := leadingNumber.FindString(value); m != "" {
		return m
	}
	return value
}

// FormatNumber renders a float with the shortest representation that round-trips.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// IsNumeric reports whether value normalizes to a number.
func IsNumeric(value string) bool {
	_, ok := parseNumber(Normalize(value))
	return ok
}

// IsZero reports whether value is empty or normalizes to zero.
// Non-numeric keywords are not zero.
func IsZero(value string) bool {
	n := Normalize(value)
	if n == "" {
		return true
	}
	f, ok := parseNumber(n)
	return ok && f == 0
}

// Equals reports whether value normalizes to the number want.
func Equals(value string, want float64) bool {
	f, ok := parseNumber(Normalize(value))
	return ok && f == want
}

// Px normalizes value and appends exactly one "px". Returns "" when the value is
// empty or not numeric.
func Px(value string) string {
	n := Normalize(value)
	if _, ok := parseNumber(n); !ok {
		return ""
	}
	return n + "px"
}

// lengthUnits are the CSS length units a value may keep instead of px.
var lengthUnits = map[string]bool{
	"%": true, "rem": true, "em": true,
	"vh": true, "vw": true, "dvh": true, "svh": true, "lvh": true,
	"vmin": true, "vmax": true, "ch": true, "ex": true,
}

// Length renders a numeric value with its CSS length unit: "2.5rem" and "50%"
// keep their unit, a bare number or px gets exactly one "px", and anything
// else after the number ("16pxpx", "12pt") is dropped in favour of px.
// Returns "" when the value has no numeric prefix.
func Length(value string) string {
	num, unit := SplitUnit(value)
	if num == "" {
		return ""
	}
	if unit = strings.ToLower(unit); lengthUnits[unit] {
		return num + unit
	}
	return num + "px"
}

// SplitUnit separates a numeric value from its unit: "2.5rem" → ("2.5", "rem").
// Values without a numeric prefix return ("", value).
func SplitUnit(value string) (num, unit string) {
	value = strings.TrimSpace(value)
	num = leadingNumber.FindString(value)
	if num == "" {
		return "", value
	}
	return num, strings.TrimSpace(value[len(num):])
}

// Fraction divides a whole-percentage value by 100 and formats it with two decimals:
// "37" → "0.37", "107" → "1.07".
func Fraction(value string) string {
	f, ok := parseNumber(Normalize(value))
	if !ok {
		return ""
	}
	return strconv.FormatFloat(f/100, 'f', 2, 64)
}

// Ratio divides a whole-percentage value by 100 with the shortest representation:
// "50" → "0.5", "125" → "1.25".
func Ratio(value string) string {
	f, ok := parseNumber(Normalize(value))
	if !ok {
		return ""
	}
	return FormatNumber(f / 100)
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
