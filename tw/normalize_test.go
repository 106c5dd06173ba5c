package tw

import (
	"strings"
	"testing"
	"unicode"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"16", "16"},
		{"16px", "16"},
		{"16pxpx", "16"},
		{"-4.5rem", "-4.5"},
		{"2.5rem", "2.5"},
		{".5em", ".5"},
		{"  12px ", "12"},
		{"100%", "100"},
		{"", ""},
		{"   ", ""},
		{"auto", "auto"},
		{"none", "none"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, v := range []string{"16px", "-4.5rem", "0.25vh", "7", "-0", "3.14159deg", "1e3px"} {
		once := Normalize(v)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", v, once, twice)
		}
		if strings.IndexFunc(once, unicode.IsLetter) >= 0 {
			t.Errorf("Normalize(%q) = %q still contains letters", v, once)
		}
	}
}

func TestPx(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"16", "16px"},
		{"16px", "16px"},
		{"-8", "-8px"},
		{"1.5rem", "1.5px"},
		{"", ""},
		{"auto", ""},
	}

	for _, tt := range tests {
		got := Px(tt.input)
		if got != tt.expected {
			t.Errorf("Px(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
		if strings.Contains(got, "pxpx") {
			t.Errorf("Px(%q) produced a duplicated unit: %q", tt.input, got)
		}
	}
}

func TestSplitUnitAndFractions(t *testing.T) {
	num, unit := SplitUnit("2.5rem")
	if num != "2.5" || unit != "rem" {
		t.Errorf("SplitUnit(2.5rem) = %q, %q", num, unit)
	}
	num, unit = SplitUnit("auto")
	if num != "" || unit != "auto" {
		t.Errorf("SplitUnit(auto) = %q, %q", num, unit)
	}

	if got := Fraction("37"); got != "0.37" {
		t.Errorf("Fraction(37) = %q", got)
	}
	if got := Fraction("107"); got != "1.07" {
		t.Errorf("Fraction(107) = %q", got)
	}
	if got := Ratio("50"); got != "0.5" {
		t.Errorf("Ratio(50) = %q", got)
	}
	if !IsZero("") || !IsZero("0px") || IsZero("auto") || IsZero("3") {
		t.Error("IsZero misclassified a value")
	}
	if !Equals("100%", 100) || Equals("auto", 100) {
		t.Error("Equals misclassified a value")
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"16", "16px"},
		{"16px", "16px"},
		{"16pxpx", "16px"},
		{"12pt", "12px"},
		{"2.5rem", "2.5rem"},
		{"0.05em", "0.05em"},
		{"50%", "50%"},
		{"100VH", "100vh"},
		{"-4 vw", "-4vw"},
		{"auto", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Length(tt.input); got != tt.expected {
			t.Errorf("Length(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
