package tw

import "strings"

// Token families understood by IsToken.
const (
	FamilySpacing    = "spacing"
	FamilyOpacity    = "opacity"
	FamilyZIndex     = "z"
	FamilyScale      = "scale"
	FamilyRotate     = "rotate"
	FamilySkew       = "skew"
	FamilyHueRotate  = "hue-rotate"
	FamilySaturate   = "saturate"
	FamilyBrightness = "brightness"
	FamilyContrast   = "contrast"
	FamilyGrayscale  = "grayscale"
	FamilyInvert     = "invert"
	FamilySepia      = "sepia"
)

// DefaultScales returns the Tailwind v3 fixed scales, keyed by family.
// Values are in each family's own units: spacing steps, whole percentages, degrees.
func DefaultScales() map[string][]string {
	return map[string][]string{
		FamilySpacing: {
			"0", "0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7", "8", "9", "10", "11", "12",
			"14", "16", "20", "24", "28", "32", "36", "40", "44", "48", "52", "56", "60", "64", "72", "80", "96",
		},
		FamilyOpacity: {
			"0", "5", "10", "15", "20", "25", "30", "35", "40", "45", "50",
			"55", "60", "65", "70", "75", "80", "85", "90", "95", "100",
		},
		FamilyZIndex:     {"0", "10", "20", "30", "40", "50"},
		FamilyScale:      {"0", "50", "75", "90", "95", "100", "105", "110", "125", "150"},
		FamilyRotate:     {"0", "1", "2", "3", "6", "12", "45", "90", "180"},
		FamilySkew:       {"0", "1", "2", "3", "6", "12"},
		FamilyHueRotate:  {"0", "15", "30", "60", "90", "180"},
		FamilySaturate:   {"0", "50", "100", "150", "200"},
		FamilyBrightness: {"0", "50", "75", "90", "95", "100", "105", "110", "125", "150", "200"},
		FamilyContrast:   {"0", "50", "75", "100", "125", "150", "200"},
		FamilyGrayscale:  {"0", "100"},
		FamilyInvert:     {"0", "100"},
		FamilySepia:      {"0", "100"},
	}
}

// IsToken reports whether a normalized value is a member of the family's fixed
// scale. Unknown families report false, which forces bracket notation.
// Negative values are matched on their magnitude; callers decide whether the
// family accepts a leading minus.
func IsToken(family, value string) bool {
	f, ok := parseNumber(strings.TrimPrefix(Normalize(value), "-"))
	if !ok {
		return false
	}
	for _, step := range Scales()[family] {
		if s, ok := parseNumber(step); ok && s == f {
			return true
		}
	}
	return false
}

// SpacingToken converts a pixel value to its spacing-scale step when one exists:
// 16 → "4", 2 → "0.5", 1 → "px". Returns "" when the value is off-scale.
func SpacingToken(px string) string {
	n := strings.TrimPrefix(Normalize(px), "-")
	f, ok := parseNumber(n)
	if !ok {
		return ""
	}
	if f == 1 {
		return "px"
	}
	step := FormatNumber(f / 4)
	if !IsToken(FamilySpacing, step) {
		return ""
	}
	return step
}
