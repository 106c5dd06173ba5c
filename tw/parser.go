package tw

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// State represents widget interaction state
type State int

const (
	StateDefault State = iota
	StateHover
	StateFocus
	StateActive
	StateDisabled
	StatePlaceholder
)

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	Raw            string
	Breakpoint     Breakpoint
	State          State
	DarkMode       bool
	Negative       bool
	BaseClass      string
	Utility        string          // e.g. "pl", "rotate", "w"; empty when unrecognized
	Value          string          // token suffix for scale classes, e.g. "45" in "rotate-45"
	ArbitraryValue *ArbitraryValue // For arbitrary values like w-[33%]
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "w", "bg", "text", "rotate"
	Value    string // e.g., "33%", "#1da1f2", "22px", "17deg"
}

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// maxParseCache bounds the parse cache; the map is dropped once it fills.
const maxParseCache = 4096

// parseCache caches parsed classes for repeated class strings.
var (
	parseCache   = make(map[string][]ParsedClass)
	parseCacheMu sync.RWMutex
)

// ParseClasses parses a Tailwind class string into its classes.
// Example: "pl-[16px] md:pl-[8px] -rotate-45 hover:opacity-50"
func ParseClasses(classStr string) []ParsedClass {
	if classStr == "" {
		return nil
	}

	// Check cache first (read lock)
	parseCacheMu.RLock()
	if cached, ok := parseCache[classStr]; ok {
		parseCacheMu.RUnlock()
		return cached
	}
	parseCacheMu.RUnlock()

	// Parse and cache (write lock)
	parseCacheMu.Lock()
	defer parseCacheMu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := parseCache[classStr]; ok {
		return cached
	}

	fields := strings.Fields(classStr)
	parsed := make([]ParsedClass, 0, len(fields))
	for _, class := range fields {
		parsed = append(parsed, ParseClass(class))
	}
	if len(parseCache) >= maxParseCache {
		clear(parseCache)
	}
	parseCache[classStr] = parsed
	return parsed
}

// ParseClass splits a class into variant modifiers and base utility
// "hover:dark:bg-blue-500" → ParsedClass{State: Hover, DarkMode: true, BaseClass: "bg-blue-500"}
// "w-[33%]" → ParsedClass{ArbitraryValue: {Property: "w", Value: "33%"}}
func ParseClass(class string) ParsedClass {
	parts := splitVariants(class)

	pc := ParsedClass{
		Raw:        class,
		Breakpoint: BreakpointBase,
		State:      StateDefault,
		BaseClass:  parts[len(parts)-1], // Last part is always the base utility
	}

	// Parse variant prefixes
	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		// State variants
		case "hover":
			pc.State = StateHover
		case "focus":
			pc.State = StateFocus
		case "active":
			pc.State = StateActive
		case "disabled":
			pc.State = StateDisabled
		case "placeholder":
			pc.State = StatePlaceholder

		// Dark mode
		case "dark":
			pc.DarkMode = true

		// Responsive breakpoints
		default:
			if bp, err := ParseBreakpoint(parts[i]); err == nil {
				pc.Breakpoint = bp
			}
		}
	}

	base := pc.BaseClass
	if strings.HasPrefix(base, "-") {
		pc.Negative = true
		base = base[1:]
	}

	// Check if base class is an arbitrary value: property-[value]
	if strings.Contains(base, "[") && strings.HasSuffix(base, "]") {
		pc.ArbitraryValue = extractArbitraryValue(base)
		if pc.ArbitraryValue != nil {
			pc.Utility = pc.ArbitraryValue.Property
		}
		return pc
	}

	pc.Utility, pc.Value = splitUtility(base)
	return pc
}

// splitVariants splits on ":" outside of brackets so values like bg-[url(http://x)] survive.
func splitVariants(class string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(class); i++ {
		switch class[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, class[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, class[start:])
}

// extractArbitraryValue parses arbitrary value syntax
// "w-[33%]" → ArbitraryValue{Property: "w", Value: "33%"}
// "bg-[#1da1f2]" → ArbitraryValue{Property: "bg", Value: "#1da1f2"}
func extractArbitraryValue(class string) *ArbitraryValue {
	// Find the opening bracket
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	property := strings.TrimSuffix(class[:bracketIdx], "-") // Remove trailing dash
	value := strings.TrimSuffix(class[bracketIdx+1:], "]")
	value = strings.ReplaceAll(value, "_", " ")

	return &ArbitraryValue{
		Property: property,
		Value:    value,
	}
}

// keywordUtilities are complete classes that carry no value suffix.
var keywordUtilities = map[string]Declaration{
	"static":          {"position", "static"},
	"relative":        {"position", "relative"},
	"absolute":        {"position", "absolute"},
	"fixed":           {"position", "fixed"},
	"sticky":          {"position", "sticky"},
	"grayscale":       {"filter", "grayscale(1)"},
	"invert":          {"filter", "invert(1)"},
	"sepia":           {"filter", "sepia(1)"},
	"shadow":          {"box-shadow", "shadow"},
	"text-left":       {"text-align", "left"},
	"text-center":     {"text-align", "center"},
	"text-right":      {"text-align", "right"},
	"text-justify":    {"text-align", "justify"},
	"text-start":      {"text-align", "start"},
	"text-end":        {"text-align", "end"},
	"border-solid":    {"border-style", "solid"},
	"border-dashed":   {"border-style", "dashed"},
	"border-dotted":   {"border-style", "dotted"},
	"border-double":   {"border-style", "double"},
	"border-hidden":   {"border-style", "hidden"},
	"border-none":     {"border-style", "none"},
	"font-sans":       {"font-family", "sans"},
	"font-serif":      {"font-family", "serif"},
	"font-mono":       {"font-family", "mono"},
	"font-thin":       {"font-weight", "100"},
	"font-extralight": {"font-weight", "200"},
	"font-light":      {"font-weight", "300"},
	"font-normal":     {"font-weight", "400"},
	"font-medium":     {"font-weight", "500"},
	"font-semibold":   {"font-weight", "600"},
	"font-bold":       {"font-weight", "700"},
	"font-extrabold":  {"font-weight", "800"},
	"font-black":      {"font-weight", "900"},
}

// utilityProperties maps a utility prefix to the CSS property it sets.
var utilityProperties = map[string]string{
	"p":             "padding",
	"px":            "padding-inline",
	"py":            "padding-block",
	"pl":            "padding-left",
	"pt":            "padding-top",
	"pr":            "padding-right",
	"pb":            "padding-bottom",
	"m":             "margin",
	"mx":            "margin-inline",
	"my":            "margin-block",
	"ml":            "margin-left",
	"mt":            "margin-top",
	"mr":            "margin-right",
	"mb":            "margin-bottom",
	"left":          "left",
	"top":           "top",
	"right":         "right",
	"bottom":        "bottom",
	"z":             "z-index",
	"w":             "width",
	"h":             "height",
	"min-w":         "min-width",
	"min-h":         "min-height",
	"max-w":         "max-width",
	"max-h":         "max-height",
	"text":          "font-size",
	"font":          "font-family",
	"tracking":      "letter-spacing",
	"leading":       "line-height",
	"rotate":        "rotate",
	"scale":         "scale",
	"translate-x":   "translate-x",
	"translate-y":   "translate-y",
	"skew-x":        "skew-x",
	"skew-y":        "skew-y",
	"opacity":       "opacity",
	"blur":          "filter",
	"backdrop-blur": "backdrop-filter",
	"hue-rotate":    "filter",
	"saturate":      "filter",
	"brightness":    "filter",
	"contrast":      "filter",
	"grayscale":     "filter",
	"invert":        "filter",
	"sepia":         "filter",
	"shadow":        "box-shadow",
	"border":        "border-width",
	"rounded":       "border-radius",
	"rounded-tl":    "border-top-left-radius",
	"rounded-tr":    "border-top-right-radius",
	"rounded-br":    "border-bottom-right-radius",
	"rounded-bl":    "border-bottom-left-radius",
	"bg":            "background-color",
}

// utilityPrefixes lists utility names longest first so "max-w" wins over "m".
var utilityPrefixes = func() []string {
	names := make([]string, 0, len(utilityProperties))
	for name := range utilityProperties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

// splitUtility separates "translate-x-4" into ("translate-x", "4").
func splitUtility(base string) (utility, value string) {
	if _, ok := keywordUtilities[base]; ok {
		return base, ""
	}
	for _, name := range utilityPrefixes {
		if strings.HasPrefix(base, name+"-") {
			return name, base[len(name)+1:]
		}
	}
	return "", ""
}

// Explain returns the CSS declaration a parsed class stands for. ok is false
// for classes outside the inspector's utility vocabulary (user literals).
func Explain(pc ParsedClass) (Declaration, bool) {
	if decl, ok := keywordUtilities[strings.TrimPrefix(pc.BaseClass, "-")]; ok {
		return decl, true
	}

	property, ok := utilityProperties[pc.Utility]
	if !ok {
		return Declaration{}, false
	}

	if pc.ArbitraryValue != nil {
		value := pc.ArbitraryValue.Value
		if pc.Negative {
			value = "-" + value
		}
		return Declaration{Property: arbitraryProperty(pc.Utility, property, value), Value: describeArbitrary(pc.Utility, value)}, true
	}

	value := describeToken(pc.Utility, pc.Value)
	if value == "" {
		return Declaration{}, false
	}
	if pc.Negative {
		value = "-" + value
	}
	return Declaration{Property: property, Value: value}, true
}

// arbitraryProperty disambiguates utilities whose property depends on the value:
// text-[18px] is a font size, text-[#333] a color.
func arbitraryProperty(utility, property, value string) string {
	switch utility {
	case "text":
		if isColor(value) {
			return "color"
		}
	case "border":
		if isColor(value) {
			return "border-color"
		}
	case "font":
		if IsNumeric(value) {
			return "font-weight"
		}
	}
	return property
}

func describeArbitrary(utility, value string) string {
	switch utility {
	case "blur", "backdrop-blur":
		return "blur(" + value + ")"
	case "hue-rotate", "saturate", "brightness", "contrast", "grayscale", "invert", "sepia":
		return utility + "(" + value + ")"
	}
	if px := parseDimension(value); px != nil && strings.HasSuffix(value, "em") {
		return fmt.Sprintf("%s (%spx)", value, FormatNumber(float64(*px)))
	}
	return value
}

// describeToken converts a scale token to its CSS value.
func describeToken(utility, value string) string {
	switch utility {
	case "p", "px", "py", "pl", "pt", "pr", "pb", "m", "mx", "my", "ml", "mt", "mr", "mb",
		"left", "top", "right", "bottom", "translate-x", "translate-y", "w", "h", "min-w", "min-h", "max-w", "max-h":
		switch value {
		case "px":
			return "1px"
		case "full":
			return "100%"
		case "screen":
			if utility == "h" || utility == "min-h" || utility == "max-h" {
				return "100vh"
			}
			return "100vw"
		case "fit", "min", "max":
			return value + "-content"
		case "auto":
			return "auto"
		}
		if f, ok := parseNumber(value); ok {
			return FormatNumber(f*4) + "px"
		}
	case "z":
		if IsNumeric(value) {
			return value
		}
	case "opacity", "scale":
		if IsNumeric(value) {
			return Ratio(value)
		}
	case "rotate", "skew-x", "skew-y":
		if IsNumeric(value) {
			return value + "deg"
		}
	case "hue-rotate":
		if IsNumeric(value) {
			return "hue-rotate(" + value + "deg)"
		}
	case "saturate", "brightness", "contrast", "grayscale", "invert", "sepia":
		if IsNumeric(value) {
			return utility + "(" + Ratio(value) + ")"
		}
	case "shadow":
		return value
	}
	return ""
}

func isColor(value string) bool {
	return parseColor(value) != nil ||
		strings.HasPrefix(value, "rgb") ||
		strings.HasPrefix(value, "hsl") ||
		strings.HasPrefix(value, "var(")
}

// parseDimension parses CSS dimension values (px, %, rem, etc.)
func parseDimension(value string) *float32 {
	num, unit := SplitUnit(value)
	f, ok := parseNumber(num)
	if !ok {
		return nil
	}

	var multiplier float32
	switch unit {
	case "", "px", "%":
		multiplier = 1.0
	case "rem", "em":
		multiplier = 16.0 // Convert rem to pixels (1rem = 16px)
	default:
		return nil
	}
	result := float32(f) * multiplier
	return &result
}

// parseColor parses hex color values (#RRGGBB or #RGB)
func parseColor(value string) *uint32 {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return nil
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil
	}

	var r, g, b uint32
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil
	}
	color := (r << 24) | (g << 16) | (b << 8) | 0xFF // RGBA
	return &color
}
