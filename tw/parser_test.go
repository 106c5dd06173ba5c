package tw

import (
	"strconv"
	"testing"
)

func TestParseClassesWithVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, []ParsedClass)
	}{
		{
			name:  "basic classes without variants",
			input: "pl-[16px] opacity-50 relative",
			validate: func(t *testing.T, classes []ParsedClass) {
				if len(classes) != 3 {
					t.Fatalf("expected 3 classes, got %d", len(classes))
				}
				for _, pc := range classes {
					if pc.Breakpoint != BreakpointBase {
						t.Errorf("%s: expected base breakpoint, got %v", pc.Raw, pc.Breakpoint)
					}
				}
			},
		},
		{
			name:  "breakpoint variants",
			input: "sm:pl-[8px] md:pl-[8px] lg:pl-[8px] xl:pl-[8px] 2xl:pl-[8px]",
			validate: func(t *testing.T, classes []ParsedClass) {
				want := []Breakpoint{BreakpointSM, BreakpointMD, BreakpointLG, BreakpointXL, Breakpoint2XL}
				for i, pc := range classes {
					if pc.Breakpoint != want[i] {
						t.Errorf("%s: expected %v, got %v", pc.Raw, want[i], pc.Breakpoint)
					}
				}
			},
		},
		{
			name:  "dark mode variant",
			input: "dark:text-[#fff]",
			validate: func(t *testing.T, classes []ParsedClass) {
				if !classes[0].DarkMode {
					t.Error("expected DarkMode to be set")
				}
			},
		},
		{
			name:  "negative token behind breakpoint",
			input: "md:-rotate-45",
			validate: func(t *testing.T, classes []ParsedClass) {
				pc := classes[0]
				if !pc.Negative || pc.Utility != "rotate" || pc.Value != "45" {
					t.Errorf("unexpected parse %+v", pc)
				}
				decl, ok := Explain(pc)
				if !ok || decl.Value != "-45deg" {
					t.Errorf("expected -45deg, got %+v", decl)
				}
			},
		},
		{
			name:  "longest utility wins",
			input: "max-w-[640px] min-h-[10vh] mx-[-8px]",
			validate: func(t *testing.T, classes []ParsedClass) {
				want := []string{"max-width", "min-height", "margin-inline"}
				for i, pc := range classes {
					decl, ok := Explain(pc)
					if !ok || decl.Property != want[i] {
						t.Errorf("%s: expected %s, got %+v", pc.Raw, want[i], decl)
					}
				}
			},
		},
		{
			name:  "user literal classes are not explained",
			input: "card-title",
			validate: func(t *testing.T, classes []ParsedClass) {
				if _, ok := Explain(classes[0]); ok {
					t.Error("expected card-title to be outside the utility vocabulary")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseClasses(tt.input))
		})
	}
}

func TestExplainTokens(t *testing.T) {
	tests := []struct {
		class    string
		property string
		value    string
	}{
		{"opacity-50", "opacity", "0.5"},
		{"scale-105", "scale", "1.05"},
		{"z-10", "z-index", "10"},
		{"pl-4", "padding-left", "16px"},
		{"pl-px", "padding-left", "1px"},
		{"w-full", "width", "100%"},
		{"h-screen", "height", "100vh"},
		{"w-fit", "width", "fit-content"},
		{"hue-rotate-90", "filter", "hue-rotate(90deg)"},
		{"saturate-150", "filter", "saturate(1.5)"},
		{"grayscale", "filter", "grayscale(1)"},
		{"font-bold", "font-weight", "700"},
		{"text-center", "text-align", "center"},
		{"border-dashed", "border-style", "dashed"},
		{"shadow-md", "box-shadow", "md"},
		{"absolute", "position", "absolute"},
	}

	for _, tt := range tests {
		decl, ok := Explain(ParseClass(tt.class))
		if !ok {
			t.Errorf("Explain(%q) not recognized", tt.class)
			continue
		}
		if decl.Property != tt.property || decl.Value != tt.value {
			t.Errorf("Explain(%q) = %s: %s, expected %s: %s", tt.class, decl.Property, decl.Value, tt.property, tt.value)
		}
	}
}

func TestParseClassesCache(t *testing.T) {
	input := "pl-[4px] pr-[4px]"
	first := ParseClasses(input)
	second := ParseClasses(input)
	if &first[0] != &second[0] {
		t.Error("expected repeated parse to return the cached slice")
	}
	if ParseClasses("") != nil {
		t.Error("expected nil for empty input")
	}
}

func TestParseClassesCacheIsBounded(t *testing.T) {
	for i := 0; i < maxParseCache*2; i++ {
		ParseClasses("w-[" + strconv.Itoa(i) + "px]")
	}
	parseCacheMu.RLock()
	n := len(parseCache)
	parseCacheMu.RUnlock()
	if n > maxParseCache {
		t.Errorf("parse cache holds %d entries, limit is %d", n, maxParseCache)
	}
	if got := ParseClasses("w-[1px]"); len(got) != 1 || got[0].Raw != "w-[1px]" {
		t.Errorf("unexpected parse after eviction: %+v", got)
	}
}
