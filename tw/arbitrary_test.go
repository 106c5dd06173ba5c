package tw

import "testing"

func TestArbitraryValues(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, ParsedClass)
	}{
		{
			name:  "arbitrary width percentage",
			input: "w-[33%]",
			validate: func(t *testing.T, pc ParsedClass) {
				if pc.ArbitraryValue == nil || pc.ArbitraryValue.Property != "w" || pc.ArbitraryValue.Value != "33%" {
					t.Errorf("w-[33%%] should parse to w/33%%, got %+v", pc.ArbitraryValue)
				}
			},
		},
		{
			name:  "arbitrary padding pixels",
			input: "pl-[16px]",
			validate: func(t *testing.T, pc ParsedClass) {
				decl, ok := Explain(pc)
				if !ok || decl.Property != "padding-left" || decl.Value != "16px" {
					t.Errorf("pl-[16px] should explain as padding-left: 16px, got %+v", decl)
				}
			},
		},
		{
			name:  "arbitrary rem value",
			input: "w-[2.5rem]",
			validate: func(t *testing.T, pc ParsedClass) {
				decl, _ := Explain(pc)
				if decl.Value != "2.5rem (40px)" {
					t.Errorf("w-[2.5rem] should mention 40px, got %q", decl.Value)
				}
			},
		},
		{
			name:  "arbitrary hex text color",
			input: "text-[#fff]",
			validate: func(t *testing.T, pc ParsedClass) {
				decl, _ := Explain(pc)
				if decl.Property != "color" {
					t.Errorf("text-[#fff] should set color, got %q", decl.Property)
				}
			},
		},
		{
			name:  "arbitrary font size",
			input: "text-[22px]",
			validate: func(t *testing.T, pc ParsedClass) {
				decl, _ := Explain(pc)
				if decl.Property != "font-size" {
					t.Errorf("text-[22px] should set font-size, got %q", decl.Property)
				}
			},
		},
		{
			name:  "arbitrary rotate degrees",
			input: "rotate-[17deg]",
			validate: func(t *testing.T, pc ParsedClass) {
				decl, _ := Explain(pc)
				if decl.Property != "rotate" || decl.Value != "17deg" {
					t.Errorf("rotate-[17deg] should be rotate: 17deg, got %+v", decl)
				}
			},
		},
		{
			name:  "arbitrary with breakpoint and state",
			input: "md:hover:bg-[#ff6b35]",
			validate: func(t *testing.T, pc ParsedClass) {
				if pc.Breakpoint != BreakpointMD || pc.State != StateHover {
					t.Errorf("expected md + hover, got %v + %v", pc.Breakpoint, pc.State)
				}
				decl, _ := Explain(pc)
				if decl.Property != "background-color" || decl.Value != "#ff6b35" {
					t.Errorf("unexpected declaration %+v", decl)
				}
			},
		},
		{
			name:  "underscores become spaces",
			input: "text-[rgb(1,_2,_3)]",
			validate: func(t *testing.T, pc ParsedClass) {
				if pc.ArbitraryValue == nil || pc.ArbitraryValue.Value != "rgb(1, 2, 3)" {
					t.Errorf("expected rgb(1, 2, 3), got %+v", pc.ArbitraryValue)
				}
			},
		},
		{
			name:  "colon inside brackets is not a variant",
			input: "bg-[url(https://x.test/a.png)]",
			validate: func(t *testing.T, pc ParsedClass) {
				if pc.Breakpoint != BreakpointBase || pc.Utility != "bg" {
					t.Errorf("expected base bg utility, got %v %q", pc.Breakpoint, pc.Utility)
				}
			},
		},
		{
			name:  "arbitrary filter",
			input: "backdrop-blur-[8px]",
			validate: func(t *testing.T, pc ParsedClass) {
				decl, _ := Explain(pc)
				if decl.Property != "backdrop-filter" || decl.Value != "blur(8px)" {
					t.Errorf("unexpected declaration %+v", decl)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseClass(tt.input))
		})
	}
}

func TestArbitraryValueParsing(t *testing.T) {
	// Test dimension parsing
	tests := []struct {
		value    string
		expected float32
	}{
		{"33%", 33.0},
		{"250px", 250.0},
		{"2.5rem", 40.0}, // 2.5 * 16
		{"1.5em", 24.0},  // 1.5 * 16
		{"42", 42.0},     // Plain number
	}

	for _, tt := range tests {
		result := parseDimension(tt.value)
		if result == nil || *result != tt.expected {
			t.Errorf("parseDimension(%q) = %v, expected %f", tt.value, result, tt.expected)
		}
	}

	if parseDimension("100vh") != nil {
		t.Error("parseDimension should not convert viewport units")
	}

	// Test color parsing
	colorTests := []struct {
		value    string
		expected uint32
	}{
		{"#ffffff", 0xFFFFFFFF},
		{"#000000", 0x000000FF},
		{"#1da1f2", 0x1DA1F2FF},
		{"#fff", 0xFFFFFFFF}, // Shorthand
		{"#000", 0x000000FF}, // Shorthand
	}

	for _, tt := range colorTests {
		result := parseColor(tt.value)
		if result == nil || *result != tt.expected {
			t.Errorf("parseColor(%q) = %v, expected %08x", tt.value, result, tt.expected)
		}
	}
}

func BenchmarkArbitraryValues(b *testing.B) {
	input := "w-[33%] h-[250px] bg-[#1da1f2] pl-[2.5rem] rounded-[12px]"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, pc := range ParseClasses(input) {
			Explain(pc)
		}
	}
}
