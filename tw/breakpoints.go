package tw

import "fmt"

// Breakpoint represents responsive breakpoint
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM              // ≥640px
	BreakpointMD              // ≥768px
	BreakpointLG              // ≥1024px
	BreakpointXL              // ≥1280px
	Breakpoint2XL             // ≥1536px
)

var breakpointNames = [...]string{"base", "sm", "md", "lg", "xl", "2xl"}

// Breakpoints returns every breakpoint in cascade order: base, sm, md, lg, xl, 2xl.
func Breakpoints() []Breakpoint {
	return []Breakpoint{BreakpointBase, BreakpointSM, BreakpointMD, BreakpointLG, BreakpointXL, Breakpoint2XL}
}

// String returns the Tailwind name of the breakpoint ("base" for the unprefixed layer).
func (b Breakpoint) String() string {
	if b < BreakpointBase || b > Breakpoint2XL {
		return fmt.Sprintf("Breakpoint(%d)", int(b))
	}
	return breakpointNames[b]
}

// Valid reports whether b is one of the six known breakpoints.
func (b Breakpoint) Valid() bool {
	return b >= BreakpointBase && b <= Breakpoint2XL
}

// Prefix returns the variant prefix for class names: "" for base, "md:" for md, etc.
func (b Breakpoint) Prefix() string {
	if b == BreakpointBase || !b.Valid() {
		return ""
	}
	return breakpointNames[b] + ":"
}

// ParseBreakpoint parses a breakpoint name. The empty string is treated as base.
func ParseBreakpoint(name string) (Breakpoint, error) {
	if name == "" {
		return BreakpointBase, nil
	}
	for i, n := range breakpointNames {
		if n == name {
			return Breakpoint(i), nil
		}
	}
	return BreakpointBase, fmt.Errorf("unknown breakpoint %q (want one of base, sm, md, lg, xl, 2xl)", name)
}

// BreakpointConfig holds the pixel thresholds for responsive breakpoints.
// Tailwind uses mobile-first design: styles apply at the breakpoint width and above.
type BreakpointConfig struct {
	SM  float32 `toml:"sm" validate:"gt=0"`        // ≥640px by default
	MD  float32 `toml:"md" validate:"gtfield=SM"`  // ≥768px by default
	LG  float32 `toml:"lg" validate:"gtfield=MD"`  // ≥1024px by default
	XL  float32 `toml:"xl" validate:"gtfield=LG"`  // ≥1280px by default
	XXL float32 `toml:"2xl" validate:"gtfield=XL"` // ≥1536px by default (2xl)
}

// DefaultBreakpoints returns the standard Tailwind CSS breakpoint values.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{
		SM:  640,
		MD:  768,
		LG:  1024,
		XL:  1280,
		XXL: 1536,
	}
}

// ActiveBreakpoint returns which breakpoint is currently active for a given width.
// Returns the highest breakpoint that the width satisfies.
func (c BreakpointConfig) ActiveBreakpoint(width float32) Breakpoint {
	if width >= c.XXL {
		return Breakpoint2XL
	}
	if width >= c.XL {
		return BreakpointXL
	}
	if width >= c.LG {
		return BreakpointLG
	}
	if width >= c.MD {
		return BreakpointMD
	}
	if width >= c.SM {
		return BreakpointSM
	}
	return BreakpointBase
}

// Threshold returns the minimum viewport width for a breakpoint (0 for base).
func (c BreakpointConfig) Threshold(b Breakpoint) float32 {
	switch b {
	case BreakpointSM:
		return c.SM
	case BreakpointMD:
		return c.MD
	case BreakpointLG:
		return c.LG
	case BreakpointXL:
		return c.XL
	case Breakpoint2XL:
		return c.XXL
	}
	return 0
}
