// Package render derives Tailwind class strings and inline style mappings from
// an effective StyleState. Every function here is a pure transform: values it
// cannot format are omitted, never reported.
package render

import (
	"strings"

	"github.com/agiangrant/inspector/state"
	"github.com/agiangrant/inspector/tw"
)

// Options tune the generators.
type Options struct {
	// SpacingTokens emits on-scale pixel spacing as scale tokens (16 → pl-4)
	// instead of bracket notation (pl-[16px]).
	SpacingTokens bool
	// PerspectiveMultiplier scales the stored perspective into pixels.
	// Zero means DefaultPerspectiveMultiplier.
	PerspectiveMultiplier float64
}

// DefaultPerspectiveMultiplier converts the inspector's perspective slider to pixels.
const DefaultPerspectiveMultiplier = 10

// Generator produces classes and styles with a fixed set of Options.
type Generator struct {
	opts Options
}

// NewGenerator returns a generator using opts.
func NewGenerator(opts Options) *Generator {
	if opts.PerspectiveMultiplier == 0 {
		opts.PerspectiveMultiplier = DefaultPerspectiveMultiplier
	}
	return &Generator{opts: opts}
}

// Options returns the generator's options with defaults applied.
func (g *Generator) Options() Options { return g.opts }

var defaultGenerator = NewGenerator(Options{})

// Classes renders the class string for one breakpoint with default options.
func Classes(s state.StyleState, bp tw.Breakpoint) string {
	return defaultGenerator.Classes(s, bp)
}

// Classes renders the class string for one breakpoint: padding, margin,
// position, size, typography, transforms, effects and border utilities in
// that order, then the literal class list unprefixed. Duplicates are kept.
func (g *Generator) Classes(s state.StyleState, bp tw.Breakpoint) string {
	return tw.Join(g.ClassList(s, bp))
}

// ClassList is Classes without the final join.
func (g *Generator) ClassList(s state.StyleState, bp tw.Breakpoint) []string {
	b := classBuilder{prefix: bp.Prefix(), spacingTokens: g.opts.SpacingTokens}

	b.spacing("pl", s.Padding.L)
	b.spacing("pt", s.Padding.T)
	b.spacing("pr", s.Padding.R)
	b.spacing("pb", s.Padding.B)

	b.spacing("mx", s.Margin.X)
	b.spacing("my", s.Margin.Y)

	b.position(s.Position)

	b.size("w", s.Size.Width, "auto")
	b.size("h", s.Size.Height, "auto")
	b.size("max-w", s.Size.MaxWidth, "none")
	b.size("max-h", s.Size.MaxHeight, "none")
	b.size("min-w", s.Size.MinWidth, "0")
	b.size("min-h", s.Size.MinHeight, "0")

	b.typography(s.Typography)
	b.transforms(s.Transforms)
	b.effects(s.Effects)
	b.border(s.Border)

	b.out = append(b.out, s.TailwindClasses...)
	return b.out
}

type classBuilder struct {
	prefix        string
	spacingTokens bool
	out           []string
}

func (b *classBuilder) add(class string) {
	if class != "" {
		b.out = append(b.out, class)
	}
}

// px emits a bracketed pixel class for a non-zero numeric value.
func (b *classBuilder) px(prop, value string) {
	if tw.IsZero(value) {
		return
	}
	b.add(tw.Bracket(b.prefix, prop, tw.Px(value)))
}

// spacing is px with the optional spacing-token form.
func (b *classBuilder) spacing(prop, value string) {
	if tw.IsZero(value) || !tw.IsNumeric(value) {
		return
	}
	if b.spacingTokens {
		if step := tw.SpacingToken(value); step != "" {
			if strings.HasPrefix(tw.Normalize(value), "-") {
				step = "-" + step
			}
			b.add(tw.Token(b.prefix, prop, step))
			return
		}
	}
	b.px(prop, value)
}

// negatable lists the families with a negative utility form (-rotate-45).
// Negative values in any other family fall back to the bracketed form.
var negatable = map[string]bool{
	tw.FamilyRotate:    true,
	tw.FamilySkew:      true,
	tw.FamilyHueRotate: true,
	tw.FamilyScale:     true,
	tw.FamilyZIndex:    true,
}

// scaled emits a family in its own units: the token when on-scale, otherwise a
// bracketed value produced by arbitrary.
func (b *classBuilder) scaled(prop, family, value string, arbitrary func(n string) string) {
	n := tw.Normalize(value)
	if !tw.IsNumeric(n) {
		return
	}
	if tw.IsToken(family, n) && (!strings.HasPrefix(n, "-") || negatable[family]) {
		b.add(tw.Token(b.prefix, prop, n))
		return
	}
	b.add(tw.Bracket(b.prefix, prop, arbitrary(n)))
}

func deg(n string) string { return n + "deg" }

func (b *classBuilder) position(p state.Position) {
	switch p.Type {
	case "", "static":
	default:
		b.add(b.prefix + p.Type)
	}

	switch z := strings.TrimSpace(p.ZIndex); {
	case z == "", z == "auto", tw.IsZero(z):
	default:
		b.scaled("z", tw.FamilyZIndex, z, func(n string) string { return n })
	}

	b.spacing("left", p.L)
	b.spacing("top", p.T)
	b.spacing("right", p.R)
	b.spacing("bottom", p.B)
}

var sizeKeywords = map[string]string{
	"full":   "full",
	"100%":   "full",
	"screen": "screen",
	"fit":    "fit",
	"min":    "min",
	"max":    "max",
}

// size handles values that may carry their own unit or keyword.
func (b *classBuilder) size(prop, value, neutral string) {
	v := strings.TrimSpace(value)
	if v == "" || v == neutral || (neutral == "0" && tw.IsZero(v)) {
		return
	}
	if kw, ok := sizeKeywords[v]; ok {
		b.add(tw.Token(b.prefix, prop, kw))
		return
	}
	if l := tw.Length(v); l != "" {
		b.add(tw.Bracket(b.prefix, prop, l))
		return
	}
	b.add(tw.Bracket(b.prefix, prop, v))
}

// length emits a bracketed length, keeping rem, em, % and viewport units.
func (b *classBuilder) length(prop, value string) {
	if tw.IsZero(value) {
		return
	}
	b.add(tw.Bracket(b.prefix, prop, tw.Length(value)))
}

var fontWeights = map[string]string{
	"100": "thin",
	"200": "extralight",
	"300": "light",
	"500": "medium",
	"600": "semibold",
	"700": "bold",
	"800": "extrabold",
	"900": "black",
}

var fontFamilies = map[string]bool{"sans": true, "serif": true, "mono": true}

var lineHeights = map[string]bool{"none": true, "tight": true, "snug": true, "relaxed": true, "loose": true}

func (b *classBuilder) typography(t state.Typography) {
	if f := strings.TrimSpace(t.FontFamily); f != "" {
		if fontFamilies[f] {
			b.add(b.prefix + "font-" + f)
		} else {
			b.add(tw.Bracket(b.prefix, "font", f))
		}
	}

	switch w := strings.TrimSpace(t.FontWeight); w {
	case "", "normal", "400":
	default:
		if name, ok := fontWeights[w]; ok {
			b.add(b.prefix + "font-" + name)
		} else if isWeightName(w) {
			b.add(b.prefix + "font-" + w)
		} else if tw.IsNumeric(w) {
			b.add(tw.Bracket(b.prefix, "font", tw.Normalize(w)))
		}
	}

	b.length("text", t.FontSize)
	b.length("tracking", t.LetterSpacing)

	switch lh := strings.TrimSpace(t.LineHeight); {
	case lh == "", lh == "normal":
	case lineHeights[lh]:
		b.add(b.prefix + "leading-" + lh)
	default:
		b.add(tw.Bracket(b.prefix, "leading", lineHeight(lh)))
	}

	switch a := strings.TrimSpace(t.TextAlign); a {
	case "", "left", "start":
	default:
		b.add(b.prefix + "text-" + a)
	}

	b.color("text", t.TextColor)
}

// lineHeight keeps a bare number unitless and renders anything else as a length.
func lineHeight(v string) string {
	num, unit := tw.SplitUnit(v)
	if num != "" && unit == "" {
		return num
	}
	return tw.Length(v)
}

func isWeightName(w string) bool {
	for _, name := range fontWeights {
		if name == w {
			return true
		}
	}
	return false
}

// color emits a bracketed color for CSS color syntax and a token for palette
// names such as "red-500".
func (b *classBuilder) color(prop, value string) {
	v := strings.TrimSpace(value)
	if v == "" {
		return
	}
	if isColorSyntax(v) {
		b.add(tw.Bracket(b.prefix, prop, v))
		return
	}
	b.add(b.prefix + prop + "-" + v)
}

func isColorSyntax(v string) bool {
	return strings.HasPrefix(v, "#") ||
		strings.HasPrefix(v, "rgb") ||
		strings.HasPrefix(v, "hsl") ||
		strings.HasPrefix(v, "oklch") ||
		strings.HasPrefix(v, "var(")
}

func (b *classBuilder) transforms(t state.Transforms) {
	if !tw.IsZero(t.Rotate) {
		b.scaled("rotate", tw.FamilyRotate, t.Rotate, deg)
	}
	if !tw.Equals(t.Scale, 100) && t.Scale != "" {
		b.scaled("scale", tw.FamilyScale, t.Scale, tw.Fraction)
	}
	if tw.IsNumeric(t.TranslateX) {
		b.px("translate-x", t.TranslateX)
	}
	if tw.IsNumeric(t.TranslateY) {
		b.px("translate-y", t.TranslateY)
	}
	if !tw.IsZero(t.SkewX) {
		b.scaled("skew-x", tw.FamilySkew, t.SkewX, deg)
	}
	if !tw.IsZero(t.SkewY) {
		b.scaled("skew-y", tw.FamilySkew, t.SkewY, deg)
	}
}

func (b *classBuilder) effects(e state.Effects) {
	if e.Opacity != "" && !tw.Equals(e.Opacity, 100) {
		b.scaled("opacity", tw.FamilyOpacity, e.Opacity, tw.Fraction)
	}
	if tw.IsNumeric(e.Blur) {
		b.px("blur", e.Blur)
	}
	if tw.IsNumeric(e.BackdropBlur) {
		b.px("backdrop-blur", e.BackdropBlur)
	}
	if !tw.IsZero(e.HueRotate) {
		b.scaled("hue-rotate", tw.FamilyHueRotate, e.HueRotate, deg)
	}
	if e.Saturation != "" && !tw.Equals(e.Saturation, 100) {
		b.scaled("saturate", tw.FamilySaturate, e.Saturation, tw.Fraction)
	}
	if e.Brightness != "" && !tw.Equals(e.Brightness, 100) {
		b.scaled("brightness", tw.FamilyBrightness, e.Brightness, tw.Fraction)
	}
	if e.Contrast != "" && !tw.Equals(e.Contrast, 100) {
		b.scaled("contrast", tw.FamilyContrast, e.Contrast, tw.Fraction)
	}
	b.toggleFilter("grayscale", e.Grayscale)
	b.toggleFilter("invert", e.Invert)
	b.toggleFilter("sepia", e.Sepia)

	switch sh := strings.TrimSpace(e.Shadow); sh {
	case "", "none":
	case "base":
		b.add(b.prefix + "shadow")
	default:
		b.add(b.prefix + "shadow-" + sh)
	}
}

// toggleFilter handles the on/off filters: 100 is the bare utility
// ("grayscale"), other non-zero amounts are bracketed ratios.
func (b *classBuilder) toggleFilter(prop, value string) {
	if tw.IsZero(value) || !tw.IsNumeric(value) {
		return
	}
	if tw.Equals(value, 100) {
		b.add(b.prefix + prop)
		return
	}
	b.add(tw.Bracket(b.prefix, prop, tw.Fraction(value)))
}

func (b *classBuilder) border(br state.Border) {
	if tw.IsNumeric(br.Width) {
		b.px("border", br.Width)
	}
	switch st := strings.TrimSpace(br.Style); st {
	case "", "solid":
	default:
		b.add(b.prefix + "border-" + st)
	}
	b.color("border", br.Color)

	for _, r := range []struct{ prop, value string }{
		{"rounded", br.Radius.All},
		{"rounded-tl", br.Radius.TopLeft},
		{"rounded-tr", br.Radius.TopRight},
		{"rounded-br", br.Radius.BottomRight},
		{"rounded-bl", br.Radius.BottomLeft},
	} {
		if tw.IsNumeric(r.value) {
			b.px(r.prop, r.value)
		}
	}
}
