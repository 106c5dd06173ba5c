// Package export formats an effective StyleState as standalone CSS and HTML
// text for copy-out.
package export

import (
	"strconv"
	"strings"

	"github.com/agiangrant/inspector/render"
	"github.com/agiangrant/inspector/state"
	"github.com/agiangrant/inspector/tw"
)

// DefaultSelector is used when the element has no id.
const DefaultSelector = ".component"

// Options configure a Formatter.
type Options struct {
	// Selector replaces DefaultSelector for elements without an id.
	Selector string
	// PerspectiveMultiplier matches render.Options; zero means the default.
	PerspectiveMultiplier float64
}

// Formatter renders CSS and HTML text.
type Formatter struct {
	opts Options
}

// NewFormatter returns a formatter using opts.
func NewFormatter(opts Options) *Formatter {
	if opts.Selector == "" {
		opts.Selector = DefaultSelector
	}
	if opts.PerspectiveMultiplier == 0 {
		opts.PerspectiveMultiplier = render.DefaultPerspectiveMultiplier
	}
	return &Formatter{opts: opts}
}

var defaultFormatter = NewFormatter(Options{})

// CSS renders s as one rule with default options.
func CSS(s state.StyleState) string {
	return defaultFormatter.CSS(s)
}

// Selector returns the rule selector for s.
func (f *Formatter) Selector(s state.StyleState) string {
	if id := strings.TrimSpace(s.ElementID); id != "" {
		return "#" + id
	}
	return f.opts.Selector
}

// CSS renders s as a single rule: one declaration per non-neutral field,
// transforms combined into one transform, filters into filter, backdrop blur
// into backdrop-filter. Shadow is emitted as a comment naming the utility.
// The user's inline CSS is appended as written.
func (f *Formatter) CSS(s state.StyleState) string {
	var r rule

	r.px("padding-left", s.Padding.L)
	r.px("padding-top", s.Padding.T)
	r.px("padding-right", s.Padding.R)
	r.px("padding-bottom", s.Padding.B)
	r.px("margin-inline", s.Margin.X)
	r.px("margin-block", s.Margin.Y)

	if t := strings.TrimSpace(s.Position.Type); t != "" && t != "static" {
		r.add("position", t)
	}
	if z := strings.TrimSpace(s.Position.ZIndex); z != "" && z != "auto" && !tw.IsZero(z) && tw.IsNumeric(z) {
		r.add("z-index", tw.Normalize(z))
	}
	r.px("left", s.Position.L)
	r.px("top", s.Position.T)
	r.px("right", s.Position.R)
	r.px("bottom", s.Position.B)

	r.size("width", s.Size.Width, "auto", "100vw")
	r.size("height", s.Size.Height, "auto", "100vh")
	r.size("max-width", s.Size.MaxWidth, "none", "100vw")
	r.size("max-height", s.Size.MaxHeight, "none", "100vh")
	r.size("min-width", s.Size.MinWidth, "0", "100vw")
	r.size("min-height", s.Size.MinHeight, "0", "100vh")

	f.typography(&r, s.Typography)
	f.transform(&r, s.Transforms, s.Transforms3D)

	if o := s.Effects.Opacity; o != "" && !tw.Equals(o, 100) && tw.IsNumeric(o) {
		r.add("opacity", tw.Ratio(o))
	}
	r.add("filter", Filter(s.Effects))
	if tw.IsNumeric(s.Effects.BackdropBlur) && !tw.IsZero(s.Effects.BackdropBlur) {
		r.add("backdrop-filter", "blur("+tw.Px(s.Effects.BackdropBlur)+")")
	}
	if sh := strings.TrimSpace(s.Effects.Shadow); sh != "" && sh != "none" {
		name := "shadow"
		if sh != "base" {
			name += "-" + sh
		}
		r.comment("box-shadow: " + name)
	}

	r.px("border-width", s.Border.Width)
	if st := strings.TrimSpace(s.Border.Style); st != "" && st != "solid" {
		r.add("border-style", st)
	}
	r.add("border-color", strings.TrimSpace(s.Border.Color))
	r.px("border-radius", s.Border.Radius.All)
	r.px("border-top-left-radius", s.Border.Radius.TopLeft)
	r.px("border-top-right-radius", s.Border.Radius.TopRight)
	r.px("border-bottom-right-radius", s.Border.Radius.BottomRight)
	r.px("border-bottom-left-radius", s.Border.Radius.BottomLeft)

	r.add("background-color", strings.TrimSpace(s.Appearance.BackgroundColor))
	if img := strings.TrimSpace(s.Appearance.BackgroundImage); img != "" {
		r.add("background-image", render.BackgroundImage(img))
	}
	if bm := strings.TrimSpace(s.Appearance.BlendMode); bm != "" && bm != "normal" {
		r.add("mix-blend-mode", bm)
	}

	for _, d := range render.ParseInlineCSS(s.InlineCSS) {
		r.add(d.Property, d.Value)
	}

	return r.String(f.Selector(s))
}

var fontStacks = map[string]string{
	"sans":  `ui-sans-serif, system-ui, sans-serif`,
	"serif": `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`,
	"mono":  `ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace`,
}

var weightNumbers = map[string]string{
	"thin":       "100",
	"extralight": "200",
	"light":      "300",
	"medium":     "500",
	"semibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"black":      "900",
}

var leadingValues = map[string]string{
	"none":    "1",
	"tight":   "1.25",
	"snug":    "1.375",
	"relaxed": "1.625",
	"loose":   "2",
}

func (f *Formatter) typography(r *rule, t state.Typography) {
	if fam := strings.TrimSpace(t.FontFamily); fam != "" {
		if stack, ok := fontStacks[fam]; ok {
			r.add("font-family", stack)
		} else if strings.ContainsAny(fam, " ") && !strings.ContainsAny(fam, `,"'`) {
			r.add("font-family", strconv.Quote(fam))
		} else {
			r.add("font-family", fam)
		}
	}
	switch w := strings.TrimSpace(t.FontWeight); w {
	case "", "normal", "400":
	default:
		if n, ok := weightNumbers[w]; ok {
			r.add("font-weight", n)
		} else if tw.IsNumeric(w) {
			r.add("font-weight", tw.Normalize(w))
		}
	}
	r.length("font-size", t.FontSize)
	r.length("letter-spacing", t.LetterSpacing)
	switch lh := strings.TrimSpace(t.LineHeight); {
	case lh == "", lh == "normal":
	case leadingValues[lh] != "":
		r.add("line-height", leadingValues[lh])
	default:
		if num, unit := tw.SplitUnit(lh); num != "" && unit == "" {
			r.add("line-height", num)
		} else {
			r.add("line-height", tw.Length(lh))
		}
	}
	if a := strings.TrimSpace(t.TextAlign); a != "" && a != "left" && a != "start" {
		r.add("text-align", a)
	}
	r.add("color", strings.TrimSpace(t.TextColor))
}

// transform folds the 2D and 3D groups into one transform and emits
// perspective separately.
func (f *Formatter) transform(r *rule, t state.Transforms, t3 state.Transforms3D) {
	var parts []string
	fn := func(name, value, unit string) {
		if tw.IsZero(value) || !tw.IsNumeric(value) {
			return
		}
		parts = append(parts, name+"("+tw.Normalize(value)+unit+")")
	}
	fn("translateX", t.TranslateX, "px")
	fn("translateY", t.TranslateY, "px")
	fn("rotate", t.Rotate, "deg")
	fn("skewX", t.SkewX, "deg")
	fn("skewY", t.SkewY, "deg")
	if t.Scale != "" && !tw.Equals(t.Scale, 100) && tw.IsNumeric(t.Scale) {
		parts = append(parts, "scale("+tw.Ratio(t.Scale)+")")
	}
	if rot := render.Transform3D(t3); rot != "" {
		parts = append(parts, rot)
	}
	r.add("transform", strings.Join(parts, " "))

	if p := t3.Perspective; !tw.IsZero(p) && tw.IsNumeric(p) {
		n, _ := strconv.ParseFloat(tw.Normalize(p), 64)
		r.add("perspective", tw.FormatNumber(n*f.opts.PerspectiveMultiplier)+"px")
	}
}

// Filter combines the filter effects into one CSS filter value.
func Filter(e state.Effects) string {
	var parts []string
	if tw.IsNumeric(e.Blur) && !tw.IsZero(e.Blur) {
		parts = append(parts, "blur("+tw.Px(e.Blur)+")")
	}
	if tw.IsNumeric(e.HueRotate) && !tw.IsZero(e.HueRotate) {
		parts = append(parts, "hue-rotate("+tw.Normalize(e.HueRotate)+"deg)")
	}
	for _, f := range []struct {
		name, value string
		neutral     float64
	}{
		{"saturate", e.Saturation, 100},
		{"brightness", e.Brightness, 100},
		{"contrast", e.Contrast, 100},
		{"grayscale", e.Grayscale, 0},
		{"invert", e.Invert, 0},
		{"sepia", e.Sepia, 0},
	} {
		if f.value == "" || !tw.IsNumeric(f.value) || tw.Equals(f.value, f.neutral) {
			continue
		}
		parts = append(parts, f.name+"("+tw.Ratio(f.value)+")")
	}
	return strings.Join(parts, " ")
}

var sizeValues = map[string]string{
	"full": "100%",
	"fit":  "fit-content",
	"min":  "min-content",
	"max":  "max-content",
}

type rule struct {
	lines []string
}

func (r *rule) add(property, value string) {
	if value == "" {
		return
	}
	r.lines = append(r.lines, property+": "+value+";")
}

func (r *rule) comment(text string) {
	r.lines = append(r.lines, "/* "+text+" */")
}

func (r *rule) px(property, value string) {
	if tw.IsZero(value) {
		return
	}
	r.add(property, tw.Px(value))
}

func (r *rule) size(property, value, neutral, screen string) {
	v := strings.TrimSpace(value)
	if v == "" || v == neutral || (neutral == "0" && tw.IsZero(v)) {
		return
	}
	if v == "screen" {
		r.add(property, screen)
		return
	}
	if kw, ok := sizeValues[v]; ok {
		r.add(property, kw)
		return
	}
	if l := tw.Length(v); l != "" {
		r.add(property, l)
		return
	}
	r.add(property, v)
}

func (r *rule) length(property, value string) {
	if tw.IsZero(value) {
		return
	}
	r.add(property, tw.Length(value))
}

func (r *rule) String(selector string) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, l := range r.lines {
		b.WriteString("  ")
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}
