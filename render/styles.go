package render

import (
	"strconv"
	"strings"

	"github.com/agiangrant/inspector/state"
	"github.com/agiangrant/inspector/tw"
)

// Style is an ordered mapping of camelCase style properties to values.
// Setting an existing property replaces its value in place.
type Style struct {
	decls []tw.Declaration
	index map[string]int
}

// Set assigns value to property, keeping the original position if the
// property is already present.
func (s *Style) Set(property, value string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[property]; ok {
		s.decls[i].Value = value
		return
	}
	s.index[property] = len(s.decls)
	s.decls = append(s.decls, tw.Declaration{Property: property, Value: value})
}

// Get returns the value for property.
func (s Style) Get(property string) (string, bool) {
	i, ok := s.index[property]
	if !ok {
		return "", false
	}
	return s.decls[i].Value, true
}

// Len returns the number of properties.
func (s Style) Len() int { return len(s.decls) }

// Declarations returns the properties in insertion order.
func (s Style) Declarations() []tw.Declaration {
	return append([]tw.Declaration(nil), s.decls...)
}

// Styles builds the inline style mapping with default options.
func Styles(s state.StyleState) Style {
	return defaultGenerator.Styles(s)
}

// Styles builds the inline style mapping: colors, background, blend mode, the
// 3D transform and perspective, then the user's inline CSS declarations.
// Neutral values contribute nothing.
func (g *Generator) Styles(s state.StyleState) Style {
	var out Style

	if v := strings.TrimSpace(s.Typography.TextColor); v != "" {
		out.Set("color", v)
	}
	if v := strings.TrimSpace(s.Appearance.BackgroundColor); v != "" {
		out.Set("backgroundColor", v)
	}
	if v := strings.TrimSpace(s.Border.Color); v != "" {
		out.Set("borderColor", v)
	}
	if v := strings.TrimSpace(s.Appearance.BackgroundImage); v != "" {
		out.Set("backgroundImage", BackgroundImage(v))
	}
	if v := strings.TrimSpace(s.Appearance.BlendMode); v != "" && v != "normal" {
		out.Set("mixBlendMode", v)
	}
	if t := Transform3D(s.Transforms3D); t != "" {
		out.Set("transform", t)
	}
	if p := s.Transforms3D.Perspective; !tw.IsZero(p) && tw.IsNumeric(p) {
		n, _ := strconv.ParseFloat(tw.Normalize(p), 64)
		out.Set("perspective", tw.FormatNumber(n*g.opts.PerspectiveMultiplier)+"px")
	}

	for _, d := range ParseInlineCSS(s.InlineCSS) {
		out.Set(CamelCase(d.Property), d.Value)
	}
	return out
}

// BackgroundImage wraps a bare URL as url("..."). Values that are already CSS
// image functions pass through.
func BackgroundImage(v string) string {
	if strings.HasPrefix(v, "url(") || strings.Contains(v, "gradient(") || strings.HasPrefix(v, "image-set(") || v == "none" {
		return v
	}
	return `url("` + strings.ReplaceAll(v, `"`, `\"`) + `")`
}

// Transform3D joins the non-zero 3D rotations in X, Y, Z order.
func Transform3D(t state.Transforms3D) string {
	var parts []string
	for _, r := range []struct{ fn, value string }{
		{"rotateX", t.RotateX},
		{"rotateY", t.RotateY},
		{"rotateZ", t.RotateZ},
	} {
		if tw.IsZero(r.value) || !tw.IsNumeric(r.value) {
			continue
		}
		parts = append(parts, r.fn+"("+tw.Normalize(r.value)+"deg)")
	}
	return strings.Join(parts, " ")
}

// ParseInlineCSS splits "a: b; c: d" into declarations with hyphenated names
// as written. Entries without a colon or with an empty name are dropped.
func ParseInlineCSS(css string) []tw.Declaration {
	var out []tw.Declaration
	for _, line := range strings.Split(css, ";") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, tw.Declaration{Property: name, Value: strings.TrimSpace(value)})
	}
	return out
}

// CamelCase converts a CSS property name to its style-object key:
// "background-color" → "backgroundColor", "-webkit-line-clamp" → "WebkitLineClamp",
// "-ms-transform" → "msTransform". Custom properties ("--gap") are kept verbatim.
func CamelCase(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	name = strings.ToLower(name)
	if strings.HasPrefix(name, "-ms-") {
		name = name[1:]
	}
	parts := strings.Split(name, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	return b.String()
}

// Hyphenate converts a style-object key back to a CSS property name; it is the
// inverse of CamelCase.
func Hyphenate(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	var b strings.Builder
	if strings.HasPrefix(key, "ms") && len(key) > 2 && isUpper(key[2]) {
		b.WriteByte('-')
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isUpper(c) {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
