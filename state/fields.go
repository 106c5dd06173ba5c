package state

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned for a path that is not part of the schema.
var ErrUnknownField = errors.New("state: unknown field")

// field binds a dotted path to the matching leaf in both schemas.
type field struct {
	path    string
	full    func(*StyleState) *string
	partial func(*PartialState) **string
}

// fieldTable lists every scalar leaf in schema order. TailwindClasses is a
// list and is handled by SetClasses.
var fieldTable = []field{
	{"padding.l", func(s *StyleState) *string { return &s.Padding.L }, func(p *PartialState) **string { return &p.Padding.L }},
	{"padding.t", func(s *StyleState) *string { return &s.Padding.T }, func(p *PartialState) **string { return &p.Padding.T }},
	{"padding.r", func(s *StyleState) *string { return &s.Padding.R }, func(p *PartialState) **string { return &p.Padding.R }},
	{"padding.b", func(s *StyleState) *string { return &s.Padding.B }, func(p *PartialState) **string { return &p.Padding.B }},

	{"margin.x", func(s *StyleState) *string { return &s.Margin.X }, func(p *PartialState) **string { return &p.Margin.X }},
	{"margin.y", func(s *StyleState) *string { return &s.Margin.Y }, func(p *PartialState) **string { return &p.Margin.Y }},

	{"position.type", func(s *StyleState) *string { return &s.Position.Type }, func(p *PartialState) **string { return &p.Position.Type }},
	{"position.zIndex", func(s *StyleState) *string { return &s.Position.ZIndex }, func(p *PartialState) **string { return &p.Position.ZIndex }},
	{"position.l", func(s *StyleState) *string { return &s.Position.L }, func(p *PartialState) **string { return &p.Position.L }},
	{"position.t", func(s *StyleState) *string { return &s.Position.T }, func(p *PartialState) **string { return &p.Position.T }},
	{"position.r", func(s *StyleState) *string { return &s.Position.R }, func(p *PartialState) **string { return &p.Position.R }},
	{"position.b", func(s *StyleState) *string { return &s.Position.B }, func(p *PartialState) **string { return &p.Position.B }},

	{"size.width", func(s *StyleState) *string { return &s.Size.Width }, func(p *PartialState) **string { return &p.Size.Width }},
	{"size.height", func(s *StyleState) *string { return &s.Size.Height }, func(p *PartialState) **string { return &p.Size.Height }},
	{"size.maxWidth", func(s *StyleState) *string { return &s.Size.MaxWidth }, func(p *PartialState) **string { return &p.Size.MaxWidth }},
	{"size.maxHeight", func(s *StyleState) *string { return &s.Size.MaxHeight }, func(p *PartialState) **string { return &p.Size.MaxHeight }},
	{"size.minWidth", func(s *StyleState) *string { return &s.Size.MinWidth }, func(p *PartialState) **string { return &p.Size.MinWidth }},
	{"size.minHeight", func(s *StyleState) *string { return &s.Size.MinHeight }, func(p *PartialState) **string { return &p.Size.MinHeight }},

	{"typography.fontFamily", func(s *StyleState) *string { return &s.Typography.FontFamily }, func(p *PartialState) **string { return &p.Typography.FontFamily }},
	{"typography.fontWeight", func(s *StyleState) *string { return &s.Typography.FontWeight }, func(p *PartialState) **string { return &p.Typography.FontWeight }},
	{"typography.fontSize", func(s *StyleState) *string { return &s.Typography.FontSize }, func(p *PartialState) **string { return &p.Typography.FontSize }},
	{"typography.letterSpacing", func(s *StyleState) *string { return &s.Typography.LetterSpacing }, func(p *PartialState) **string { return &p.Typography.LetterSpacing }},
	{"typography.lineHeight", func(s *StyleState) *string { return &s.Typography.LineHeight }, func(p *PartialState) **string { return &p.Typography.LineHeight }},
	{"typography.textAlign", func(s *StyleState) *string { return &s.Typography.TextAlign }, func(p *PartialState) **string { return &p.Typography.TextAlign }},
	{"typography.textColor", func(s *StyleState) *string { return &s.Typography.TextColor }, func(p *PartialState) **string { return &p.Typography.TextColor }},

	{"transforms.rotate", func(s *StyleState) *string { return &s.Transforms.Rotate }, func(p *PartialState) **string { return &p.Transforms.Rotate }},
	{"transforms.scale", func(s *StyleState) *string { return &s.Transforms.Scale }, func(p *PartialState) **string { return &p.Transforms.Scale }},
	{"transforms.translateX", func(s *StyleState) *string { return &s.Transforms.TranslateX }, func(p *PartialState) **string { return &p.Transforms.TranslateX }},
	{"transforms.translateY", func(s *StyleState) *string { return &s.Transforms.TranslateY }, func(p *PartialState) **string { return &p.Transforms.TranslateY }},
	{"transforms.skewX", func(s *StyleState) *string { return &s.Transforms.SkewX }, func(p *PartialState) **string { return &p.Transforms.SkewX }},
	{"transforms.skewY", func(s *StyleState) *string { return &s.Transforms.SkewY }, func(p *PartialState) **string { return &p.Transforms.SkewY }},

	{"transforms3D.rotateX", func(s *StyleState) *string { return &s.Transforms3D.RotateX }, func(p *PartialState) **string { return &p.Transforms3D.RotateX }},
	{"transforms3D.rotateY", func(s *StyleState) *string { return &s.Transforms3D.RotateY }, func(p *PartialState) **string { return &p.Transforms3D.RotateY }},
	{"transforms3D.rotateZ", func(s *StyleState) *string { return &s.Transforms3D.RotateZ }, func(p *PartialState) **string { return &p.Transforms3D.RotateZ }},
	{"transforms3D.perspective", func(s *StyleState) *string { return &s.Transforms3D.Perspective }, func(p *PartialState) **string { return &p.Transforms3D.Perspective }},

	{"effects.opacity", func(s *StyleState) *string { return &s.Effects.Opacity }, func(p *PartialState) **string { return &p.Effects.Opacity }},
	{"effects.blur", func(s *StyleState) *string { return &s.Effects.Blur }, func(p *PartialState) **string { return &p.Effects.Blur }},
	{"effects.backdropBlur", func(s *StyleState) *string { return &s.Effects.BackdropBlur }, func(p *PartialState) **string { return &p.Effects.BackdropBlur }},
	{"effects.hueRotate", func(s *StyleState) *string { return &s.Effects.HueRotate }, func(p *PartialState) **string { return &p.Effects.HueRotate }},
	{"effects.saturation", func(s *StyleState) *string { return &s.Effects.Saturation }, func(p *PartialState) **string { return &p.Effects.Saturation }},
	{"effects.brightness", func(s *StyleState) *string { return &s.Effects.Brightness }, func(p *PartialState) **string { return &p.Effects.Brightness }},
	{"effects.contrast", func(s *StyleState) *string { return &s.Effects.Contrast }, func(p *PartialState) **string { return &p.Effects.Contrast }},
	{"effects.grayscale", func(s *StyleState) *string { return &s.Effects.Grayscale }, func(p *PartialState) **string { return &p.Effects.Grayscale }},
	{"effects.invert", func(s *StyleState) *string { return &s.Effects.Invert }, func(p *PartialState) **string { return &p.Effects.Invert }},
	{"effects.sepia", func(s *StyleState) *string { return &s.Effects.Sepia }, func(p *PartialState) **string { return &p.Effects.Sepia }},
	{"effects.shadow", func(s *StyleState) *string { return &s.Effects.Shadow }, func(p *PartialState) **string { return &p.Effects.Shadow }},

	{"border.width", func(s *StyleState) *string { return &s.Border.Width }, func(p *PartialState) **string { return &p.Border.Width }},
	{"border.style", func(s *StyleState) *string { return &s.Border.Style }, func(p *PartialState) **string { return &p.Border.Style }},
	{"border.color", func(s *StyleState) *string { return &s.Border.Color }, func(p *PartialState) **string { return &p.Border.Color }},
	{"border.radius.all", func(s *StyleState) *string { return &s.Border.Radius.All }, func(p *PartialState) **string { return &p.Border.Radius.All }},
	{"border.radius.topLeft", func(s *StyleState) *string { return &s.Border.Radius.TopLeft }, func(p *PartialState) **string { return &p.Border.Radius.TopLeft }},
	{"border.radius.topRight", func(s *StyleState) *string { return &s.Border.Radius.TopRight }, func(p *PartialState) **string { return &p.Border.Radius.TopRight }},
	{"border.radius.bottomRight", func(s *StyleState) *string { return &s.Border.Radius.BottomRight }, func(p *PartialState) **string { return &p.Border.Radius.BottomRight }},
	{"border.radius.bottomLeft", func(s *StyleState) *string { return &s.Border.Radius.BottomLeft }, func(p *PartialState) **string { return &p.Border.Radius.BottomLeft }},

	{"appearance.backgroundColor", func(s *StyleState) *string { return &s.Appearance.BackgroundColor }, func(p *PartialState) **string { return &p.Appearance.BackgroundColor }},
	{"appearance.backgroundImage", func(s *StyleState) *string { return &s.Appearance.BackgroundImage }, func(p *PartialState) **string { return &p.Appearance.BackgroundImage }},
	{"appearance.blendMode", func(s *StyleState) *string { return &s.Appearance.BlendMode }, func(p *PartialState) **string { return &p.Appearance.BlendMode }},

	{"tag", func(s *StyleState) *string { return &s.Tag }, func(p *PartialState) **string { return &p.Tag }},
	{"elementId", func(s *StyleState) *string { return &s.ElementID }, func(p *PartialState) **string { return &p.ElementID }},
	{"textContent", func(s *StyleState) *string { return &s.TextContent }, func(p *PartialState) **string { return &p.TextContent }},
	{"link", func(s *StyleState) *string { return &s.Link }, func(p *PartialState) **string { return &p.Link }},
	{"inlineCSS", func(s *StyleState) *string { return &s.InlineCSS }, func(p *PartialState) **string { return &p.InlineCSS }},
}

var fieldIndex = func() map[string]int {
	m := make(map[string]int, len(fieldTable))
	for i, f := range fieldTable {
		m[strings.ToLower(f.path)] = i
	}
	return m
}()

// lookup resolves a path case-insensitively: "padding.L" and "padding.l" are
// the same leaf.
func lookup(path string) (field, error) {
	i, ok := fieldIndex[strings.ToLower(strings.TrimSpace(path))]
	if !ok {
		return field{}, fmt.Errorf("%w: %q", ErrUnknownField, path)
	}
	return fieldTable[i], nil
}

// Paths returns every settable scalar path in schema order.
func Paths() []string {
	out := make([]string, len(fieldTable))
	for i, f := range fieldTable {
		out[i] = f.path
	}
	return out
}

// Get returns the value at path.
func (s StyleState) Get(path string) (string, error) {
	f, err := lookup(path)
	if err != nil {
		return "", err
	}
	return *f.full(&s), nil
}

// With returns a copy of s with the leaf at path replaced.
func (s StyleState) With(path, value string) (StyleState, error) {
	f, err := lookup(path)
	if err != nil {
		return s, err
	}
	out := s.Clone()
	*f.full(&out) = value
	return out, nil
}

// Get returns the value set at path and whether the overlay sets it.
func (p PartialState) Get(path string) (string, bool, error) {
	f, err := lookup(path)
	if err != nil {
		return "", false, err
	}
	v := *f.partial(&p)
	if v == nil {
		return "", false, nil
	}
	return *v, true, nil
}

// With returns a copy of p with the leaf at path set. Only the addressed
// group changes.
func (p PartialState) With(path, value string) (PartialState, error) {
	f, err := lookup(path)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	*f.partial(&out) = ptr(value)
	return out, nil
}

// Without returns a copy of p with the leaf at path unset.
func (p PartialState) Without(path string) (PartialState, error) {
	f, err := lookup(path)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	*f.partial(&out) = nil
	return out, nil
}

// SetPaths lists the paths the overlay sets, in schema order.
func (p PartialState) SetPaths() []string {
	var out []string
	for _, f := range fieldTable {
		if *f.partial(&p) != nil {
			out = append(out, f.path)
		}
	}
	if p.TailwindClasses != nil {
		out = append(out, "tailwindClasses")
	}
	return out
}
