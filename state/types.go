// Package state holds the inspector's style model: the flattened StyleState
// for one breakpoint, the PartialState overlays registered per breakpoint, and
// the immutable Snapshot/Store pair that owns them.
package state

import "slices"

// Padding values are unit-less pixel counts.
type Padding struct {
	L string `yaml:"l,omitempty" toml:"l,omitempty" json:"l,omitempty"`
	T string `yaml:"t,omitempty" toml:"t,omitempty" json:"t,omitempty"`
	R string `yaml:"r,omitempty" toml:"r,omitempty" json:"r,omitempty"`
	B string `yaml:"b,omitempty" toml:"b,omitempty" json:"b,omitempty"`
}

// Margin values are unit-less pixel counts and may be negative.
type Margin struct {
	X string `yaml:"x,omitempty" toml:"x,omitempty" json:"x,omitempty"`
	Y string `yaml:"y,omitempty" toml:"y,omitempty" json:"y,omitempty"`
}

type Position struct {
	Type   string `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty" validate:"omitempty,oneof=static relative absolute fixed sticky"`
	ZIndex string `yaml:"zIndex,omitempty" toml:"zIndex,omitempty" json:"zIndex,omitempty"`
	L      string `yaml:"l,omitempty" toml:"l,omitempty" json:"l,omitempty"`
	T      string `yaml:"t,omitempty" toml:"t,omitempty" json:"t,omitempty"`
	R      string `yaml:"r,omitempty" toml:"r,omitempty" json:"r,omitempty"`
	B      string `yaml:"b,omitempty" toml:"b,omitempty" json:"b,omitempty"`
}

// Size values keep their unit or keyword ("50%", "2rem", "auto", "full");
// a bare number means pixels.
type Size struct {
	Width     string `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Height    string `yaml:"height,omitempty" toml:"height,omitempty" json:"height,omitempty"`
	MaxWidth  string `yaml:"maxWidth,omitempty" toml:"maxWidth,omitempty" json:"maxWidth,omitempty"`
	MaxHeight string `yaml:"maxHeight,omitempty" toml:"maxHeight,omitempty" json:"maxHeight,omitempty"`
	MinWidth  string `yaml:"minWidth,omitempty" toml:"minWidth,omitempty" json:"minWidth,omitempty"`
	MinHeight string `yaml:"minHeight,omitempty" toml:"minHeight,omitempty" json:"minHeight,omitempty"`
}

// Typography sizes: FontSize and LetterSpacing are pixels when bare and may
// carry a CSS length unit (rem, em, %, viewport units); any other suffix is
// replaced by px. A bare LineHeight is a unitless multiplier.
type Typography struct {
	FontFamily    string `yaml:"fontFamily,omitempty" toml:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	FontWeight    string `yaml:"fontWeight,omitempty" toml:"fontWeight,omitempty" json:"fontWeight,omitempty"`
	FontSize      string `yaml:"fontSize,omitempty" toml:"fontSize,omitempty" json:"fontSize,omitempty"`
	LetterSpacing string `yaml:"letterSpacing,omitempty" toml:"letterSpacing,omitempty" json:"letterSpacing,omitempty"`
	LineHeight    string `yaml:"lineHeight,omitempty" toml:"lineHeight,omitempty" json:"lineHeight,omitempty"`
	TextAlign     string `yaml:"textAlign,omitempty" toml:"textAlign,omitempty" json:"textAlign,omitempty" validate:"omitempty,oneof=left center right justify start end"`
	TextColor     string `yaml:"textColor,omitempty" toml:"textColor,omitempty" json:"textColor,omitempty"`
}

// Transforms are 2D. Rotate and skew are degrees, scale a whole percentage,
// translate unit-less pixels.
type Transforms struct {
	Rotate     string `yaml:"rotate,omitempty" toml:"rotate,omitempty" json:"rotate,omitempty"`
	Scale      string `yaml:"scale,omitempty" toml:"scale,omitempty" json:"scale,omitempty"`
	TranslateX string `yaml:"translateX,omitempty" toml:"translateX,omitempty" json:"translateX,omitempty"`
	TranslateY string `yaml:"translateY,omitempty" toml:"translateY,omitempty" json:"translateY,omitempty"`
	SkewX      string `yaml:"skewX,omitempty" toml:"skewX,omitempty" json:"skewX,omitempty"`
	SkewY      string `yaml:"skewY,omitempty" toml:"skewY,omitempty" json:"skewY,omitempty"`
}

// Transforms3D rotations are degrees; Perspective is scaled by the style
// generator's multiplier.
type Transforms3D struct {
	RotateX     string `yaml:"rotateX,omitempty" toml:"rotateX,omitempty" json:"rotateX,omitempty"`
	RotateY     string `yaml:"rotateY,omitempty" toml:"rotateY,omitempty" json:"rotateY,omitempty"`
	RotateZ     string `yaml:"rotateZ,omitempty" toml:"rotateZ,omitempty" json:"rotateZ,omitempty"`
	Perspective string `yaml:"perspective,omitempty" toml:"perspective,omitempty" json:"perspective,omitempty"`
}

// Effects: Opacity, Saturation, Brightness, Contrast, Grayscale, Invert and
// Sepia are whole percentages; Blur and BackdropBlur pixels; HueRotate degrees.
// Shadow is a utility size name (sm, md, lg, ...).
type Effects struct {
	Opacity      string `yaml:"opacity,omitempty" toml:"opacity,omitempty" json:"opacity,omitempty"`
	Blur         string `yaml:"blur,omitempty" toml:"blur,omitempty" json:"blur,omitempty"`
	BackdropBlur string `yaml:"backdropBlur,omitempty" toml:"backdropBlur,omitempty" json:"backdropBlur,omitempty"`
	HueRotate    string `yaml:"hueRotate,omitempty" toml:"hueRotate,omitempty" json:"hueRotate,omitempty"`
	Saturation   string `yaml:"saturation,omitempty" toml:"saturation,omitempty" json:"saturation,omitempty"`
	Brightness   string `yaml:"brightness,omitempty" toml:"brightness,omitempty" json:"brightness,omitempty"`
	Contrast     string `yaml:"contrast,omitempty" toml:"contrast,omitempty" json:"contrast,omitempty"`
	Grayscale    string `yaml:"grayscale,omitempty" toml:"grayscale,omitempty" json:"grayscale,omitempty"`
	Invert       string `yaml:"invert,omitempty" toml:"invert,omitempty" json:"invert,omitempty"`
	Sepia        string `yaml:"sepia,omitempty" toml:"sepia,omitempty" json:"sepia,omitempty"`
	Shadow       string `yaml:"shadow,omitempty" toml:"shadow,omitempty" json:"shadow,omitempty" validate:"omitempty,oneof=none sm base md lg xl 2xl inner"`
}

type Radius struct {
	All         string `yaml:"all,omitempty" toml:"all,omitempty" json:"all,omitempty"`
	TopLeft     string `yaml:"topLeft,omitempty" toml:"topLeft,omitempty" json:"topLeft,omitempty"`
	TopRight    string `yaml:"topRight,omitempty" toml:"topRight,omitempty" json:"topRight,omitempty"`
	BottomRight string `yaml:"bottomRight,omitempty" toml:"bottomRight,omitempty" json:"bottomRight,omitempty"`
	BottomLeft  string `yaml:"bottomLeft,omitempty" toml:"bottomLeft,omitempty" json:"bottomLeft,omitempty"`
}

type Border struct {
	Width  string `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Style  string `yaml:"style,omitempty" toml:"style,omitempty" json:"style,omitempty" validate:"omitempty,oneof=solid dashed dotted double hidden none groove ridge inset outset"`
	Color  string `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	Radius Radius `yaml:"radius,omitempty" toml:"radius,omitempty" json:"radius,omitempty"`
}

type Appearance struct {
	BackgroundColor string `yaml:"backgroundColor,omitempty" toml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	BackgroundImage string `yaml:"backgroundImage,omitempty" toml:"backgroundImage,omitempty" json:"backgroundImage,omitempty"`
	BlendMode       string `yaml:"blendMode,omitempty" toml:"blendMode,omitempty" json:"blendMode,omitempty" validate:"omitempty,blend_mode"`
}

// StyleState is the effective, flattened state of the preview element for one breakpoint.
type StyleState struct {
	Padding      Padding      `yaml:"padding,omitempty" toml:"padding,omitempty" json:"padding,omitempty"`
	Margin       Margin       `yaml:"margin,omitempty" toml:"margin,omitempty" json:"margin,omitempty"`
	Position     Position     `yaml:"position,omitempty" toml:"position,omitempty" json:"position,omitempty"`
	Size         Size         `yaml:"size,omitempty" toml:"size,omitempty" json:"size,omitempty"`
	Typography   Typography   `yaml:"typography,omitempty" toml:"typography,omitempty" json:"typography,omitempty"`
	Transforms   Transforms   `yaml:"transforms,omitempty" toml:"transforms,omitempty" json:"transforms,omitempty"`
	Transforms3D Transforms3D `yaml:"transforms3D,omitempty" toml:"transforms3D,omitempty" json:"transforms3D,omitempty"`
	Effects      Effects      `yaml:"effects,omitempty" toml:"effects,omitempty" json:"effects,omitempty"`
	Border       Border       `yaml:"border,omitempty" toml:"border,omitempty" json:"border,omitempty"`
	Appearance   Appearance   `yaml:"appearance,omitempty" toml:"appearance,omitempty" json:"appearance,omitempty"`

	Tag             string   `yaml:"tag,omitempty" toml:"tag,omitempty" json:"tag,omitempty" validate:"omitempty,html_tag"`
	ElementID       string   `yaml:"elementId,omitempty" toml:"elementId,omitempty" json:"elementId,omitempty" validate:"omitempty,element_id"`
	TextContent     string   `yaml:"textContent,omitempty" toml:"textContent,omitempty" json:"textContent,omitempty"`
	Link            string   `yaml:"link,omitempty" toml:"link,omitempty" json:"link,omitempty"`
	InlineCSS       string   `yaml:"inlineCSS,omitempty" toml:"inlineCSS,omitempty" json:"inlineCSS,omitempty"`
	TailwindClasses []string `yaml:"tailwindClasses,omitempty" toml:"tailwindClasses,omitempty" json:"tailwindClasses,omitempty"`
}

// Default returns the neutral state: every field holds a value that produces
// no class, style or CSS declaration.
func Default() StyleState {
	return StyleState{
		Position:   Position{Type: "static"},
		Typography: Typography{FontWeight: "400", TextAlign: "left"},
		Transforms: Transforms{Scale: "100"},
		Effects: Effects{
			Opacity:    "100",
			Saturation: "100",
			Brightness: "100",
			Contrast:   "100",
			Shadow:     "none",
		},
		Border:     Border{Style: "solid"},
		Appearance: Appearance{BlendMode: "normal"},
		Tag:        "div",
	}
}

// Equal reports whether two states hold the same values, field by field.
func (s StyleState) Equal(o StyleState) bool {
	return s.Padding == o.Padding &&
		s.Margin == o.Margin &&
		s.Position == o.Position &&
		s.Size == o.Size &&
		s.Typography == o.Typography &&
		s.Transforms == o.Transforms &&
		s.Transforms3D == o.Transforms3D &&
		s.Effects == o.Effects &&
		s.Border == o.Border &&
		s.Appearance == o.Appearance &&
		s.Tag == o.Tag &&
		s.ElementID == o.ElementID &&
		s.TextContent == o.TextContent &&
		s.Link == o.Link &&
		s.InlineCSS == o.InlineCSS &&
		slices.Equal(s.TailwindClasses, o.TailwindClasses)
}

// Clone returns a copy that shares no mutable storage with s.
func (s StyleState) Clone() StyleState {
	s.TailwindClasses = slices.Clone(s.TailwindClasses)
	return s
}
