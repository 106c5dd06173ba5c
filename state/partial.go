package state

import "slices"

// PaddingPartial mirrors Padding with optional leaves.
type PaddingPartial struct {
	L *string `yaml:"l,omitempty" toml:"l,omitempty" json:"l,omitempty"`
	T *string `yaml:"t,omitempty" toml:"t,omitempty" json:"t,omitempty"`
	R *string `yaml:"r,omitempty" toml:"r,omitempty" json:"r,omitempty"`
	B *string `yaml:"b,omitempty" toml:"b,omitempty" json:"b,omitempty"`
}

type MarginPartial struct {
	X *string `yaml:"x,omitempty" toml:"x,omitempty" json:"x,omitempty"`
	Y *string `yaml:"y,omitempty" toml:"y,omitempty" json:"y,omitempty"`
}

type PositionPartial struct {
	Type   *string `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty" validate:"omitempty,oneof=static relative absolute fixed sticky"`
	ZIndex *string `yaml:"zIndex,omitempty" toml:"zIndex,omitempty" json:"zIndex,omitempty"`
	L      *string `yaml:"l,omitempty" toml:"l,omitempty" json:"l,omitempty"`
	T      *string `yaml:"t,omitempty" toml:"t,omitempty" json:"t,omitempty"`
	R      *string `yaml:"r,omitempty" toml:"r,omitempty" json:"r,omitempty"`
	B      *string `yaml:"b,omitempty" toml:"b,omitempty" json:"b,omitempty"`
}

type SizePartial struct {
	Width     *string `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Height    *string `yaml:"height,omitempty" toml:"height,omitempty" json:"height,omitempty"`
	MaxWidth  *string `yaml:"maxWidth,omitempty" toml:"maxWidth,omitempty" json:"maxWidth,omitempty"`
	MaxHeight *string `yaml:"maxHeight,omitempty" toml:"maxHeight,omitempty" json:"maxHeight,omitempty"`
	MinWidth  *string `yaml:"minWidth,omitempty" toml:"minWidth,omitempty" json:"minWidth,omitempty"`
	MinHeight *string `yaml:"minHeight,omitempty" toml:"minHeight,omitempty" json:"minHeight,omitempty"`
}

type TypographyPartial struct {
	FontFamily    *string `yaml:"fontFamily,omitempty" toml:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	FontWeight    *string `yaml:"fontWeight,omitempty" toml:"fontWeight,omitempty" json:"fontWeight,omitempty"`
	FontSize      *string `yaml:"fontSize,omitempty" toml:"fontSize,omitempty" json:"fontSize,omitempty"`
	LetterSpacing *string `yaml:"letterSpacing,omitempty" toml:"letterSpacing,omitempty" json:"letterSpacing,omitempty"`
	LineHeight    *string `yaml:"lineHeight,omitempty" toml:"lineHeight,omitempty" json:"lineHeight,omitempty"`
	TextAlign     *string `yaml:"textAlign,omitempty" toml:"textAlign,omitempty" json:"textAlign,omitempty" validate:"omitempty,oneof=left center right justify start end"`
	TextColor     *string `yaml:"textColor,omitempty" toml:"textColor,omitempty" json:"textColor,omitempty"`
}

type TransformsPartial struct {
	Rotate     *string `yaml:"rotate,omitempty" toml:"rotate,omitempty" json:"rotate,omitempty"`
	Scale      *string `yaml:"scale,omitempty" toml:"scale,omitempty" json:"scale,omitempty"`
	TranslateX *string `yaml:"translateX,omitempty" toml:"translateX,omitempty" json:"translateX,omitempty"`
	TranslateY *string `yaml:"translateY,omitempty" toml:"translateY,omitempty" json:"translateY,omitempty"`
	SkewX      *string `yaml:"skewX,omitempty" toml:"skewX,omitempty" json:"skewX,omitempty"`
	SkewY      *string `yaml:"skewY,omitempty" toml:"skewY,omitempty" json:"skewY,omitempty"`
}

type Transforms3DPartial struct {
	RotateX     *string `yaml:"rotateX,omitempty" toml:"rotateX,omitempty" json:"rotateX,omitempty"`
	RotateY     *string `yaml:"rotateY,omitempty" toml:"rotateY,omitempty" json:"rotateY,omitempty"`
	RotateZ     *string `yaml:"rotateZ,omitempty" toml:"rotateZ,omitempty" json:"rotateZ,omitempty"`
	Perspective *string `yaml:"perspective,omitempty" toml:"perspective,omitempty" json:"perspective,omitempty"`
}

type EffectsPartial struct {
	Opacity      *string `yaml:"opacity,omitempty" toml:"opacity,omitempty" json:"opacity,omitempty"`
	Blur         *string `yaml:"blur,omitempty" toml:"blur,omitempty" json:"blur,omitempty"`
	BackdropBlur *string `yaml:"backdropBlur,omitempty" toml:"backdropBlur,omitempty" json:"backdropBlur,omitempty"`
	HueRotate    *string `yaml:"hueRotate,omitempty" toml:"hueRotate,omitempty" json:"hueRotate,omitempty"`
	Saturation   *string `yaml:"saturation,omitempty" toml:"saturation,omitempty" json:"saturation,omitempty"`
	Brightness   *string `yaml:"brightness,omitempty" toml:"brightness,omitempty" json:"brightness,omitempty"`
	Contrast     *string `yaml:"contrast,omitempty" toml:"contrast,omitempty" json:"contrast,omitempty"`
	Grayscale    *string `yaml:"grayscale,omitempty" toml:"grayscale,omitempty" json:"grayscale,omitempty"`
	Invert       *string `yaml:"invert,omitempty" toml:"invert,omitempty" json:"invert,omitempty"`
	Sepia        *string `yaml:"sepia,omitempty" toml:"sepia,omitempty" json:"sepia,omitempty"`
	Shadow       *string `yaml:"shadow,omitempty" toml:"shadow,omitempty" json:"shadow,omitempty" validate:"omitempty,oneof=none sm base md lg xl 2xl inner"`
}

type RadiusPartial struct {
	All         *string `yaml:"all,omitempty" toml:"all,omitempty" json:"all,omitempty"`
	TopLeft     *string `yaml:"topLeft,omitempty" toml:"topLeft,omitempty" json:"topLeft,omitempty"`
	TopRight    *string `yaml:"topRight,omitempty" toml:"topRight,omitempty" json:"topRight,omitempty"`
	BottomRight *string `yaml:"bottomRight,omitempty" toml:"bottomRight,omitempty" json:"bottomRight,omitempty"`
	BottomLeft  *string `yaml:"bottomLeft,omitempty" toml:"bottomLeft,omitempty" json:"bottomLeft,omitempty"`
}

type BorderPartial struct {
	Width  *string       `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Style  *string       `yaml:"style,omitempty" toml:"style,omitempty" json:"style,omitempty" validate:"omitempty,oneof=solid dashed dotted double hidden none groove ridge inset outset"`
	Color  *string       `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	Radius RadiusPartial `yaml:"radius,omitempty" toml:"radius,omitempty" json:"radius,omitempty"`
}

type AppearancePartial struct {
	BackgroundColor *string `yaml:"backgroundColor,omitempty" toml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	BackgroundImage *string `yaml:"backgroundImage,omitempty" toml:"backgroundImage,omitempty" json:"backgroundImage,omitempty"`
	BlendMode       *string `yaml:"blendMode,omitempty" toml:"blendMode,omitempty" json:"blendMode,omitempty" validate:"omitempty,blend_mode"`
}

// PartialState is a breakpoint overlay: the StyleState schema with every leaf
// optional. A nil leaf leaves the underlying value untouched.
// TailwindClasses replaces the base list wholesale when non-nil.
type PartialState struct {
	Padding      PaddingPartial      `yaml:"padding,omitempty" toml:"padding,omitempty" json:"padding,omitempty"`
	Margin       MarginPartial       `yaml:"margin,omitempty" toml:"margin,omitempty" json:"margin,omitempty"`
	Position     PositionPartial     `yaml:"position,omitempty" toml:"position,omitempty" json:"position,omitempty"`
	Size         SizePartial         `yaml:"size,omitempty" toml:"size,omitempty" json:"size,omitempty"`
	Typography   TypographyPartial   `yaml:"typography,omitempty" toml:"typography,omitempty" json:"typography,omitempty"`
	Transforms   TransformsPartial   `yaml:"transforms,omitempty" toml:"transforms,omitempty" json:"transforms,omitempty"`
	Transforms3D Transforms3DPartial `yaml:"transforms3D,omitempty" toml:"transforms3D,omitempty" json:"transforms3D,omitempty"`
	Effects      EffectsPartial      `yaml:"effects,omitempty" toml:"effects,omitempty" json:"effects,omitempty"`
	Border       BorderPartial       `yaml:"border,omitempty" toml:"border,omitempty" json:"border,omitempty"`
	Appearance   AppearancePartial   `yaml:"appearance,omitempty" toml:"appearance,omitempty" json:"appearance,omitempty"`

	Tag             *string  `yaml:"tag,omitempty" toml:"tag,omitempty" json:"tag,omitempty" validate:"omitempty,html_tag"`
	ElementID       *string  `yaml:"elementId,omitempty" toml:"elementId,omitempty" json:"elementId,omitempty" validate:"omitempty,element_id"`
	TextContent     *string  `yaml:"textContent,omitempty" toml:"textContent,omitempty" json:"textContent,omitempty"`
	Link            *string  `yaml:"link,omitempty" toml:"link,omitempty" json:"link,omitempty"`
	InlineCSS       *string  `yaml:"inlineCSS,omitempty" toml:"inlineCSS,omitempty" json:"inlineCSS,omitempty"`
	TailwindClasses []string `yaml:"tailwindClasses,omitempty" toml:"tailwindClasses,omitempty" json:"tailwindClasses,omitempty"`
}

// IsEmpty reports whether the overlay sets nothing.
func (p PartialState) IsEmpty() bool {
	if p.TailwindClasses != nil {
		return false
	}
	for _, f := range fieldTable {
		if *f.partial(&p) != nil {
			return false
		}
	}
	return true
}

// Clone deep-copies the overlay so the result shares no pointers with p.
func (p PartialState) Clone() PartialState {
	out := PartialState{TailwindClasses: slices.Clone(p.TailwindClasses)}
	for _, f := range fieldTable {
		if v := *f.partial(&p); v != nil {
			*f.partial(&out) = ptr(*v)
		}
	}
	return out
}

// Equal compares two overlays by the values they set.
func (p PartialState) Equal(o PartialState) bool {
	if (p.TailwindClasses == nil) != (o.TailwindClasses == nil) || !slices.Equal(p.TailwindClasses, o.TailwindClasses) {
		return false
	}
	for _, f := range fieldTable {
		a, b := *f.partial(&p), *f.partial(&o)
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}
	return true
}

// Merge applies an overlay to s and returns the result. Set leaves win
// key-by-key; s is not modified.
func (s StyleState) Merge(p PartialState) StyleState {
	out := s.Clone()
	out.Padding = mergePadding(out.Padding, p.Padding)
	out.Margin = mergeMargin(out.Margin, p.Margin)
	out.Position = mergePosition(out.Position, p.Position)
	out.Size = mergeSize(out.Size, p.Size)
	out.Typography = mergeTypography(out.Typography, p.Typography)
	out.Transforms = mergeTransforms(out.Transforms, p.Transforms)
	out.Transforms3D = mergeTransforms3D(out.Transforms3D, p.Transforms3D)
	out.Effects = mergeEffects(out.Effects, p.Effects)
	out.Border = mergeBorder(out.Border, p.Border)
	out.Appearance = mergeAppearance(out.Appearance, p.Appearance)

	if p.Tag != nil {
		out.Tag = *p.Tag
	}
	if p.ElementID != nil {
		out.ElementID = *p.ElementID
	}
	if p.TextContent != nil {
		out.TextContent = *p.TextContent
	}
	if p.Link != nil {
		out.Link = *p.Link
	}
	if p.InlineCSS != nil {
		out.InlineCSS = *p.InlineCSS
	}
	if p.TailwindClasses != nil {
		out.TailwindClasses = slices.Clone(p.TailwindClasses)
	}
	return out
}

// Overlay layers other on top of p: leaves set in other win.
func (p PartialState) Overlay(other PartialState) PartialState {
	out := p.Clone()
	for _, f := range fieldTable {
		if v := *f.partial(&other); v != nil {
			*f.partial(&out) = ptr(*v)
		}
	}
	if other.TailwindClasses != nil {
		out.TailwindClasses = slices.Clone(other.TailwindClasses)
	}
	return out
}

func mergePadding(dst Padding, src PaddingPartial) Padding {
	if src.L != nil {
		dst.L = *src.L
	}
	if src.T != nil {
		dst.T = *src.T
	}
	if src.R != nil {
		dst.R = *src.R
	}
	if src.B != nil {
		dst.B = *src.B
	}
	return dst
}

func mergeMargin(dst Margin, src MarginPartial) Margin {
	if src.X != nil {
		dst.X = *src.X
	}
	if src.Y != nil {
		dst.Y = *src.Y
	}
	return dst
}

func mergePosition(dst Position, src PositionPartial) Position {
	if src.Type != nil {
		dst.Type = *src.Type
	}
	if src.ZIndex != nil {
		dst.ZIndex = *src.ZIndex
	}
	if src.L != nil {
		dst.L = *src.L
	}
	if src.T != nil {
		dst.T = *src.T
	}
	if src.R != nil {
		dst.R = *src.R
	}
	if src.B != nil {
		dst.B = *src.B
	}
	return dst
}

func mergeSize(dst Size, src SizePartial) Size {
	if src.Width != nil {
		dst.Width = *src.Width
	}
	if src.Height != nil {
		dst.Height = *src.Height
	}
	if src.MaxWidth != nil {
		dst.MaxWidth = *src.MaxWidth
	}
	if src.MaxHeight != nil {
		dst.MaxHeight = *src.MaxHeight
	}
	if src.MinWidth != nil {
		dst.MinWidth = *src.MinWidth
	}
	if src.MinHeight != nil {
		dst.MinHeight = *src.MinHeight
	}
	return dst
}

func mergeTypography(dst Typography, src TypographyPartial) Typography {
	if src.FontFamily != nil {
		dst.FontFamily = *src.FontFamily
	}
	if src.FontWeight != nil {
		dst.FontWeight = *src.FontWeight
	}
	if src.FontSize != nil {
		dst.FontSize = *src.FontSize
	}
	if src.LetterSpacing != nil {
		dst.LetterSpacing = *src.LetterSpacing
	}
	if src.LineHeight != nil {
		dst.LineHeight = *src.LineHeight
	}
	if src.TextAlign != nil {
		dst.TextAlign = *src.TextAlign
	}
	if src.TextColor != nil {
		dst.TextColor = *src.TextColor
	}
	return dst
}

func mergeTransforms(dst Transforms, src TransformsPartial) Transforms {
	if src.Rotate != nil {
		dst.Rotate = *src.Rotate
	}
	if src.Scale != nil {
		dst.Scale = *src.Scale
	}
	if src.TranslateX != nil {
		dst.TranslateX = *src.TranslateX
	}
	if src.TranslateY != nil {
		dst.TranslateY = *src.TranslateY
	}
	if src.SkewX != nil {
		dst.SkewX = *src.SkewX
	}
	if src.SkewY != nil {
		dst.SkewY = *src.SkewY
	}
	return dst
}

func mergeTransforms3D(dst Transforms3D, src Transforms3DPartial) Transforms3D {
	if src.RotateX != nil {
		dst.RotateX = *src.RotateX
	}
	if src.RotateY != nil {
		dst.RotateY = *src.RotateY
	}
	if src.RotateZ != nil {
		dst.RotateZ = *src.RotateZ
	}
	if src.Perspective != nil {
		dst.Perspective = *src.Perspective
	}
	return dst
}

func mergeEffects(dst Effects, src EffectsPartial) Effects {
	if src.Opacity != nil {
		dst.Opacity = *src.Opacity
	}
	if src.Blur != nil {
		dst.Blur = *src.Blur
	}
	if src.BackdropBlur != nil {
		dst.BackdropBlur = *src.BackdropBlur
	}
	if src.HueRotate != nil {
		dst.HueRotate = *src.HueRotate
	}
	if src.Saturation != nil {
		dst.Saturation = *src.Saturation
	}
	if src.Brightness != nil {
		dst.Brightness = *src.Brightness
	}
	if src.Contrast != nil {
		dst.Contrast = *src.Contrast
	}
	if src.Grayscale != nil {
		dst.Grayscale = *src.Grayscale
	}
	if src.Invert != nil {
		dst.Invert = *src.Invert
	}
	if src.Sepia != nil {
		dst.Sepia = *src.Sepia
	}
	if src.Shadow != nil {
		dst.Shadow = *src.Shadow
	}
	return dst
}

// mergeBorder recurses one level further into the radius group.
func mergeBorder(dst Border, src BorderPartial) Border {
	if src.Width != nil {
		dst.Width = *src.Width
	}
	if src.Style != nil {
		dst.Style = *src.Style
	}
	if src.Color != nil {
		dst.Color = *src.Color
	}
	if src.Radius.All != nil {
		dst.Radius.All = *src.Radius.All
	}
	if src.Radius.TopLeft != nil {
		dst.Radius.TopLeft = *src.Radius.TopLeft
	}
	if src.Radius.TopRight != nil {
		dst.Radius.TopRight = *src.Radius.TopRight
	}
	if src.Radius.BottomRight != nil {
		dst.Radius.BottomRight = *src.Radius.BottomRight
	}
	if src.Radius.BottomLeft != nil {
		dst.Radius.BottomLeft = *src.Radius.BottomLeft
	}
	return dst
}

func mergeAppearance(dst Appearance, src AppearancePartial) Appearance {
	if src.BackgroundColor != nil {
		dst.BackgroundColor = *src.BackgroundColor
	}
	if src.BackgroundImage != nil {
		dst.BackgroundImage = *src.BackgroundImage
	}
	if src.BlendMode != nil {
		dst.BlendMode = *src.BlendMode
	}
	return dst
}

func ptr(s string) *string { return &s }
