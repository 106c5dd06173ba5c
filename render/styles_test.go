package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agiangrant/inspector/state"
	"github.com/agiangrant/inspector/tw"
)

func TestStylesDefaultIsEmpty(t *testing.T) {
	require.Zero(t, Styles(state.Default()).Len())
}

func TestStylesOrder(t *testing.T) {
	s := with(t, state.Default(),
		"transforms3D.perspective", "50",
		"transforms3D.rotateZ", "5",
		"transforms3D.rotateX", "10",
		"appearance.blendMode", "multiply",
		"appearance.backgroundImage", "https://example.com/bg.png",
		"border.color", "#cccccc",
		"appearance.backgroundColor", "#ffffff",
		"typography.textColor", "#333333",
	)

	got := Styles(s).Declarations()
	require.Equal(t, []tw.Declaration{
		{Property: "color", Value: "#333333"},
		{Property: "backgroundColor", Value: "#ffffff"},
		{Property: "borderColor", Value: "#cccccc"},
		{Property: "backgroundImage", Value: `url("https://example.com/bg.png")`},
		{Property: "mixBlendMode", Value: "multiply"},
		{Property: "transform", Value: "rotateX(10deg) rotateZ(5deg)"},
		{Property: "perspective", Value: "500px"},
	}, got)
}

func TestStylesPerspectiveMultiplier(t *testing.T) {
	s := with(t, state.Default(), "transforms3D.perspective", "50")
	v, ok := NewGenerator(Options{PerspectiveMultiplier: 2}).Styles(s).Get("perspective")
	require.True(t, ok)
	require.Equal(t, "100px", v)
}

func TestStylesInlineCSS(t *testing.T) {
	s := with(t, state.Default(),
		"typography.textColor", "#333333",
		"inlineCSS", "color: red; -webkit-line-clamp: 2;\n-ms-transform: none; --gap: 4px; bogus; : orphan; background-color:  #000 ",
	)

	got := Styles(s).Declarations()
	require.Equal(t, []tw.Declaration{
		{Property: "color", Value: "red"},
		{Property: "WebkitLineClamp", Value: "2"},
		{Property: "msTransform", Value: "none"},
		{Property: "--gap", Value: "4px"},
		{Property: "backgroundColor", Value: "#000"},
	}, got)
}

func TestBackgroundImage(t *testing.T) {
	require.Equal(t, `url("a.png")`, BackgroundImage("a.png"))
	require.Equal(t, `url(a.png)`, BackgroundImage("url(a.png)"))
	require.Equal(t, "linear-gradient(red, blue)", BackgroundImage("linear-gradient(red, blue)"))
}

func TestCamelCaseRoundTrip(t *testing.T) {
	tests := []struct{ css, key string }{
		{"color", "color"},
		{"background-color", "backgroundColor"},
		{"-webkit-line-clamp", "WebkitLineClamp"},
		{"-moz-appearance", "MozAppearance"},
		{"-ms-transform", "msTransform"},
		{"--brand-color", "--brand-color"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.key, CamelCase(tt.css))
		require.Equal(t, tt.css, Hyphenate(tt.key))
	}
}
