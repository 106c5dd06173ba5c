package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agiangrant/inspector/render"
	"github.com/agiangrant/inspector/state"
)

func build(t *testing.T, kv ...string) state.StyleState {
	t.Helper()
	s := state.Default()
	for i := 0; i+1 < len(kv); i += 2 {
		var err error
		s, err = s.With(kv[i], kv[i+1])
		require.NoError(t, err)
	}
	return s
}

func TestCSSDefaultIsEmptyRule(t *testing.T) {
	require.Equal(t, ".component {\n}\n", CSS(state.Default()))
}

func TestCSSSelector(t *testing.T) {
	require.Equal(t, "#cta {\n}\n", CSS(build(t, "elementId", "cta")))
	require.Equal(t, ".card {\n}\n", NewFormatter(Options{Selector: ".card"}).CSS(state.Default()))
}

func TestCSSDeclarations(t *testing.T) {
	s := build(t,
		"elementId", "cta",
		"padding.l", "16px",
		"margin.y", "-4",
		"position.type", "absolute",
		"position.zIndex", "10",
		"size.width", "50%",
		"size.height", "screen",
		"size.maxWidth", "320",
		"typography.fontFamily", "Inter Tight",
		"typography.fontWeight", "bold",
		"typography.lineHeight", "tight",
		"typography.textAlign", "center",
		"transforms.translateX", "10",
		"transforms.rotate", "45",
		"transforms.scale", "107",
		"transforms3D.rotateY", "30",
		"transforms3D.perspective", "80",
		"effects.opacity", "37",
		"effects.blur", "4",
		"effects.saturation", "150",
		"effects.grayscale", "100",
		"effects.backdropBlur", "8",
		"effects.shadow", "md",
		"border.width", "2",
		"border.style", "dashed",
		"border.radius.topLeft", "4",
		"appearance.backgroundColor", "#ffffff",
		"appearance.blendMode", "multiply",
		"inlineCSS", "cursor: pointer; -webkit-tap-highlight-color: transparent",
	)

	want := `#cta {
  padding-left: 16px;
  margin-block: -4px;
  position: absolute;
  z-index: 10;
  width: 50%;
  height: 100vh;
  max-width: 320px;
  font-family: "Inter Tight";
  font-weight: 700;
  line-height: 1.25;
  text-align: center;
  transform: translateX(10px) rotate(45deg) scale(1.07) rotateY(30deg);
  perspective: 800px;
  opacity: 0.37;
  filter: blur(4px) saturate(1.5) grayscale(1);
  backdrop-filter: blur(8px);
  /* box-shadow: shadow-md */
  border-width: 2px;
  border-style: dashed;
  border-top-left-radius: 4px;
  background-color: #ffffff;
  mix-blend-mode: multiply;
  cursor: pointer;
  -webkit-tap-highlight-color: transparent;
}
`
	require.Equal(t, want, CSS(s))
}

func TestCSSNeverDoubleUnit(t *testing.T) {
	s := state.Default()
	for _, path := range state.Paths() {
		if path == "inlineCSS" {
			continue
		}
		var err error
		s, err = s.With(path, "12px")
		require.NoError(t, err)
	}
	require.NotContains(t, CSS(s), "pxpx")
}

func TestCSSDropsUnknownUnits(t *testing.T) {
	s := state.Default()
	for _, path := range []string{
		"size.width", "size.height", "size.maxWidth", "size.maxHeight", "size.minWidth", "size.minHeight",
		"typography.fontSize", "typography.letterSpacing", "typography.lineHeight",
	} {
		var err error
		s, err = s.With(path, "12pxpx")
		require.NoError(t, err)
	}
	css := CSS(s)
	require.NotContains(t, css, "pxpx")
	require.Contains(t, css, "  width: 12px;\n")
	require.Contains(t, css, "  font-size: 12px;\n")
}

func TestCSSKeepsLengthUnits(t *testing.T) {
	s := build(t, "typography.fontSize", "1.5rem", "typography.letterSpacing", "0.05em")
	require.Equal(t, ".component {\n  font-size: 1.5rem;\n  letter-spacing: 0.05em;\n}\n", CSS(s))
}

func TestFilter(t *testing.T) {
	require.Empty(t, Filter(state.Default().Effects))
	e := state.Default().Effects
	e.HueRotate = "-90"
	e.Invert = "50"
	require.Equal(t, "hue-rotate(-90deg) invert(0.5)", Filter(e))
}

func TestHTML(t *testing.T) {
	s := build(t,
		"tag", "a",
		"elementId", "cta",
		"link", "/checkout?step=1&x=2",
		"textContent", "Buy <now> & save",
		"typography.textColor", "#333333",
		"appearance.backgroundImage", "bg.png",
	)
	style := render.Styles(s)

	got, err := HTML(s, "pl-[16px]  md:pl-[8px]", style)
	require.NoError(t, err)
	require.Equal(t,
		`<a id="cta" class="pl-[16px] md:pl-[8px]" style="color: #333333; background-image: url(&#34;bg.png&#34;)" href="/checkout?step=1&amp;x=2">Buy &lt;now&gt; &amp; save</a>`,
		got)
}

func TestHTMLDefaultsAndOmissions(t *testing.T) {
	s := state.StyleState{TextContent: "hi", Link: "/ignored"}
	got, err := HTML(s, "", render.Style{})
	require.NoError(t, err)
	require.Equal(t, "<div>hi</div>", got)
}

func TestHTMLVoidElement(t *testing.T) {
	s := build(t, "tag", "img", "textContent", "dropped")
	got, err := HTML(s, "rounded-[8px]", render.Style{})
	require.NoError(t, err)
	require.Equal(t, `<img class="rounded-[8px]"/>`, got)
}

func TestHTMLButtonGetsHref(t *testing.T) {
	s := build(t, "tag", "button", "link", "#go", "textContent", "Go")
	got, err := HTML(s, "", render.Style{})
	require.NoError(t, err)
	require.Equal(t, `<button href="#go">Go</button>`, got)
}

func TestStyleAttrHyphenates(t *testing.T) {
	var st render.Style
	st.Set("WebkitLineClamp", "2")
	st.Set("msTransform", "none")
	st.Set("--gap", "4px")
	require.Equal(t, "-webkit-line-clamp: 2; -ms-transform: none; --gap: 4px", StyleAttr(st))
}
