package inspector

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agiangrant/inspector/export"
	"github.com/agiangrant/inspector/internal/logger"
	"github.com/agiangrant/inspector/render"
	"github.com/agiangrant/inspector/state"
	"github.com/agiangrant/inspector/tw"
)

func newInspector(t *testing.T, opts ...Option) *Inspector {
	t.Helper()
	return New(state.NewStore(state.NewSnapshot(state.Default())), opts...)
}

func TestNewPanicsWithoutStore(t *testing.T) {
	require.PanicsWithValue(t, "inspector: used without a state store", func() {
		New(nil)
	})

	var i *Inspector
	require.PanicsWithValue(t, "inspector: used without a state store", func() {
		i.Classes()
	})
}

func TestEditsLandInCurrentBreakpoint(t *testing.T) {
	i := newInspector(t)

	_, err := i.Set("padding.l", "16")
	require.NoError(t, err)
	_, err = i.SetBreakpoint(tw.BreakpointMD)
	require.NoError(t, err)
	s, err := i.Set("padding.l", "8")
	require.NoError(t, err)

	require.Equal(t, "16", s.Base.Padding.L)
	require.Equal(t, "8", s.Effective(tw.BreakpointMD).Padding.L)
	require.Equal(t, "pl-[16px] md:pl-[8px]", i.Classes())
	require.Equal(t, "md:pl-[8px]", i.ClassesFor(tw.BreakpointMD))
	require.Equal(t, "pl-[16px]", i.ClassesFor(tw.BreakpointBase))
}

func TestRejectedEditKeepsState(t *testing.T) {
	i := newInspector(t)
	before := i.Snapshot()

	_, err := i.Set("padding.left", "16")
	require.ErrorIs(t, err, state.ErrUnknownField)
	require.Equal(t, before.Version, i.Snapshot().Version)

	_, err = i.SetBreakpoint(tw.Breakpoint(42))
	require.Error(t, err)
	require.Equal(t, tw.BreakpointBase, i.Snapshot().Current)
}

func TestClearBreakpoint(t *testing.T) {
	i := newInspector(t)
	_, err := i.SetBreakpoint(tw.BreakpointLG)
	require.NoError(t, err)
	_, err = i.Set("effects.opacity", "50")
	require.NoError(t, err)
	require.Equal(t, "lg:opacity-50", i.Classes())

	s := i.ClearBreakpoint(tw.BreakpointLG)
	require.True(t, s.Override(tw.BreakpointLG).IsEmpty())
	require.Empty(t, i.Classes())
}

func TestSetClasses(t *testing.T) {
	i := newInspector(t)
	i.SetClasses([]string{"flex", "gap-2"})
	_, err := i.SetBreakpoint(tw.BreakpointSM)
	require.NoError(t, err)
	i.SetClasses([]string{"grid"})

	// Literal classes are emitted as written, never breakpoint-prefixed.
	require.Equal(t, "flex gap-2 grid", i.Classes())
}

func TestStylesAndExports(t *testing.T) {
	i := newInspector(t, WithExportOptions(export.Options{Selector: ".card"}))
	for _, kv := range [][2]string{
		{"tag", "button"},
		{"elementId", "cta"},
		{"textContent", "Buy"},
		{"padding.l", "16"},
		{"typography.textColor", "#ff0000"},
	} {
		_, err := i.Set(kv[0], kv[1])
		require.NoError(t, err)
	}

	style := i.Styles()
	v, ok := style.Get("color")
	require.True(t, ok)
	require.Equal(t, "#ff0000", v)

	require.Contains(t, i.CSS(), "#cta {\n  padding-left: 16px;\n")

	out, err := i.HTML()
	require.NoError(t, err)
	require.Equal(t, `<button id="cta" class="pl-[16px] text-[#ff0000]" style="color: #ff0000">Buy</button>`, out)
}

func TestExportSelectorWithoutID(t *testing.T) {
	i := newInspector(t, WithExportOptions(export.Options{Selector: ".card"}))
	require.Equal(t, ".card {\n}\n", i.CSS())
}

func TestRenderOptions(t *testing.T) {
	i := newInspector(t, WithRenderOptions(render.Options{SpacingTokens: true}))
	_, err := i.Set("padding.l", "16")
	require.NoError(t, err)
	require.Equal(t, "pl-4", i.Classes())
}

func TestPreviewCascades(t *testing.T) {
	i := newInspector(t, WithBreakpoints(tw.DefaultBreakpoints()))
	_, err := i.Set("padding.l", "16")
	require.NoError(t, err)
	for _, edit := range []struct {
		bp    tw.Breakpoint
		path  string
		value string
	}{
		{tw.BreakpointSM, "padding.t", "4"},
		{tw.BreakpointLG, "padding.l", "32"},
	} {
		_, err := i.SetBreakpoint(edit.bp)
		require.NoError(t, err)
		_, err = i.Set(edit.path, edit.value)
		require.NoError(t, err)
	}

	tests := []struct {
		width   float32
		bp      tw.Breakpoint
		classes string
	}{
		{320, tw.BreakpointBase, "pl-[16px]"},
		{800, tw.BreakpointMD, "pl-[16px] pt-[4px]"},
		{1100, tw.BreakpointLG, "pl-[32px] pt-[4px]"},
	}
	for _, tt := range tests {
		p := i.Preview(tt.width)
		require.Equal(t, tt.bp, p.Breakpoint, "width %v", tt.width)
		require.Equal(t, tt.classes, p.Classes, "width %v", tt.width)
	}
}

func TestEditsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	i := newInspector(t, WithLogger(log))
	_, err = i.Set("padding.l", "16")
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"path":"padding.l"`)
}

func TestConcurrentEdits(t *testing.T) {
	i := newInspector(t)
	var wg sync.WaitGroup
	for n := 0; n < 20; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = i.Set("effects.opacity", "50")
			_ = i.Classes()
		}()
	}
	wg.Wait()
	require.Equal(t, uint64(20), i.Snapshot().Version)
	require.Equal(t, "opacity-50", i.Classes())
}
