package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agiangrant/inspector/internal/document"
	"github.com/agiangrant/inspector/tw"
)

const buttonDoc = `breakpoint: md
base:
  tag: button
  elementId: cta
  padding: {l: "16", t: "16", r: "16", b: "16"}
overrides:
  md:
    padding: {l: "8"}
`

const (
	basePadding = "pl-[16px] pt-[16px] pr-[16px] pb-[16px]"
	mdPadding   = "md:pl-[8px] md:pt-[16px] md:pr-[16px] md:pb-[16px]"
)

// project writes an inspector.toml pointing at a copy of buttonDoc and
// returns the config and document paths.
func project(t *testing.T) (cfgPath, docPath string) {
	t.Helper()
	t.Cleanup(tw.ResetConfig)

	dir := t.TempDir()
	docPath = filepath.Join(dir, "button.yaml")
	require.NoError(t, os.WriteFile(docPath, []byte(buttonDoc), 0o644))
	cfgPath = filepath.Join(dir, "inspector.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[document]\npath = \"button.yaml\"\n\n[log]\nlevel = \"error\"\n"), 0o644))
	return cfgPath, docPath
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfgPath, "--color", "never"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2026-10-19"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())

	require.Contains(t, buf.String(), "1.2.3")
	require.Contains(t, buf.String(), "abcdef1")
	require.Contains(t, buf.String(), "2026-10-19")
}

func TestClassesCommand(t *testing.T) {
	cfg, _ := project(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"aggregate", []string{"classes"}, basePadding + " " + mdPadding},
		{"one breakpoint", []string{"classes", "--breakpoint", "md"}, mdPadding},
		{"base only", []string{"classes", "-b", "base"}, basePadding},
		{"preview width", []string{"--width", "800", "classes"}, "pl-[8px] pt-[16px] pr-[16px] pb-[16px]"},
		{"narrow preview", []string{"--width", "320", "classes"}, basePadding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, cfg, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestClassesTable(t *testing.T) {
	cfg, _ := project(t)
	out, err := run(t, cfg, "classes", "--table")
	require.NoError(t, err)
	require.Contains(t, out, "CLASS")
	require.Contains(t, out, "md:pl-[8px]")
	require.Contains(t, out, "padding-left")
	require.NotContains(t, out, "\x1b[")
}

func TestExplainCommand(t *testing.T) {
	cfg, _ := project(t)
	out, err := run(t, cfg, "explain", "pl-[16px]", "flex")
	require.NoError(t, err)
	require.Contains(t, out, "padding-left")
	require.Contains(t, out, "16px")
	require.Contains(t, out, "flex")

	_, err = run(t, cfg, "explain")
	require.Error(t, err)
}

func TestExportCommands(t *testing.T) {
	cfg, _ := project(t)

	css, err := run(t, cfg, "css")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(css, "#cta {\n  padding-left: 8px;\n"), css)

	html, err := run(t, cfg, "html")
	require.NoError(t, err)
	require.Equal(t, `<button id="cta" class="`+basePadding+" "+mdPadding+`"></button>`+"\n", html)
}

func TestStylesCommand(t *testing.T) {
	cfg, _ := project(t)

	out, err := run(t, cfg, "styles", "--json")
	require.NoError(t, err)
	require.Equal(t, "{}\n", out)

	_, err = run(t, cfg, "set", "-b", "base", "typography.textColor=#333", "appearance.blendMode=multiply")
	require.NoError(t, err)

	out, err = run(t, cfg, "styles", "--json")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"color\": \"#333\",\n  \"mixBlendMode\": \"multiply\"\n}\n", out)

	out, err = run(t, cfg, "styles")
	require.NoError(t, err)
	require.Equal(t, "color: #333\nmixBlendMode: multiply\n", out)
}

func TestSetCommandSaves(t *testing.T) {
	cfg, doc := project(t)

	out, err := run(t, cfg, "set", "--breakpoint", "lg", "effects.opacity=50", "classes=flex gap-2")
	require.NoError(t, err)
	require.Contains(t, out, "lg:opacity-50")

	snap, err := document.Load(doc)
	require.NoError(t, err)
	require.Equal(t, tw.BreakpointMD, snap.Current, "the document keeps its own breakpoint")
	require.Equal(t, "50", snap.Effective(tw.BreakpointLG).Effects.Opacity)
	require.Equal(t, []string{"flex", "gap-2"}, snap.Override(tw.BreakpointLG).TailwindClasses)
	require.Equal(t, "100", snap.Base.Effects.Opacity)
}

func TestSetCommandUnset(t *testing.T) {
	cfg, _ := project(t)
	out, err := run(t, cfg, "set", "--unset", "padding.l")
	require.NoError(t, err)
	require.Equal(t, basePadding+"\n", out)
}

func TestSetCommandErrors(t *testing.T) {
	cfg, doc := project(t)
	before, err := os.ReadFile(doc)
	require.NoError(t, err)

	tests := map[string][]string{
		"unknown field":  {"set", "padding.left=4"},
		"missing value":  {"set", "padding.l"},
		"bad breakpoint": {"set", "-b", "tablet", "padding.l=4"},
		"invalid value":  {"set", "position.type=floating"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, cfg, args...)
			require.Error(t, err)

			after, err := os.ReadFile(doc)
			require.NoError(t, err)
			require.Equal(t, string(before), string(after))
		})
	}
}

func TestClearCommand(t *testing.T) {
	cfg, doc := project(t)
	out, err := run(t, cfg, "clear", "md")
	require.NoError(t, err)
	require.Equal(t, basePadding+"\n", out)

	snap, err := document.Load(doc)
	require.NoError(t, err)
	require.True(t, snap.Override(tw.BreakpointMD).IsEmpty())

	_, err = run(t, cfg, "clear", "tablet")
	require.Error(t, err)
}

func TestMissingDocument(t *testing.T) {
	cfg, doc := project(t)
	require.NoError(t, os.Remove(doc))
	_, err := run(t, cfg, "classes")
	require.ErrorContains(t, err, "failed to read")
}

func TestInvalidColorFlag(t *testing.T) {
	cfg, _ := project(t)
	_, err := run(t, cfg, "--color", "sometimes", "classes")
	require.ErrorContains(t, err, "invalid --color")
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchReloadsOnChange(t *testing.T) {
	cfg, doc := project(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root := newRootCmd()
	out := &syncBuffer{}
	root.SetOut(out)
	root.SetErr(&syncBuffer{})
	root.SetArgs([]string{"--config", cfg, "--color", "never", "watch"})

	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), mdPadding)
	}, 5*time.Second, 20*time.Millisecond)

	snap, err := document.Load(doc)
	require.NoError(t, err)
	snap = snap.ClearBreakpoint(tw.BreakpointMD)
	require.NoError(t, document.Save(doc, snap))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "\n"+basePadding+"\n")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
