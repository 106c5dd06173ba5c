// Package inspector ties the state store to the class, style and export
// generators: it is what an editor panel or the CLI talks to.
package inspector

import (
	"github.com/agiangrant/inspector/export"
	"github.com/agiangrant/inspector/internal/logger"
	"github.com/agiangrant/inspector/render"
	"github.com/agiangrant/inspector/state"
	"github.com/agiangrant/inspector/tw"
)

const misuse = "inspector: used without a state store"

// Inspector reads and edits one component's state. All methods are safe for
// concurrent use; reads see a single consistent snapshot.
type Inspector struct {
	store       *state.Store
	log         *logger.Logger
	cache       *render.Cache
	formatter   *export.Formatter
	breakpoints tw.BreakpointConfig
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithLogger sets the logger used for edits. The default discards everything.
func WithLogger(log *logger.Logger) Option {
	return func(i *Inspector) {
		if log != nil {
			i.log = log
		}
	}
}

// WithRenderOptions selects class and style generation options.
func WithRenderOptions(opts render.Options) Option {
	return func(i *Inspector) {
		i.cache = render.NewCache(render.NewGenerator(opts))
	}
}

// WithExportOptions selects the CSS selector and perspective scaling for export.
func WithExportOptions(opts export.Options) Option {
	return func(i *Inspector) {
		i.formatter = export.NewFormatter(opts)
	}
}

// WithBreakpoints sets the thresholds Preview resolves widths against.
func WithBreakpoints(cfg tw.BreakpointConfig) Option {
	return func(i *Inspector) {
		i.breakpoints = cfg
	}
}

// New returns an Inspector over store. It panics if store is nil.
func New(store *state.Store, opts ...Option) *Inspector {
	if store == nil {
		panic(misuse)
	}
	i := &Inspector{
		store:       store,
		log:         logger.Nop(),
		cache:       render.NewCache(nil),
		formatter:   export.NewFormatter(export.Options{}),
		breakpoints: tw.GetBreakpoints(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Inspector) must() {
	if i == nil || i.store == nil {
		panic(misuse)
	}
}

// Store returns the underlying store.
func (i *Inspector) Store() *state.Store {
	i.must()
	return i.store
}

// Snapshot returns the current state.
func (i *Inspector) Snapshot() state.Snapshot {
	i.must()
	return i.store.Current()
}

// SetBreakpoint switches the breakpoint that edits apply to.
func (i *Inspector) SetBreakpoint(bp tw.Breakpoint) (state.Snapshot, error) {
	i.must()
	s, err := i.store.Update(func(s state.Snapshot) (state.Snapshot, error) {
		return s.WithBreakpoint(bp)
	})
	if err != nil {
		return s, err
	}
	i.log.Debug("breakpoint selected", "breakpoint", bp.String(), "version", s.Version)
	return s, nil
}

// Set writes value at path for the current breakpoint.
func (i *Inspector) Set(path, value string) (state.Snapshot, error) {
	i.must()
	s, err := i.store.Update(func(s state.Snapshot) (state.Snapshot, error) {
		return s.Set(path, value)
	})
	if err != nil {
		i.log.Warn("rejected edit", "path", path, "error", err.Error())
		return s, err
	}
	i.log.Debug("field set", "path", path, "value", value, "breakpoint", s.Current.String(), "version", s.Version)
	return s, nil
}

// Unset drops the current breakpoint's value at path. At base the field
// returns to its neutral default.
func (i *Inspector) Unset(path string) (state.Snapshot, error) {
	i.must()
	s, err := i.store.Update(func(s state.Snapshot) (state.Snapshot, error) {
		return s.Unset(s.Current, path)
	})
	if err != nil {
		return s, err
	}
	i.log.Debug("field unset", "path", path, "breakpoint", s.Current.String(), "version", s.Version)
	return s, nil
}

// SetClasses replaces the literal class list for the current breakpoint.
// Literal classes are appended to the output as written: a list set at a
// breakpoint is not given that breakpoint's prefix.
func (i *Inspector) SetClasses(classes []string) state.Snapshot {
	i.must()
	s, _ := i.store.Update(func(s state.Snapshot) (state.Snapshot, error) {
		return s.SetClasses(classes), nil
	})
	i.log.Debug("classes set", "count", len(classes), "breakpoint", s.Current.String())
	return s
}

// ClearBreakpoint drops every override registered for bp.
func (i *Inspector) ClearBreakpoint(bp tw.Breakpoint) state.Snapshot {
	i.must()
	s, _ := i.store.Update(func(s state.Snapshot) (state.Snapshot, error) {
		return s.ClearBreakpoint(bp), nil
	})
	i.log.Debug("breakpoint cleared", "breakpoint", bp.String(), "version", s.Version)
	return s
}

// Classes returns the aggregate class string: base classes followed by the
// prefixed classes of every breakpoint that has overrides, deduplicated.
func (i *Inspector) Classes() string {
	i.must()
	s := i.store.Current()
	return i.cache.AllClasses(s.Base, s.Overrides, s.Effective)
}

// ClassesFor returns the class string of bp's effective state alone.
func (i *Inspector) ClassesFor(bp tw.Breakpoint) string {
	i.must()
	return i.cache.Classes(i.store.Current().Effective(bp), bp)
}

// Styles returns the inline style mapping for the current breakpoint.
func (i *Inspector) Styles() render.Style {
	i.must()
	s := i.store.Current()
	return i.cache.Generator().Styles(s.Effective(s.Current))
}

// CSS renders the current breakpoint's effective state as a CSS rule.
func (i *Inspector) CSS() string {
	i.must()
	s := i.store.Current()
	return i.formatter.CSS(s.Effective(s.Current))
}

// HTML renders the element with the aggregate classes and the current
// breakpoint's inline styles.
func (i *Inspector) HTML() (string, error) {
	i.must()
	s := i.store.Current()
	eff := s.Effective(s.Current)
	classes := i.cache.AllClasses(s.Base, s.Overrides, s.Effective)
	return i.formatter.HTML(eff, classes, i.cache.Generator().Styles(eff))
}

// Preview is what a viewport of Width pixels renders.
type Preview struct {
	Width      float32
	Breakpoint tw.Breakpoint
	State      state.StyleState
	Classes    string
	Style      render.Style
}

// Preview resolves the cascaded state at width: every override up to the
// active breakpoint applied smallest first.
func (i *Inspector) Preview(width float32) Preview {
	i.must()
	s := i.store.Current()
	bp := i.breakpoints.ActiveBreakpoint(width)
	eff := s.Cascade(width, i.breakpoints)
	gen := i.cache.Generator()
	return Preview{
		Width:      width,
		Breakpoint: bp,
		State:      eff,
		Classes:    gen.Classes(eff, tw.BreakpointBase),
		Style:      gen.Styles(eff),
	}
}
