package state

import (
	"fmt"
	"maps"
	"slices"

	"github.com/agiangrant/inspector/tw"
)

// Snapshot is one immutable version of the inspector state. Every setter
// returns a new Snapshot with Version incremented; the receiver is never
// modified, so a Snapshot can be shared freely between goroutines.
type Snapshot struct {
	Version uint64
	Base    StyleState
	// Overrides holds one overlay per breakpoint. All six keys are present;
	// the base entry is always empty because base edits land in Base.
	Overrides map[tw.Breakpoint]PartialState
	// Current decides which bucket Set and SetClasses write to.
	Current tw.Breakpoint
}

// NewSnapshot returns version 0 of a state rooted at base, with an empty
// overlay registered for every breakpoint.
func NewSnapshot(base StyleState) Snapshot {
	overrides := make(map[tw.Breakpoint]PartialState, len(tw.Breakpoints()))
	for _, bp := range tw.Breakpoints() {
		overrides[bp] = PartialState{}
	}
	return Snapshot{Base: base.Clone(), Overrides: overrides}
}

// Override returns the overlay registered for bp.
func (s Snapshot) Override(bp tw.Breakpoint) PartialState {
	return s.Overrides[bp]
}

// Effective resolves the flattened state for bp: Base for base, otherwise Base
// with that breakpoint's overlay merged on top. Intermediate breakpoints do not
// participate; see Cascade for the mobile-first preview.
func (s Snapshot) Effective(bp tw.Breakpoint) StyleState {
	if bp == tw.BreakpointBase {
		return s.Base.Clone()
	}
	return s.Base.Merge(s.Overrides[bp])
}

// Cascade resolves the state a viewport of the given width would see: every
// overlay from sm up to the active breakpoint is applied in order, smallest
// first.
func (s Snapshot) Cascade(width float32, cfg tw.BreakpointConfig) StyleState {
	active := cfg.ActiveBreakpoint(width)
	out := s.Base.Clone()
	for _, bp := range tw.Breakpoints()[1:] {
		if bp > active {
			break
		}
		out = out.Merge(s.Overrides[bp])
	}
	return out
}

// Get reads path from the effective state of the current breakpoint.
func (s Snapshot) Get(path string) (string, error) {
	return s.Effective(s.Current).Get(path)
}

// Set writes value at path into the current breakpoint's bucket.
func (s Snapshot) Set(path, value string) (Snapshot, error) {
	return s.SetAt(s.Current, path, value)
}

// SetAt writes value at path for bp. Unknown paths return ErrUnknownField and
// the receiver unchanged.
func (s Snapshot) SetAt(bp tw.Breakpoint, path, value string) (Snapshot, error) {
	if !bp.Valid() {
		return s, fmt.Errorf("state: invalid breakpoint %d", int(bp))
	}
	if bp == tw.BreakpointBase {
		base, err := s.Base.With(path, value)
		if err != nil {
			return s, err
		}
		next := s.next()
		next.Base = base
		return next, nil
	}
	o, err := s.Overrides[bp].With(path, value)
	if err != nil {
		return s, err
	}
	next := s.next()
	next.Overrides[bp] = o
	return next, nil
}

// Unset drops the override at path for bp so the base value shows through.
// At base it restores the neutral default for that field.
func (s Snapshot) Unset(bp tw.Breakpoint, path string) (Snapshot, error) {
	if bp == tw.BreakpointBase {
		def, err := Default().Get(path)
		if err != nil {
			return s, err
		}
		return s.SetAt(bp, path, def)
	}
	o, err := s.Overrides[bp].Without(path)
	if err != nil {
		return s, err
	}
	next := s.next()
	next.Overrides[bp] = o
	return next, nil
}

// SetClasses replaces the literal class list in the current breakpoint's bucket.
func (s Snapshot) SetClasses(classes []string) Snapshot {
	next := s.next()
	if s.Current == tw.BreakpointBase {
		next.Base.TailwindClasses = slices.Clone(classes)
		return next
	}
	o := next.Overrides[s.Current].Clone()
	o.TailwindClasses = slices.Clone(classes)
	if o.TailwindClasses == nil {
		o.TailwindClasses = []string{}
	}
	next.Overrides[s.Current] = o
	return next
}

// WithBreakpoint switches the bucket that subsequent edits land in.
func (s Snapshot) WithBreakpoint(bp tw.Breakpoint) (Snapshot, error) {
	if !bp.Valid() {
		return s, fmt.Errorf("state: invalid breakpoint %d", int(bp))
	}
	next := s.next()
	next.Current = bp
	return next, nil
}

// ClearBreakpoint resets bp's overlay to empty. The entry stays registered.
// Base has no overlay to clear, so clearing it only bumps the version.
func (s Snapshot) ClearBreakpoint(bp tw.Breakpoint) Snapshot {
	next := s.next()
	if bp.Valid() {
		next.Overrides[bp] = PartialState{}
	}
	return next
}

// WithOverride replaces bp's overlay wholesale. A base overlay is merged into
// Base instead of being stored.
func (s Snapshot) WithOverride(bp tw.Breakpoint, p PartialState) (Snapshot, error) {
	if !bp.Valid() {
		return s, fmt.Errorf("state: invalid breakpoint %d", int(bp))
	}
	next := s.next()
	if bp == tw.BreakpointBase {
		next.Base = next.Base.Merge(p)
		return next, nil
	}
	next.Overrides[bp] = p.Clone()
	return next, nil
}

// next copies the receiver for a write: the override map is duplicated so the
// previous version keeps its own entries.
func (s Snapshot) next() Snapshot {
	out := s
	out.Version++
	out.Base = s.Base.Clone()
	out.Overrides = maps.Clone(s.Overrides)
	if out.Overrides == nil {
		out.Overrides = make(map[tw.Breakpoint]PartialState, len(tw.Breakpoints()))
	}
	for _, bp := range tw.Breakpoints() {
		if _, ok := out.Overrides[bp]; !ok {
			out.Overrides[bp] = PartialState{}
		}
	}
	return out
}
