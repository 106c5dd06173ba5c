package render

import (
	"github.com/agiangrant/inspector/state"
	"github.com/agiangrant/inspector/tw"
)

// Resolver returns the effective state for a breakpoint.
type Resolver func(tw.Breakpoint) state.StyleState

// AllClasses aggregates every breakpoint's classes with default options.
func AllClasses(base state.StyleState, overrides map[tw.Breakpoint]state.PartialState, resolve Resolver) string {
	return defaultGenerator.AllClasses(base, overrides, resolve)
}

// AllClasses generates base classes unprefixed, then each of sm through 2xl
// whose overlay is non-empty with its prefix, and joins the result with
// duplicates dropped (first occurrence kept).
func (g *Generator) AllClasses(base state.StyleState, overrides map[tw.Breakpoint]state.PartialState, resolve Resolver) string {
	return tw.Join(tw.Dedupe(collect(base, overrides, resolve, g.ClassList)))
}

// collect runs gen for base and every breakpoint that has an overlay.
func collect(base state.StyleState, overrides map[tw.Breakpoint]state.PartialState, resolve Resolver, gen func(state.StyleState, tw.Breakpoint) []string) []string {
	all := gen(base, tw.BreakpointBase)
	for _, bp := range tw.Breakpoints()[1:] {
		o, ok := overrides[bp]
		if !ok || o.IsEmpty() {
			continue
		}
		all = append(all, gen(resolve(bp), bp)...)
	}
	return all
}

// AllClassesFor is AllClasses over a snapshot.
func (g *Generator) AllClassesFor(s state.Snapshot) string {
	return g.AllClasses(s.Base, s.Overrides, s.Effective)
}
