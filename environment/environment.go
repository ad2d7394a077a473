// Package environment implements Sol's lexical scope chain (spec
// §4.3): an inner name-to-value mapping plus a parent pointer. Lookup
// walks outward; assignment always writes to the innermost frame —
// simpler than a teacher-style walk-up Assign, since Sol has no
// enclosing-scope mutation: every binding form (`x = e.`, parameter
// binding) introduces a name in the current frame only.
package environment

import "github.com/hyperswine/sol/value"

// Environment is one frame of the scope chain.
type Environment struct {
	vars   map[string]value.Value
	parent *Environment
}

// New creates a frame whose lookups fall through to parent. parent may
// be nil for the outermost (REPL/file) frame.
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), parent: parent}
}

// Get resolves name by walking outward from this frame.
func (e *Environment) Get(name string) (value.Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Bind sets name in this frame only, per spec §4.5's assignment rule.
func (e *Environment) Bind(name string, v value.Value) {
	e.vars[name] = v
}

// Parent returns the enclosing frame, or nil at the outermost frame.
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Names returns every name bound in this frame, in no particular
// order. Used by the REPL's /scope introspection command; nothing in
// evaluation itself needs to enumerate a frame.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for n := range e.vars {
		names = append(names, n)
	}
	return names
}
