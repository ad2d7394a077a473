// Package builtin implements Sol's Builtin Registry (spec §6): the
// fixed set of builtins the evaluator falls back to whenever a free
// identifier is not bound in the environment. The evaluator never
// inspects a Builtin beyond its declared arity range and its Invoke
// handle — every concrete builtin family (arithmetic, collections,
// strings, I/O, ...) lives in its own file here, grounded on the
// teacher's std/*.go split.
package builtin

import "github.com/hyperswine/sol/value"

// Registry is a name-to-Builtin lookup table populated once at
// startup and shared read-only across the whole run, including every
// REPL statement.
type Registry struct {
	entries map[string]*value.Builtin
}

// NewRegistry builds the Registry with every builtin required by spec
// §6 plus the supplemented families described in SPEC_FULL.md §11.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]*value.Builtin)}
	registerArith(r)
	registerCore(r)
	registerHigherOrder(r)
	registerCollections(r)
	registerResult(r)
	registerOS(r)
	registerFileIO(r)
	registerStrings(r)
	registerMath(r)
	registerTime(r)
	registerJSON(r)
	registerCrypto(r)
	registerRegex(r)
	registerHTTP(r)
	return r
}

func (r *Registry) register(b *value.Builtin) {
	r.entries[b.Name] = b
}

// Lookup resolves name against the registry, the evaluator's fallback
// path once the environment chain has been exhausted (spec §4.5).
func (r *Registry) Lookup(name string) (*value.Builtin, bool) {
	b, ok := r.entries[name]
	return b, ok
}
