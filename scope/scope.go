// Package scope implements the mutable lexical scope threaded through
// evaluation: a mapping from name to value, cloned on every
// user-function call so that definitions made inside a call do not
// escape to the caller.
package scope

import "github.com/gradia-lang/gradia/value"

// Scope is a mapping from binding name to value.Value. It is the
// language's only mutable shared resource: built-ins receive it by
// reference, user-function invocation operates on a cloned snapshot.
type Scope struct {
	vars map[string]value.Value
}

// New returns an empty scope.
func New() *Scope {
	return &Scope{vars: make(map[string]value.Value)}
}

// Get looks up a binding. The second result is false when unbound.
func (s *Scope) Get(name string) (value.Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Set inserts or overwrites a binding.
func (s *Scope) Set(name string, v value.Value) {
	s.vars[name] = v
}

// Clone returns a snapshot copy: a new scope with the same bindings,
// such that mutations to the clone are not visible in the original.
func (s *Scope) Clone() value.Scope {
	cp := make(map[string]value.Value, len(s.vars))
	for k, v := range s.vars {
		cp[k] = v
	}
	return &Scope{vars: cp}
}

// CloneScope is a typed convenience wrapper around Clone for callers
// that need a concrete *Scope rather than the value.Scope interface.
func (s *Scope) CloneScope() *Scope {
	return s.Clone().(*Scope)
}

var _ value.Scope = (*Scope)(nil)
