/*
File: scope/scope.go

Package scope implements a Nhotyp call-frame scope.

A Scope is flat by design: a call builds a fresh empty scope for its
frame, with no lexical capture and no access to the caller's scope.
There is no parent pointer here because Nhotyp functions never have one
to walk.
*/
package scope

import "github.com/nhotyp-run/nhotyp/value"

// Scope is the mapping from identifier to Value active during one call.
// The zero value is not ready for use; call New.
type Scope struct {
	vars map[string]value.Value
}

// New returns an empty scope, populated by parameter binding at call
// entry and augmented by subsequent assignment.
func New() *Scope {
	return &Scope{vars: make(map[string]value.Value)}
}

// Lookup returns the value bound to name in this scope, if any.
func (s *Scope) Lookup(name string) (value.Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Set binds name to v, overwriting any existing binding.
func (s *Scope) Set(name string, v value.Value) {
	s.vars[name] = v
}

// Snapshot returns a shallow copy of the current bindings, suitable for
// restoring with Restore. Used by the REPL driver's transactional rollback:
// the top-level scope is one component of the state it snapshots before
// each attempt.
func (s *Scope) Snapshot() map[string]value.Value {
	cp := make(map[string]value.Value, len(s.vars))
	for k, v := range s.vars {
		cp[k] = v
	}
	return cp
}

// Restore replaces the scope's bindings with snap, discarding anything
// bound since the snapshot was taken.
func (s *Scope) Restore(snap map[string]value.Value) {
	s.vars = snap
}
