// Package environment implements the frame chain turtle-Logo's evaluator
// walks variable references through (spec.md §3): a stack of frames, each
// a name-to-Value mapping with an optional parent.
//
// Grounded on the teacher's scope.Scope (map of bindings + *Scope parent,
// LookUp walking the chain), but split into Make/Local to match spec.md's
// two distinct assignment forms instead of the teacher's single Bind:
//   - Make walks up the chain and assigns into the nearest frame that
//     already defines the name, creating the binding in the current frame
//     only if the name is undefined anywhere.
//   - Local always creates an (unset) binding in the current frame,
//     shadowing any outer binding of the same name.
package environment

import "github.com/gologo/turtlelogo/internal/object"

// Environment is one frame of the chain: the global frame has a nil
// Parent; every procedure invocation and `for` loop pushes a fresh one
// whose Parent is fixed at creation time (spec.md §4.4: procedure frames
// always chain to the *global* environment, not the caller's frame).
type Environment struct {
	vars   map[string]object.Value
	Parent *Environment
}

// New creates an empty frame with the given parent (nil for the global
// frame).
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]object.Value), Parent: parent}
}

// Lookup searches this frame and then each parent in turn, innermost
// first, per spec.md §3.
func (e *Environment) Lookup(name string) (object.Value, bool) {
	for f := e; f != nil; f = f.Parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Make assigns value to name in the nearest enclosing frame that already
// binds it, walking outward from e; if no frame binds it, the binding is
// created in e itself (spec.md §3, §4.3 `make`).
func (e *Environment) Make(name string, value object.Value) {
	for f := e; f != nil; f = f.Parent {
		if _, ok := f.vars[name]; ok {
			f.vars[name] = value
			return
		}
	}
	e.vars[name] = value
}

// Local creates a binding for name in the current frame only (unset,
// represented as object.Void until assigned), shadowing any outer binding
// (spec.md §3, §4.3 `local`).
func (e *Environment) Local(name string) {
	e.vars[name] = &object.Void{}
}

// Define binds name to value in the current frame unconditionally. Used
// to bind procedure parameters and `for` loop variables, which always
// live in the frame that was just pushed for them.
func (e *Environment) Define(name string, value object.Value) {
	e.vars[name] = value
}
