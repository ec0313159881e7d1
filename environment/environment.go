/*
File    : wisp/environment/environment.go
Package environment implements the chained lexical scope used by the
interpreter: a node in a singly-linked chain of bindings, each sharing
ownership of its enclosing parent.
*/
package environment

import (
	"fmt"

	"github.com/wisp-lang/wisp/token"
	"github.com/wisp-lang/wisp/value"
)

// Environment is one lexical scope. A nil Enclosing marks the global
// scope.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// New creates an environment with the given enclosing scope (nil for
// the global scope).
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Enclosing: enclosing}
}

// Define unconditionally inserts or overwrites a binding in the
// current scope. Redefinition in the same scope is permitted.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name_token's lexeme in the current scope, then
// recursively in each enclosing scope, per spec §4.4.
func (e *Environment) Get(name token.Token) (value.Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return value.Nil, fmt.Errorf("Undefined variable '%s'.", name.Lexeme)
}

// Assign walks outward to the innermost scope that already contains
// name_token's lexeme and overwrites it there. It never traverses past
// a scope that already contains the name.
func (e *Environment) Assign(name token.Token, v value.Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = v
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, v)
	}
	return fmt.Errorf("Undefined variable '%s'.", name.Lexeme)
}

// Dump renders the bindings of this scope and every enclosing scope as
// "name = value" lines, innermost scope first, for the REPL's `/env`
// command. A shadowed outer binding is listed as well; the order within
// one scope is not defined.
func (e *Environment) Dump() []string {
	var lines []string
	for env := e; env != nil; env = env.Enclosing {
		for name, v := range env.values {
			lines = append(lines, fmt.Sprintf("%s = %s", name, v.Stringify()))
		}
	}
	return lines
}
