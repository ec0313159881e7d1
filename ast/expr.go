/*
File    : wisp/ast/expr.go
Package ast defines the expression and statement node types produced by
the parser. Nodes are tagged Go structs implementing marker interfaces
(Expr, Stmt); the interpreter and printer dispatch on them with a type
switch rather than a visitor/Accept pair.
*/
package ast

import (
	"github.com/wisp-lang/wisp/token"
	"github.com/wisp-lang/wisp/value"
)

// Expr is implemented by every expression AST node.
type Expr interface {
	exprNode()
}

// Literal holds a constant value produced directly by the scanner.
type Literal struct {
	Value value.Value
}

// Grouping wraps a parenthesized sub-expression.
type Grouping struct {
	Inner Expr
}

// Unary is a prefix operator applied to a single operand (`-x`, `!x`).
type Unary struct {
	Operator token.Token
	Right    Expr
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Logical is `and`/`or`, evaluated with short-circuiting.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

// Assignment updates an existing binding and evaluates to the new value.
type Assignment struct {
	Name  token.Token
	Value Expr
}

// Call is reserved for function/method invocation. Spec §4.2's grammar
// never produces this node (no call-expression production exists); it
// exists only as a placeholder per the data model in spec §3.
type Call struct {
	Callee       Expr
	ClosingParen token.Token
	Arguments    []Expr
}

// Get is reserved for property access on an instance. Like Call, it has
// no grammar production and is never constructed by the parser.
type Get struct {
	Object Expr
	Name   token.Token
}

// Set is reserved for property assignment on an instance. Never
// constructed by the parser.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

// This is reachable via primary's "this" production; the parser does
// build this node, but the interpreter has no evaluation semantics for
// it yet and returns a "not implemented" runtime error.
type This struct {
	Keyword token.Token
}

// Super is reachable via primary's "super" "." IDENT production; like
// This, it parses but has no interpreter semantics yet.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (*Literal) exprNode()    {}
func (*Grouping) exprNode()   {}
func (*Unary) exprNode()      {}
func (*Binary) exprNode()     {}
func (*Logical) exprNode()    {}
func (*Variable) exprNode()   {}
func (*Assignment) exprNode() {}
func (*Call) exprNode()       {}
func (*Get) exprNode()        {}
func (*Set) exprNode()        {}
func (*This) exprNode()       {}
func (*Super) exprNode()      {}
