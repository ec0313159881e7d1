/*
File    : wisp/printer/printer.go
Package printer renders an expression AST as a fully-parenthesized
prefix string, used by the `parse` subcommand. It dispatches on the
concrete ast.Expr type with a type switch, the same style the
interpreter's eval uses, rather than a separate visitor/Accept pair.
*/
package printer

import (
	"strings"

	"github.com/wisp-lang/wisp/ast"
)

// Print renders expr as a fully-parenthesized prefix string.
func Print(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Literal:
		if e.Value.IsString() {
			return e.Value.AsString()
		}
		if e.Value.IsNumber() {
			return e.Value.LiteralRepr()
		}
		return e.Value.Stringify()
	case *ast.Grouping:
		return parenthesize("group", e.Inner)
	case *ast.Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *ast.Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *ast.Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *ast.Variable:
		return e.Name.Lexeme
	case *ast.Assignment:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	default:
		// Call/Get/Set/This/Super are not required by the `parse`
		// subcommand (spec §4.3); report rather than silently produce
		// a misleading rendering.
		return "not supported"
	}
}

func parenthesize(name string, exprs ...ast.Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(Print(e))
	}
	b.WriteByte(')')
	return b.String()
}
