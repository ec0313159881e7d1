/*
File    : wisp/interpreter/statements.go
*/
package interpreter

import (
	"fmt"

	"github.com/wisp-lang/wisp/ast"
	"github.com/wisp-lang/wisp/environment"
)

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.eval(s.Expr)
		return err
	case *ast.Print:
		v, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Writer, v.Stringify())
		return nil
	case *ast.Var:
		v, err := in.eval(s.Initializer)
		if err != nil {
			return err
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil
	case *ast.Block:
		return in.executeBlock(s.Statements, environment.New(in.env))
	case *ast.If:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil
	case *ast.While:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.Function:
		return &RuntimeError{Line: s.Name.Line, Message: "not implemented: fun"}
	case *ast.Return:
		return &RuntimeError{Line: s.Keyword.Line, Message: "not implemented: return"}
	case *ast.Class:
		return &RuntimeError{Line: s.Name.Line, Message: "not implemented: class"}
	default:
		return fmt.Errorf("interpreter: unhandled statement type %T", stmt)
	}
}

// executeBlock pushes env as the current scope, executes every
// statement in order, then restores the prior environment on every
// exit path — normal completion or error — per spec §4.5/§5's scoped
// acquisition discipline.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
