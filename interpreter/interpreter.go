/*
File    : wisp/interpreter/interpreter.go
Package interpreter tree-walks the statement and expression ASTs
produced by the parser, evaluating them against a chained environment.
Runtime errors are explicit *RuntimeError return values rather than
panics; the interpreter's two entry points, Interpret and
InterpretExpression, stop at the first runtime error they encounter.
*/
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/wisp-lang/wisp/ast"
	"github.com/wisp-lang/wisp/environment"
	"github.com/wisp-lang/wisp/token"
	"github.com/wisp-lang/wisp/value"
)

// RuntimeError is a typed runtime failure, carrying the source line the
// failure occurred on so the CLI can render `"[line L] Error: MSG"`.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

func newRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: tok.Line, Message: fmt.Sprintf(format, args...)}
}

// Interpreter holds a shared handle to the current environment and the
// writer `print` statements write to.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Writer  io.Writer
}

// New creates an Interpreter with a fresh global environment, writing
// `print` output to os.Stdout by default.
func New() *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{Globals: globals, env: globals, Writer: os.Stdout}
}

// SetWriter redirects `print` output, mirroring the teacher's injected
// io.Writer convention (eval.Evaluator.SetWriter) over a hardwired
// global.
func (in *Interpreter) SetWriter(w io.Writer) {
	in.Writer = w
}

// Interpret executes each statement of a program in order, stopping at
// the first runtime error.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InterpretExpression evaluates a single expression and returns its
// stringified result.
func (in *Interpreter) InterpretExpression(expr ast.Expr) (string, error) {
	v, err := in.eval(expr)
	if err != nil {
		return "", err
	}
	return v.Stringify(), nil
}

func isNotImplemented(keyword token.Token, name string) *RuntimeError {
	return newRuntimeError(keyword, "not implemented: %s", name)
}

// ---- expressions ----

func (in *Interpreter) eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return in.eval(e.Inner)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Variable:
		v, err := in.env.Get(e.Name)
		if err != nil {
			return value.Nil, newRuntimeError(e.Name, "%s", err.Error())
		}
		return v, nil
	case *ast.Assignment:
		return in.evalAssignment(e)
	case *ast.This:
		return value.Nil, isNotImplemented(e.Keyword, "this")
	case *ast.Super:
		return value.Nil, isNotImplemented(e.Keyword, "super")
	case *ast.Call:
		return value.Nil, &RuntimeError{Line: e.ClosingParen.Line, Message: "not implemented: call"}
	case *ast.Get:
		return value.Nil, isNotImplemented(e.Name, "get")
	case *ast.Set:
		return value.Nil, isNotImplemented(e.Name, "set")
	default:
		return value.Nil, fmt.Errorf("interpreter: unhandled expression type %T", expr)
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return value.Nil, err
	}

	switch e.Operator.Kind {
	case token.Minus:
		if !right.IsNumber() {
			return value.Nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return value.Number(-right.AsNumber()), nil
	case token.Bang:
		return value.Bool(!right.Truthy()), nil
	default:
		return value.Nil, newRuntimeError(e.Operator, "Unknown unary operator '%s'.", e.Operator.Lexeme)
	}
}

// evalBinary evaluates the right operand before the left, per spec §4.5
// and §9 (an explicit, preserved design choice, not an oversight).
func (in *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return value.Nil, err
	}
	left, err := in.eval(e.Left)
	if err != nil {
		return value.Nil, err
	}

	switch e.Operator.Kind {
	case token.Minus:
		if !left.IsNumber() || !right.IsNumber() {
			return value.Nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return value.Number(left.AsNumber() - right.AsNumber()), nil
	case token.Slash:
		if !left.IsNumber() || !right.IsNumber() {
			return value.Nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return value.Number(left.AsNumber() / right.AsNumber()), nil
	case token.Star:
		if !left.IsNumber() || !right.IsNumber() {
			return value.Nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return value.Number(left.AsNumber() * right.AsNumber()), nil
	case token.Greater:
		if !left.IsNumber() || !right.IsNumber() {
			return value.Nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return value.Bool(left.AsNumber() > right.AsNumber()), nil
	case token.GreaterEqual:
		if !left.IsNumber() || !right.IsNumber() {
			return value.Nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return value.Bool(left.AsNumber() >= right.AsNumber()), nil
	case token.Less:
		if !left.IsNumber() || !right.IsNumber() {
			return value.Nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return value.Bool(left.AsNumber() < right.AsNumber()), nil
	case token.LessEqual:
		if !left.IsNumber() || !right.IsNumber() {
			return value.Nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return value.Bool(left.AsNumber() <= right.AsNumber()), nil
	case token.Plus:
		if left.IsNumber() && right.IsNumber() {
			return value.Number(left.AsNumber() + right.AsNumber()), nil
		}
		if left.IsString() && right.IsString() {
			return value.String(left.AsString() + right.AsString()), nil
		}
		return value.Nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case token.BangEqual:
		return value.Bool(!left.Equal(right)), nil
	case token.EqualEqual:
		return value.Bool(left.Equal(right)), nil
	default:
		return value.Nil, newRuntimeError(e.Operator, "Unknown binary operator '%s'.", e.Operator.Lexeme)
	}
}

// evalLogical short-circuits: `or` returns the left operand unchanged
// when it is truthy, `and` returns it unchanged when it is falsy;
// otherwise it returns the evaluated right operand. The returned value
// is never coerced to Bool.
func (in *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return value.Nil, err
	}

	if e.Operator.Kind == token.Or {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalAssignment(e *ast.Assignment) (value.Value, error) {
	v, err := in.eval(e.Value)
	if err != nil {
		return value.Nil, err
	}
	if err := in.env.Assign(e.Name, v); err != nil {
		return value.Nil, newRuntimeError(e.Name, "%s", err.Error())
	}
	return v, nil
}
