/*
File    : wisp/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisp-lang/wisp/ast"
	"github.com/wisp-lang/wisp/lexer"
)

func parseExpr(src string) (ast.Expr, *Parser) {
	lex := lexer.New(src)
	tokens := lex.ScanTokens()
	p := New(tokens)
	return p.ParseExpression(), p
}

func parseProgram(src string) ([]ast.Stmt, *Parser) {
	lex := lexer.New(src)
	tokens := lex.ScanTokens()
	p := New(tokens)
	return p.ParseProgram(), p
}

func TestParser_ParseExpression_Binary(t *testing.T) {
	expr, p := parseExpr("1 + 2 * 3")
	assert.False(t, p.HasErrors())

	bin, ok := expr.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Operator.Lexeme)

	left, ok := bin.Left.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, float64(1), left.Value.AsNumber())

	right, ok := bin.Right.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "*", right.Operator.Lexeme)
}

func TestParser_ParseExpression_GroupingAndUnary(t *testing.T) {
	expr, p := parseExpr("(1 + 2) * -3")
	assert.False(t, p.HasErrors())

	bin, ok := expr.(*ast.Binary)
	assert.True(t, ok)

	_, ok = bin.Left.(*ast.Grouping)
	assert.True(t, ok)

	unary, ok := bin.Right.(*ast.Unary)
	assert.True(t, ok)
	assert.Equal(t, "-", unary.Operator.Lexeme)
}

func TestParser_ParseExpression_InvalidAssignmentTarget(t *testing.T) {
	_, p := parseExpr("1 = 2")
	assert.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0], "Invalid assignment target.")
}

func TestParser_ParseExpression_MissingClosingParen(t *testing.T) {
	_, p := parseExpr("(1 + 2")
	assert.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0], "Expect ')' after expression.")
}

func TestParser_ParseProgram_VarAndBlockShadowing(t *testing.T) {
	stmts, p := parseProgram(`var a = 1; { var a = 2; print a; } print a;`)
	assert.False(t, p.HasErrors())
	assert.Equal(t, 3, len(stmts))

	_, ok := stmts[0].(*ast.Var)
	assert.True(t, ok)

	block, ok := stmts[1].(*ast.Block)
	assert.True(t, ok)
	assert.Equal(t, 2, len(block.Statements))
}

func TestParser_ParseProgram_ForDesugarsToWhile(t *testing.T) {
	stmts, p := parseProgram(`for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.False(t, p.HasErrors())
	assert.Equal(t, 1, len(stmts))

	outer, ok := stmts[0].(*ast.Block)
	assert.True(t, ok)
	assert.Equal(t, 2, len(outer.Statements))

	_, ok = outer.Statements[0].(*ast.Var)
	assert.True(t, ok)

	whileStmt, ok := outer.Statements[1].(*ast.While)
	assert.True(t, ok)

	body, ok := whileStmt.Body.(*ast.Block)
	assert.True(t, ok)
	assert.Equal(t, 2, len(body.Statements))
}

func TestParser_ParseProgram_SynchronizeRecoversAfterError(t *testing.T) {
	stmts, p := parseProgram(`print ; var x = 1;`)
	assert.True(t, p.HasErrors())
	// synchronize should resume parsing after the bad statement and
	// still pick up the subsequent var declaration
	found := false
	for _, s := range stmts {
		if _, ok := s.(*ast.Var); ok {
			found = true
		}
	}
	assert.True(t, found)
}
