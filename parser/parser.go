/*
File    : wisp/parser/parser.go
Package parser implements a recursive-descent parser over a token
sequence, producing either a list of statement ASTs (program mode) or a
single expression AST (expression mode). Parse errors are collected
rather than raised immediately, and the parser recovers at a statement
boundary via panic-mode synchronization so later errors in the same
source can still be reported.
*/
package parser

import (
	"fmt"

	"github.com/wisp-lang/wisp/ast"
	"github.com/wisp-lang/wisp/token"
	"github.com/wisp-lang/wisp/value"
)

// Parser walks a token sequence with a single-token lookahead.
type Parser struct {
	tokens  []token.Token
	current int

	// Errors accumulates every reported parse error in "[line L] ..."
	// form, mirroring the teacher's Errors/HasErrors/GetErrors idiom.
	Errors []string
}

// New creates a Parser over an already-scanned token sequence.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether any parse error was recorded.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// GetErrors returns every recorded parse error, in report order.
func (p *Parser) GetErrors() []string {
	return p.Errors
}

func (p *Parser) addError(msg string) {
	p.Errors = append(p.Errors, msg)
}

// ParseProgram repeatedly parses a declaration until EOF, implementing
// the `program := declaration* EOF` production.
func (p *Parser) ParseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// ParseExpression parses a single expression, implementing the
// `parse_expression` entry point used by the `parse`/`evaluate`
// subcommands.
func (p *Parser) ParseExpression() ast.Expr {
	defer func() {
		recover() // a parse error signal unwinds to here; errors already recorded
	}()
	return p.assignment()
}

// parseError is a sentinel panic value used to unwind out of a failed
// production back to a point the caller can recover and continue from.
type parseError struct{}

// ---- declarations & statements ----

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")

	var initializer ast.Expr = &ast.Literal{Value: value.Nil}
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.LeftBrace):
		return &ast.Block{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Condition: condition, Body: body}
}

// forStatement parses `for (init; cond; incr) body` and desugars it
// immediately into a While, wrapped in a Block when an initializer is
// present, per spec §4.2.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expr: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: value.Bool(true)}
	}
	body = &ast.While{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.Print{Expr: expr}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.Expression{Expr: expr}
}

// ---- expressions, lowest to highest precedence ----

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		rhs := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assignment{Name: variable.Name, Value: rhs}
		}
		p.errorAt(equals, "Invalid assignment target.")
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		operator := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.primary()
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: value.Bool(false)}
	case p.match(token.True):
		return &ast.Literal{Value: value.Bool(true)}
	case p.match(token.Nil):
		return &ast.Literal{Value: value.Nil}
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.Super):
		keyword := p.previous()
		p.consume(token.Dot, "Expect '.' after 'super'.")
		method := p.consume(token.Identifier, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.This):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	default:
		p.errorAt(p.peek(), "Expect expression.")
		panic(parseError{})
	}
}

// ---- token stream helpers ----

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past the next token if it has the expected kind,
// else records a parse error and unwinds via parseError.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	panic(parseError{})
}

// errorAt records a parse error in the `"[line L] Error at ..." form
// specified by spec §4.2.
func (p *Parser) errorAt(tok token.Token, message string) {
	if tok.Kind == token.EOF {
		p.addError(fmt.Sprintf("[line %d] Error at end %s", tok.Line, message))
	} else {
		p.addError(fmt.Sprintf("[line %d] Error at '%s': %s", tok.Line, tok.Lexeme, message))
	}
}

// synchronize discards tokens after a parse error until it reaches a
// plausible statement boundary: just past a semicolon, or right before
// a token that starts a new declaration/statement.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
