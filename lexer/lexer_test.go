/*
File    : wisp/lexer/lexer_test.go
*/
package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisp-lang/wisp/token"
)

func TestLexer_ScanTokens_Punctuation(t *testing.T) {
	lex := New("(,)")
	tokens := lex.ScanTokens()

	assert.False(t, lex.HadErrors())
	assert.Equal(t, 4, len(tokens))
	assert.Equal(t, token.LeftParen, tokens[0].Kind)
	assert.Equal(t, "(", tokens[0].Lexeme)
	assert.Equal(t, token.Comma, tokens[1].Kind)
	assert.Equal(t, token.RightParen, tokens[2].Kind)
	assert.Equal(t, token.EOF, tokens[3].Kind)
	assert.Equal(t, "", tokens[3].Lexeme)
}

func TestLexer_ScanTokens_TwoCharOperators(t *testing.T) {
	lex := New("! != = == < <= > >=")
	tokens := lex.ScanTokens()

	expected := []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
		token.EOF,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, kind := range expected {
		assert.Equal(t, kind, tokens[i].Kind)
	}
}

func TestLexer_ScanTokens_LineComment(t *testing.T) {
	lex := New("1 // this is ignored\n2")
	tokens := lex.ScanTokens()

	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, float64(1), tokens[0].Literal.AsNumber())
	assert.Equal(t, float64(2), tokens[1].Literal.AsNumber())
	assert.Equal(t, 2, tokens[1].Line)
}

func TestLexer_ScanTokens_UnterminatedString(t *testing.T) {
	var stderr bytes.Buffer
	lex := New("\"ab\n")
	lex.SetWriter(&stderr)
	tokens := lex.ScanTokens()

	assert.True(t, lex.HadErrors())
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, token.EOF, tokens[0].Kind)
	assert.Equal(t, "[line 2] Error: Unterminated string.\n", stderr.String())
}

func TestLexer_ScanTokens_StringLiteral(t *testing.T) {
	lex := New(`"hello world"`)
	tokens := lex.ScanTokens()

	assert.False(t, lex.HadErrors())
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal.AsString())
}

func TestLexer_ScanTokens_NumberLiteral(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{"3.00", 3},
	}
	for _, tc := range cases {
		lex := New(tc.src)
		tokens := lex.ScanTokens()
		assert.Equal(t, token.Number, tokens[0].Kind)
		assert.Equal(t, tc.want, tokens[0].Literal.AsNumber())
	}
}

func TestLexer_ScanTokens_NumberTrailingDotNotConsumed(t *testing.T) {
	lex := New("42.")
	tokens := lex.ScanTokens()

	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, float64(42), tokens[0].Literal.AsNumber())
	assert.Equal(t, token.Dot, tokens[1].Kind)
}

func TestLexer_ScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	lex := New("var x = true and false")
	tokens := lex.ScanTokens()

	expected := []token.Kind{
		token.Var, token.Identifier, token.Equal, token.True, token.And, token.False, token.EOF,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, kind := range expected {
		assert.Equal(t, kind, tokens[i].Kind)
	}
	assert.Equal(t, "x", tokens[1].Lexeme)
}

func TestLexer_ScanTokens_UnexpectedCharacter(t *testing.T) {
	var stderr bytes.Buffer
	lex := New("@")
	lex.SetWriter(&stderr)
	tokens := lex.ScanTokens()

	assert.True(t, lex.HadErrors())
	assert.Equal(t, token.EOF, tokens[0].Kind)
	assert.Equal(t, "[line 1] Error: Unexpected character: @\n", stderr.String())
}
