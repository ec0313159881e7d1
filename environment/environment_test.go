package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisp-lang/wisp/token"
	"github.com/wisp-lang/wisp/value"
)

func nameToken(lexeme string) token.Token {
	return token.New(token.Identifier, lexeme, 1)
}

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", value.Number(1))

	v, err := env.Get(nameToken("a"))
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestEnvironment_GetUndefinedFails(t *testing.T) {
	env := New(nil)
	_, err := env.Get(nameToken("missing"))
	assert.EqualError(t, err, "Undefined variable 'missing'.")
}

func TestEnvironment_GetRecursesToEnclosing(t *testing.T) {
	outer := New(nil)
	outer.Define("a", value.Number(1))
	inner := New(outer)

	v, err := inner.Get(nameToken("a"))
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestEnvironment_InnerShadowsOuter(t *testing.T) {
	outer := New(nil)
	outer.Define("a", value.Number(1))
	inner := New(outer)
	inner.Define("a", value.Number(2))

	v, err := inner.Get(nameToken("a"))
	assert.NoError(t, err)
	assert.Equal(t, value.Number(2), v)

	outerV, err := outer.Get(nameToken("a"))
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), outerV)
}

func TestEnvironment_AssignUpdatesDefiningScope(t *testing.T) {
	outer := New(nil)
	outer.Define("a", value.Number(1))
	inner := New(outer)

	err := inner.Assign(nameToken("a"), value.Number(42))
	assert.NoError(t, err)

	v, _ := outer.Get(nameToken("a"))
	assert.Equal(t, value.Number(42), v)
}

func TestEnvironment_AssignUndefinedFails(t *testing.T) {
	env := New(nil)
	err := env.Assign(nameToken("missing"), value.Number(1))
	assert.EqualError(t, err, "Undefined variable 'missing'.")
}
