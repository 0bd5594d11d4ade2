package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/vira/lexer"
)

func TestLiteralValues(t *testing.T) {
	testCases := []struct {
		Token lexer.Token
		Value string
		Out   interface{}
	}{
		{lexer.NewToken(lexer.TokenNumber, "42", 1, 1), "42", int64(42)},
		{lexer.NewToken(lexer.TokenFloat, "2.50", 1, 1), "2.50", float64(2.5)},
		{lexer.NewToken(lexer.TokenString, `"hello world"`, 1, 1), "hello world", "hello world"},
		{lexer.NewToken(lexer.TokenString, `""`, 1, 1), "", ""},
		{lexer.NewToken(lexer.TokenTrue, "true", 1, 1), "true", true},
		{lexer.NewToken(lexer.TokenFalse, "false", 1, 1), "false", false},
		{lexer.NewToken(lexer.TokenIdentifier, "counter", 1, 1), "counter", "counter"},
	}

	for _, tc := range testCases {
		lit, err := NewLiteral(tc.Token)
		require.NoError(t, err)

		assert.Equal(t, tc.Token.Type(), lit.Kind)
		assert.Equal(t, tc.Value, lit.Value)
		assert.Equal(t, tc.Out, lit.Interface())
		assert.Equal(t, tc.Token, lit.Token())
	}
}

func TestLiteralErrors(t *testing.T) {
	{
		_, err := NewLiteral(lexer.NewToken(lexer.TokenNumber, "99999999999999999999", 1, 1))
		assert.Error(t, err)
	}

	{
		_, err := NewLiteral(lexer.NewToken(lexer.TokenPlus, "+", 1, 1))
		assert.ErrorIs(t, err, ErrNotLiteral)
	}

	{
		_, err := NewLiteral(lexer.NewToken(lexer.TokenString, `"`, 1, 1))
		assert.ErrorIs(t, err, ErrNotLiteral)
	}
}
