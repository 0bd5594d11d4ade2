package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/vira/diag"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		``,

		`1`,

		`let x = 1`,

		`let name: string = "vira"`,

		`func add(a: int, b: int) -> int [
			return a + b
		]`,

		`func main() -> int [
			let xs: array<int> = [1, 2, 3]
			write xs[0]
			return 0
		]`,

		`if a <= b && !done [ write "yes" ] else [ write "no" ]`,

		`while i < 10 [ write i ]`,

		`@ a line comment
		@@ a block
		comment @@
		let y = 2.5`,

		`<> math :: "std"`,

		`# = x # degrades into a comment`,

		`write "multi
		line"`,

		`let ñandú = "😊"`,
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i])
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		if assert.NotEmpty(t, tokens) {
			assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Type())
		}
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			`let x: int = 42`,
			[]TokenType{
				TokenLet,
				TokenIdentifier,
				TokenColon,
				TokenIntType,
				TokenEquals,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			`func add(a: int, b: float) -> bool [ return a ]`,
			[]TokenType{
				TokenFunc,
				TokenIdentifier,
				TokenLeftParen,
				TokenIdentifier,
				TokenColon,
				TokenIntType,
				TokenComma,
				TokenIdentifier,
				TokenColon,
				TokenFloatType,
				TokenRightParen,
				TokenArrow,
				TokenBoolType,
				TokenLeftBracket,
				TokenReturn,
				TokenIdentifier,
				TokenRightBracket,
				TokenEOF,
			},
		},
		{
			`<> :: -> == != <= >= && || < > = ! + - * / %`,
			[]TokenType{
				TokenImport,
				TokenFrom,
				TokenArrow,
				TokenEqualEqual,
				TokenBangEqual,
				TokenLessEqual,
				TokenGreaterEqual,
				TokenAnd,
				TokenOr,
				TokenLess,
				TokenGreater,
				TokenEquals,
				TokenBang,
				TokenPlus,
				TokenMinus,
				TokenStar,
				TokenSlash,
				TokenMod,
				TokenEOF,
			},
		},
		{
			`3.14 7 0.5`,
			[]TokenType{
				TokenFloat,
				TokenNumber,
				TokenFloat,
				TokenEOF,
			},
		},
		{
			`-1`,
			[]TokenType{
				TokenMinus,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			"@ note\nwrite \"hi\"",
			[]TokenType{
				TokenComment,
				TokenWrite,
				TokenString,
				TokenEOF,
			},
		},
		{
			"@@ multi\nline @@ x",
			[]TokenType{
				TokenMultiComment,
				TokenIdentifier,
				TokenEOF,
			},
		},
		{
			`@ unterminated line comments end at EOF`,
			[]TokenType{
				TokenComment,
				TokenEOF,
			},
		},
		{
			`# = a # rest`,
			[]TokenType{
				TokenHashEqual,
				TokenIdentifier,
				TokenComment,
				TokenEOF,
			},
		},
		{
			`#= a`,
			[]TokenType{
				TokenComment,
				TokenEOF,
			},
		},
		{
			`and or true false array string if else while for _tmp1`,
			[]TokenType{
				TokenAnd,
				TokenOr,
				TokenTrue,
				TokenFalse,
				TokenArrayType,
				TokenStringType,
				TokenIf,
				TokenElse,
				TokenWhile,
				TokenFor,
				TokenIdentifier,
				TokenEOF,
			},
		},
		{
			`xs[0](a, b)`,
			[]TokenType{
				TokenIdentifier,
				TokenLeftBracket,
				TokenNumber,
				TokenRightBracket,
				TokenLeftParen,
				TokenIdentifier,
				TokenComma,
				TokenIdentifier,
				TokenRightParen,
				TokenEOF,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestLexemes(t *testing.T) {
	tokens, err := Tokenize(`let s = "a b" @ c`)
	require.NoError(t, err)

	lexemes := make([]string, 0, len(tokens))
	for i := range tokens {
		lexemes = append(lexemes, tokens[i].Text())
	}

	assert.Equal(t, []string{"let", "s", "=", `"a b"`, "@ c", ""}, lexemes)
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{
				{1, 1},
			},
		},
		{
			"1",
			[][2]int{
				{1, 1}, {1, 2},
			},
		},
		{
			"\n\n\n\n",
			[][2]int{
				{5, 1},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{4, 1}, {4, 7},
				{5, 1},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 1},
				{3, 3}, {3, 8},
			},
		},
		{
			"\"a\nb\" c",
			[][2]int{
				{1, 1},
				{2, 4}, {2, 5},
			},
		},
		{
			"é x",
			[][2]int{
				{1, 1}, {1, 3}, {1, 4},
			},
		},
		{
			"a->b",
			[][2]int{
				{1, 1}, {1, 2}, {1, 4}, {1, 5},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].line, tokens[i].col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens), "input: %q", testCases[i].In)
	}
}

func TestLexicalErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Pos  [2]int
		Read int
	}{
		{`"abc`, ErrUnterminatedString, [2]int{1, 1}, 0},
		{`let s = "abc`, ErrUnterminatedString, [2]int{1, 9}, 3},
		{"let s =\n  \"abc\ndef", ErrUnterminatedString, [2]int{2, 3}, 3},
		{`@@ never closed`, ErrUnterminatedMultiComment, [2]int{1, 1}, 0},
		{`x @@ almost @`, ErrUnterminatedMultiComment, [2]int{1, 3}, 1},
		{`let x = 1 $`, ErrUnexpectedCharacter, [2]int{1, 11}, 4},
		{`a & b`, ErrUnexpectedCharacter, [2]int{1, 3}, 1},
		{`a | b`, ErrUnexpectedCharacter, [2]int{1, 3}, 1},
		{`x.y`, ErrUnexpectedCharacter, [2]int{1, 2}, 1},
		{`1.`, ErrUnexpectedCharacter, [2]int{1, 2}, 1},
		{`{ }`, ErrUnexpectedCharacter, [2]int{1, 1}, 0},
	}

	for _, tc := range testCases {
		tokens, err := Tokenize(tc.In)
		require.Error(t, err, "input: %q", tc.In)

		assert.ErrorIs(t, err, tc.Err, "input: %q", tc.In)

		var d *diag.Diagnostic
		require.ErrorAs(t, err, &d)
		assert.Equal(t, diag.SeverityLexical, d.Severity)
		assert.Equal(t, tc.Pos, [2]int{d.Line, d.Column}, "input: %q", tc.In)

		assert.Len(t, tokens, tc.Read, "input: %q", tc.In)
		for i := range tokens {
			assert.NotEqual(t, TokenEOF, tokens[i].Type())
		}
	}
}
