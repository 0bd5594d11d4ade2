package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/vira/lexer"
)

func tok(tt lexer.TokenType, text string) lexer.Token {
	return lexer.NewToken(tt, text, 1, 1)
}

func lit(t *testing.T, tt lexer.TokenType, text string) *Literal {
	n, err := NewLiteral(tok(tt, text))
	require.NoError(t, err)
	return n
}

func TestNodeTypes(t *testing.T) {
	one := lit(t, lexer.TokenNumber, "1")

	testCases := []struct {
		Node      Node
		Type      NodeType
		Statement bool
	}{
		{one, NodeTypeLiteral, false},
		{NewBinary(one, tok(lexer.TokenPlus, "+"), one), NodeTypeBinary, false},
		{NewUnary(tok(lexer.TokenMinus, "-"), one), NodeTypeUnary, false},
		{NewCall(tok(lexer.TokenIdentifier, "f"), nil), NodeTypeCall, false},
		{NewArrayLiteral(tok(lexer.TokenLeftBracket, "["), nil), NodeTypeArrayLiteral, false},
		{NewIndex(one, one), NodeTypeIndex, false},
		{NewVarDecl(tok(lexer.TokenLet, "let"), "x", "", one), NodeTypeVarDecl, true},
		{NewFuncDecl(tok(lexer.TokenFunc, "func"), "f", nil, "int", NewBlock(tok(lexer.TokenLeftBracket, "["), nil)), NodeTypeFuncDecl, true},
		{NewIfStmt(tok(lexer.TokenIf, "if"), one, one, nil), NodeTypeIfStmt, true},
		{NewWhileStmt(tok(lexer.TokenWhile, "while"), one, one), NodeTypeWhileStmt, true},
		{NewForStmt(tok(lexer.TokenFor, "for"), one, one, one, one), NodeTypeForStmt, true},
		{NewReturnStmt(tok(lexer.TokenReturn, "return"), nil), NodeTypeReturnStmt, true},
		{NewWriteStmt(tok(lexer.TokenWrite, "write"), one), NodeTypeWriteStmt, true},
		{NewBlock(tok(lexer.TokenLeftBracket, "["), nil), NodeTypeBlock, true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Type, tc.Node.Type())
		assert.Equal(t, tc.Statement, tc.Node.Type().IsStatement(), "%v", tc.Type)
		assert.Equal(t, !tc.Statement, tc.Node.Type().IsExpression(), "%v", tc.Type)
		assert.NotEqual(t, "invalid", tc.Type.String())
	}

	assert.Equal(t, "invalid", NodeTypeInvalid.String())
}

func TestBinaryStartsAtLeftOperand(t *testing.T) {
	left, err := NewLiteral(lexer.NewToken(lexer.TokenNumber, "1", 3, 7))
	require.NoError(t, err)

	bin := NewBinary(left, lexer.NewToken(lexer.TokenPlus, "+", 3, 9), lit(t, lexer.TokenNumber, "2"))

	line, col := bin.Token().Pos()
	assert.Equal(t, 3, line)
	assert.Equal(t, 7, col)
}

func TestInspect(t *testing.T) {
	// if x [ write f(1, 2) ] else [ return ]
	x := lit(t, lexer.TokenIdentifier, "x")
	call := NewCall(tok(lexer.TokenIdentifier, "f"), []Node{
		lit(t, lexer.TokenNumber, "1"),
		lit(t, lexer.TokenNumber, "2"),
	})
	then := NewBlock(tok(lexer.TokenLeftBracket, "["), []Node{NewWriteStmt(tok(lexer.TokenWrite, "write"), call)})
	els := NewBlock(tok(lexer.TokenLeftBracket, "["), []Node{NewReturnStmt(tok(lexer.TokenReturn, "return"), nil)})
	root := NewIfStmt(tok(lexer.TokenIf, "if"), x, then, els)

	var visited []NodeType
	Inspect(root, func(n Node) bool {
		visited = append(visited, n.Type())
		return true
	})

	assert.Equal(t, []NodeType{
		NodeTypeIfStmt,
		NodeTypeLiteral,
		NodeTypeBlock,
		NodeTypeWriteStmt,
		NodeTypeCall,
		NodeTypeLiteral,
		NodeTypeLiteral,
		NodeTypeBlock,
		NodeTypeReturnStmt,
	}, visited)

	var blocks int
	Inspect(root, func(n Node) bool {
		if n.Type() == NodeTypeBlock {
			blocks++
			return false
		}
		return true
	})
	assert.Equal(t, 2, blocks)
}

func TestEncode(t *testing.T) {
	one := lit(t, lexer.TokenNumber, "1")
	two := lit(t, lexer.TokenNumber, "2")
	s := lit(t, lexer.TokenString, `"a \"b\""`)
	lbr := tok(lexer.TokenLeftBracket, "[")

	testCases := []struct {
		In  []Node
		Out string
	}{
		{nil, ``},
		{[]Node{one, two}, `1 2`},
		{[]Node{s}, `"a \\\"b\\\""`},
		{[]Node{NewBinary(NewBinary(one, tok(lexer.TokenMinus, "-"), two), tok(lexer.TokenMinus, "-"), one)}, `(- (- 1 2) 1)`},
		{[]Node{NewUnary(tok(lexer.TokenBang, "!"), lit(t, lexer.TokenTrue, "true"))}, `(! true)`},
		{[]Node{NewArrayLiteral(lbr, []Node{one, two})}, `[1 2]`},
		{[]Node{NewArrayLiteral(lbr, nil)}, `[]`},
		{[]Node{NewIndex(lit(t, lexer.TokenIdentifier, "xs"), one)}, `(index xs 1)`},
		{[]Node{NewCall(tok(lexer.TokenIdentifier, "f"), nil)}, `(call f)`},
		{[]Node{NewVarDecl(tok(lexer.TokenLet, "let"), "x", "array<int>", NewArrayLiteral(lbr, nil))}, `(let x:array<int> [])`},
		{[]Node{NewVarDecl(tok(lexer.TokenLet, "let"), "x", "", one)}, `(let x 1)`},
		{
			[]Node{NewFuncDecl(tok(lexer.TokenFunc, "func"), "add", []Param{{"a", "int"}, {"b", "int"}}, "int",
				NewBlock(lbr, []Node{NewReturnStmt(tok(lexer.TokenReturn, "return"), nil)}))},
			`(func add (a:int b:int) int (block (return)))`,
		},
		{[]Node{NewIfStmt(tok(lexer.TokenIf, "if"), one, NewBlock(lbr, nil), nil)}, `(if 1 (block))`},
		{[]Node{NewIfStmt(tok(lexer.TokenIf, "if"), one, NewBlock(lbr, nil), NewBlock(lbr, nil))}, `(if 1 (block) (block))`},
		{[]Node{NewWhileStmt(tok(lexer.TokenWhile, "while"), one, NewBlock(lbr, nil))}, `(while 1 (block))`},
		{[]Node{NewForStmt(tok(lexer.TokenFor, "for"), one, two, one, NewBlock(lbr, nil))}, `(for 1 2 1 (block))`},
		{[]Node{NewWriteStmt(tok(lexer.TokenWrite, "write"), s)}, `(write "a \\\"b\\\"")`},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, Encode(tc.In...))
	}
}

func TestPrint(t *testing.T) {
	x, err := NewLiteral(lexer.NewToken(lexer.TokenIdentifier, "x", 2, 9))
	require.NoError(t, err)

	decl := NewVarDecl(lexer.NewToken(lexer.TokenLet, "let", 2, 1), "y", "int",
		NewBinary(x, lexer.NewToken(lexer.TokenStar, "*", 2, 11), lit(t, lexer.TokenNumber, "3")))

	var buf bytes.Buffer
	Print(&buf, decl)

	expected := "" +
		"(var_decl): y int [2 1]\n" +
		"    (binary): * [2 9]\n" +
		"        (literal): identifier x [2 9]\n" +
		"        (literal): number 3 [1 1]\n"

	assert.Equal(t, expected, buf.String())
}
