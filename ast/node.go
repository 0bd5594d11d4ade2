// Package ast defines the syntax tree built by the Vira parser.
//
// Node is a closed sum type: every variant is one of the pointer types in this
// file and consumers switch over them exhaustively. Nodes own their children,
// are built bottom-up and are not modified after construction.
package ast

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/xiam/vira/lexer"
)

// ErrNotLiteral is returned when building a literal from a token that can't
// hold a value.
var ErrNotLiteral = errors.New("token is not a literal")

// Node represents a node of the AST
type Node interface {
	// Type returns the variant of the node
	Type() NodeType
	// Token returns the token the node starts at
	Token() lexer.Token

	node()
}

type base struct {
	tok lexer.Token
}

func (b base) Token() lexer.Token {
	return b.tok
}

func (base) node() {}

// Param is a single function parameter: "name: type"
type Param struct {
	Name string
	Type string
}

func (p Param) String() string {
	return p.Name + ":" + p.Type
}

// Literal is a number, float, string, boolean or identifier
type Literal struct {
	base

	// Value is the source text, without quotes for strings
	Value string
	Kind  lexer.TokenType

	v interface{}
}

// NewLiteral creates a literal from a token, converting its text into a Go
// value.
func NewLiteral(tok lexer.Token) (*Literal, error) {
	lit := &Literal{base: base{tok}, Value: tok.Text(), Kind: tok.Type()}

	switch tok.Type() {
	case lexer.TokenNumber:
		i64, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return nil, err
		}
		lit.v = i64

	case lexer.TokenFloat:
		f64, err := strconv.ParseFloat(tok.Text(), 64)
		if err != nil {
			return nil, err
		}
		lit.v = f64

	case lexer.TokenString:
		text := tok.Text()
		if len(text) < 2 {
			return nil, fmt.Errorf("%w: malformed string %q", ErrNotLiteral, text)
		}
		lit.Value = text[1 : len(text)-1]
		lit.v = lit.Value

	case lexer.TokenTrue, lexer.TokenFalse:
		lit.v = tok.Is(lexer.TokenTrue)

	case lexer.TokenIdentifier:
		lit.v = tok.Text()

	default:
		return nil, fmt.Errorf("%w: %v", ErrNotLiteral, tok)
	}

	return lit, nil
}

// Interface returns the value of the literal as int64, float64, bool or
// string.
func (n *Literal) Interface() interface{} {
	return n.v
}

// IsIdentifier returns true if the literal names a variable or function
func (n *Literal) IsIdentifier() bool {
	return n.Kind == lexer.TokenIdentifier
}

// Type returns NodeTypeLiteral
func (n *Literal) Type() NodeType { return NodeTypeLiteral }

// Binary is an infix operation
type Binary struct {
	base

	Left     Node
	Operator lexer.Token
	Right    Node
}

// NewBinary creates a binary node, it starts at the left operand
func NewBinary(left Node, op lexer.Token, right Node) *Binary {
	return &Binary{base: base{left.Token()}, Left: left, Operator: op, Right: right}
}

// Type returns NodeTypeBinary
func (n *Binary) Type() NodeType { return NodeTypeBinary }

// Unary is a prefix operation
type Unary struct {
	base

	Operator lexer.Token
	Right    Node
}

// NewUnary creates a unary node
func NewUnary(op lexer.Token, right Node) *Unary {
	return &Unary{base: base{op}, Operator: op, Right: right}
}

// Type returns NodeTypeUnary
func (n *Unary) Type() NodeType { return NodeTypeUnary }

// Call is a function call, the callee is always an identifier
type Call struct {
	base

	Callee string
	Args   []Node
}

// NewCall creates a call node, tok is the callee identifier
func NewCall(tok lexer.Token, args []Node) *Call {
	return &Call{base: base{tok}, Callee: tok.Text(), Args: args}
}

// Type returns NodeTypeCall
func (n *Call) Type() NodeType { return NodeTypeCall }

// ArrayLiteral is a bracketed list of expressions
type ArrayLiteral struct {
	base

	Elements []Node
}

// NewArrayLiteral creates an array node, tok is the opening bracket
func NewArrayLiteral(tok lexer.Token, elements []Node) *ArrayLiteral {
	return &ArrayLiteral{base: base{tok}, Elements: elements}
}

// Type returns NodeTypeArrayLiteral
func (n *ArrayLiteral) Type() NodeType { return NodeTypeArrayLiteral }

// Index is an element access: target[index]
type Index struct {
	base

	Target Node
	Index  Node
}

// NewIndex creates an index node
func NewIndex(target Node, index Node) *Index {
	return &Index{base: base{target.Token()}, Target: target, Index: index}
}

// Type returns NodeTypeIndex
func (n *Index) Type() NodeType { return NodeTypeIndex }

// VarDecl declares a variable, DeclaredType is empty when omitted
type VarDecl struct {
	base

	Name         string
	DeclaredType string
	Initializer  Node
}

// NewVarDecl creates a variable declaration, tok is the "let" keyword
func NewVarDecl(tok lexer.Token, name string, declaredType string, init Node) *VarDecl {
	return &VarDecl{base: base{tok}, Name: name, DeclaredType: declaredType, Initializer: init}
}

// Type returns NodeTypeVarDecl
func (n *VarDecl) Type() NodeType { return NodeTypeVarDecl }

// FuncDecl declares a function
type FuncDecl struct {
	base

	Name       string
	Params     []Param
	ReturnType string
	Body       Node
}

// NewFuncDecl creates a function declaration, tok is the "func" keyword
func NewFuncDecl(tok lexer.Token, name string, params []Param, returnType string, body Node) *FuncDecl {
	return &FuncDecl{base: base{tok}, Name: name, Params: params, ReturnType: returnType, Body: body}
}

// Type returns NodeTypeFuncDecl
func (n *FuncDecl) Type() NodeType { return NodeTypeFuncDecl }

// IfStmt is a conditional, Else is nil when there is no else branch
type IfStmt struct {
	base

	Condition Node
	Then      Node
	Else      Node
}

// NewIfStmt creates a conditional, tok is the "if" keyword
func NewIfStmt(tok lexer.Token, cond Node, then Node, els Node) *IfStmt {
	return &IfStmt{base: base{tok}, Condition: cond, Then: then, Else: els}
}

// Type returns NodeTypeIfStmt
func (n *IfStmt) Type() NodeType { return NodeTypeIfStmt }

// WhileStmt is a conditional loop
type WhileStmt struct {
	base

	Condition Node
	Body      Node
}

// NewWhileStmt creates a while loop, tok is the "while" keyword
func NewWhileStmt(tok lexer.Token, cond Node, body Node) *WhileStmt {
	return &WhileStmt{base: base{tok}, Condition: cond, Body: body}
}

// Type returns NodeTypeWhileStmt
func (n *WhileStmt) Type() NodeType { return NodeTypeWhileStmt }

// ForStmt is a loop with an initializer, a condition and an increment
type ForStmt struct {
	base

	Init      Node
	Condition Node
	Increment Node
	Body      Node
}

// NewForStmt creates a for loop, tok is the "for" keyword
func NewForStmt(tok lexer.Token, init, cond, incr, body Node) *ForStmt {
	return &ForStmt{base: base{tok}, Init: init, Condition: cond, Increment: incr, Body: body}
}

// Type returns NodeTypeForStmt
func (n *ForStmt) Type() NodeType { return NodeTypeForStmt }

// ReturnStmt returns from a function, Value is nil for a bare return
type ReturnStmt struct {
	base

	Value Node
}

// NewReturnStmt creates a return statement, tok is the "return" keyword
func NewReturnStmt(tok lexer.Token, value Node) *ReturnStmt {
	return &ReturnStmt{base: base{tok}, Value: value}
}

// Type returns NodeTypeReturnStmt
func (n *ReturnStmt) Type() NodeType { return NodeTypeReturnStmt }

// WriteStmt prints a value
type WriteStmt struct {
	base

	Value Node
}

// NewWriteStmt creates a write statement, tok is the "write" keyword
func NewWriteStmt(tok lexer.Token, value Node) *WriteStmt {
	return &WriteStmt{base: base{tok}, Value: value}
}

// Type returns NodeTypeWriteStmt
func (n *WriteStmt) Type() NodeType { return NodeTypeWriteStmt }

// Block is a bracketed list of statements
type Block struct {
	base

	Statements []Node
}

// NewBlock creates a block, tok is the opening bracket
func NewBlock(tok lexer.Token, statements []Node) *Block {
	return &Block{base: base{tok}, Statements: statements}
}

// Type returns NodeTypeBlock
func (n *Block) Type() NodeType { return NodeTypeBlock }

var (
	_ = Node(&Literal{})
	_ = Node(&Binary{})
	_ = Node(&Unary{})
	_ = Node(&Call{})
	_ = Node(&ArrayLiteral{})
	_ = Node(&Index{})
	_ = Node(&VarDecl{})
	_ = Node(&FuncDecl{})
	_ = Node(&IfStmt{})
	_ = Node(&WhileStmt{})
	_ = Node(&ForStmt{})
	_ = Node(&ReturnStmt{})
	_ = Node(&WriteStmt{})
	_ = Node(&Block{})
)
