// Package parser builds a Vira syntax tree out of tokens.
//
// The grammar is parsed by recursive descent. Statements are chosen by their
// first token; expressions climb precedence levels from logical or down to
// primary expressions:
//
//	or -> and -> equality -> comparison -> additive -> multiplicative
//	   -> unary -> call/index -> primary
//
// A failure inside a top-level statement is recorded as a diagnostic and the
// parser skips ahead to the next token that can start a statement, so a
// single malformed declaration does not hide the errors that follow it.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xiam/vira/ast"
	"github.com/xiam/vira/diag"
	"github.com/xiam/vira/lexer"
)

// tokens a statement can begin with, other than "[" and expressions
var statementStart = []lexer.TokenType{
	lexer.TokenFunc,
	lexer.TokenLet,
	lexer.TokenIf,
	lexer.TokenWhile,
	lexer.TokenFor,
	lexer.TokenReturn,
	lexer.TokenWrite,
}

// Parser holds a cursor over a token sequence
type Parser struct {
	tokens  []lexer.Token
	current int

	// nesting of statements and expressions being parsed
	depth int

	diags diag.List
}

// MaxDepth bounds the nesting of statements and expressions.
const MaxDepth = 1000

// New creates a parser for the given tokens. Comments are dropped and an
// EOF token is appended if missing.
func New(tokens []lexer.Token) *Parser {
	filtered := make([]lexer.Token, 0, len(tokens)+1)
	for i := range tokens {
		if tokens[i].Type().IsComment() {
			continue
		}
		filtered = append(filtered, tokens[i])
	}

	if n := len(filtered); n == 0 || !filtered[n-1].Is(lexer.TokenEOF) {
		line, col := 1, 1
		if n > 0 {
			line, col = filtered[n-1].Pos()
		}
		filtered = append(filtered, lexer.NewToken(lexer.TokenEOF, "", line, col))
	}

	return &Parser{tokens: filtered}
}

// Parse reads top-level statements until the end of input. Statements that
// failed to parse are left out of the returned list and described by the
// diagnostics.
func (p *Parser) Parse() ([]ast.Node, diag.List) {
	nodes := []ast.Node{}

	for !p.isAtEnd() {
		start := p.current

		node, err := p.statement()
		if err != nil {
			p.synchronize(start)
			continue
		}

		nodes = append(nodes, node)
	}

	return nodes, p.diags
}

// Diagnostics returns the errors found so far
func (p *Parser) Diagnostics() diag.List {
	return p.diags
}

// Parse scans and parses src. A lexical error stops the process and is
// returned as the only diagnostic.
func Parse(src string) ([]ast.Node, diag.List) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		var d *diag.Diagnostic
		if !errors.As(err, &d) {
			d = diag.New(diag.SeverityLexical, err, 1, 1, err.Error())
		}
		return nil, diag.List{d}
	}

	return New(tokens).Parse()
}

// synchronize discards tokens until one that can begin a statement. At least
// one token is dropped when the failed statement consumed none, and brackets
// opened while skipping are skipped up to their closing token.
func (p *Parser) synchronize(start int) {
	depth := 0

	for !p.isAtEnd() {
		tok := p.peek()

		if depth == 0 && p.current > start && tok.Is(statementStart...) {
			return
		}

		switch {
		case tok.Is(lexer.TokenLeftBracket, lexer.TokenLeftParen):
			depth++
		case tok.Is(lexer.TokenRightBracket, lexer.TokenRightParen) && depth > 0:
			depth--
		}

		p.advance()
	}
}

// enter accounts for one more nesting level, leave must follow when it
// succeeds.
func (p *Parser) enter() error {
	if p.depth >= MaxDepth {
		tok := p.peek()
		return p.errorAt(tok, ErrNestingTooDeep, fmt.Sprintf("nesting deeper than %d levels at %s", MaxDepth, describe(tok)))
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) statement() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch {
	case p.match(lexer.TokenFunc):
		return p.funcDecl()
	case p.match(lexer.TokenLet):
		return p.varDecl()
	case p.match(lexer.TokenIf):
		return p.ifStmt()
	case p.match(lexer.TokenWhile):
		return p.whileStmt()
	case p.match(lexer.TokenFor):
		return p.forStmt()
	case p.match(lexer.TokenReturn):
		return p.returnStmt()
	case p.match(lexer.TokenWrite):
		return p.writeStmt()
	case p.match(lexer.TokenLeftBracket):
		return p.block()
	}

	return p.expression()
}

func (p *Parser) funcDecl() (ast.Node, error) {
	kw := p.previous()

	name, err := p.consume(lexer.TokenIdentifier, "expected function name after 'func'")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.TokenLeftParen, "expected '(' after function name"); err != nil {
		return nil, err
	}

	params := []ast.Param{}
	if !p.check(lexer.TokenRightParen) {
		for {
			paramName, err := p.consume(lexer.TokenIdentifier, "expected parameter name")
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.TokenColon, "expected ':' after parameter name"); err != nil {
				return nil, err
			}
			paramType, err := p.typeName()
			if err != nil {
				return nil, err
			}

			params = append(params, ast.Param{Name: paramName.Text(), Type: paramType})

			if !p.match(lexer.TokenComma) {
				break
			}
		}
	}

	if _, err := p.consume(lexer.TokenRightParen, "expected ')' after parameters"); err != nil {
		return nil, err
	}

	if !p.match(lexer.TokenArrow) {
		return nil, p.errorAt(p.peek(), ErrMissingArrow,
			fmt.Sprintf("expected '->' and a return type after the parameters of %q, got %s", name.Text(), describe(p.peek())))
	}

	returnType, err := p.typeName()
	if err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return ast.NewFuncDecl(kw, name.Text(), params, returnType, body), nil
}

func (p *Parser) varDecl() (ast.Node, error) {
	kw := p.previous()

	name, err := p.consume(lexer.TokenIdentifier, "expected variable name after 'let'")
	if err != nil {
		return nil, err
	}

	declaredType := ""
	if p.match(lexer.TokenColon) {
		if declaredType, err = p.typeName(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.TokenEquals, "expected '=' and an initializer after variable name"); err != nil {
		return nil, err
	}

	init, err := p.expression()
	if err != nil {
		return nil, err
	}

	return ast.NewVarDecl(kw, name.Text(), declaredType, init), nil
}

func (p *Parser) ifStmt() (ast.Node, error) {
	kw := p.previous()

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var els ast.Node
	if p.match(lexer.TokenElse) {
		if els, err = p.statement(); err != nil {
			return nil, err
		}
	}

	return ast.NewIfStmt(kw, cond, then, els), nil
}

func (p *Parser) whileStmt() (ast.Node, error) {
	kw := p.previous()

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return ast.NewWhileStmt(kw, cond, body), nil
}

// forStmt reads "for init cond incr body", the first three clauses may be
// separated by commas.
func (p *Parser) forStmt() (ast.Node, error) {
	kw := p.previous()

	init, err := p.statement()
	if err != nil {
		return nil, err
	}
	p.match(lexer.TokenComma)

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.match(lexer.TokenComma)

	incr, err := p.expression()
	if err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return ast.NewForStmt(kw, init, cond, incr, body), nil
}

func (p *Parser) returnStmt() (ast.Node, error) {
	kw := p.previous()

	if p.isAtEnd() || p.check(lexer.TokenRightBracket, lexer.TokenElse) || p.check(statementStart...) {
		return ast.NewReturnStmt(kw, nil), nil
	}

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	return ast.NewReturnStmt(kw, value), nil
}

func (p *Parser) writeStmt() (ast.Node, error) {
	kw := p.previous()

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	return ast.NewWriteStmt(kw, value), nil
}

func (p *Parser) block() (ast.Node, error) {
	open := p.previous()

	statements := []ast.Node{}
	for !p.check(lexer.TokenRightBracket) && !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if !p.match(lexer.TokenRightBracket) {
		line, col := open.Pos()
		return nil, p.errorAt(p.peek(), ErrUnclosedBlock,
			fmt.Sprintf("expected ']' to close the block opened at %d:%d, got %s", line, col, describe(p.peek())))
	}

	return ast.NewBlock(open, statements), nil
}

// typeName reads int, float, string, bool or array<T>
func (p *Parser) typeName() (string, error) {
	switch {
	case p.match(lexer.TokenIntType, lexer.TokenFloatType, lexer.TokenStringType, lexer.TokenBoolType):
		return p.previous().Text(), nil

	case p.match(lexer.TokenArrayType):
		if _, err := p.consume(lexer.TokenLess, "expected '<' after 'array'"); err != nil {
			return "", err
		}
		elem, err := p.typeName()
		if err != nil {
			return "", err
		}
		if _, err := p.consume(lexer.TokenGreater, "expected '>' after array element type"); err != nil {
			return "", err
		}
		return "array<" + elem + ">", nil
	}

	return "", p.errorAt(p.peek(), ErrInvalidType, fmt.Sprintf("expected type name, got %s", describe(p.peek())))
}

func (p *Parser) expression() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.or()
}

// binary parses a left-associative level: next (op next)*
func (p *Parser) binary(next func() (ast.Node, error), ops ...lexer.TokenType) (ast.Node, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.previous()

		right, err := next()
		if err != nil {
			return nil, err
		}

		expr = ast.NewBinary(expr, op, right)
	}

	return expr, nil
}

func (p *Parser) or() (ast.Node, error) {
	return p.binary(p.and, lexer.TokenOr)
}

func (p *Parser) and() (ast.Node, error) {
	return p.binary(p.equality, lexer.TokenAnd)
}

func (p *Parser) equality() (ast.Node, error) {
	return p.binary(p.comparison, lexer.TokenEqualEqual, lexer.TokenBangEqual)
}

func (p *Parser) comparison() (ast.Node, error) {
	return p.binary(p.term, lexer.TokenLess, lexer.TokenLessEqual, lexer.TokenGreater, lexer.TokenGreaterEqual)
}

func (p *Parser) term() (ast.Node, error) {
	return p.binary(p.factor, lexer.TokenPlus, lexer.TokenMinus)
}

func (p *Parser) factor() (ast.Node, error) {
	return p.binary(p.unary, lexer.TokenStar, lexer.TokenSlash, lexer.TokenMod)
}

func (p *Parser) unary() (ast.Node, error) {
	if p.match(lexer.TokenBang, lexer.TokenMinus) {
		op := p.previous()

		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		return ast.NewUnary(op, right), nil
	}

	return p.call()
}

// call parses a primary expression followed by any number of argument lists
// or index suffixes. Only a bare identifier can be called.
func (p *Parser) call() (ast.Node, error) {
	start := p.peek()

	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.check(lexer.TokenLeftParen):
			paren := p.advance()

			callee, ok := expr.(*ast.Literal)
			if !ok || !callee.IsIdentifier() || !start.Is(lexer.TokenIdentifier) {
				line, col := start.Pos()
				return nil, p.errorAt(paren, ErrInvalidCallee,
					fmt.Sprintf("only a function name can be called, the expression at %d:%d is not an identifier", line, col))
			}

			args, err := p.arguments()
			if err != nil {
				return nil, err
			}

			expr = ast.NewCall(callee.Token(), args)

		case p.check(lexer.TokenLeftBracket) && p.adjacent():
			p.advance()

			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.TokenRightBracket, "expected ']' after index"); err != nil {
				return nil, err
			}

			expr = ast.NewIndex(expr, index)

		default:
			return expr, nil
		}
	}
}

func (p *Parser) arguments() ([]ast.Node, error) {
	args := []ast.Node{}

	if !p.check(lexer.TokenRightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if !p.match(lexer.TokenComma) {
				break
			}
		}
	}

	if _, err := p.consume(lexer.TokenRightParen, "expected ')' after arguments"); err != nil {
		return nil, err
	}

	return args, nil
}

func (p *Parser) primary() (ast.Node, error) {
	switch {
	case p.match(lexer.TokenTrue, lexer.TokenFalse, lexer.TokenNumber, lexer.TokenFloat, lexer.TokenString, lexer.TokenIdentifier):
		tok := p.previous()

		lit, err := ast.NewLiteral(tok)
		if err != nil {
			return nil, p.errorAt(tok, ErrInvalidNumber, fmt.Sprintf("invalid number literal %q: out of range", tok.Text()))
		}
		return lit, nil

	case p.match(lexer.TokenLeftBracket):
		open := p.previous()

		elements := []ast.Node{}
		if !p.check(lexer.TokenRightBracket) {
			for {
				elem, err := p.expression()
				if err != nil {
					return nil, err
				}
				elements = append(elements, elem)

				if !p.match(lexer.TokenComma) {
					break
				}
			}
		}

		if _, err := p.consume(lexer.TokenRightBracket, "expected ']' after array elements"); err != nil {
			return nil, err
		}

		return ast.NewArrayLiteral(open, elements), nil

	case p.match(lexer.TokenLeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(lexer.TokenRightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}

		return expr, nil
	}

	tok := p.peek()
	return nil, p.errorAt(tok, ErrInvalidPrimary, fmt.Sprintf("expected expression, got %s", describe(tok)))
}

// adjacent reports whether the next token starts right where the previous
// one ends, with no whitespace in between.
func (p *Parser) adjacent() bool {
	if p.current == 0 {
		return false
	}

	prev, next := p.previous(), p.peek()

	endLine, endCol := prev.Pos()
	text := prev.Text()
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		// the column restarts after a newline inside the lexeme
		endLine += strings.Count(text, "\n")
		endCol = 1
		text = text[i+1:]
	}
	endCol += utf8.RuneCountInString(text)

	nextLine, nextCol := next.Pos()

	return endLine == nextLine && endCol == nextCol
}

func (p *Parser) consume(tt lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}

	tok := p.peek()
	return lexer.Token{}, p.errorAt(tok, ErrExpectedToken, fmt.Sprintf("%s, got %s", message, describe(tok)))
}

func (p *Parser) match(tt ...lexer.TokenType) bool {
	if p.check(tt...) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) check(tt ...lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Is(tt...)
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Is(lexer.TokenEOF)
}

func (p *Parser) errorAt(tok lexer.Token, err error, message string) error {
	line, col := tok.Pos()

	d := diag.New(diag.SeveritySyntax, err, line, col, message)
	p.diags.Add(d)

	return d
}

func describe(tok lexer.Token) string {
	if tok.Is(lexer.TokenEOF) {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Text())
}
