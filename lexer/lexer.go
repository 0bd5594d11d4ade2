// Package lexer turns Vira source text into tokens.
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/xiam/vira/diag"
)

const eof = -1

type lexState func(*Lexer) lexState

var (
	isWhitespace = isOneOf(" \t\r")
	isNewLine    = isOneOf("\n")
	isDigit      = isOneOf("0123456789")
)

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}

// Lexer represents a lexical analyzer
type Lexer struct {
	src string

	tokens  []Token
	lastErr error

	start  int
	offset int

	line int
	col  int

	startLine int
	startCol  int
}

// New initializes a Lexer for the given source.
func New(src string) *Lexer {
	return &Lexer{
		src:       src,
		tokens:    []Token{},
		line:      1,
		startLine: 1,
	}
}

// Tokens returns the tokens detected so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole source. On success the last token is TokenEOF; on
// failure the returned error is a *diag.Diagnostic and Tokens holds what was
// scanned before the offending character.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr == nil {
		lx.emit(TokenEOF)
	}

	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: lx.src[lx.start:lx.offset],

		line: lx.startLine,
		col:  lx.startCol + 1,
	})
	lx.ignore()
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
	lx.startLine, lx.startCol = lx.line, lx.col
}

func (lx *Lexer) peek() rune {
	if lx.offset >= len(lx.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.offset:])
	return r
}

func (lx *Lexer) peekNext() rune {
	if lx.offset >= len(lx.src) {
		return eof
	}
	_, w := utf8.DecodeRuneInString(lx.src[lx.offset:])
	if lx.offset+w >= len(lx.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.offset+w:])
	return r
}

func (lx *Lexer) next() rune {
	if lx.offset >= len(lx.src) {
		return eof
	}

	r, w := utf8.DecodeRuneInString(lx.src[lx.offset:])
	lx.offset += w

	if isNewLine(r) {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return r
}

func (lx *Lexer) accept(r rune) bool {
	if lx.peek() == r {
		lx.next()
		return true
	}
	return false
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.next()

	switch {
	case r == eof:
		return nil

	case isWhitespace(r), isNewLine(r):
		lx.ignore()
		return lexDefaultState

	case r == '[':
		return lexEmit(TokenLeftBracket)
	case r == ']':
		return lexEmit(TokenRightBracket)
	case r == '(':
		return lexEmit(TokenLeftParen)
	case r == ')':
		return lexEmit(TokenRightParen)
	case r == ',':
		return lexEmit(TokenComma)

	case r == '+':
		return lexEmit(TokenPlus)
	case r == '*':
		return lexEmit(TokenStar)
	case r == '/':
		return lexEmit(TokenSlash)
	case r == '%':
		return lexEmit(TokenMod)

	case r == '-':
		if lx.accept('>') {
			return lexEmit(TokenArrow)
		}
		return lexEmit(TokenMinus)

	case r == ':':
		if lx.accept(':') {
			return lexEmit(TokenFrom)
		}
		return lexEmit(TokenColon)

	case r == '<':
		if lx.accept('>') {
			return lexEmit(TokenImport)
		}
		if lx.accept('=') {
			return lexEmit(TokenLessEqual)
		}
		return lexEmit(TokenLess)

	case r == '>':
		if lx.accept('=') {
			return lexEmit(TokenGreaterEqual)
		}
		return lexEmit(TokenGreater)

	case r == '=':
		if lx.accept('=') {
			return lexEmit(TokenEqualEqual)
		}
		return lexEmit(TokenEquals)

	case r == '!':
		if lx.accept('=') {
			return lexEmit(TokenBangEqual)
		}
		return lexEmit(TokenBang)

	case r == '&':
		if lx.accept('&') {
			return lexEmit(TokenAnd)
		}
		return lexUnexpected(r)

	case r == '|':
		if lx.accept('|') {
			return lexEmit(TokenOr)
		}
		return lexUnexpected(r)

	case r == '@':
		if lx.accept('@') {
			return lexMultiComment
		}
		return lexComment

	case r == '#':
		return lexHash

	case r == '"':
		return lexString

	case isDigit(r):
		return lexNumber

	case isIdentifierStart(r):
		return lexIdentifier
	}

	return lexUnexpected(r)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

// lexHash reads "# =" as a single token, any other "#" starts a line
// comment.
func lexHash(lx *Lexer) lexState {
	if lx.peek() == ' ' && lx.peekNext() == '=' {
		lx.next()
		lx.next()
		return lexEmit(TokenHashEqual)
	}
	return lexComment
}

func lexComment(lx *Lexer) lexState {
	for p := lx.peek(); p != eof && !isNewLine(p); p = lx.peek() {
		lx.next()
	}
	return lexEmit(TokenComment)
}

func lexMultiComment(lx *Lexer) lexState {
	for {
		switch lx.next() {
		case eof:
			return lexStateError(ErrUnterminatedMultiComment, "unterminated multi-line comment, expected closing \"@@\"")
		case '@':
			if lx.accept('@') {
				return lexEmit(TokenMultiComment)
			}
		}
	}
}

func lexString(lx *Lexer) lexState {
	for {
		switch lx.next() {
		case eof:
			return lexStateError(ErrUnterminatedString, "unterminated string, expected closing '\"'")
		case '"':
			return lexEmit(TokenString)
		}
	}
}

func lexNumber(lx *Lexer) lexState {
	lexDigits(lx)

	// a dot only belongs to the number when a digit follows it
	if lx.peek() == '.' && isDigit(lx.peekNext()) {
		lx.next()
		lexDigits(lx)
		return lexEmit(TokenFloat)
	}

	return lexEmit(TokenNumber)
}

func lexDigits(lx *Lexer) {
	for isDigit(lx.peek()) {
		lx.next()
	}
}

func lexIdentifier(lx *Lexer) lexState {
	for isIdentifierPart(lx.peek()) {
		lx.next()
	}
	return lexEmit(LookupIdentifier(lx.src[lx.start:lx.offset]))
}

func lexUnexpected(r rune) lexState {
	return lexStateError(ErrUnexpectedCharacter, fmt.Sprintf("unexpected character %q", r))
}

func lexStateError(err error, message string) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = diag.New(diag.SeverityLexical, err, lx.startLine, lx.startCol+1, message)
		return nil
	}
}

// Tokenize returns all the tokens within src, the last one being TokenEOF.
// If a lexical error is found the tokens read before it are returned along
// with a *diag.Diagnostic.
func Tokenize(src string) ([]Token, error) {
	lx := New(src)

	if err := lx.Scan(); err != nil {
		return lx.Tokens(), err
	}

	return lx.Tokens(), nil
}
