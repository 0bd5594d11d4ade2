package lexer

import (
	"errors"
)

// Lexical errors. A scan stops at the first one.
var (
	ErrUnexpectedCharacter      = errors.New("unexpected character")
	ErrUnterminatedString       = errors.New("unterminated string")
	ErrUnterminatedMultiComment = errors.New("unterminated multi-line comment")
)
