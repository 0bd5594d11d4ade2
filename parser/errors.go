package parser

import (
	"errors"
)

// Syntax errors, wrapped into positioned diagnostics.
var (
	ErrExpectedToken  = errors.New("unexpected token")
	ErrMissingArrow   = errors.New("missing '->' in function declaration")
	ErrInvalidCallee  = errors.New("invalid callee")
	ErrInvalidPrimary = errors.New("invalid expression")
	ErrUnclosedBlock  = errors.New("unclosed block")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrInvalidType    = errors.New("invalid type")
	ErrNestingTooDeep = errors.New("nesting too deep")
)
