// Package vira is the front end of the Vira language: it turns source text
// into tokens and a syntax tree, or into positioned diagnostics.
package vira

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xiam/vira/ast"
	"github.com/xiam/vira/diag"
	"github.com/xiam/vira/lexer"
	"github.com/xiam/vira/parser"
)

// Reader parses Vira source read from an io.Reader
type Reader struct {
	r io.Reader
}

// Tokenize scans src into tokens, the last token is EOF
func Tokenize(src []byte) ([]lexer.Token, error) {
	return lexer.Tokenize(string(src))
}

// Parse parses src into top-level nodes. A lexical error results in a
// single diagnostic and no nodes.
func Parse(src []byte) ([]ast.Node, diag.List) {
	return NewReader(bytes.NewReader(src)).Parse()
}

// Check parses src and returns its diagnostics as an error, or nil
func Check(src []byte) error {
	_, diags := Parse(src)
	return diags.Err()
}

// NewReader creates a reader
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Parse reads the whole input and parses it
func (r *Reader) Parse() ([]ast.Node, diag.List) {
	buf, err := io.ReadAll(r.r)
	if err != nil {
		d := diag.New(diag.SeverityLexical, err, 1, 1, fmt.Sprintf("could not read source: %v", err))
		return nil, diag.List{d}
	}
	return parser.Parse(string(buf))
}
