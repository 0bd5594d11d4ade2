// Package repl implements the interactive prompt of the vira command. Each
// complete input is parsed and its syntax tree, or its diagnostics, printed.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/vira/ast"
	"github.com/xiam/vira/internal/report"
	"github.com/xiam/vira/lexer"
	"github.com/xiam/vira/parser"
)

const (
	promptMain = "vira> "
	promptCont = "  ... "

	sourceName = "<repl>"
)

const help = `Enter Vira statements, they are parsed and printed as s-expressions.
Input continues on the next line while a bracket, parenthesis, string or
block comment is open.

  :help   show this message
  :quit   exit`

// REPL reads statements from the terminal
type REPL struct {
	out     io.Writer
	printer *report.Printer

	// HistoryPath is loaded on start and written on exit, if not empty.
	HistoryPath string
}

// New creates a REPL writing results to out and diagnostics through printer
func New(out io.Writer, printer *report.Printer) *REPL {
	return &REPL{out: out, printer: printer}
}

// DefaultHistoryPath returns ~/.vira/repl_history
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vira", "repl_history")
}

// Run reads input until EOF or :quit
func (r *REPL) Run() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	r.readHistory(ln)
	defer r.writeHistory(ln)

	var buf Buffer
	for {
		prompt := promptMain
		if !buf.Empty() {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			buf.Reset()
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if buf.Empty() && strings.HasPrefix(strings.TrimSpace(line), ":") {
			if quit := r.command(strings.TrimSpace(line)); quit {
				return nil
			}
			continue
		}

		src, complete := buf.Add(line)
		if !complete {
			continue
		}
		buf.Reset()

		if strings.TrimSpace(src) == "" {
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		r.Eval(src)
	}
}

func (r *REPL) command(cmd string) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprintln(r.out, help)
	default:
		fmt.Fprintf(r.out, "unknown command %s, type :help for a list.\n", cmd)
	}
	return false
}

// Eval parses src and prints one s-expression per top-level statement, or
// the diagnostics.
func (r *REPL) Eval(src string) {
	nodes, diags := parser.Parse(src)
	if diags.Len() > 0 {
		r.printer.Report(sourceName, []byte(src), diags)
		return
	}

	for _, node := range nodes {
		fmt.Fprintln(r.out, ast.Encode(node))
	}
}

func (r *REPL) readHistory(ln *liner.State) {
	if r.HistoryPath == "" {
		return
	}
	if f, err := os.Open(r.HistoryPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
}

func (r *REPL) writeHistory(ln *liner.State) {
	if r.HistoryPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.HistoryPath), 0o755); err != nil {
		return
	}
	if f, err := os.Create(r.HistoryPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
}

// Buffer accumulates input lines until they form a complete input
type Buffer struct {
	b strings.Builder
}

// Add appends a line and reports whether the input is complete
func (b *Buffer) Add(line string) (string, bool) {
	if b.b.Len() > 0 {
		b.b.WriteByte('\n')
	}
	b.b.WriteString(line)

	src := b.b.String()
	return src, !IsIncomplete(src)
}

// Empty reports whether no line has been added since the last reset
func (b *Buffer) Empty() bool {
	return b.b.Len() == 0
}

// Reset discards the buffered input
func (b *Buffer) Reset() {
	b.b.Reset()
}

// IsIncomplete reports whether src ends inside a string, a block comment,
// or an unclosed bracket or parenthesis.
func IsIncomplete(src string) bool {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return errors.Is(err, lexer.ErrUnterminatedString) || errors.Is(err, lexer.ErrUnterminatedMultiComment)
	}

	depth := 0
	for _, tok := range tokens {
		switch tok.Type() {
		case lexer.TokenLeftBracket, lexer.TokenLeftParen:
			depth++
		case lexer.TokenRightBracket, lexer.TokenRightParen:
			depth--
		}
	}

	return depth > 0
}
