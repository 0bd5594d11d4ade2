// Package report prints diagnostics for humans, optionally colored and
// followed by the offending source line.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/xiam/vira/diag"
)

// Options control the output of a Printer
type Options struct {
	Color   bool
	Context bool

	// Max limits the diagnostics printed per file, 0 means no limit.
	Max int
}

// Printer writes diagnostics to a writer
type Printer struct {
	w      io.Writer
	opts   Options
	styles styles
}

// New creates a printer
func New(w io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(w)
	if opts.Color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:      w,
		opts:   opts,
		styles: newStyles(r),
	}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.opts.Color {
		return s
	}
	return style.Render(s)
}

// Report prints the diagnostics found in file, src is used for the source
// excerpt. It returns the number of diagnostics printed.
func (p *Printer) Report(file string, src []byte, diags diag.List) int {
	var lines []string
	if p.opts.Context {
		lines = strings.Split(string(src), "\n")
	}

	printed := 0
	for _, d := range diags {
		if p.opts.Max > 0 && printed == p.opts.Max {
			fmt.Fprintln(p.w, p.render(p.styles.gutter, fmt.Sprintf("%s: %d more not shown", file, len(diags)-printed)))
			break
		}

		location := fmt.Sprintf("%s:%d:%d:", file, d.Line, d.Column)
		fmt.Fprintf(p.w, "%s %s %s\n",
			p.render(p.styles.location, location),
			p.render(p.styles.severity, d.Severity.String()+":"),
			p.render(p.styles.message, d.Message),
		)

		if p.opts.Context && d.Line >= 1 && d.Line <= len(lines) {
			p.excerpt(lines[d.Line-1], d.Line, d.Column)
		}

		printed++
	}

	return printed
}

// excerpt prints a source line with a caret under column col
func (p *Printer) excerpt(line string, lineno, col int) {
	line = strings.TrimRight(line, "\r")

	num := strconv.Itoa(lineno)
	blank := strings.Repeat(" ", len(num))

	var pad strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
		i++
	}
	for ; i < col; i++ {
		pad.WriteRune(' ')
	}

	fmt.Fprintf(p.w, "%s %s\n", p.render(p.styles.gutter, num+" |"), line)
	fmt.Fprintf(p.w, "%s %s%s\n", p.render(p.styles.gutter, blank+" |"), pad.String(), p.render(p.styles.caret, "^"))
}

// Passed prints the success line
func (p *Printer) Passed() {
	fmt.Fprintln(p.w, p.render(p.styles.success, "Check passed."))
}

// Failed prints a summary of a failed check
func (p *Printer) Failed(diagnostics, files int) {
	fmt.Fprintln(p.w, p.render(p.styles.failure,
		fmt.Sprintf("Check failed: %s in %s.", plural(diagnostics, "error"), plural(files, "file"))))
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
