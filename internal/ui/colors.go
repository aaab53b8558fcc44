// Package ui formats status lines for CLI output.
package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// Printer writes prefixed status lines. Colors are used only when the
// destination is a terminal.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w, color: isTTY(w)}
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) colorize(color, msg string) string {
	if !p.color {
		return msg
	}
	return color + msg + Reset
}

func (p *Printer) prefixed(color, tag, msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.colorize(color, "["+tag+"]"), msg)
}

// OK prints a success line.
func (p *Printer) OK(msg string) { p.prefixed(Green, "OK", msg) }

// Warn prints a warning line.
func (p *Printer) Warn(msg string) { p.prefixed(Yellow, "WARN", msg) }

// Error prints an error line.
func (p *Printer) Error(msg string) { p.prefixed(Red, "ERROR", msg) }

// Info prints an info line.
func (p *Printer) Info(msg string) { p.prefixed(Blue, "INFO", msg) }

// Done prints a completion line.
func (p *Printer) Done(msg string) { p.prefixed(Green+Bold, "DONE", msg) }

// Title prints a section title with an optional description.
func (p *Printer) Title(title, desc string) {
	prefix := p.colorize(Bold+Cyan, "["+title+"]")
	if desc == "" {
		fmt.Fprintln(p.out, prefix)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", prefix, desc)
}

// Indent prints msg under the previous line.
func (p *Printer) Indent(msg string) {
	fmt.Fprintln(p.out, Indent(msg))
}

// Indent returns the message with indentation
func Indent(msg string) string {
	return "     " + msg
}
