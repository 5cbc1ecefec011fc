// Package argio holds the stdio plumbing and the levelled logger used by the
// miniarg command and, optionally, by parsers for diagnostics.
package argio

import (
	stdio "io"
	"os"

	"github.com/mattn/go-isatty"
)

// IOManager centralizes IO streams and color decisions
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader used by the manager and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// Diagnostics returns a copy of the manager whose Out is this manager's Err,
// for logs that must not mix with program output.
func (m *IOManager) Diagnostics() *IOManager {
	d := *m
	d.out = m.err
	return &d
}

// In returns the configured input reader.
func (m *IOManager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsPiped reports whether the configured input is not a terminal.
func (m *IOManager) IsPiped() bool { return !isTerminal(m.in) }

// SupportsColor reports whether ANSI colors should be written to Out.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !isTerminal(m.out) {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// Colorize wraps s with the given ANSI SGR code (e.g., "31" for red) and a
// trailing reset ("0m"). If color is not supported, it returns s unchanged.
func (m *IOManager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, "2") }

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
