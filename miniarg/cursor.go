package miniarg

import (
	"unicode"
	"unicode/utf8"
)

// Index is a byte offset into a string that always sits on a codepoint boundary.
// The zero value points at the start of any string.
type Index int

// Byte returns the raw byte offset, safe to use for slicing the string it came from.
func (i Index) Byte() int {
	return int(i)
}

// rune decodes the codepoint at i. Invalid UTF-8 decodes as a width-1 RuneError so
// the index keeps moving forward on malformed input.
func (i Index) rune(s string) (r rune, width int, ok bool) {
	if i < 0 || int(i) >= len(s) {
		return 0, 0, false
	}
	r, width = utf8.DecodeRuneInString(s[i:])
	return r, width, true
}

// Range is a half-open [Start, End) span of a string.
type Range struct {
	Start Index
	End   Index
}

// Len returns the span length in bytes.
func (r Range) Len() int {
	return int(r.End - r.Start)
}

// Get returns the substring of s covered by r. It reports false if either bound is
// outside s, the bounds are reversed, or a bound splits a valid multi-byte
// codepoint. Stray invalid bytes count as one-byte codepoints, as for Cursor.
func (r Range) Get(s string) (string, bool) {
	if r.Start < 0 || r.End < r.Start || int(r.End) > len(s) {
		return "", false
	}
	if !onBoundary(s, r.Start) || !onBoundary(s, r.End) {
		return "", false
	}
	return s[r.Start:r.End], true
}

// onBoundary reports whether a cursor walking s from the start stops at i.
// Valid sequences are stepped over whole, every invalid byte on its own, so i
// is a boundary unless it sits inside a valid multi-byte sequence.
func onBoundary(s string, i Index) bool {
	if i == 0 || int(i) == len(s) {
		return true
	}
	if utf8.RuneStart(s[i]) {
		return true
	}
	// nearest lead byte before i, at most UTFMax-1 bytes back
	for j := int(i) - 1; j >= 0 && j > int(i)-utf8.UTFMax; j-- {
		if utf8.RuneStart(s[j]) {
			_, width := utf8.DecodeRuneInString(s[j:])
			return j+width <= int(i)
		}
	}
	return true
}

// Quote identifies one of the two quote characters the lexer understands.
type Quote byte

const (
	QuoteSingle Quote = '\''
	QuoteDouble Quote = '"'
)

// CharKind is the lexer's view of a single codepoint.
type CharKind uint8

const (
	// CharLetter is anything that is neither whitespace nor a quote: letters,
	// digits, symbols, emoji.
	CharLetter CharKind = iota
	// CharWhitespace is any codepoint with the Unicode White_Space property.
	CharWhitespace
	// CharQuote is ' or ".
	CharQuote
)

// Char is a classified codepoint.
type Char struct {
	Kind  CharKind
	Quote Quote // set when Kind is CharQuote
	Rune  rune
}

// Classify maps a codepoint to its lexer class.
func Classify(r rune) Char {
	switch {
	case r == '\'':
		return Char{Kind: CharQuote, Quote: QuoteSingle, Rune: r}
	case r == '"':
		return Char{Kind: CharQuote, Quote: QuoteDouble, Rune: r}
	case unicode.IsSpace(r):
		return Char{Kind: CharWhitespace, Rune: r}
	default:
		return Char{Kind: CharLetter, Rune: r}
	}
}

// String renders the character quoted, with all whitespace shown as a single space.
func (c Char) String() string {
	switch c.Kind {
	case CharWhitespace:
		return `" "`
	case CharQuote:
		return `"` + string(rune(c.Quote)) + `"`
	case CharLetter:
		return `"` + string(c.Rune) + `"`
	default:
		return `"?"`
	}
}

// Cursor walks a string one codepoint at a time and never splits a codepoint.
type Cursor struct {
	s   string
	pos Index
}

// NewCursor returns a cursor positioned at the start of s.
func NewCursor(s string) Cursor {
	return Cursor{s: s}
}

// Source returns the string being walked.
func (c *Cursor) Source() string { return c.s }

// Pos returns the position of the next codepoint. It is always a valid boundary.
func (c *Cursor) Pos() Index { return c.pos }

// Peek classifies the codepoint at the current position without consuming it.
// It reports false at end of input.
func (c *Cursor) Peek() (Char, bool) {
	r, _, ok := c.pos.rune(c.s)
	if !ok {
		return Char{}, false
	}
	return Classify(r), true
}

// Advance moves one codepoint forward. It is a no-op at end of input.
func (c *Cursor) Advance() {
	if _, width, ok := c.pos.rune(c.s); ok {
		c.pos += Index(width)
	}
}

// Next returns the current codepoint and advances past it.
func (c *Cursor) Next() (Char, bool) {
	ch, ok := c.Peek()
	if ok {
		c.Advance()
	}
	return ch, ok
}

// Resolve returns the substring for a range built from positions this cursor
// produced. Such ranges always resolve; anything else yields "".
func (c *Cursor) Resolve(r Range) string {
	if r.Start < 0 || r.End < r.Start || int(r.End) > len(c.s) {
		return ""
	}
	return c.s[r.Start:r.End]
}
