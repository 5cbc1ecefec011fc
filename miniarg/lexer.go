package miniarg

import (
	"github.com/dzonerzy/go-miniarg/internal/pool"
)

// lexState represents the current state of the lexer state machine
type lexState uint8

const (
	stateWhitespace lexState = iota
	stateBare
	stateSingleQuoted
	stateDoubleQuoted
)

// closes reports whether q terminates a token lexed in state s.
func (s lexState) closes(q Quote) bool {
	return (s == stateSingleQuoted && q == QuoteSingle) || (s == stateDoubleQuoted && q == QuoteDouble)
}

// Lexer splits a command line into argument tokens without copying.
//
// Whitespace separates tokens. A token whose first character is a quote runs
// until the matching quote or end of input and excludes both quotes; a quote
// anywhere else is an ordinary character. There are no escape sequences and
// malformed quoting never fails: an unterminated quote yields everything up to
// end of input.
//
// A Lexer is single-use and must not be copied after the first call to Next.
type Lexer struct {
	cur Cursor
}

// Tokenize returns a lexer over line. Tokens are produced lazily by Next.
func Tokenize(line string) Lexer {
	return Lexer{cur: NewCursor(line)}
}

// Source returns the line being tokenized.
func (l *Lexer) Source() string {
	return l.cur.Source()
}

// Next returns the next token as a substring of the source line.
// It reports false once the line is exhausted.
func (l *Lexer) Next() (string, bool) {
	r, ok := l.NextRange()
	if !ok {
		return "", false
	}
	return l.cur.Resolve(r), true
}

// NextRange is Next but returns the token's span in the source line.
func (l *Lexer) NextRange() (Range, bool) {
	state := stateWhitespace
	var start Index

	for {
		ch, ok := l.cur.Peek()

		switch state {
		case stateWhitespace:
			if !ok {
				return Range{}, false
			}
			switch ch.Kind {
			case CharWhitespace:
				l.cur.Advance()
			case CharQuote:
				// opening quote is not part of the token
				l.cur.Advance()
				start = l.cur.Pos()
				if ch.Quote == QuoteSingle {
					state = stateSingleQuoted
				} else {
					state = stateDoubleQuoted
				}
			case CharLetter:
				start = l.cur.Pos()
				l.cur.Advance()
				state = stateBare
			}

		case stateBare:
			if !ok {
				return Range{Start: start, End: l.cur.Pos()}, true
			}
			if ch.Kind == CharWhitespace {
				end := l.cur.Pos()
				l.cur.Advance()
				return Range{Start: start, End: end}, true
			}
			l.cur.Advance()

		case stateSingleQuoted, stateDoubleQuoted:
			if !ok {
				return Range{Start: start, End: l.cur.Pos()}, true
			}
			if ch.Kind == CharQuote && state.closes(ch.Quote) {
				end := l.cur.Pos()
				l.cur.Advance()
				return Range{Start: start, End: end}, true
			}
			l.cur.Advance()
		}
	}
}

// Split tokenizes line into an owned slice, allocated once at its exact size.
// Use Tokenize to avoid the allocation.
func Split(line string) []string {
	n := 0
	lx := Tokenize(line)
	for {
		if _, ok := lx.NextRange(); !ok {
			break
		}
		n++
	}
	if n == 0 {
		return nil
	}
	return AppendTokens(make([]string, 0, n), line)
}

// AppendTokens appends the tokens of line to dst and returns the extended slice.
func AppendTokens(dst []string, line string) []string {
	lx := Tokenize(line)
	for {
		tok, ok := lx.Next()
		if !ok {
			return dst
		}
		dst = append(dst, tok)
	}
}

// Tokens is a token list backed by a pooled slice. It must not be used after
// Release.
type Tokens struct {
	buf *[]string
}

// SplitPooled is Split for callers that handle many lines in turn: the slice
// comes from a pool and goes back on Release, so steady-state splitting does
// not allocate.
func SplitPooled(line string) Tokens {
	buf := pool.GetStringSlice()
	*buf = AppendTokens(*buf, line)
	return Tokens{buf: buf}
}

// List returns the tokens. The slice is only valid until Release.
func (t Tokens) List() []string {
	if t.buf == nil {
		return nil
	}
	return *t.buf
}

// Release returns the backing slice to the pool.
func (t Tokens) Release() {
	if t.buf != nil {
		pool.PutStringSlice(t.buf)
	}
}
