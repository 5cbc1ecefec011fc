package miniarg

import (
	"errors"
	"unicode"
	"unicode/utf8"

	argio "github.com/dzonerzy/go-miniarg/io"
)

// Key is an accepted option name. Its String form is compared against tokens
// after lower-casing the first character.
type Key interface {
	String() string
}

// StringKey is a Key backed by a plain string.
type StringKey string

func (k StringKey) String() string { return string(k) }

// StringKeys converts names to keys.
func StringKeys(names ...string) []StringKey {
	keys := make([]StringKey, len(names))
	for i, n := range names {
		keys[i] = StringKey(n)
	}
	return keys
}

// TokenSource yields argument tokens in order. *Lexer and *SliceSource implement it.
type TokenSource interface {
	Next() (string, bool)
}

// SliceSource is a TokenSource over pre-split arguments such as os.Args.
type SliceSource struct {
	args []string
	pos  int
}

// FromSlice returns a token source over args. The first element is treated as
// the program name like every other source.
func FromSlice(args []string) *SliceSource {
	return &SliceSource{args: args}
}

func (s *SliceSource) Next() (string, bool) {
	if s.pos >= len(s.args) {
		return "", false
	}
	tok := s.args[s.pos]
	s.pos++
	return tok, true
}

// TrailingKeyPolicy decides what happens to a key that ends the line without a value.
type TrailingKeyPolicy uint8

const (
	// TrailingKeyDrop silently discards the key: no pair and no error.
	TrailingKeyDrop TrailingKeyPolicy = iota
	// TrailingKeyEmpty yields the key paired with "" (handy for a bare -help).
	TrailingKeyEmpty
)

// Pair is a matched key and its value token.
type Pair[K Key] struct {
	Key   K
	Index int // position of Key in the accepted key slice
	Value string
}

// Result is one step of the matcher: a Pair, or a non-nil Err.
type Result[K Key] struct {
	Pair[K]
	Err error
}

// Parser holds the accepted keys and matching options. It is safe to reuse
// for any number of lines as long as it is not reconfigured concurrently.
type Parser[K Key] struct {
	keys        []K
	trailing    TrailingKeyPolicy
	suggest     bool
	maxDistance int
	logger      *argio.Logger
}

// NewParser creates a parser for the given keys, in priority order.
func NewParser[K Key](keys []K) *Parser[K] {
	return &Parser[K]{
		keys:        keys,
		trailing:    TrailingKeyDrop,
		suggest:     false, // opt-in: suggestions allocate
		maxDistance: 2,
	}
}

// TrailingKey sets the policy for a key left without a value at end of line
func (p *Parser[K]) TrailingKey(policy TrailingKeyPolicy) *Parser[K] {
	p.trailing = policy
	return p
}

// SuggestKeys enables/disables "did you mean" suggestions on unknown keys
func (p *Parser[K]) SuggestKeys(enabled bool) *Parser[K] {
	p.suggest = enabled
	return p
}

// MaxDistance sets the maximum edit distance for suggestions
func (p *Parser[K]) MaxDistance(distance int) *Parser[K] {
	p.maxDistance = distance
	return p
}

// Logger sets a logger that receives every recovered parse error at debug level.
func (p *Parser[K]) Logger(l *argio.Logger) *Parser[K] {
	p.logger = l
	return p
}

// Keys returns the accepted keys.
func (p *Parser[K]) Keys() []K { return p.keys }

// Parse starts matching the tokens of line.
func (p *Parser[K]) Parse(line string) Matcher[K] {
	return Matcher[K]{parser: p, lex: Tokenize(line), useLex: true}
}

// ParseTokens starts matching tokens from src.
func (p *Parser[K]) ParseTokens(src TokenSource) Matcher[K] {
	return Matcher[K]{parser: p, src: src}
}

// Parse matches `program -key value ...` in line against keys with default options.
func Parse[K Key](line string, keys []K) Matcher[K] {
	return NewParser(keys).Parse(line)
}

// ParseFromTokens is Parse for callers that already have the tokens.
func ParseFromTokens[K Key](src TokenSource, keys []K) Matcher[K] {
	return NewParser(keys).ParseTokens(src)
}

// Matcher pairs keys with values as it pulls tokens. The first token is the
// program name and is skipped. Errors are reported and matching continues with
// the next token expecting a key.
//
// Pairs never allocate. Each error allocates its *ParseError, and suggestions
// (SuggestKeys) allocate further on unknown keys.
//
// A Matcher is single-use and must not be copied after the first call to Next.
type Matcher[K Key] struct {
	parser *Parser[K]
	lex    Lexer
	useLex bool
	src    TokenSource

	started bool
	pending int  // index of the key awaiting its value
	waiting bool // pending is valid
}

func (m *Matcher[K]) token() (string, bool) {
	if m.useLex {
		return m.lex.Next()
	}
	if m.src == nil {
		return "", false
	}
	return m.src.Next()
}

// Next returns the next pair or error. It reports false when the tokens are exhausted.
func (m *Matcher[K]) Next() (Result[K], bool) {
	if !m.started {
		m.started = true
		// program name
		if _, ok := m.token(); !ok {
			return Result[K]{}, false
		}
	}

	for {
		tok, ok := m.token()
		if !ok {
			return m.finish()
		}

		if m.waiting {
			m.waiting = false
			return Result[K]{Pair: m.pair(m.pending, tok)}, true
		}

		if tok == "" || tok[0] != '-' {
			return Result[K]{Err: m.fail(ErrorTypeNotAKey, tok)}, true
		}
		name := tok[1:]

		idx := m.lookup(name)
		if idx < 0 {
			return Result[K]{Err: m.fail(ErrorTypeUnknownKey, name)}, true
		}
		// value comes from the next token
		m.pending = idx
		m.waiting = true
	}
}

func (m *Matcher[K]) finish() (Result[K], bool) {
	if !m.waiting {
		return Result[K]{}, false
	}
	m.waiting = false
	if m.parser.trailing == TrailingKeyEmpty {
		return Result[K]{Pair: m.pair(m.pending, "")}, true
	}
	return Result[K]{}, false
}

func (m *Matcher[K]) pair(idx int, value string) Pair[K] {
	return Pair[K]{Key: m.parser.keys[idx], Index: idx, Value: value}
}

// lookup returns the index of the first key matching name, or -1.
func (m *Matcher[K]) lookup(name string) int {
	for i, k := range m.parser.keys {
		if keyMatches(k.String(), name) {
			return i
		}
	}
	return -1
}

func (m *Matcher[K]) fail(typ ErrorType, token string) error {
	err := NewParseError(typ, token)
	p := m.parser
	if typ == ErrorTypeUnknownKey && p.suggest {
		err.Candidates = suggestKeys(token, p.keys, p.maxDistance)
		if len(err.Candidates) > 0 {
			err.Suggestion = err.Candidates[0]
		}
	}
	if p.logger != nil {
		p.logger.Debug("miniarg: %v", err)
	}
	return err
}

// Collect drains the matcher into a slice, stopping at the first error.
func (m *Matcher[K]) Collect() ([]Pair[K], error) {
	var pairs []Pair[K]
	for {
		res, ok := m.Next()
		if !ok {
			return pairs, nil
		}
		if res.Err != nil {
			return nil, res.Err
		}
		pairs = append(pairs, res.Pair)
	}
}

// CollectAll drains the matcher completely, keeping every pair and joining
// every error.
func (m *Matcher[K]) CollectAll() ([]Pair[K], error) {
	var (
		pairs []Pair[K]
		errs  []error
	)
	for {
		res, ok := m.Next()
		if !ok {
			return pairs, errors.Join(errs...)
		}
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		pairs = append(pairs, res.Pair)
	}
}

// NormalizeKey lower-cases the first character of name and leaves the rest as is.
func NormalizeKey(name string) string {
	r, width := utf8.DecodeRuneInString(name)
	if width == 0 || (r == utf8.RuneError && width == 1) {
		return name
	}
	lower := unicode.ToLower(r)
	if lower == r {
		return name
	}
	return string(lower) + name[width:]
}

// keyMatches reports whether NormalizeKey(decl) == name without allocating.
func keyMatches(decl, name string) bool {
	if decl == "" || name == "" {
		return decl == name
	}
	r, w := utf8.DecodeRuneInString(decl)
	if r == utf8.RuneError && w == 1 {
		// invalid byte: compared verbatim
		return decl == name
	}
	nr, nw := utf8.DecodeRuneInString(name)
	if nr == utf8.RuneError && nw == 1 {
		return false
	}
	return unicode.ToLower(r) == nr && decl[w:] == name[nw:]
}
