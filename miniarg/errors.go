package miniarg

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-miniarg/internal/fuzzy"
)

// ErrorType represents parse error categories.
// These categories drive errors.Is matching and exit-code mapping (via ExitCodes).
type ErrorType string

const (
	// ErrorTypeNotAKey: a key was expected but the token has no leading dash.
	ErrorTypeNotAKey ErrorType = "not_a_key"
	// ErrorTypeUnknownKey: the token has a leading dash but names no accepted key.
	ErrorTypeUnknownKey ErrorType = "unknown_key"
	// ErrorTypeUnknown is reserved for future error categories.
	ErrorTypeUnknown ErrorType = "unknown"
)

// Sentinels for errors.Is. A *ParseError matches the sentinel of its Type.
var (
	ErrNotAKey    = errors.New("not a key")
	ErrUnknownKey = errors.New("unknown key")
	ErrUnknown    = errors.New("parse error")
)

// ParseError is a recoverable error reported by the matcher. Token is borrowed
// from the parsed line: the full token for ErrorTypeNotAKey, the token without
// its leading dash for ErrorTypeUnknownKey.
type ParseError struct {
	Type       ErrorType
	Token      string
	Suggestion string   // closest accepted key, if suggestions are enabled
	Candidates []string // close keys, best first; Candidates[0] == Suggestion
}

// NewParseError creates a new ParseError with the given type and offending token
func NewParseError(errType ErrorType, token string) *ParseError {
	return &ParseError{Type: errType, Token: token}
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Type {
	case ErrorTypeNotAKey:
		msg = "expected a key, got " + strconv.Quote(e.Token)
	case ErrorTypeUnknownKey:
		msg = "unknown key " + strconv.Quote("-"+e.Token)
	case ErrorTypeUnknown:
		msg = "parse error at " + strconv.Quote(e.Token)
	default:
		msg = string(e.Type) + ": " + strconv.Quote(e.Token)
	}
	switch {
	case len(e.Candidates) > 1:
		msg += " (did you mean one of '-" + strings.Join(e.Candidates, "', '-") + "'?)"
	case e.Suggestion != "":
		msg += " (did you mean '-" + e.Suggestion + "'?)"
	}
	return msg
}

// Is reports whether target is the sentinel for e's category.
func (e *ParseError) Is(target error) bool {
	switch e.Type {
	case ErrorTypeNotAKey:
		return target == ErrNotAKey
	case ErrorTypeUnknownKey:
		return target == ErrUnknownKey
	case ErrorTypeUnknown:
		return target == ErrUnknown
	default:
		return false
	}
}

// maxCandidates caps the keys listed for one unknown key.
const maxCandidates = 3

// suggestKeys lists the accepted key names closest to an unknown one.
func suggestKeys[K Key](token string, keys []K, maxDistance int) []string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, NormalizeKey(k.String()))
	}
	return fuzzy.FindSuggestions(token, names, maxDistance, maxCandidates)
}
