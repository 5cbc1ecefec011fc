package miniarg

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{NewParseError(ErrorTypeNotAKey, "value"), `expected a key, got "value"`},
		{NewParseError(ErrorTypeNotAKey, ""), `expected a key, got ""`},
		{NewParseError(ErrorTypeUnknownKey, "bogus"), `unknown key "-bogus"`},
		{NewParseError(ErrorTypeUnknown, "x"), `parse error at "x"`},
		{&ParseError{Type: ErrorTypeUnknownKey, Token: "verbos", Suggestion: "verbose"},
			`unknown key "-verbos" (did you mean '-verbose'?)`},
		{&ParseError{Type: ErrorTypeUnknownKey, Token: "inpt", Suggestion: "input", Candidates: []string{"input", "inputs"}},
			`unknown key "-inpt" (did you mean one of '-input', '-inputs'?)`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseError_Is(t *testing.T) {
	notAKey := fmt.Errorf("line 3: %w", NewParseError(ErrorTypeNotAKey, "v"))
	if !errors.Is(notAKey, ErrNotAKey) {
		t.Fatal("expected wrapped error to match ErrNotAKey")
	}
	if errors.Is(notAKey, ErrUnknownKey) || errors.Is(notAKey, ErrUnknown) {
		t.Fatal("error matched the wrong sentinel")
	}
	if !errors.Is(NewParseError(ErrorTypeUnknownKey, "k"), ErrUnknownKey) {
		t.Fatal("expected ErrUnknownKey")
	}
	if errors.Is(NewParseError("custom", "k"), ErrUnknown) {
		t.Fatal("unregistered type should match no sentinel")
	}
}

func TestSuggestKeysHelper(t *testing.T) {
	keys := StringKeys("Config", "output", "x")
	if got := suggestKeys("confg", keys, 2); len(got) != 1 || got[0] != "config" {
		t.Errorf("suggestKeys(confg) = %v, want [config]", got)
	}
	if got := suggestKeys("zzzzzz", keys, 2); len(got) != 0 {
		t.Errorf("suggestKeys(zzzzzz) = %v, want none", got)
	}
	if got := suggestKeys("confg", keys, 0); len(got) != 0 {
		t.Errorf("suggestKeys with distance 0 = %v, want none", got)
	}

	many := StringKeys("port", "sort", "post", "fort", "part")
	if got := suggestKeys("pory", many, 2); len(got) != maxCandidates || got[0] != "port" {
		t.Errorf("suggestKeys(pory) = %v, want %d candidates led by port", got, maxCandidates)
	}
}
