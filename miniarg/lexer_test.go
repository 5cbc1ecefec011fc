package miniarg

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func collectTokens(line string) []string {
	var toks []string
	lx := Tokenize(line)
	for {
		tok, ok := lx.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"single token", "string", []string{"string"}},
		{"two tokens", "string1 string2", []string{"string1", "string2"}},
		{"empty line", "", nil},
		{"only whitespace", " \t\r\n  ", nil},
		{"collapsed whitespace", "  a   b\t\tc  ", []string{"a", "b", "c"}},
		{"double quoted", `"string1 string2"`, []string{"string1 string2"}},
		{"two quoted", `"1 2" "3 4"`, []string{"1 2", "3 4"}},
		{"quoted between bare", `1 "2 3 4" 5`, []string{"1", "2 3 4", "5"}},
		{"single quoted", `'test value'`, []string{"test value"}},
		{"quote mid token is literal", `2"3"4`, []string{`2"3"4`}},
		{"unterminated double", `1 "2 3 4`, []string{"1", "2 3 4"}},
		{"unterminated single", `'test value`, []string{"test value"}},
		{"lone quote", `"`, []string{""}},
		{"empty quotes", `a "" b`, []string{"a", "", "b"}},
		{"single inside double", `"te'st' value"`, []string{"te'st' value"}},
		{"double inside single", `'te"st" value'`, []string{`te"st" value`}},
		{"lone single inside double", `"te'st value"`, []string{"te'st value"}},
		{"lone double inside single", `'te"st value'`, []string{`te"st value`}},
		{"closing quote ends token", `"a b"c`, []string{"a b", "c"}},
		{"tab separator", "-value\targ", []string{"-value", "arg"}},
		{"newline separator", "a\nb\r\nc", []string{"a", "b", "c"}},
		{"unicode whitespace", "a\u2003b\u00a0c", []string{"a", "b", "c"}},
		{"umlaut", "strÄng", []string{"strÄng"}},
		{"emoji", "rusty🦀 party🎉time", []string{"rusty🦀", "party🎉time"}},
		{"quoted emoji", `"🦀 🎉"`, []string{"🦀 🎉"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectTokens(tt.line)
			if !equalTokens(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

// TestTokenizeMatchesFieldsWithoutQuotes checks the unquoted case against strings.Fields
func TestTokenizeMatchesFieldsWithoutQuotes(t *testing.T) {
	lines := []string{
		"prog -key value",
		"   leading and trailing   ",
		"tabs\tand\nnewlines\r\nmixed",
		"ünïcödé wörds 🦀🎉 ok",
		"a\u0085b\u3000c",
		"",
	}
	for _, line := range lines {
		got := collectTokens(line)
		want := strings.Fields(line)
		if len(want) == 0 {
			want = nil
		}
		if !equalTokens(got, want) {
			t.Errorf("Tokenize(%q) = %q, strings.Fields = %q", line, got, want)
		}
	}
}

// TestTokensAreSubstrings verifies tokens are never copied or split mid-codepoint
func TestTokensAreSubstrings(t *testing.T) {
	line := `prog -name "rusty🦀 party🎉time" -x 'ä ö' strÄng "unterminated 🎉`
	lx := Tokenize(line)
	for {
		r, ok := lx.NextRange()
		if !ok {
			break
		}
		tok, ok := r.Get(line)
		if !ok {
			t.Fatalf("range %+v does not resolve on boundaries", r)
		}
		if !utf8.ValidString(tok) {
			t.Fatalf("token %q is not valid UTF-8", tok)
		}
		if !strings.Contains(line, tok) {
			t.Fatalf("token %q is not a substring of the line", tok)
		}
	}
}

func TestLexerExhausted(t *testing.T) {
	lx := Tokenize("one")
	if tok, ok := lx.Next(); !ok || tok != "one" {
		t.Fatalf("first Next = (%q, %v)", tok, ok)
	}
	for i := 0; i < 3; i++ {
		if tok, ok := lx.Next(); ok {
			t.Fatalf("expected exhausted lexer, got %q", tok)
		}
	}
	if lx.Source() != "one" {
		t.Fatalf("Source = %q", lx.Source())
	}
}

func TestSplit(t *testing.T) {
	got := Split(`prog -key "a value" -other 'x'`)
	want := []string{"prog", "-key", "a value", "-other", "x"}
	if !equalTokens(got, want) {
		t.Fatalf("Split = %q, want %q", got, want)
	}

	again := Split("z")
	if got[0] != "prog" || len(again) != 1 || again[0] != "z" {
		t.Fatalf("Split results interfere: %q %q", got, again)
	}

	if empty := Split("   "); len(empty) != 0 {
		t.Fatalf("Split of whitespace = %q", empty)
	}
}

func TestSplitAllocatesOnce(t *testing.T) {
	line := `prog -key "a value" -other 'x' ünï`
	allocs := testing.AllocsPerRun(100, func() {
		if toks := Split(line); len(toks) != 6 || cap(toks) != 6 {
			t.Fatalf("Split = %q (cap %d)", toks, cap(toks))
		}
	})
	if allocs != 1 {
		t.Fatalf("expected exactly 1 alloc/op for Split, got %.2f", allocs)
	}
}

func TestAppendTokens(t *testing.T) {
	buf := make([]string, 0, 8)
	buf = AppendTokens(buf, "a 'b c'")
	buf = AppendTokens(buf, `"d"`)
	if want := []string{"a", "b c", "d"}; !equalTokens(buf, want) {
		t.Fatalf("AppendTokens = %q, want %q", buf, want)
	}
}

func TestSplitPooled(t *testing.T) {
	toks := SplitPooled(`prog -key "a value"`)
	if want := []string{"prog", "-key", "a value"}; !equalTokens(toks.List(), want) {
		t.Fatalf("List = %q, want %q", toks.List(), want)
	}
	toks.Release()

	// a reused slice starts empty
	next := SplitPooled("z")
	defer next.Release()
	if want := []string{"z"}; !equalTokens(next.List(), want) {
		t.Fatalf("List after reuse = %q, want %q", next.List(), want)
	}

	var zero Tokens
	if zero.List() != nil {
		t.Fatal("zero Tokens should be empty")
	}
	zero.Release()
}

// FuzzTokenize checks that arbitrary input never panics and always yields boundary-safe substrings
func FuzzTokenize(f *testing.F) {
	for _, seed := range []string{"", `"`, `'a "b`, "2\"3\"4", "rusty🦀 party🎉time", "\xff\xfe -k v"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, line string) {
		lx := Tokenize(line)
		prevEnd := Index(0)
		for n := 0; ; n++ {
			r, ok := lx.NextRange()
			if !ok {
				break
			}
			if n > len(line) {
				t.Fatalf("more tokens than bytes in %q", line)
			}
			if r.Start < prevEnd || r.End < r.Start || int(r.End) > len(line) {
				t.Fatalf("bad range %+v in %q", r, line)
			}
			if _, ok := r.Get(line); !ok {
				t.Fatalf("range %+v of %q rejected by Get", r, line)
			}
			prevEnd = r.End
		}
	})
}
