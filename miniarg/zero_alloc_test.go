package miniarg

import (
	"testing"
)

// TestZeroAllocTokenize ensures splitting a line never allocates
func TestZeroAllocTokenize(t *testing.T) {
	line := `prog -input "some file.txt" -mode 'a b' -ünï 🦀`

	allocs := testing.AllocsPerRun(1000, func() {
		lex := Tokenize(line)
		n := 0
		for {
			if _, ok := lex.Next(); !ok {
				break
			}
			n++
		}
		if n != 7 {
			t.Fatalf("expected 7 tokens, got %d", n)
		}
	})

	if allocs != 0 {
		t.Fatalf("expected 0 allocs/op for tokenize, got %.2f", allocs)
	}
}

// TestZeroAllocParse ensures the happy path of key matching never allocates
func TestZeroAllocParse(t *testing.T) {
	parser := NewParser(StringKeys("Input", "mode", "ünï"))
	line := `prog -input "some file.txt" -mode 'a b' -ünï 🦀`

	allocs := testing.AllocsPerRun(1000, func() {
		m := parser.Parse(line)
		n := 0
		for {
			res, ok := m.Next()
			if !ok {
				break
			}
			if res.Err != nil {
				t.Fatalf("unexpected parse error: %v", res.Err)
			}
			n++
		}
		if n != 3 {
			t.Fatalf("expected 3 pairs, got %d", n)
		}
	})

	if allocs != 0 {
		t.Fatalf("expected 0 allocs/op for parse, got %.2f", allocs)
	}
}

// TestZeroAllocTrailingKey covers the end-of-line path with an empty value
func TestZeroAllocTrailingKey(t *testing.T) {
	parser := NewParser(StringKeys("help")).TrailingKey(TrailingKeyEmpty)

	allocs := testing.AllocsPerRun(1000, func() {
		m := parser.Parse("prog -help")
		res, ok := m.Next()
		if !ok || res.Err != nil || res.Value != "" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	if allocs != 0 {
		t.Fatalf("expected 0 allocs/op for trailing key, got %.2f", allocs)
	}
}

// TestErrorPathAllocs pins the cost of a recovered error without suggestions
func TestErrorPathAllocs(t *testing.T) {
	parser := NewParser(StringKeys("key"))

	allocs := testing.AllocsPerRun(1000, func() {
		m := parser.Parse("prog stray -key v")
		res, ok := m.Next()
		if !ok || res.Err == nil {
			t.Fatalf("expected an error, got %+v", res)
		}
	})

	if allocs != 1 {
		t.Fatalf("expected 1 alloc/op for an error, got %.2f", allocs)
	}
}
