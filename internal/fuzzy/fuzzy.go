// Package fuzzy ranks accepted key names by how close they are to a mistyped one.
// Used by miniarg/errors.go to fill "did you mean" candidates for unknown keys.
package fuzzy

import (
	"cmp"
	"slices"
	"strings"
)

// Matcher ranks candidates that lie within an edit distance of the input
type Matcher struct {
	maxDistance int
	minLength   int // inputs shorter than this, in codepoints, get no matches
}

// NewMatcher creates a matcher accepting candidates up to maxDistance edits away
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2,
	}
}

// Match is one ranked candidate
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindMatches returns the candidates within reach of input, best first.
// Comparison ignores case and counts codepoints, so "ärger" is one edit from
// "arger". Exact matches are not suggestions and are skipped.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	in := []rune(strings.ToLower(input))
	if len(in) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		c := []rune(strings.ToLower(candidate))
		if slices.Equal(in, c) {
			continue
		}
		d := m.distance(in, c)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: candidate, Distance: d, Score: score(in, c, d)})
	}

	// ties keep declaration order
	slices.SortStableFunc(matches, func(a, b Match) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		return cmp.Compare(a.Distance, b.Distance)
	})
	return matches
}

// Suggest returns at most n candidate names, best first
func (m *Matcher) Suggest(input string, candidates []string, n int) []string {
	matches := m.FindMatches(input, candidates)
	if len(matches) > n {
		matches = matches[:n]
	}
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, len(matches))
	for i, match := range matches {
		names[i] = match.Value
	}
	return names
}

// FindSuggestions returns at most n candidates within maxDistance of input, best first
func FindSuggestions(input string, candidates []string, maxDistance, n int) []string {
	return NewMatcher(maxDistance).Suggest(input, candidates, n)
}

// score weighs edit distance against the length of the longer name, plus a
// shared prefix and similar lengths, scaled into [0, 1].
func score(a, b []rune, distance int) float64 {
	longer, shorter := max(len(a), len(b)), min(len(a), len(b))
	if longer == 0 {
		return 1.0
	}

	s := 1.0 - float64(distance)/float64(longer)
	if shorter > 0 {
		s += 0.3 * float64(commonPrefix(a, b)) / float64(shorter)
	}
	s += 0.2 * float64(shorter) / float64(longer)
	return s / 1.5
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// distance is the Levenshtein distance between a and b. Once every entry of a
// row exceeds maxDistance the result is reported as maxDistance+1.
func (m *Matcher) distance(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > m.maxDistance {
		return m.maxDistance + 1
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i, rb := range b {
		cur[0] = i + 1
		best := cur[0]
		for j, ra := range a {
			sub := prev[j]
			if ra != rb {
				sub++
			}
			cur[j+1] = min(cur[j]+1, prev[j+1]+1, sub)
			best = min(best, cur[j+1])
		}
		if best > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}
