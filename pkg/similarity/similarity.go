// Package similarity scores how alike two session titles are. Titles from
// the two sources are independently typed by humans, so comparison runs
// on an aggressively normalized form and tolerates small edit differences.
package similarity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes characters and strips combining marks, so
// "Café" normalizes the same as "Cafe" before the ASCII filter runs.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize reduces a title to its comparable form: lowercase, combining
// marks folded, everything outside [a-z0-9\s] removed, whitespace
// collapsed to single spaces, trimmed. Total and idempotent; empty input
// yields the empty string.
func Normalize(title string) string {
	folded, _, err := transform.String(foldMarks, title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	space := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			space = true
		}
	}
	return b.String()
}

// Score returns the similarity of two titles in [0, 1]. It is commutative.
//
// Identical normalized forms score 1.0. When one normalized title is
// fully contained in the other the score is len(shorter)/len(longer),
// which rewards a subtitle embedded in a full title far more generously
// than edit distance would. Otherwise the score is
// 1 - levenshtein/maxLen. Either side normalizing to empty scores 0.
func Score(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1.0
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		minLen, maxLen := len(na), len(nb)
		if minLen > maxLen {
			minLen, maxLen = maxLen, minLen
		}
		return float64(minLen) / float64(maxLen)
	}

	maxLen := len(na)
	if len(nb) > maxLen {
		maxLen = len(nb)
	}
	return 1 - float64(levenshtein(na, nb))/float64(maxLen)
}

// levenshtein computes the classic unit-cost edit distance with the
// two-row dynamic programming formulation. Normalized titles are ASCII,
// so byte indexing is safe here.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j-1]+cost, curr[j-1]+1, prev[j]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
