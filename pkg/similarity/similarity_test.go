package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedlink/schedlink/pkg/similarity"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Keynote Address", "keynote address"},
		{"strips punctuation", "Keynote: The Future of AI!", "keynote the future of ai"},
		{"collapses whitespace", "  AI   and \t Robotics  ", "ai and robotics"},
		{"folds diacritics", "Café Sessions", "cafe sessions"},
		{"keeps digits", "Web3 & 5G", "web3 5g"},
		{"empty", "", ""},
		{"only punctuation", "***", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, similarity.Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	titles := []string{
		"Keynote: The Future of AI",
		"  Scaling   LLMs (Panel) ",
		"Café & Conversations — Day 2",
		"",
	}
	for _, title := range titles {
		once := similarity.Normalize(title)
		assert.Equal(t, once, similarity.Normalize(once), "normalize must be idempotent for %q", title)
	}
}

func TestScoreBoundsAndSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"Keynote: The Future of AI", "Keynote - Future of AI"},
		{"Fireside Chat", "Fireside Chat with the CTO"},
		{"Completely Different", "Another Thing Entirely"},
		{"", "Non-empty"},
		{"Same", "Same"},
	}
	for _, pair := range pairs {
		ab := similarity.Score(pair[0], pair[1])
		ba := similarity.Score(pair[1], pair[0])
		assert.Equal(t, ab, ba, "score must be commutative for %q / %q", pair[0], pair[1])
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
	}
}

func TestScoreIdentity(t *testing.T) {
	assert.Equal(t, 1.0, similarity.Score("Agents in Production", "Agents in Production"))
	// Identical up to punctuation and case.
	assert.Equal(t, 1.0, similarity.Score("Keynote: The Future of AI", "Keynote - The Future of AI"))
}

func TestScoreEmpty(t *testing.T) {
	assert.Equal(t, 0.0, similarity.Score("", "anything"))
	assert.Equal(t, 0.0, similarity.Score("?!", "anything"))
	assert.Equal(t, 0.0, similarity.Score("", ""))
}

func TestScoreContainment(t *testing.T) {
	// "fireside chat" (13) inside "fireside chat extended" (22).
	got := similarity.Score("Fireside Chat", "Fireside Chat Extended")
	assert.InDelta(t, 13.0/22.0, got, 1e-9)
}

func TestScoreEditDistance(t *testing.T) {
	// "keynote the future of ai" vs "keynote future of ai":
	// one four-character deletion over 24 characters.
	got := similarity.Score("Keynote: The Future of AI", "Keynote - Future of AI")
	assert.InDelta(t, 1.0-4.0/24.0, got, 1e-9)
}
