package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityBounds(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		candidate string
	}{
		{"Identical", "cold brew is here", "cold brew is here"},
		{"Disjoint", "alpha beta gamma", "delta epsilon zeta"},
		{"Partial overlap", "try our new roast today", "try our classic roast"},
		{"Candidate empty", "cold brew is here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Similarity(tt.original, tt.candidate)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestSimilarityIdenticalIsOne(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("exact same words", "exact same words"))
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarityDisjointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("alpha beta gamma", "delta epsilon zeta"))
	assert.Equal(t, 0.0, Similarity("cold brew is here", ""))
}

func TestScoreFromDiff(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []Token
		expected float64
	}{
		{"Empty diff", nil, 1.0},
		{
			name: "All unchanged",
			tokens: []Token{
				{Kind: Unchanged, Text: "a"},
				{Kind: Unchanged, Text: "b"},
			},
			expected: 1.0,
		},
		{
			// Dice: 2*3 / (2*3 + 1 + 2) = 6/9
			name: "Mixed",
			tokens: []Token{
				{Kind: Unchanged, Text: "a"},
				{Kind: Unchanged, Text: "b"},
				{Kind: Unchanged, Text: "c"},
				{Kind: Removed, Text: "d"},
				{Kind: Added, Text: "e"},
				{Kind: Added, Text: "f"},
			},
			expected: 6.0 / 9.0,
		},
		{
			name: "Nothing shared",
			tokens: []Token{
				{Kind: Removed, Text: "a"},
				{Kind: Added, Text: "b"},
			},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ScoreFromDiff(tt.tokens), 1e-9)
		})
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected Bucket
	}{
		{"Exact match", 1.0, BucketVeryClose},
		{"Very close boundary", 0.85, BucketVeryClose},
		{"Just under very close", 0.84, BucketClose},
		{"Close boundary", 0.70, BucketClose},
		{"Just under close", 0.69, BucketModerate},
		{"Moderate boundary", 0.50, BucketModerate},
		{"Just under moderate", 0.49, BucketVeryDifferent},
		{"Zero", 0.0, BucketVeryDifferent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BucketFor(tt.score))
		})
	}
}
