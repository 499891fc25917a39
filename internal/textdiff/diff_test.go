package textdiff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffIdenticalTexts(t *testing.T) {
	text := "our new cold brew is finally here"

	tokens := Diff(text, text)
	require.Len(t, tokens, 7)
	for _, tok := range tokens {
		assert.Equal(t, Unchanged, tok.Kind)
	}
}

func TestDiffBothEmpty(t *testing.T) {
	assert.Nil(t, Diff("", ""))
	assert.Nil(t, Diff("   ", "\n\t"))
}

func TestDiffAddition(t *testing.T) {
	tokens := Diff("cold brew is here", "cold brew is here shop now")

	var added []string
	for _, tok := range tokens {
		if tok.Kind == Added {
			added = append(added, tok.Text)
		}
	}
	assert.Equal(t, []string{"shop", "now"}, added)
	assert.Equal(t, 4, countKind(tokens, Unchanged))
	assert.Equal(t, 0, countKind(tokens, Removed))
}

func TestDiffRemoval(t *testing.T) {
	tokens := Diff("cold brew is finally here", "cold brew is here")

	assert.Equal(t, 1, countKind(tokens, Removed))
	assert.Equal(t, 4, countKind(tokens, Unchanged))
	assert.Equal(t, 0, countKind(tokens, Added))
}

func TestDiffReplacement(t *testing.T) {
	tokens := Diff("the quick brown fox", "the slow brown fox")

	assert.Equal(t, 3, countKind(tokens, Unchanged))
	assert.Equal(t, 1, countKind(tokens, Removed))
	assert.Equal(t, 1, countKind(tokens, Added))
}

// Every word of both inputs must appear exactly once in the diff:
// unchanged and removed tokens reconstruct the original, unchanged and
// added tokens reconstruct the candidate.
func TestDiffCoversBothTexts(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		candidate string
	}{
		{"Disjoint", "alpha beta gamma", "delta epsilon"},
		{"Shared prefix", "try our new roast today", "try our classic roast now available"},
		{"Candidate empty", "only the original has words", ""},
		{"Original empty", "", "only the candidate has words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Diff(tt.original, tt.candidate)

			var orig, cand []string
			for _, tok := range tokens {
				switch tok.Kind {
				case Unchanged:
					orig = append(orig, tok.Text)
					cand = append(cand, tok.Text)
				case Removed:
					orig = append(orig, tok.Text)
				case Added:
					cand = append(cand, tok.Text)
				}
			}

			assert.ElementsMatch(t, splitWords(tt.original), orig)
			assert.ElementsMatch(t, splitWords(tt.candidate), cand)
		})
	}
}

func countKind(tokens []Token, kind Kind) int {
	n := 0
	for _, tok := range tokens {
		if tok.Kind == kind {
			n++
		}
	}
	return n
}

func splitWords(s string) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	return words
}
