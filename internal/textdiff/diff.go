// Package textdiff provides the pure text-comparison engine: a word-level
// token diff between an original and a candidate text, a bounded similarity
// score derived from it, and presentational transforms over the diff.
package textdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Kind classifies a diff token relative to the original text.
type Kind string

// Token kinds
const (
	// Unchanged tokens appear in both texts
	Unchanged Kind = "unchanged"
	// Added tokens appear only in the candidate
	Added Kind = "added"
	// Removed tokens appear only in the original
	Removed Kind = "removed"
)

// Token is one word-level unit of the diff.
type Token struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Diff computes the ordered word-level diff between original and candidate.
// Every word of the original and every word of the candidate is represented
// by exactly one token: unchanged, removed (original only), or added
// (candidate only). Identical inputs yield only unchanged tokens.
func Diff(original, candidate string) []Token {
	origWords := strings.Fields(original)
	candWords := strings.Fields(candidate)
	if len(origWords) == 0 && len(candWords) == 0 {
		return nil
	}

	// diffmatchpatch works on characters. Encode each unique word as one
	// rune via the library's line mapping so the diff operates on word
	// units, then decode back to words.
	dmp := diffmatchpatch.New()
	c1, c2, wordArray := dmp.DiffLinesToChars(joinUnits(origWords), joinUnits(candWords))
	diffs := dmp.DiffMain(c1, c2, false)
	diffs = dmp.DiffCharsToLines(diffs, wordArray)

	var tokens []Token
	for _, d := range diffs {
		kind := Unchanged
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = Removed
		case diffmatchpatch.DiffInsert:
			kind = Added
		}
		for _, word := range splitUnits(d.Text) {
			tokens = append(tokens, Token{Kind: kind, Text: word})
		}
	}
	return tokens
}

// joinUnits encodes words one per line for the diff library's line mapping.
func joinUnits(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, "\n") + "\n"
}

// splitUnits decodes a newline-joined diff segment back into words.
func splitUnits(segment string) []string {
	segment = strings.TrimSuffix(segment, "\n")
	if segment == "" {
		return nil
	}
	return strings.Split(segment, "\n")
}
