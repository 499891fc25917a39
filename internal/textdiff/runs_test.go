package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseRuns(t *testing.T) {
	tokens := []Token{
		{Kind: Unchanged, Text: "cold"},
		{Kind: Unchanged, Text: "brew"},
		{Kind: Removed, Text: "is"},
		{Kind: Added, Text: "was"},
		{Kind: Added, Text: "just"},
		{Kind: Unchanged, Text: "here"},
	}

	runs := CollapseRuns(tokens)
	assert.Equal(t, []Run{
		{Kind: Unchanged, Text: "cold brew"},
		{Kind: Removed, Text: "is"},
		{Kind: Added, Text: "was just"},
		{Kind: Unchanged, Text: "here"},
	}, runs)
}

func TestCollapseRunsEmpty(t *testing.T) {
	assert.Nil(t, CollapseRuns(nil))
}

func TestContextWindows(t *testing.T) {
	tokens := []Token{
		{Kind: Unchanged, Text: "w0"},
		{Kind: Unchanged, Text: "w1"},
		{Kind: Unchanged, Text: "w2"},
		{Kind: Added, Text: "w3"},
		{Kind: Unchanged, Text: "w4"},
		{Kind: Unchanged, Text: "w5"},
		{Kind: Unchanged, Text: "w6"},
		{Kind: Unchanged, Text: "w7"},
		{Kind: Removed, Text: "w8"},
		{Kind: Unchanged, Text: "w9"},
	}

	windows := ContextWindows(tokens, 1)
	require.Len(t, windows, 2)

	assert.Equal(t, 2, windows[0].Start)
	assert.Equal(t, []Token{tokens[2], tokens[3], tokens[4]}, windows[0].Tokens)

	assert.Equal(t, 7, windows[1].Start)
	assert.Equal(t, []Token{tokens[7], tokens[8], tokens[9]}, windows[1].Tokens)
}

func TestContextWindowsMergeOverlapping(t *testing.T) {
	tokens := []Token{
		{Kind: Added, Text: "w0"},
		{Kind: Unchanged, Text: "w1"},
		{Kind: Removed, Text: "w2"},
		{Kind: Unchanged, Text: "w3"},
	}

	windows := ContextWindows(tokens, 2)
	require.Len(t, windows, 1)
	assert.Equal(t, 0, windows[0].Start)
	assert.Len(t, windows[0].Tokens, 4)
}

func TestContextWindowsNoChanges(t *testing.T) {
	tokens := []Token{
		{Kind: Unchanged, Text: "w0"},
		{Kind: Unchanged, Text: "w1"},
	}
	assert.Empty(t, ContextWindows(tokens, 2))
}

func TestContextWindowsClampsBounds(t *testing.T) {
	tokens := []Token{
		{Kind: Added, Text: "w0"},
		{Kind: Unchanged, Text: "w1"},
	}

	windows := ContextWindows(tokens, 5)
	require.Len(t, windows, 1)
	assert.Equal(t, 0, windows[0].Start)
	assert.Len(t, windows[0].Tokens, 2)

	windows = ContextWindows(tokens, -1)
	require.Len(t, windows, 1)
	assert.Equal(t, []Token{tokens[0]}, windows[0].Tokens)
}
