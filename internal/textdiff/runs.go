package textdiff

import "strings"

// Run is a maximal sequence of consecutive same-kind tokens collapsed into
// one span. Runs are a presentational view of the diff; they never alter
// the underlying similarity score.
type Run struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// CollapseRuns merges consecutive tokens of the same kind into runs, joining
// their text with single spaces.
func CollapseRuns(tokens []Token) []Run {
	var runs []Run
	var words []string

	flush := func(kind Kind) {
		if len(words) == 0 {
			return
		}
		runs = append(runs, Run{Kind: kind, Text: strings.Join(words, " ")})
		words = words[:0]
	}

	var current Kind
	for _, t := range tokens {
		if len(words) > 0 && t.Kind != current {
			flush(current)
		}
		current = t.Kind
		words = append(words, t.Text)
	}
	flush(current)

	return runs
}

// Window is a slice of the diff around one changed region, padded with up to
// a fixed number of unchanged context tokens on each side.
type Window struct {
	// Start is the index of the window's first token in the full diff.
	Start  int     `json:"start"`
	Tokens []Token `json:"tokens"`
}

// ContextWindows extracts a window of context tokens around each contiguous
// changed region. Overlapping windows are merged. The transformation is pure;
// the input diff is not modified.
func ContextWindows(tokens []Token, context int) []Window {
	if context < 0 {
		context = 0
	}

	type span struct{ lo, hi int } // inclusive bounds
	var spans []span
	for i := 0; i < len(tokens); {
		if tokens[i].Kind == Unchanged {
			i++
			continue
		}
		j := i
		for j < len(tokens) && tokens[j].Kind != Unchanged {
			j++
		}
		lo := max(0, i-context)
		hi := min(len(tokens)-1, j-1+context)
		if len(spans) > 0 && lo <= spans[len(spans)-1].hi+1 {
			spans[len(spans)-1].hi = hi
		} else {
			spans = append(spans, span{lo: lo, hi: hi})
		}
		i = j
	}

	windows := make([]Window, 0, len(spans))
	for _, s := range spans {
		w := Window{Start: s.lo}
		w.Tokens = append(w.Tokens, tokens[s.lo:s.hi+1]...)
		windows = append(windows, w)
	}
	return windows
}
