package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/copygate/internal/types"
)

// placeholderMarkers indicate unfinished generator output that must never publish
var placeholderMarkers = []string{
	"[insert",
	"[your ",
	"{{",
	"lorem ipsum",
	"tbd",
	"todo:",
	"xxx",
}

// metaMarkers indicate the generator narrated its own work instead of producing copy
var metaMarkers = []string{
	"as an ai",
	"as a language model",
	"here is your",
	"here's your",
	"here is the revised",
	"i have fixed",
	"i've updated",
	"revised version:",
	"sure, here",
}

var (
	hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	sentenceEnd    = regexp.MustCompile(`[.!?]+`)
	stackedPunct   = regexp.MustCompile(`[!?]{2,}`)
)

// checkCTA verifies the text contains at least one call-to-action marker.
func checkCTA(text string, markers []string) (bool, string) {
	lower := strings.ToLower(text)
	for _, marker := range markers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true, "call to action present"
		}
	}
	return false, "missing a call to action (e.g. " + strings.Join(headOf(markers, 3), ", ") + ")"
}

// checkLength verifies the character count falls inside the given range.
func checkLength(text string, rng types.Range) (bool, string) {
	n := utf8.RuneCountInString(text)
	if rng.Contains(n) {
		return true, fmt.Sprintf("length %d within %d-%d", n, rng.Min, rng.Max)
	}
	if n < rng.Min {
		return false, fmt.Sprintf("text is %d characters, minimum is %d", n, rng.Min)
	}
	return false, fmt.Sprintf("text is %d characters, maximum is %d", n, rng.Max)
}

// checkSingleLine verifies the text contains no line breaks.
func checkSingleLine(text string) (bool, string) {
	if strings.ContainsAny(text, "\n\r") {
		return false, "text must be a single line"
	}
	return true, "single line"
}

// checkBannedPhrases verifies none of the profile's banned phrases appear.
func checkBannedPhrases(text string, phrases []string) (bool, string) {
	lower := strings.ToLower(text)
	var found []string
	for _, phrase := range phrases {
		p := strings.ToLower(strings.TrimSpace(phrase))
		if p == "" {
			continue
		}
		if strings.Contains(lower, p) {
			found = append(found, phrase)
		}
	}
	if len(found) > 0 {
		return false, "contains banned phrase(s): " + strings.Join(found, ", ")
	}
	return true, "no banned phrases"
}

// checkNoPlaceholders verifies no placeholder markers remain in the text.
func checkNoPlaceholders(text string) (bool, string) {
	lower := strings.ToLower(text)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return false, fmt.Sprintf("contains placeholder text %q", marker)
		}
	}
	return true, "no placeholder text"
}

// checkNoMetaCommentary verifies the text does not narrate the generation process.
func checkNoMetaCommentary(text string) (bool, string) {
	lower := strings.ToLower(text)
	for _, marker := range metaMarkers {
		if strings.Contains(lower, marker) {
			return false, fmt.Sprintf("contains meta commentary %q", marker)
		}
	}
	return true, "no meta commentary"
}

// checkHashtagLimit verifies the hashtag count does not exceed the limit.
func checkHashtagLimit(text string, limit int) (bool, string) {
	count := len(hashtagPattern.FindAllString(text, -1))
	if count > limit {
		return false, fmt.Sprintf("%d hashtags, maximum is %d", count, limit)
	}
	return true, fmt.Sprintf("%d hashtags within limit", count)
}

// checkEmojiLimit verifies the emoji count does not exceed the limit.
func checkEmojiLimit(text string, limit int) (bool, string) {
	count := countEmoji(text)
	if count > limit {
		return false, fmt.Sprintf("%d emoji, maximum is %d", count, limit)
	}
	return true, fmt.Sprintf("%d emoji within limit", count)
}

// checkSentenceLength verifies no sentence exceeds the word limit.
func checkSentenceLength(text string, maxWords int) (bool, string) {
	sentences := sentenceEnd.Split(text, -1)
	for _, s := range sentences {
		words := len(strings.Fields(s))
		if words > maxWords {
			return false, fmt.Sprintf("sentence with %d words exceeds the %d word limit", words, maxWords)
		}
	}
	return true, "sentence lengths within limit"
}

// checkNoStackedPunctuation verifies the text avoids runs like "!!!" or "?!?".
func checkNoStackedPunctuation(text string) (bool, string) {
	if m := stackedPunct.FindString(text); m != "" {
		return false, fmt.Sprintf("contains stacked punctuation %q", m)
	}
	return true, "no stacked punctuation"
}

// countEmoji counts runes in the common emoji blocks.
func countEmoji(text string) int {
	count := 0
	for _, r := range text {
		switch {
		case r >= 0x1F300 && r <= 0x1FAFF, // pictographs, emoticons, symbols
			r >= 0x2600 && r <= 0x27BF, // misc symbols and dingbats
			r == 0x2764:                // heavy black heart
			count++
		}
	}
	return count
}

// headOf returns at most n leading elements of items.
func headOf(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
