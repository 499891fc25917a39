package autofix

import "go.uber.org/zap"

// fixInstructions maps rule id to its human-authored repair instruction.
// The table is closed: a coverage test asserts every registry rule has an
// entry, so an unmapped id is caught at test time rather than silently
// degrading at runtime. Instructions are phrased per rule, not per content
// type; content-type specifics (markers, limits) arrive via the rule message.
var fixInstructions = map[string]string{
	"structure.cta":               "Add a clear call to action near the end of the text, matching the existing tone.",
	"structure.length":            "Adjust the text to fit the required character range by tightening or expanding wording; do not cut the call to action.",
	"structure.single_line":       "Collapse the text into a single line by removing line breaks and joining clauses naturally.",
	"redflag.banned_phrase":       "Remove or reword each banned phrase listed in the issue message without changing the claim's meaning.",
	"redflag.placeholder":         "Replace every placeholder marker with real, concrete copy consistent with the surrounding text.",
	"redflag.meta_commentary":     "Delete any sentence that talks about the writing or fixing process itself; keep only the marketing copy.",
	"quality.hashtag_limit":       "Reduce the number of hashtags to the allowed limit, keeping the most relevant ones.",
	"quality.emoji_limit":         "Reduce the number of emoji to the allowed limit, keeping at most the most expressive ones.",
	"quality.sentence_length":     "Split overly long sentences into shorter ones without changing their meaning.",
	"quality.stacked_punctuation": "Replace stacked punctuation with a single terminal mark.",
}

// instructionFor resolves the repair instruction for a rule id. An id with no
// registered instruction falls back to a generic directive built from the rule
// message; the fallback is logged because it means the table is incomplete.
func (b *Builder) instructionFor(ruleID, message string) string {
	if instruction, ok := fixInstructions[ruleID]; ok {
		return instruction
	}
	b.logger.Warn("no fix instruction registered for rule, using generic fallback",
		zap.String("rule_id", ruleID))
	return "Fix: " + message
}
