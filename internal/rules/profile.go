// Package rules provides the per-content-type rule registry: rule definitions,
// their check predicates, and the content-type profiles that parameterize them.
package rules

import (
	"github.com/jonathan/copygate/internal/types"
)

// Profile holds the declarative parameters for one content type.
// Profiles are loaded once from the embedded profile table and never mutated.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`

	// Template describes the expected output structure for this content type.
	// It is embedded verbatim in fix prompts as the structure contract.
	Template string `json:"template"`

	// CTAMarkers are phrases that satisfy the call-to-action requirement.
	// An empty list disables the CTA rule for this content type.
	CTAMarkers []string `json:"cta_markers"`

	// BannedPhrases fail the red-flag banned phrase rule when present.
	BannedPhrases []string `json:"banned_phrases"`

	// Length is the allowed character range; RelaxedLength is the widened
	// range used when the length rule runs under test mode with RELAX policy.
	Length        types.Range  `json:"length"`
	RelaxedLength *types.Range `json:"relaxed_length,omitempty"`

	// SingleLine requires the text to contain no line breaks.
	SingleLine bool `json:"single_line,omitempty"`

	// Quality limits. A zero limit disables the corresponding rule.
	MaxHashtags      int `json:"max_hashtags,omitempty"`
	MaxEmoji         int `json:"max_emoji,omitempty"`
	MaxSentenceWords int `json:"max_sentence_words,omitempty"`
}
