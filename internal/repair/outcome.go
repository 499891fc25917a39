// Package repair orchestrates the bounded auto-fix loop: prompt the external
// generator to correct failing rules, re-validate the candidate, gate
// acceptance on similarity to the original, and fall back to the original
// text when no attempt is acceptable.
package repair

import (
	"github.com/jonathan/copygate/internal/textdiff"
	"github.com/jonathan/copygate/internal/types"
)

// State is a terminal state of one fix operation.
type State string

// Terminal states
const (
	// StateAccepted means a repaired candidate passed the acceptance gate.
	// Acceptance only offers the candidate for human review; nothing is
	// published automatically.
	StateAccepted State = "ACCEPTED"
	// StateFallback means every attempt was rejected and the original text
	// stands unchanged. This is a normal outcome, not an error.
	StateFallback State = "FALLBACK"
)

// Attempt records one iteration of the fix loop. The attempt history of an
// operation is append-only and owned exclusively by the orchestrator.
type Attempt struct {
	Number    int    `json:"number"` // 1-based
	InputText string `json:"input_text"`
	Candidate string `json:"candidate"`
	// score stays inside the core; only the bucket is exported.
	score            float64
	SimilarityBucket textdiff.Bucket `json:"similarity_bucket"`
	TargetRuleIDs    []string        `json:"target_rule_ids"`
	GeneratorError   string          `json:"generator_error,omitempty"`
	UsedFallback     bool            `json:"used_fallback"`
}

// Outcome is the result of one fix operation, surfaced to the UI collaborator.
// The UI alone decides whether to apply FinalText; this is a human-in-the-loop
// gate, not an automatic publish.
type Outcome struct {
	State            State              `json:"state"`
	Decision         types.Decision     `json:"decision"`
	HardFails        []types.RuleResult `json:"hard_fails"`
	SoftFails        []types.RuleResult `json:"soft_fails"`
	DiffTokens       []textdiff.Token   `json:"diff_tokens"`
	SimilarityBucket textdiff.Bucket    `json:"similarity_bucket"`
	AttemptCount     int                `json:"attempt_count"`
	UsedFallback     bool               `json:"used_fallback"`
	FinalText        string             `json:"final_text"`
	Attempts         []Attempt          `json:"attempts"`
}
