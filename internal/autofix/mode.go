// Package autofix builds the constrained repair prompts handed to the
// external text generator when a candidate text fails quality rules.
package autofix

// Mode selects the prompting escalation tier.
type Mode string

// Prompting modes
const (
	// ModeNormal is the first-attempt prompt variant
	ModeNormal Mode = "NORMAL"
	// ModeStrict adds explicit minimal-surgical-edit language; used on retries
	ModeStrict Mode = "STRICT"
)

// ModeForAttempt returns the prompting mode for a 1-based attempt number.
func ModeForAttempt(attemptNumber int) Mode {
	if attemptNumber > 1 {
		return ModeStrict
	}
	return ModeNormal
}
