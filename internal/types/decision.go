// Package types provides type definitions for structured data used throughout the copygate system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Decision is the tri-state outcome of evaluating a candidate text.
type Decision string

// Decision constants define the possible evaluation outcomes
const (
	// DecisionPass means every applicable rule passed
	DecisionPass Decision = "PASS"
	// DecisionDraft means at least one SOFT rule failed and no HARD rule failed
	DecisionDraft Decision = "DRAFT"
	// DecisionFail means at least one HARD rule failed
	DecisionFail Decision = "FAIL"
)

// Layer categorizes what a rule checks
type Layer string

// Layer constants define the rule categories
const (
	// LayerStructure covers required shape: sections, length, line structure
	LayerStructure Layer = "STRUCTURE"
	// LayerRedFlag covers severe content defects: banned phrases, placeholders
	LayerRedFlag Layer = "RED_FLAG"
	// LayerQuality covers stylistic guidance
	LayerQuality Layer = "QUALITY"
)

// Severity determines whether a failing rule blocks publication
type Severity string

// Severity constants define how a failing rule affects the decision
const (
	// SeverityHard blocks publication when failed
	SeverityHard Severity = "HARD"
	// SeveritySoft is advisory; failures demote the decision to DRAFT
	SeveritySoft Severity = "SOFT"
)

// TestModePolicy controls how a rule behaves under test-mode evaluation
type TestModePolicy string

// TestModePolicy constants
const (
	// PolicySame evaluates the rule unchanged in test mode
	PolicySame TestModePolicy = "SAME"
	// PolicySkip excludes the rule from evaluation entirely in test mode
	PolicySkip TestModePolicy = "SKIP"
	// PolicyRelax evaluates the rule against its documented relaxed range in test mode
	PolicyRelax TestModePolicy = "RELAX"
)

// Range is an inclusive numeric range used by length-style rules.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether n falls inside the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}
