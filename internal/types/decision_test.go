package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeContains(t *testing.T) {
	tests := []struct {
		name     string
		rng      Range
		n        int
		expected bool
	}{
		{"Inside", Range{Min: 10, Max: 20}, 15, true},
		{"At min", Range{Min: 10, Max: 20}, 10, true},
		{"At max", Range{Min: 10, Max: 20}, 20, true},
		{"Below min", Range{Min: 10, Max: 20}, 9, false},
		{"Above max", Range{Min: 10, Max: 20}, 21, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rng.Contains(tt.n))
		})
	}
}

func TestEvalReportHelpers(t *testing.T) {
	report := &EvalReport{
		Decision: DecisionFail,
		HardFails: []RuleResult{
			{RuleID: "structure.cta", Severity: SeverityHard},
			{RuleID: "redflag.placeholder", Severity: SeverityHard},
		},
		SoftFails: []RuleResult{
			{RuleID: "quality.sentence_length", Severity: SeveritySoft},
		},
	}

	assert.Equal(t, []string{"structure.cta", "redflag.placeholder", "quality.sentence_length"}, report.FailingRuleIDs())

	set := report.HardFailSet()
	assert.True(t, set["structure.cta"])
	assert.True(t, set["redflag.placeholder"])
	assert.False(t, set["quality.sentence_length"])
}
