// Package evaluation runs a content type's rule set against candidate text
// and derives the publication decision.
package evaluation

import (
	"github.com/jonathan/copygate/internal/rules"
	"github.com/jonathan/copygate/internal/types"
)

// Evaluate checks text against the rules registered for contentTypeID and
// derives the decision. It is pure: identical inputs always produce identical
// output, with no I/O and no randomness.
//
// Under testMode, SKIP-policy rules are excluded entirely (absent from the
// decision derivation and from both fail lists) and RELAX-policy rules are
// evaluated against their documented relaxed range.
//
// An unknown content type is a configuration error and is returned as such,
// never folded into a FAIL decision.
func Evaluate(reg *rules.Registry, contentTypeID, text string, testMode bool) (*types.EvalReport, error) {
	defs, err := reg.Rules(contentTypeID)
	if err != nil {
		return nil, err
	}

	report := &types.EvalReport{
		ContentType: contentTypeID,
		Decision:    types.DecisionPass,
	}

	for _, def := range defs {
		if testMode && def.TestMode == types.PolicySkip {
			continue
		}
		relaxed := testMode && def.TestMode == types.PolicyRelax

		passed, message := def.Check(text, relaxed)
		result := types.RuleResult{
			RuleID:   def.ID,
			Layer:    def.Layer,
			Severity: def.Severity,
			Passed:   passed,
			Message:  message,
		}
		report.Results = append(report.Results, result)

		if passed {
			continue
		}
		switch def.Severity {
		case types.SeverityHard:
			report.HardFails = append(report.HardFails, result)
		case types.SeveritySoft:
			report.SoftFails = append(report.SoftFails, result)
		}
	}

	// FAIL iff any non-skipped HARD rule failed; else DRAFT iff any
	// non-skipped SOFT rule failed; else PASS.
	switch {
	case len(report.HardFails) > 0:
		report.Decision = types.DecisionFail
	case len(report.SoftFails) > 0:
		report.Decision = types.DecisionDraft
	}

	return report, nil
}
