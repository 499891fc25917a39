package types

// RuleResult represents the outcome of a single rule check against a candidate text.
// Results are produced fresh on every evaluation call and never persisted.
type RuleResult struct {
	RuleID   string   `json:"rule_id"`
	Layer    Layer    `json:"layer"`
	Severity Severity `json:"severity"`
	Passed   bool     `json:"passed"`
	Message  string   `json:"message"`
}

// EvalReport is the aggregate result of evaluating one candidate text
// against a content type's rule set.
type EvalReport struct {
	ContentType string       `json:"content_type"`
	Decision    Decision     `json:"decision"`
	HardFails   []RuleResult `json:"hard_fails"`
	SoftFails   []RuleResult `json:"soft_fails"`
	// Results holds every non-skipped rule outcome in registry order,
	// including passes.
	Results []RuleResult `json:"results"`
}

// FailingRuleIDs returns the rule ids of all failing results, hard first.
func (r *EvalReport) FailingRuleIDs() []string {
	ids := make([]string, 0, len(r.HardFails)+len(r.SoftFails))
	for _, f := range r.HardFails {
		ids = append(ids, f.RuleID)
	}
	for _, f := range r.SoftFails {
		ids = append(ids, f.RuleID)
	}
	return ids
}

// HardFailSet returns the hard-failing rule ids as a set for membership checks.
func (r *EvalReport) HardFailSet() map[string]bool {
	set := make(map[string]bool, len(r.HardFails))
	for _, f := range r.HardFails {
		set[f.RuleID] = true
	}
	return set
}
