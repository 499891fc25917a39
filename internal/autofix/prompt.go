package autofix

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/copygate/internal/prompts"
	"github.com/jonathan/copygate/internal/rules"
	"github.com/jonathan/copygate/internal/types"
)

const promptFile = "autofix.json"

// Options controls prompt construction for one fix attempt.
type Options struct {
	Mode          Mode
	AttemptNumber int // 1-based
	Language      string
	TestMode      bool
}

// Prompt is the system/user instruction pair handed to the generator.
type Prompt struct {
	System string
	User   string
	// PassThrough is set when every failing rule was filtered out (test-mode
	// SKIP rules); the user prompt then reproduces the input unchanged.
	// This is a deliberate no-op, not an error.
	PassThrough bool
	// TargetRuleIDs lists the rule ids this prompt instructs the generator
	// to fix, in prompt order.
	TargetRuleIDs []string
}

// Builder constructs fix prompts from failing rule results.
type Builder struct {
	reg    *rules.Registry
	logger *zap.Logger
}

// NewBuilder creates a prompt builder over the given registry.
func NewBuilder(reg *rules.Registry, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{reg: reg, logger: logger}
}

// BuildFixPrompt turns the failing rules for a candidate text into a repair
// instruction pair. Output is byte-deterministic for identical inputs,
// including attempt number and test mode.
func (b *Builder) BuildFixPrompt(contentTypeID, text string, failing []types.RuleResult, opts Options) (*Prompt, error) {
	profile, err := b.reg.Profile(contentTypeID)
	if err != nil {
		return nil, err
	}

	targets := b.filterSkipped(contentTypeID, failing, opts.TestMode)
	if len(targets) == 0 {
		return b.passThroughPrompt(text), nil
	}

	return &Prompt{
		System:        b.buildSystem(profile, opts),
		User:          b.buildUser(text, targets, opts),
		TargetRuleIDs: ruleIDsOf(targets),
	}, nil
}

// filterSkipped removes failing rules whose test-mode policy is SKIP when
// running under test mode. Rules unknown to the registry are kept; they reach
// the generic instruction fallback, which is the observable signal that the
// instruction table and registry have diverged.
func (b *Builder) filterSkipped(contentTypeID string, failing []types.RuleResult, testMode bool) []types.RuleResult {
	if !testMode {
		return failing
	}
	kept := make([]types.RuleResult, 0, len(failing))
	for _, f := range failing {
		if def, ok := b.reg.Rule(contentTypeID, f.RuleID); ok && def.TestMode == types.PolicySkip {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func (b *Builder) buildSystem(profile *rules.Profile, opts Options) string {
	var sb strings.Builder

	variant := "system_normal"
	if opts.Mode == ModeStrict {
		variant = "system_strict"
	}
	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, variant), map[string]string{
		"DisplayName": profile.DisplayName,
	}))
	sb.WriteString("\n\n")
	sb.WriteString(prompts.MustGet(promptFile, "safe_edit_policy"))
	sb.WriteString("\n\n")
	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "structure_header"), map[string]string{
		"DisplayName": profile.DisplayName,
	}))
	sb.WriteString("\n")
	sb.WriteString(profile.Template)

	if opts.Language != "" {
		sb.WriteString("\n\n")
		sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "language_line"), map[string]string{
			"Language": opts.Language,
		}))
	}

	return sb.String()
}

func (b *Builder) buildUser(text string, targets []types.RuleResult, opts Options) string {
	var sb strings.Builder

	if opts.AttemptNumber > 1 {
		sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "retry_marker"), map[string]string{
			"Attempt": strconv.Itoa(opts.AttemptNumber),
		}))
		sb.WriteString("\n\n")
	}

	sb.WriteString(prompts.MustGet(promptFile, "user_intro"))
	sb.WriteString("\n")
	for i, f := range targets {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, f.RuleID, b.instructionFor(f.RuleID, f.Message)))
		sb.WriteString(fmt.Sprintf("   Issue: %s\n", f.Message))
	}

	sb.WriteString("\n")
	sb.WriteString(prompts.MustGet(promptFile, "user_original"))
	sb.WriteString("\n---\n")
	sb.WriteString(text)
	sb.WriteString("\n---\n\n")
	sb.WriteString(prompts.MustGet(promptFile, "user_return"))

	return sb.String()
}

func (b *Builder) passThroughPrompt(text string) *Prompt {
	var sb strings.Builder
	sb.WriteString(prompts.MustGet(promptFile, "passthrough"))
	sb.WriteString("\n---\n")
	sb.WriteString(text)
	sb.WriteString("\n---")

	return &Prompt{
		System:      prompts.MustGet(promptFile, "safe_edit_policy"),
		User:        sb.String(),
		PassThrough: true,
	}
}

func ruleIDsOf(results []types.RuleResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.RuleID
	}
	return ids
}
