package repair

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/copygate/internal/analytics"
	"github.com/jonathan/copygate/internal/autofix"
	"github.com/jonathan/copygate/internal/evaluation"
	"github.com/jonathan/copygate/internal/llm"
	"github.com/jonathan/copygate/internal/rules"
	"github.com/jonathan/copygate/internal/textdiff"
	"github.com/jonathan/copygate/internal/types"
)

// Defaults for fix-loop policy.
const (
	// DefaultMaxAttempts is the fixed attempt budget. Unbounded retries are
	// forbidden regardless of how close a near-miss score is.
	DefaultMaxAttempts = 2
	// DefaultSimilarityFloor is the acceptance boundary: candidates scoring
	// below it have drifted into the very_different bucket and are rejected
	// regardless of rule-passing status.
	DefaultSimilarityFloor = 0.50
)

// Options holds deployment-tunable fix-loop policy.
type Options struct {
	MaxAttempts     int
	SimilarityFloor float64
	Language        string
	TestMode        bool
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.SimilarityFloor <= 0 {
		o.SimilarityFloor = DefaultSimilarityFloor
	}
	return o
}

// Fixer runs fix operations. It holds no per-operation state; one Fixer may
// serve concurrent operations for different drafts. Callers are responsible
// for serializing operations on the same draft.
type Fixer struct {
	reg     *rules.Registry
	builder *autofix.Builder
	gen     llm.Generator
	emitter analytics.Emitter
	logger  *zap.Logger
	opts    Options
}

// NewFixer creates a Fixer over the given collaborators.
func NewFixer(reg *rules.Registry, gen llm.Generator, emitter analytics.Emitter, logger *zap.Logger, opts Options) *Fixer {
	if emitter == nil {
		emitter = analytics.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fixer{
		reg:     reg,
		builder: autofix.NewBuilder(reg, logger),
		gen:     gen,
		emitter: emitter,
		logger:  logger,
		opts:    opts.withDefaults(),
	}
}

// Run executes one fix operation for the given original text.
//
// Attempts are strictly ordered; the attempt budget is never exceeded. A
// generator failure consumes the attempt and is treated as a rejection, not a
// fatal error. If every attempt is rejected the operation falls back to the
// original text, reported as a normal outcome with UsedFallback set. Context
// cancellation aborts the operation with an error and no partial state: the
// original text is never mutated.
func (f *Fixer) Run(ctx context.Context, contentTypeID, original string) (*Outcome, error) {
	return f.run(ctx, contentTypeID, original, f.opts.TestMode)
}

// RunWithTestMode is Run with a per-operation test-mode override of the
// configured default.
func (f *Fixer) RunWithTestMode(ctx context.Context, contentTypeID, original string, testMode bool) (*Outcome, error) {
	return f.run(ctx, contentTypeID, original, testMode)
}

func (f *Fixer) run(ctx context.Context, contentTypeID, original string, testMode bool) (*Outcome, error) {
	start := time.Now()

	baseline, err := evaluation.Evaluate(f.reg, contentTypeID, original, testMode)
	if err != nil {
		return nil, &Error{Message: "failed to evaluate original text", Cause: err}
	}

	failing := make([]types.RuleResult, 0, len(baseline.HardFails)+len(baseline.SoftFails))
	failing = append(failing, baseline.HardFails...)
	failing = append(failing, baseline.SoftFails...)
	baselineHard := baseline.HardFailSet()

	var attempts []Attempt
	for n := 1; n <= f.opts.MaxAttempts; n++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		prompt, err := f.builder.BuildFixPrompt(contentTypeID, original, failing, autofix.Options{
			Mode:          autofix.ModeForAttempt(n),
			AttemptNumber: n,
			Language:      f.opts.Language,
			TestMode:      testMode,
		})
		if err != nil {
			return nil, &Error{Message: "failed to build fix prompt", Cause: err}
		}
		if prompt.PassThrough {
			// Every failing rule was filtered out; nothing to repair, so no
			// generator budget is spent.
			return f.finish(contentTypeID, start, &Outcome{
				State:            StateAccepted,
				Decision:         baseline.Decision,
				HardFails:        baseline.HardFails,
				SoftFails:        baseline.SoftFails,
				DiffTokens:       textdiff.Diff(original, original),
				SimilarityBucket: textdiff.BucketVeryClose,
				AttemptCount:     0,
				FinalText:        original,
				Attempts:         attempts,
			}), nil
		}

		attempt := Attempt{
			Number:        n,
			InputText:     original,
			TargetRuleIDs: prompt.TargetRuleIDs,
		}

		candidate, genErr := f.gen.Generate(ctx, prompt.System, prompt.User)
		if genErr != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// A generator failure consumes this attempt and is handled
			// exactly like a rejected candidate.
			attempt.GeneratorError = genErr.Error()
			attempt.SimilarityBucket = textdiff.BucketVeryDifferent
			attempts = append(attempts, attempt)
			f.logger.Warn("generator call failed, attempt consumed",
				zap.String("content_type", contentTypeID),
				zap.Int("attempt", n),
				zap.Error(genErr))
			continue
		}

		report, err := evaluation.Evaluate(f.reg, contentTypeID, candidate, testMode)
		if err != nil {
			return nil, &Error{Message: "failed to evaluate candidate", Cause: err}
		}

		diffTokens := textdiff.Diff(original, candidate)
		score := textdiff.ScoreFromDiff(diffTokens)
		attempt.Candidate = candidate
		attempt.score = score
		attempt.SimilarityBucket = textdiff.BucketFor(score)
		attempts = append(attempts, attempt)

		if newHard := newHardFails(report, baselineHard); len(newHard) > 0 {
			f.logger.Info("candidate rejected: introduced new hard failures",
				zap.String("content_type", contentTypeID),
				zap.Int("attempt", n),
				zap.Strings("new_hard_fails", newHard))
			continue
		}
		if score < f.opts.SimilarityFloor {
			f.logger.Info("candidate rejected: below similarity floor",
				zap.String("content_type", contentTypeID),
				zap.Int("attempt", n),
				zap.String("similarity_bucket", string(attempt.SimilarityBucket)))
			continue
		}

		return f.finish(contentTypeID, start, &Outcome{
			State:            StateAccepted,
			Decision:         report.Decision,
			HardFails:        report.HardFails,
			SoftFails:        report.SoftFails,
			DiffTokens:       diffTokens,
			SimilarityBucket: attempt.SimilarityBucket,
			AttemptCount:     n,
			FinalText:        candidate,
			Attempts:         attempts,
		}), nil
	}

	// Budget exhausted: return the original intact. Fallback is a safety
	// default and reports as a normal, successful outcome.
	if len(attempts) > 0 {
		attempts[len(attempts)-1].UsedFallback = true
	}
	return f.finish(contentTypeID, start, &Outcome{
		State:            StateFallback,
		Decision:         baseline.Decision,
		HardFails:        baseline.HardFails,
		SoftFails:        baseline.SoftFails,
		DiffTokens:       textdiff.Diff(original, original),
		SimilarityBucket: textdiff.BucketVeryClose,
		AttemptCount:     len(attempts),
		UsedFallback:     true,
		FinalText:        original,
		Attempts:         attempts,
	}), nil
}

// finish emits the operation's bucketed analytics signal and returns the
// outcome. Emitters are non-blocking; emission never affects the decision.
func (f *Fixer) finish(contentTypeID string, start time.Time, outcome *Outcome) *Outcome {
	f.emitter.EmitFixOperation(analytics.FixSignal{
		ContentType:      contentTypeID,
		AttemptCount:     outcome.AttemptCount,
		SimilarityBucket: string(outcome.SimilarityBucket),
		DurationBucket:   analytics.DurationBucketFor(time.Since(start)),
		Accepted:         outcome.State == StateAccepted,
		UsedFallback:     outcome.UsedFallback,
	})
	return outcome
}

// newHardFails returns hard-failing rule ids of the candidate that were not
// already hard-failing on the original.
func newHardFails(report *types.EvalReport, baseline map[string]bool) []string {
	var ids []string
	for _, f := range report.HardFails {
		if !baseline[f.RuleID] {
			ids = append(ids, f.RuleID)
		}
	}
	return ids
}
