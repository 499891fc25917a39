// Package analytics emits coarse, privacy-safe signals about gate operations.
// Only bucketed and aggregate values cross this boundary, never raw text,
// diffs, or raw similarity scores.
package analytics

import (
	"time"
)

// FixSignal summarizes one completed fix operation.
type FixSignal struct {
	ContentType      string
	AttemptCount     int
	SimilarityBucket string
	DurationBucket   string
	Accepted         bool
	UsedFallback     bool
}

// Emitter receives gate signals. Implementations must not block the decision
// path; emission is fire-and-forget.
type Emitter interface {
	EmitEvaluation(contentType, decision string)
	EmitFixOperation(signal FixSignal)
}

// Nop is an Emitter that discards all signals.
type Nop struct{}

// EmitEvaluation implements Emitter.
func (Nop) EmitEvaluation(string, string) {}

// EmitFixOperation implements Emitter.
func (Nop) EmitFixOperation(FixSignal) {}

// DurationBucketFor maps an operation duration to its coarse reporting bucket.
func DurationBucketFor(d time.Duration) string {
	switch {
	case d < time.Second:
		return "lt_1s"
	case d < 5*time.Second:
		return "1s_5s"
	case d < 15*time.Second:
		return "5s_15s"
	default:
		return "gte_15s"
	}
}
