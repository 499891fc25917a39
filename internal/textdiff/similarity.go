package textdiff

// Bucket is the coarse, privacy-safe classification of how close a candidate
// is to its original. Only buckets leave this package toward logging and
// analytics collaborators; raw scores stay inside the core.
type Bucket string

// Similarity buckets
const (
	BucketVeryClose     Bucket = "very_close"     // >= 0.85
	BucketClose         Bucket = "close"          // 0.70 - 0.84
	BucketModerate      Bucket = "moderate"       // 0.50 - 0.69
	BucketVeryDifferent Bucket = "very_different" // < 0.50
)

// Bucket thresholds
const (
	veryCloseFloor = 0.85
	closeFloor     = 0.70
	moderateFloor  = 0.50
)

// Similarity returns a score in [0,1] measuring word overlap between the two
// texts: the Dice coefficient over the word-level diff. Identical strings
// score exactly 1.0; texts with no words in common score 0.
func Similarity(original, candidate string) float64 {
	return ScoreFromDiff(Diff(original, candidate))
}

// ScoreFromDiff derives the similarity score from an already-computed diff.
func ScoreFromDiff(tokens []Token) float64 {
	var unchanged, removed, added int
	for _, t := range tokens {
		switch t.Kind {
		case Unchanged:
			unchanged++
		case Removed:
			removed++
		case Added:
			added++
		}
	}

	total := 2*unchanged + removed + added
	if total == 0 {
		// Two empty texts are identical.
		return 1.0
	}
	return float64(2*unchanged) / float64(total)
}

// BucketFor maps a similarity score to its display/policy bucket.
func BucketFor(score float64) Bucket {
	switch {
	case score >= veryCloseFloor:
		return BucketVeryClose
	case score >= closeFloor:
		return BucketClose
	case score >= moderateFloor:
		return BucketModerate
	default:
		return BucketVeryDifferent
	}
}
