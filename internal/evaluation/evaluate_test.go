package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/copygate/internal/rules"
	"github.com/jonathan/copygate/internal/types"
)

func newRegistry(t *testing.T) *rules.Registry {
	t.Helper()
	reg, err := rules.NewRegistry()
	require.NoError(t, err)
	return reg
}

const passingCaption = "Our new cold brew just landed in stores. Shop now via the link in bio."

func TestEvaluateDecisions(t *testing.T) {
	reg := newRegistry(t)

	tests := []struct {
		name        string
		contentType string
		text        string
		testMode    bool
		decision    types.Decision
		hardFailIDs []string
		softFailIDs []string
	}{
		{
			name:        "All rules pass",
			contentType: "social_caption_v1",
			text:        passingCaption,
			decision:    types.DecisionPass,
		},
		{
			name:        "Missing CTA fails hard",
			contentType: "social_caption_v1",
			text:        "Our new cold brew just landed in stores this week.",
			decision:    types.DecisionFail,
			hardFailIDs: []string{"structure.cta"},
		},
		{
			name:        "Soft fail yields draft",
			contentType: "social_caption_v1",
			text:        passingCaption + " #a #b #c #d #e #f",
			decision:    types.DecisionDraft,
			softFailIDs: []string{"quality.hashtag_limit"},
		},
		{
			name:        "Hard fail wins over soft fail",
			contentType: "social_caption_v1",
			text:        "Cold brew landed, guaranteed results. Shop now! #a #b #c #d #e #f",
			decision:    types.DecisionFail,
			hardFailIDs: []string{"redflag.banned_phrase"},
			softFailIDs: []string{"quality.hashtag_limit"},
		},
		{
			name:        "Placeholder fails hard",
			contentType: "social_caption_v1",
			text:        "Cold brew landed at [insert store name]. Shop now today!",
			decision:    types.DecisionFail,
			hardFailIDs: []string{"redflag.placeholder"},
		},
		{
			name:        "Subject line with line break fails",
			contentType: "email_subject_v1",
			text:        "Big sale\nthis weekend",
			decision:    types.DecisionFail,
			hardFailIDs: []string{"structure.single_line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Evaluate(reg, tt.contentType, tt.text, tt.testMode)
			require.NoError(t, err)

			assert.Equal(t, tt.decision, report.Decision)
			assert.Equal(t, tt.contentType, report.ContentType)

			var hardIDs, softIDs []string
			for _, f := range report.HardFails {
				hardIDs = append(hardIDs, f.RuleID)
			}
			for _, f := range report.SoftFails {
				softIDs = append(softIDs, f.RuleID)
			}
			assert.Equal(t, tt.hardFailIDs, hardIDs)
			assert.Equal(t, tt.softFailIDs, softIDs)
		})
	}
}

func TestEvaluateUnknownContentType(t *testing.T) {
	reg := newRegistry(t)

	report, err := Evaluate(reg, "blog_post_v1", "some text", false)
	require.Error(t, err)
	assert.Nil(t, report)

	var unknownErr *rules.ErrUnknownContentType
	assert.ErrorAs(t, err, &unknownErr)
}

func TestEvaluateTestModeSkipsRules(t *testing.T) {
	reg := newRegistry(t)
	text := passingCaption + " #a #b #c #d #e #f"

	normal, err := Evaluate(reg, "social_caption_v1", text, false)
	require.NoError(t, err)
	assert.Equal(t, types.DecisionDraft, normal.Decision)

	testMode, err := Evaluate(reg, "social_caption_v1", text, true)
	require.NoError(t, err)
	assert.Equal(t, types.DecisionPass, testMode.Decision)

	// A skipped rule is absent from the report, not reported as passing.
	for _, result := range testMode.Results {
		assert.NotEqual(t, "quality.hashtag_limit", result.RuleID)
	}
}

func TestEvaluateTestModeRelaxesLength(t *testing.T) {
	reg := newRegistry(t)
	// 5 characters: under the normal 10 minimum, inside the relaxed 3-120 range.
	text := "Sale!"

	normal, err := Evaluate(reg, "email_subject_v1", text, false)
	require.NoError(t, err)
	assert.Equal(t, types.DecisionFail, normal.Decision)
	require.Len(t, normal.HardFails, 1)
	assert.Equal(t, "structure.length", normal.HardFails[0].RuleID)

	testMode, err := Evaluate(reg, "email_subject_v1", text, true)
	require.NoError(t, err)
	assert.Equal(t, types.DecisionPass, testMode.Decision)
}

func TestEvaluateTestModeNeverRelaxesRedFlags(t *testing.T) {
	reg := newRegistry(t)
	text := "Claim your free money before Friday's deadline arrives"

	report, err := Evaluate(reg, "email_subject_v1", text, true)
	require.NoError(t, err)
	assert.Equal(t, types.DecisionFail, report.Decision)
	require.Len(t, report.HardFails, 1)
	assert.Equal(t, "redflag.banned_phrase", report.HardFails[0].RuleID)
}

func TestEvaluateDeterministic(t *testing.T) {
	reg := newRegistry(t)
	text := "Cold brew landed at [insert store]. Shop now!! #a #b #c #d #e #f"

	first, err := Evaluate(reg, "social_caption_v1", text, false)
	require.NoError(t, err)
	second, err := Evaluate(reg, "social_caption_v1", text, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
