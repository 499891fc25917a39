package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/copygate/internal/types"
)

//go:embed profiles.json
var profilesJSON []byte

//go:embed profile_schema.json
var profileSchemaJSON []byte

// CheckFunc is a pure predicate over candidate text. The relaxed flag selects
// the rule's documented relaxed range; it only has effect on RELAX-policy rules.
type CheckFunc func(text string, relaxed bool) (passed bool, message string)

// Definition describes one immutable rule: identity, classification, test-mode
// policy, and its check predicate. Definitions are created once at registry
// load and shared read-only by all evaluations.
type Definition struct {
	ContentType  string
	ID           string
	Layer        types.Layer
	Severity     types.Severity
	Description  string
	TestMode     types.TestModePolicy
	RelaxedRange *types.Range
	Check        CheckFunc
}

// Registry is the process-wide, read-only table of rule definitions keyed by
// content type. Safe for concurrent use.
type Registry struct {
	profiles map[string]*Profile
	rules    map[string][]Definition
	order    []string
}

// NewRegistry loads the embedded profile table, validates it against the
// profile schema, and builds the rule set for every content type.
// Any malformed profile is a fatal configuration error.
func NewRegistry() (*Registry, error) {
	if err := validateProfiles(profilesJSON); err != nil {
		return nil, err
	}

	var profiles []*Profile
	if err := json.Unmarshal(profilesJSON, &profiles); err != nil {
		return nil, &ProfileError{Message: "failed to parse profile table", Cause: err}
	}

	r := &Registry{
		profiles: make(map[string]*Profile, len(profiles)),
		rules:    make(map[string][]Definition, len(profiles)),
	}
	for _, p := range profiles {
		if _, exists := r.profiles[p.ID]; exists {
			return nil, &ProfileError{Message: fmt.Sprintf("duplicate content type id %q", p.ID)}
		}
		r.profiles[p.ID] = p
		r.rules[p.ID] = buildRules(p)
		r.order = append(r.order, p.ID)
	}
	sort.Strings(r.order)

	return r, nil
}

// ContentTypes returns the registered content-type ids in sorted order.
func (r *Registry) ContentTypes() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Profile returns the profile for a content type.
func (r *Registry) Profile(contentTypeID string) (*Profile, error) {
	p, ok := r.profiles[contentTypeID]
	if !ok {
		return nil, &ErrUnknownContentType{ContentType: contentTypeID}
	}
	return p, nil
}

// Rules returns the rule definitions for a content type in registry order.
func (r *Registry) Rules(contentTypeID string) ([]Definition, error) {
	defs, ok := r.rules[contentTypeID]
	if !ok {
		return nil, &ErrUnknownContentType{ContentType: contentTypeID}
	}
	return defs, nil
}

// Rule looks up a single rule definition by content type and rule id.
func (r *Registry) Rule(contentTypeID, ruleID string) (*Definition, bool) {
	defs, ok := r.rules[contentTypeID]
	if !ok {
		return nil, false
	}
	for i := range defs {
		if defs[i].ID == ruleID {
			return &defs[i], true
		}
	}
	return nil, false
}

// validateProfiles checks the raw profile JSON against the embedded schema.
func validateProfiles(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(profileSchemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return &ProfileError{Message: "failed to run schema validation", Cause: err}
	}
	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(desc.String())
		}
		return &ProfileError{Message: "profile table failed schema validation: " + sb.String()}
	}
	return nil
}

// buildRules constructs the rule definitions for one profile. Rules whose
// parameters are absent from the profile are omitted for that content type.
func buildRules(p *Profile) []Definition {
	var defs []Definition

	if len(p.CTAMarkers) > 0 {
		markers := p.CTAMarkers
		defs = append(defs, Definition{
			ContentType: p.ID,
			ID:          "structure.cta",
			Layer:       types.LayerStructure,
			Severity:    types.SeverityHard,
			Description: "text must contain a call to action",
			TestMode:    types.PolicySame,
			Check: func(text string, _ bool) (bool, string) {
				return checkCTA(text, markers)
			},
		})
	}

	lengthPolicy := types.PolicySame
	if p.RelaxedLength != nil {
		lengthPolicy = types.PolicyRelax
	}
	length, relaxedLength := p.Length, p.RelaxedLength
	defs = append(defs, Definition{
		ContentType:  p.ID,
		ID:           "structure.length",
		Layer:        types.LayerStructure,
		Severity:     types.SeverityHard,
		Description:  fmt.Sprintf("length must be %d-%d characters", p.Length.Min, p.Length.Max),
		TestMode:     lengthPolicy,
		RelaxedRange: relaxedLength,
		Check: func(text string, relaxed bool) (bool, string) {
			rng := length
			if relaxed && relaxedLength != nil {
				rng = *relaxedLength
			}
			return checkLength(text, rng)
		},
	})

	if p.SingleLine {
		defs = append(defs, Definition{
			ContentType: p.ID,
			ID:          "structure.single_line",
			Layer:       types.LayerStructure,
			Severity:    types.SeverityHard,
			Description: "text must not contain line breaks",
			TestMode:    types.PolicySame,
			Check: func(text string, _ bool) (bool, string) {
				return checkSingleLine(text)
			},
		})
	}

	if len(p.BannedPhrases) > 0 {
		phrases := p.BannedPhrases
		defs = append(defs, Definition{
			ContentType: p.ID,
			ID:          "redflag.banned_phrase",
			Layer:       types.LayerRedFlag,
			Severity:    types.SeverityHard,
			Description: "text must not contain banned phrases",
			TestMode:    types.PolicySame,
			Check: func(text string, _ bool) (bool, string) {
				return checkBannedPhrases(text, phrases)
			},
		})
	}

	defs = append(defs, Definition{
		ContentType: p.ID,
		ID:          "redflag.placeholder",
		Layer:       types.LayerRedFlag,
		Severity:    types.SeverityHard,
		Description: "text must not contain placeholder markers",
		TestMode:    types.PolicySame,
		Check: func(text string, _ bool) (bool, string) {
			return checkNoPlaceholders(text)
		},
	})

	defs = append(defs, Definition{
		ContentType: p.ID,
		ID:          "redflag.meta_commentary",
		Layer:       types.LayerRedFlag,
		Severity:    types.SeverityHard,
		Description: "text must not narrate the generation process",
		TestMode:    types.PolicySame,
		Check: func(text string, _ bool) (bool, string) {
			return checkNoMetaCommentary(text)
		},
	})

	if p.MaxHashtags > 0 {
		limit := p.MaxHashtags
		defs = append(defs, Definition{
			ContentType: p.ID,
			ID:          "quality.hashtag_limit",
			Layer:       types.LayerQuality,
			Severity:    types.SeveritySoft,
			Description: fmt.Sprintf("at most %d hashtags", limit),
			TestMode:    types.PolicySkip,
			Check: func(text string, _ bool) (bool, string) {
				return checkHashtagLimit(text, limit)
			},
		})
	}

	if p.MaxEmoji > 0 {
		limit := p.MaxEmoji
		defs = append(defs, Definition{
			ContentType: p.ID,
			ID:          "quality.emoji_limit",
			Layer:       types.LayerQuality,
			Severity:    types.SeveritySoft,
			Description: fmt.Sprintf("at most %d emoji", limit),
			TestMode:    types.PolicySkip,
			Check: func(text string, _ bool) (bool, string) {
				return checkEmojiLimit(text, limit)
			},
		})
	}

	if p.MaxSentenceWords > 0 {
		limit := p.MaxSentenceWords
		defs = append(defs, Definition{
			ContentType: p.ID,
			ID:          "quality.sentence_length",
			Layer:       types.LayerQuality,
			Severity:    types.SeveritySoft,
			Description: fmt.Sprintf("sentences at most %d words", limit),
			TestMode:    types.PolicySame,
			Check: func(text string, _ bool) (bool, string) {
				return checkSentenceLength(text, limit)
			},
		})
	}

	if p.SingleLine {
		defs = append(defs, Definition{
			ContentType: p.ID,
			ID:          "quality.stacked_punctuation",
			Layer:       types.LayerQuality,
			Severity:    types.SeveritySoft,
			Description: "avoid stacked punctuation",
			TestMode:    types.PolicySame,
			Check: func(text string, _ bool) (bool, string) {
				return checkNoStackedPunctuation(text)
			},
		})
	}

	return defs
}
