package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/types"
)

// rawResult mirrors types.AnalysisResult with pointer fields so a missing
// key can be told apart from a zero value.
type rawResult struct {
	MoodScore   *float64        `json:"moodScore"`
	Summary     *string         `json:"summary"`
	Emotions    *rawEmotions    `json:"emotions"`
	Topics      []string        `json:"topics"`
	Suggestions *rawSuggestions `json:"suggestions"`
}

type rawEmotions struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary"`
	Intensity string   `json:"intensity"`
}

type rawSuggestions struct {
	Immediate  string   `json:"immediate"`
	LongTerm   string   `json:"longTerm"`
	Activities []string `json:"activities"`
	Resources  []string `json:"resources"`
}

// stripFences removes surrounding markdown code-fence markup that models wrap
// around the payload despite instructions.
func stripFences(s string) string {
	out := strings.TrimSpace(s)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}

// parseResult turns raw model output into a validated AnalysisResult.
// Unparseable text maps to ErrMalformedOutput; valid JSON with a wrong field
// type or a missing required field maps to ErrInvalidShape. Reject-all: no
// partial acceptance. MoodScore is not clamped to [1,10].
func parseResult(raw string) (*types.AnalysisResult, error) {
	cleaned := stripFences(raw)

	var r rawResult
	if err := json.Unmarshal([]byte(cleaned), &r); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q has wrong type", ErrInvalidShape, typeErr.Field)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return validate(&r)
}

func validate(r *rawResult) (*types.AnalysisResult, error) {
	switch {
	case r.MoodScore == nil:
		return nil, fmt.Errorf("%w: moodScore", ErrInvalidShape)
	case r.Summary == nil || strings.TrimSpace(*r.Summary) == "":
		return nil, fmt.Errorf("%w: summary", ErrInvalidShape)
	case r.Emotions == nil || r.Emotions.Primary == "" || r.Emotions.Intensity == "":
		return nil, fmt.Errorf("%w: emotions", ErrInvalidShape)
	case r.Emotions.Secondary == nil:
		return nil, fmt.Errorf("%w: emotions.secondary", ErrInvalidShape)
	case r.Topics == nil:
		return nil, fmt.Errorf("%w: topics", ErrInvalidShape)
	case r.Suggestions == nil || r.Suggestions.Immediate == "" || r.Suggestions.LongTerm == "":
		return nil, fmt.Errorf("%w: suggestions", ErrInvalidShape)
	case r.Suggestions.Activities == nil || r.Suggestions.Resources == nil:
		return nil, fmt.Errorf("%w: suggestions lists", ErrInvalidShape)
	}

	return &types.AnalysisResult{
		MoodScore: *r.MoodScore,
		Summary:   *r.Summary,
		Emotions: types.Emotions{
			Primary:   r.Emotions.Primary,
			Secondary: r.Emotions.Secondary,
			Intensity: r.Emotions.Intensity,
		},
		Topics: r.Topics,
		Suggestions: types.Suggestions{
			Immediate:  r.Suggestions.Immediate,
			LongTerm:   r.Suggestions.LongTerm,
			Activities: r.Suggestions.Activities,
			Resources:  r.Suggestions.Resources,
		},
	}, nil
}
