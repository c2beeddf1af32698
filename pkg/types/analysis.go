package types

// AnalysisResult is the structured record derived from a journal entry by the
// AI model. It is written once at creation time and stored alongside the entry
// as an opaque JSON column. Every field is required; validation rejects the
// whole record when any required field is missing (see the analysis service).
type AnalysisResult struct {
	MoodScore   float64     `json:"moodScore"`
	Summary     string      `json:"summary"`
	Emotions    Emotions    `json:"emotions"`
	Topics      []string    `json:"topics"`
	Suggestions Suggestions `json:"suggestions"`
}

type Emotions struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary"`
	Intensity string   `json:"intensity"`
}

type Suggestions struct {
	Immediate  string   `json:"immediate"`
	LongTerm   string   `json:"longTerm"`
	Activities []string `json:"activities"`
	Resources  []string `json:"resources"`
}
