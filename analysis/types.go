package analysis

import (
	"strings"
	"time"
)

// ReviewInput is one reader review plus the metadata needed to analyze it.
// Callers validate it before handing it to the engine.
type ReviewInput struct {
	Title           string  `json:"book_title"`
	Author          string  `json:"author"`
	Content         string  `json:"content"`
	Rating          float64 `json:"rating"`
	ReportedEmotion string  `json:"user_emotion"`
	Genre           string  `json:"genre,omitempty"`
}

// Intensity is the strength of a classified emotion.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// ParseIntensity maps English and Korean intensity labels onto the enum.
// Anything unrecognized is medium.
func ParseIntensity(s string) Intensity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "낮음":
		return IntensityLow
	case "high", "높음":
		return IntensityHigh
	default:
		return IntensityMedium
	}
}

type Emotion struct {
	Primary   string    `json:"primary" jsonschema:"description=Primary emotion felt by the reader"`
	Secondary string    `json:"secondary" jsonschema:"description=Secondary emotion"`
	Intensity Intensity `json:"intensity" jsonschema:"enum=low,enum=medium,enum=high"`
}

type Recommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Reason string `json:"reason"`
}

// Source records which terminal state produced an artifact.
type Source string

const (
	SourceModel         Source = "model"
	SourceDeterministic Source = "deterministic"
	SourceFallback      Source = "fallback"
)

// Artifact is the analysis returned for one review.
type Artifact struct {
	EmpathyMessage      string           `json:"empathy_message"`
	Insights            []string         `json:"book_insights"`
	Emotion             Emotion          `json:"emotion_analysis"`
	Recommendations     []Recommendation `json:"book_recommendations"`
	PersonalizedInsight string           `json:"personalized_insight"`
	Source              Source           `json:"source"`
	GeneratedAt         time.Time        `json:"generated_at"`
}

// ModelOutput is the shape the external model is asked to return.
// It doubles as the strict JSON schema sent with the request.
type ModelOutput struct {
	EmpathyMessage      string           `json:"empathy_message" jsonschema:"description=Warm personalized message empathizing with the reader (2-3 sentences)"`
	Insights            []string         `json:"book_insights" jsonschema:"description=Exactly three insights about the book"`
	Emotion             Emotion          `json:"emotion_analysis"`
	Recommendations     []Recommendation `json:"book_recommendations" jsonschema:"description=Three real books related to this one"`
	PersonalizedInsight string           `json:"personalized_insight" jsonschema:"description=Insight or advice for this reader (1-2 sentences)"`
}
