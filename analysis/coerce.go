package analysis

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidModelOutput marks model JSON that decoded but is missing required content.
	ErrInvalidModelOutput = errors.New("invalid model output")
	// ErrMalformedModelOutput marks model output that could not be decoded at all.
	ErrMalformedModelOutput = errors.New("malformed model output")
	// ErrModelUnavailable marks a model call that was refused without reaching the network.
	ErrModelUnavailable = errors.New("model unavailable")
)

const maxRecommendations = 3

// coerceModelOutput turns untrusted model output into an artifact body.
// Blank empathy, blank primary emotion, or no usable insight rejects the output.
// Insights are backfilled to three from the composer; recommendations are only filtered and capped.
func coerceModelOutput(in ReviewInput, out ModelOutput) (Artifact, error) {
	empathy := strings.TrimSpace(out.EmpathyMessage)
	if empathy == "" {
		return Artifact{}, fmt.Errorf("%w: empty empathy_message", ErrInvalidModelOutput)
	}
	primary := strings.TrimSpace(out.Emotion.Primary)
	if primary == "" {
		return Artifact{}, fmt.Errorf("%w: empty emotion_analysis.primary", ErrInvalidModelOutput)
	}

	insights := make([]string, 0, insightCount)
	for _, s := range out.Insights {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		insights = append(insights, s)
		if len(insights) == insightCount {
			break
		}
	}
	if len(insights) == 0 {
		return Artifact{}, fmt.Errorf("%w: no book_insights", ErrInvalidModelOutput)
	}
	if len(insights) < insightCount {
		composed := ComposeInsights(in.Genre, in.Content, in.Rating, in.Title)
		insights = append(insights, composed[len(insights):]...)
	}

	recs := make([]Recommendation, 0, maxRecommendations)
	for _, r := range out.Recommendations {
		r = Recommendation{
			Title:  strings.TrimSpace(r.Title),
			Author: strings.TrimSpace(r.Author),
			Reason: strings.TrimSpace(r.Reason),
		}
		if r.Title == "" || r.Author == "" {
			continue
		}
		recs = append(recs, r)
		if len(recs) == maxRecommendations {
			break
		}
	}

	personalized := strings.TrimSpace(out.PersonalizedInsight)
	if personalized == "" {
		personalized = personalizedInsight(in.Rating, in.Title, primary)
	}

	return Artifact{
		EmpathyMessage: empathy,
		Insights:       insights,
		Emotion: Emotion{
			Primary:   primary,
			Secondary: strings.TrimSpace(out.Emotion.Secondary),
			Intensity: ParseIntensity(string(out.Emotion.Intensity)),
		},
		Recommendations:     recs,
		PersonalizedInsight: personalized,
	}, nil
}
