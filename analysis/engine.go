// Package analysis turns a reader's book review into an analysis artifact.
//
// Synthesis resolves in three tiers: curated knowledge about specific works, rule-based
// templates keyed by genre, emotion, rating and keywords, and an optional external model.
// The template paths are pure and cannot fail; any model failure falls back to them.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/theimaginaryfoundation/bookllm/internal/logging"
	"github.com/theimaginaryfoundation/bookllm/internal/metrics"
)

// Model is an external analysis backend. Implementations must be safe for concurrent use.
// Any non-nil error sends the engine down the fallback path.
type Model interface {
	Analyze(ctx context.Context, in ReviewInput) (ModelOutput, error)
}

type Engine struct {
	model Model
	now   func() time.Time
}

type Option func(*Engine)

// WithModel enables the model path. A nil model leaves it disabled.
func WithModel(m Model) Option {
	return func(e *Engine) { e.model = m }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) ModelEnabled() bool {
	return e.model != nil
}

type breakerStater interface {
	BreakerState() string
}

// ModelState is "disabled" when no model is set. A model with a circuit breaker reports
// the breaker state; any other model reports "enabled".
func (e *Engine) ModelState() string {
	if e.model == nil {
		return "disabled"
	}
	if b, ok := e.model.(breakerStater); ok {
		return b.BreakerState()
	}
	return "enabled"
}

// Analyze produces the artifact for in. It never returns an error; a model failure
// yields the Fallback artifact.
func (e *Engine) Analyze(ctx context.Context, in ReviewInput) Artifact {
	if e.model == nil {
		logging.Ctx(ctx).Debug().Str("path", string(SourceDeterministic)).Msg("model disabled")
		metrics.RecordSynthesis(string(SourceDeterministic))
		return e.Deterministic(in)
	}

	a, err := e.analyzeWithModel(ctx, in)
	if err != nil {
		reason := failureReason(err)
		metrics.RecordModelFailure(reason)
		logging.Ctx(ctx).Warn().Err(err).Str("reason", reason).Str("title", in.Title).Msg("model analysis failed, using fallback")
		metrics.RecordSynthesis(string(SourceFallback))
		return e.Fallback(in)
	}
	metrics.RecordSynthesis(string(SourceModel))
	return a
}

func (e *Engine) analyzeWithModel(ctx context.Context, in ReviewInput) (a Artifact, err error) {
	// Panics from the Model count as failures.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panic: %v", r)
		}
	}()

	start := time.Now()
	out, err := e.model.Analyze(ctx, in)
	metrics.RecordModelCall(err == nil, time.Since(start))
	if err != nil {
		return Artifact{}, err
	}

	a, err = coerceModelOutput(in, out)
	if err != nil {
		return Artifact{}, err
	}
	a.Source = SourceModel
	a.GeneratedAt = e.now()
	return a, nil
}

// Deterministic runs the template path: classifier, composer, resolver.
func (e *Engine) Deterministic(in ReviewInput) Artifact {
	return e.deterministic(in, SourceDeterministic)
}

// Fallback is the template path followed by the curated-work overlay. It is what
// Analyze returns when the model path fails.
func (e *Engine) Fallback(in ReviewInput) Artifact {
	a := e.deterministic(in, SourceFallback)
	if w, ok := LookupCuratedWork(in.Title); ok {
		a.Insights = w.Insights
		a.Recommendations = w.Recommendations
		a.PersonalizedInsight = curatedPersonalizedInsight(in.Title)
	}
	return a
}

func (e *Engine) deterministic(in ReviewInput, src Source) Artifact {
	profile := Classify(in.ReportedEmotion)
	insights := ComposeInsights(in.Genre, in.Content, in.Rating, in.Title)
	recs := ResolveRecommendations(in.Title, in.Genre)

	return Artifact{
		EmpathyMessage:      empathyMessage(profile, in.Rating),
		Insights:            insights,
		Emotion:             profile.Emotion,
		Recommendations:     recs,
		PersonalizedInsight: personalizedInsight(in.Rating, in.Title, profile.Primary),
		Source:              src,
		GeneratedAt:         e.now(),
	}
}

func empathyMessage(p EmotionProfile, rating float64) string {
	return fmt.Sprintf("%s %s점의 평점과 함께 남겨주신 감상평이 인상적입니다.", p.Template, formatRating(rating))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrModelUnavailable):
		return "unavailable"
	case errors.Is(err, ErrInvalidModelOutput):
		return "invalid"
	case errors.Is(err, ErrMalformedModelOutput):
		return "malformed"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "transport"
	}
}
