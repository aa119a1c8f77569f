package api

import (
	"context"
	"net/http"
	"time"

	"github.com/theimaginaryfoundation/bookllm/analysis"
	"github.com/theimaginaryfoundation/bookllm/internal/logging"
	"github.com/theimaginaryfoundation/bookllm/internal/validation"
)

const maxBodyBytes = 1 << 20

// Analyzer is the part of analysis.Engine the handlers need.
type Analyzer interface {
	Analyze(ctx context.Context, in analysis.ReviewInput) analysis.Artifact
}

type Handler struct {
	analyzer       Analyzer
	requestTimeout time.Duration
	now            func() time.Time
}

func NewHandler(a Analyzer, requestTimeout time.Duration) *Handler {
	return &Handler{analyzer: a, requestTimeout: requestTimeout, now: time.Now}
}

// AnalyzeRequest is the body of POST /api/v1/reviews/analyze.
type AnalyzeRequest struct {
	ReviewID    *int64   `json:"review_id,omitempty"`
	BookTitle   string   `json:"book_title" validate:"required,notblank,max=500"`
	Author      string   `json:"author" validate:"required,notblank,max=200"`
	Content     string   `json:"content" validate:"required,notblank,max=20000"`
	Rating      *float64 `json:"rating" validate:"required,gte=0,lte=5"`
	UserEmotion string   `json:"user_emotion" validate:"required,notblank,max=50"`
	Genre       string   `json:"genre,omitempty" validate:"max=50"`
}

// ReviewInput converts a validated request.
func (r AnalyzeRequest) ReviewInput() analysis.ReviewInput {
	var rating float64
	if r.Rating != nil {
		rating = *r.Rating
	}
	return analysis.ReviewInput{
		Title:           r.BookTitle,
		Author:          r.Author,
		Content:         r.Content,
		Rating:          rating,
		ReportedEmotion: r.UserEmotion,
		Genre:           r.Genre,
	}
}

// AnalyzeResponse is the analyze body. The top-level Recommendations list is always
// empty; recommendations live in AIResponse.
type AnalyzeResponse struct {
	ReviewID        *int64                    `json:"review_id"`
	AIResponse      analysis.Artifact         `json:"ai_response"`
	Recommendations []analysis.Recommendation `json:"recommendations"`
}

func NewAnalyzeResponse(reviewID *int64, a analysis.Artifact) AnalyzeResponse {
	return AnalyzeResponse{ReviewID: reviewID, AIResponse: a, Recommendations: []analysis.Recommendation{}}
}

type RecommendationsRequest struct {
	BookTitle string `json:"book_title" validate:"required,notblank,max=500"`
	Author    string `json:"author" validate:"required,notblank,max=200"`
	Genre     string `json:"genre,omitempty" validate:"max=50"`
}

type RecommendationsResponse struct {
	Recommendations []analysis.Recommendation `json:"recommendations"`
	GeneratedAt     time.Time                 `json:"generated_at"`
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "BookLLM AI Service", "status": "running"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// modelStater is implemented by analysis.Engine.
type modelStater interface {
	ModelState() string
}

// ReviewsHealth adds the model path state ("disabled", "enabled", or a breaker state)
// when the analyzer reports one.
func (h *Handler) ReviewsHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "healthy", "service": "review-analysis"}
	if m, ok := h.analyzer.(modelStater); ok {
		body["model"] = m.ModelState()
	}
	writeJSON(w, http.StatusOK, body)
}

func serviceHealth(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": service})
	}
}

func (h *Handler) AnalyzeReview(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	artifact, ok := h.analyze(ctx, req.ReviewInput())
	if !ok {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Review analysis failed")
		return
	}

	logging.Ctx(ctx).Info().
		Str("source", string(artifact.Source)).
		Str("title", req.BookTitle).
		Msg("review analyzed")
	writeJSON(w, http.StatusOK, NewAnalyzeResponse(req.ReviewID, artifact))
}

// analyze reports false only when synthesis panicked.
func (h *Handler) analyze(ctx context.Context, in analysis.ReviewInput) (a analysis.Artifact, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Ctx(ctx).Error().Interface("panic", rec).Msg("analysis panicked")
			ok = false
		}
	}()
	return h.analyzer.Analyze(ctx, in), true
}

func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, RecommendationsResponse{
		Recommendations: analysis.ResolveRecommendations(req.BookTitle, req.Genre),
		GeneratedAt:     h.now(),
	})
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := decodeJSON(r, v); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be a JSON object")
		return false
	}
	if verr := validation.ValidateStruct(v); verr != nil {
		writeJSON(w, http.StatusBadRequest, verr.ToAPIError())
		return false
	}
	return true
}
