// Package provider holds external model backends for analysis.Engine.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/theimaginaryfoundation/bookllm/analysis"
	"github.com/theimaginaryfoundation/bookllm/analysis/fileutils"
	"github.com/theimaginaryfoundation/bookllm/internal/logging"
	"github.com/theimaginaryfoundation/bookllm/internal/metrics"
)

const breakerName = "openai"

var reviewAnalysisSchema = MustStrictSchema[analysis.ModelOutput]()

type Config struct {
	APIKey          string
	Model           string
	BaseURL         string
	Temperature     float64
	MaxOutputTokens int64
	// BreakerFailures consecutive failures open the breaker for BreakerCooldown.
	BreakerFailures uint32
	BreakerCooldown time.Duration
	HTTPClient      *http.Client
}

// OpenAI implements analysis.Model over the Responses API with strict JSON output.
// The SDK's own retries are disabled: each Analyze makes at most one upstream call.
type OpenAI struct {
	client  *openai.Client
	cfg     Config
	breaker *gobreaker.CircuitBreaker[*responses.Response]
}

func NewOpenAI(cfg Config) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api key is empty")
	}
	if cfg.Model == "" {
		return nil, errors.New("openai: model is empty")
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 1500
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = 30 * time.Second
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	client := openai.NewClient(opts...)

	return &OpenAI{
		client:  &client,
		cfg:     cfg,
		breaker: newBreaker(cfg.BreakerFailures, cfg.BreakerCooldown),
	}, nil
}

func newBreaker(failures uint32, cooldown time.Duration) *gobreaker.CircuitBreaker[*responses.Response] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(float64(gobreaker.StateClosed))
	return gobreaker.NewCircuitBreaker[*responses.Response](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// Caller cancellation does not count against upstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			l := logging.WithComponent("provider")
			l.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	})
}

// BreakerState reports the breaker state as "closed", "half-open" or "open".
func (p *OpenAI) BreakerState() string {
	return p.breaker.State().String()
}

func (p *OpenAI) Analyze(ctx context.Context, in analysis.ReviewInput) (analysis.ModelOutput, error) {
	params := p.reviewParams(in)

	resp, err := p.breaker.Execute(func() (*responses.Response, error) {
		return p.client.Responses.New(ctx, params)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return analysis.ModelOutput{}, fmt.Errorf("%w: %v", analysis.ErrModelUnavailable, err)
		}
		return analysis.ModelOutput{}, fmt.Errorf("openai responses: %w", err)
	}

	var out analysis.ModelOutput
	if err := fileutils.DecodeModelJSON(resp.OutputText(), &out); err != nil {
		return analysis.ModelOutput{}, fmt.Errorf("%w: %v", analysis.ErrMalformedModelOutput, err)
	}
	return out, nil
}

func (p *OpenAI) reviewParams(in analysis.ReviewInput) responses.ResponseNewParams {
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "ReviewAnalysis",
			Schema:      reviewAnalysisSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Book review analysis JSON"),
			Type:        "json_schema",
		},
	}

	return responses.ResponseNewParams{
		Model:           p.cfg.Model,
		MaxOutputTokens: openai.Int(p.cfg.MaxOutputTokens),
		Temperature:     openai.Float(p.cfg.Temperature),
		Instructions:    openai.String(reviewAnalystInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(buildReviewPrompt(in), responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}
}
