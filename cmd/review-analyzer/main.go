package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/theimaginaryfoundation/bookllm/analysis"
	"github.com/theimaginaryfoundation/bookllm/analysis/fileutils"
	"github.com/theimaginaryfoundation/bookllm/analysis/provider"
	"github.com/theimaginaryfoundation/bookllm/internal/api"
	"github.com/theimaginaryfoundation/bookllm/internal/logging"
	"github.com/theimaginaryfoundation/bookllm/internal/validation"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console", Output: os.Stderr})
	log := logging.WithComponent("review-analyzer")

	engine, err := buildEngine(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("mkdir -out: %w", err).Error())
		os.Exit(2)
	}

	reviewFiles, err := fileutils.CollectReviewFiles(cfg.InPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if len(reviewFiles) == 0 {
		fmt.Fprintln(os.Stderr, "no review .json files found")
		os.Exit(2)
	}

	start := time.Now()
	stats := runBatch(ctx, engine, cfg, reviewFiles)
	log.Info().
		Int("files", len(reviewFiles)).
		Dur("elapsed", time.Since(start)).
		Msg("batch complete")

	fmt.Printf("analyzed=%d skipped=%d invalid=%d failed=%d interrupted=%d model=%d fallback=%d deterministic=%d\n",
		stats.analyzed.Load(), stats.skipped.Load(), stats.invalid.Load(), stats.failed.Load(), stats.interrupted.Load(),
		stats.bySource[analysis.SourceModel].Load(),
		stats.bySource[analysis.SourceFallback].Load(),
		stats.bySource[analysis.SourceDeterministic].Load(),
	)
	if stats.failed.Load() > 0 || ctx.Err() != nil {
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InPath, "in", cfg.InPath, "Path to a review JSON file OR directory of review JSON files (recursively)")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output directory for <name>.analysis.json files")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "OpenAI model to use when -use-model is set")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY env var)")
	fs.BoolVar(&cfg.UseModel, "use-model", false, "Call the external model (default: template synthesis only)")
	fs.Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "Model sampling temperature")
	fs.Int64Var(&cfg.MaxTokens, "max-tokens", cfg.MaxTokens, "Model max output tokens")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Max reviews analyzed concurrently")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-review analysis timeout")
	fs.BoolVar(&cfg.Pretty, "pretty", false, "Pretty-print analysis JSON files")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite existing analysis JSON files")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.InPath = filepath.Clean(cfg.InPath)
	cfg.OutDir = filepath.Clean(cfg.OutDir)
	return cfg, nil
}

func buildEngine(cfg Config) (*analysis.Engine, error) {
	if !cfg.UseModel {
		return analysis.NewEngine(), nil
	}
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY (or pass -api-key)")
	}
	p, err := provider.NewOpenAI(provider.Config{
		APIKey:          apiKey,
		Model:           cfg.Model,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return analysis.NewEngine(analysis.WithModel(p)), nil
}

type batchStats struct {
	analyzed    atomic.Int64
	skipped     atomic.Int64
	invalid     atomic.Int64
	failed      atomic.Int64
	interrupted atomic.Int64
	bySource    map[analysis.Source]*atomic.Int64
}

func newBatchStats() *batchStats {
	return &batchStats{bySource: map[analysis.Source]*atomic.Int64{
		analysis.SourceModel:         {},
		analysis.SourceFallback:      {},
		analysis.SourceDeterministic: {},
	}}
}

var (
	errInvalidReview = errors.New("invalid review")
	errInterrupted   = errors.New("batch interrupted")
)

func runBatch(ctx context.Context, engine *analysis.Engine, cfg Config, reviewFiles []string) *batchStats {
	stats := newBatchStats()
	log := logging.WithComponent("review-analyzer")

	sem := make(chan struct{}, cfg.Concurrency)
	var wg sync.WaitGroup
	for _, reviewPath := range reviewFiles {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(reviewPath string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if ctx.Err() != nil {
				return
			}

			outPath := fileutils.AnalysisOutPath(cfg.InPath, cfg.OutDir, reviewPath)
			if !cfg.Overwrite && fileutils.FileExists(outPath) {
				stats.skipped.Add(1)
				return
			}

			src, err := analyzeFile(ctx, engine, cfg, reviewPath, outPath)
			switch {
			case errors.Is(err, errInterrupted):
				stats.interrupted.Add(1)
				log.Debug().Str("file", reviewPath).Msg("interrupted, output not written")
			case errors.Is(err, errInvalidReview):
				stats.invalid.Add(1)
				log.Warn().Err(err).Str("file", reviewPath).Msg("skipping invalid review")
			case err != nil:
				stats.failed.Add(1)
				log.Error().Err(err).Str("file", reviewPath).Msg("review failed")
			default:
				stats.analyzed.Add(1)
				stats.bySource[src].Add(1)
				log.Debug().Str("file", reviewPath).Str("out", outPath).Str("source", string(src)).Msg("review analyzed")
			}
		}(reviewPath)
	}
	wg.Wait()
	return stats
}

// analyzeFile reads one analyze request, validates it like the HTTP path does, and writes
// the response body to outPath.
func analyzeFile(ctx context.Context, engine *analysis.Engine, cfg Config, reviewPath, outPath string) (analysis.Source, error) {
	var req api.AnalyzeRequest
	if err := fileutils.ReadJSONFile(reviewPath, &req); err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidReview, err)
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return "", fmt.Errorf("%w: %v", errInvalidReview, verr)
	}

	rctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	artifact := engine.Analyze(rctx, req.ReviewInput())
	// Interrupted reviews are left for the next run.
	if ctx.Err() != nil {
		return "", fmt.Errorf("%w: %v", errInterrupted, ctx.Err())
	}

	resp := api.NewAnalyzeResponse(req.ReviewID, artifact)
	if err := fileutils.WriteJSONFileAtomic(outPath, resp, cfg.Pretty, cfg.Overwrite); err != nil {
		return "", err
	}
	return artifact.Source, nil
}
