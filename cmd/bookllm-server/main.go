package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/theimaginaryfoundation/bookllm/analysis"
	"github.com/theimaginaryfoundation/bookllm/analysis/provider"
	"github.com/theimaginaryfoundation/bookllm/internal/api"
	"github.com/theimaginaryfoundation/bookllm/internal/config"
	"github.com/theimaginaryfoundation/bookllm/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	logging.Init(cfg.LogConfig())

	engine, err := newEngine(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to build analysis engine")
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: api.NewRouter(api.NewHandler(engine, cfg.Server.RequestTimeout), api.MiddlewareConfig{
			CORSAllowedOrigins: cfg.Server.CORSOrigins,
			RateLimitRequests:  cfg.Server.RateLimitRequests,
			RateLimitWindow:    cfg.Server.RateLimitWindow,
			RateLimitDisabled:  cfg.Server.RateLimitDisabled,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", srv.Addr).
			Bool("model_enabled", engine.ModelEnabled()).
			Str("model", cfg.Model.Name).
			Msg("bookllm server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logging.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}

// newEngine enables the model path only when configuration allows it; otherwise the
// engine serves template synthesis.
func newEngine(cfg *config.Config) (*analysis.Engine, error) {
	if !cfg.ModelEnabled() {
		if !cfg.Model.UseMockResponse {
			logging.Warn().Msg("OPENAI_API_KEY is not set, serving template analyses only")
		}
		return analysis.NewEngine(), nil
	}
	p, err := provider.NewOpenAI(provider.Config{
		APIKey:          cfg.Model.APIKey,
		Model:           cfg.Model.Name,
		BaseURL:         cfg.Model.BaseURL,
		Temperature:     cfg.Model.Temperature,
		MaxOutputTokens: cfg.Model.MaxOutputTokens,
		BreakerFailures: cfg.Model.BreakerFailures,
		BreakerCooldown: cfg.Model.BreakerCooldown,
	})
	if err != nil {
		return nil, err
	}
	return analysis.NewEngine(analysis.WithModel(p)), nil
}
