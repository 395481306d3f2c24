package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/j81a/TarotGemini/internal/adapters/decks"
	httpadapter "github.com/j81a/TarotGemini/internal/adapters/http"
	"github.com/j81a/TarotGemini/internal/adapters/llm/gemini"
	"github.com/j81a/TarotGemini/internal/app"
	"github.com/j81a/TarotGemini/internal/config"
	"github.com/j81a/TarotGemini/internal/prompt"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	catalogStore := decks.NewEmbeddedStore()

	// One pooled HTTP client for the process lifetime; the total-call
	// timeout bounds each interpretation attempt.
	httpClient := &http.Client{
		Timeout: cfg.LLMTotalTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: cfg.LLMConnectTimeout}).DialContext,
		},
	}

	interpreter := gemini.NewClient(
		httpClient,
		gemini.Config{
			BaseURL:            cfg.GeminiBaseURL,
			Model:              cfg.GeminiModel,
			APIKey:             cfg.GeminiAPIKey,
			Temperature:        cfg.LLMTemperature,
			MaxRetries:         cfg.MaxRetries,
			MaxOverloadRetries: cfg.MaxOverloadRetries,
			TokenLadder:        cfg.TokenLadder,
		},
		prompt.ByStyle(cfg.PromptStyle),
		logger,
	)

	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; interpretations will be generated locally")
	}

	svc := app.NewReaderService(catalogStore, interpreter, stdRNG{}, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
