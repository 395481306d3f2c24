package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/j81a/TarotGemini/internal/adapters/decks"
	"github.com/j81a/TarotGemini/internal/adapters/llm/gemini"
	"github.com/j81a/TarotGemini/internal/app"
	"github.com/j81a/TarotGemini/internal/config"
	"github.com/j81a/TarotGemini/internal/prompt"
)

type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

var leerFlags struct {
	pregunta string
	tirada   string
}

var leerCmd = &cobra.Command{
	Use:   "leer",
	Short: "Haz una tirada e interpreta las cartas",
	RunE:  runLeer,
}

func init() {
	f := leerCmd.Flags()
	f.StringVar(&leerFlags.pregunta, "pregunta", "", "La pregunta del consultante (requerida)")
	f.StringVar(&leerFlags.tirada, "tirada", "tres_cartas", "Tirada a usar (una_carta, tres_cartas, cruz_celta)")

	_ = leerCmd.MarkFlagRequired("pregunta")
}

func runLeer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

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

	svc := app.NewReaderService(decks.NewEmbeddedStore(), interpreter, stdRNG{}, logger)

	result, err := svc.Reading(cmd.Context(), leerFlags.pregunta, leerFlags.tirada)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tirada: %s\n", result.Spread.Name)
	fmt.Fprintf(out, "Pregunta: %s\n\n", result.Question)
	for _, c := range result.Cards {
		fmt.Fprintf(out, "  %d. %-28s %-10s %s\n",
			c.Position+1, c.Name, prompt.Orientation(c.IsReversed), c.PositionMeaning)
	}
	fmt.Fprintf(out, "\n%s\n", result.Interpretation.Text)
	if result.Interpretation.Degraded {
		fmt.Fprintf(out, "\n(interpretación local: %s)\n", result.Interpretation.Note)
	}
	return nil
}
