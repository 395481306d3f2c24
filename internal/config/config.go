package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	LogLevel slog.Level

	// GeminiAPIKey may be empty: the interpretation client then serves
	// locally synthesized readings without touching the network.
	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
	PromptStyle   string

	LLMConnectTimeout  time.Duration
	LLMTotalTimeout    time.Duration
	LLMTemperature     float64
	MaxRetries         int
	MaxOverloadRetries int
	TokenLadder        []int
}

func Load() (Config, error) {
	// A missing .env file is fine; explicit environment wins anyway.
	_ = godotenv.Load()

	c := Config{
		HTTPAddr:           envOr("HTTP_ADDR", ":8080"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:      envOr("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		GeminiModel:        envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		PromptStyle:        envOr("PROMPT_STYLE", "verbose"),
		LLMConnectTimeout:  10 * time.Second,
		LLMTotalTimeout:    60 * time.Second,
		MaxRetries:         2,
		MaxOverloadRetries: 4,
		TokenLadder:        []int{2048, 4096},
	}

	var err error
	if c.LLMConnectTimeout, err = durationOr("LLM_CONNECT_TIMEOUT", c.LLMConnectTimeout); err != nil {
		return Config{}, err
	}
	if c.LLMTotalTimeout, err = durationOr("LLM_TOTAL_TIMEOUT", c.LLMTotalTimeout); err != nil {
		return Config{}, err
	}
	if c.MaxRetries, err = intOr("LLM_MAX_RETRIES", c.MaxRetries); err != nil {
		return Config{}, err
	}
	if c.MaxOverloadRetries, err = intOr("LLM_MAX_OVERLOAD_RETRIES", c.MaxOverloadRetries); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TEMPERATURE %q: %w", v, err)
		}
		c.LLMTemperature = t
	}
	if v := os.Getenv("LLM_TOKEN_LADDER"); v != "" {
		ladder, err := parseTokenLadder(v)
		if err != nil {
			return Config{}, err
		}
		c.TokenLadder = ladder
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	switch strings.ToLower(c.PromptStyle) {
	case "verbose", "compact":
	default:
		return Config{}, fmt.Errorf("invalid PROMPT_STYLE %q", c.PromptStyle)
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func intOr(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

// parseTokenLadder parses a comma-separated ascending list of output-token
// caps, e.g. "2048,4096".
func parseTokenLadder(s string) ([]int, error) {
	var ladder []int
	for _, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid LLM_TOKEN_LADDER entry %q", raw)
		}
		if len(ladder) > 0 && n <= ladder[len(ladder)-1] {
			return nil, fmt.Errorf("LLM_TOKEN_LADDER must be strictly ascending")
		}
		ladder = append(ladder, n)
	}
	if len(ladder) == 0 {
		return nil, fmt.Errorf("LLM_TOKEN_LADDER is empty")
	}
	return ladder, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
