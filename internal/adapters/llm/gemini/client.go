// Package gemini implements the interpretation client against the
// generateContent REST endpoint family. The remote envelope is not fully
// trusted: parsing probes several historical shapes, transient overloads
// are retried with backoff, truncated output escalates a token ladder, and
// every terminal failure degrades to a locally synthesized text instead of
// surfacing an error to the caller.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/j81a/TarotGemini/internal/domain"
	"github.com/j81a/TarotGemini/internal/ports"
	"github.com/j81a/TarotGemini/internal/prompt"
)

const (
	// maxInterpretationRunes is the hard output cap for this integration.
	maxInterpretationRunes = 300
	// minUsefulRunes: a MAX_TOKENS result shorter than this is discarded
	// in favor of the next token rung.
	minUsefulRunes = 40

	localModel = "local"
)

var (
	errOverloaded      = errors.New("still overloaded after retries")
	errLadderExhausted = errors.New("token ladder exhausted without usable text")
)

// Client implements ports.Interpreter against a generateContent endpoint.
type Client struct {
	httpClient *http.Client
	cfg        Config
	builder    prompt.Builder
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, cfg Config, builder prompt.Builder, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if builder == nil {
		builder = prompt.Verbose{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		cfg:        cfg.withDefaults(),
		builder:    builder,
		logger:     logger,
	}
}

// generateRequest mirrors the generateContent request body.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

func (c *Client) InterpretSpread(ctx context.Context, question string, cards []domain.DrawnCard) (ports.Interpretation, error) {
	return c.run(ctx, c.builder.BuildSpread(question, cards))
}

func (c *Client) CardMeaning(ctx context.Context, card domain.DrawnCard) (ports.Interpretation, error) {
	return c.run(ctx, c.builder.BuildCard(card))
}

// run resolves one logical request. The only error it returns is context
// cancellation; every other terminal state yields fallback text.
func (c *Client) run(ctx context.Context, promptText string) (ports.Interpretation, error) {
	if c.cfg.APIKey == "" {
		return ports.Interpretation{
			Text:     Fallback(promptText),
			Model:    localModel,
			Degraded: true,
			Note:     "sin clave de API; interpretación generada localmente",
		}, nil
	}

	text, err := c.complete(ctx, promptText)
	if err == nil {
		return ports.Interpretation{Text: text, Model: c.cfg.Model}, nil
	}
	if ctx.Err() != nil {
		return ports.Interpretation{}, ctx.Err()
	}

	c.logger.WarnContext(ctx, "remote interpretation unavailable, using local fallback", "error", err)
	return ports.Interpretation{
		Text:     Fallback(promptText),
		Model:    localModel,
		Degraded: true,
		Note:     err.Error(),
	}, nil
}

// complete is the outer retry loop: transport failures and hard HTTP
// statuses restart the ladder with linear backoff. Ladder exhaustion is
// terminal; retrying it would multiply the per-rung attempt bounds.
func (c *Client) complete(ctx context.Context, promptText string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, time.Duration(attempt)*c.cfg.RetryBackoffStep); err != nil {
				return "", err
			}
			c.logger.InfoContext(ctx, "retrying interpretation request", "attempt", attempt)
		}

		text, err := c.climbLadder(ctx, promptText)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if errors.Is(err, errLadderExhausted) || ctx.Err() != nil {
			return "", err
		}
	}
	return "", lastErr
}

// climbLadder walks the token ladder: each rung gets its own overload
// retry budget, and a truncated near-empty result moves to the next rung.
func (c *Client) climbLadder(ctx context.Context, promptText string) (string, error) {
	for i, maxTokens := range c.cfg.TokenLadder {
		body, err := c.postWithOverloadRetry(ctx, promptText, maxTokens)
		if err != nil {
			if errors.Is(err, errOverloaded) {
				c.logger.WarnContext(ctx, "rung still overloaded, escalating token budget",
					"max_tokens", maxTokens)
				continue
			}
			return "", err
		}

		var root any
		if err := json.Unmarshal(body, &root); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}

		text, finishReason, ok := extractText(root)
		if !ok {
			// Some text is still better than none for this domain.
			return capText(strings.TrimSpace(string(body))), nil
		}

		hasNextRung := i < len(c.cfg.TokenLadder)-1
		if strings.EqualFold(finishReason, "MAX_TOKENS") && len([]rune(text)) < minUsefulRunes && hasNextRung {
			c.logger.InfoContext(ctx, "output truncated, escalating token budget",
				"max_tokens", maxTokens, "salvaged_runes", len([]rune(text)))
			continue
		}
		return capText(text), nil
	}
	return "", errLadderExhausted
}

// postWithOverloadRetry retries 429/503 responses in place with exponential
// backoff plus jitter, bounded by MaxOverloadRetries.
func (c *Client) postWithOverloadRetry(ctx context.Context, promptText string, maxTokens int) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		status, body, err := c.post(ctx, promptText, maxTokens)
		if err != nil {
			return nil, err
		}

		switch {
		case status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable:
			if attempt >= c.cfg.MaxOverloadRetries {
				return nil, errOverloaded
			}
			delay := c.cfg.OverloadBackoffBase*time.Duration(1<<attempt) + c.jitter()
			if err := sleepCtx(ctx, delay); err != nil {
				return nil, err
			}
		case status < 200 || status > 299:
			return nil, fmt.Errorf("upstream status %d: %s", status, truncateForLog(body))
		default:
			return body, nil
		}
	}
}

func (c *Client) post(ctx context.Context, promptText string, maxTokens int) (int, []byte, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: promptText}}}},
		GenerationConfig: generationConfig{
			Temperature:     c.cfg.Temperature,
			MaxOutputTokens: maxTokens,
		},
	})
	if err != nil {
		return 0, nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model, url.QueryEscape(c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) jitter() time.Duration {
	if c.cfg.OverloadJitterMax <= 0 {
		return 0
	}
	return rand.N(c.cfg.OverloadJitterMax)
}

// capText enforces the hard output cap, counted in runes so multi-byte
// characters are never split.
func capText(s string) string {
	r := []rune(s)
	if len(r) > maxInterpretationRunes {
		return string(r[:maxInterpretationRunes])
	}
	return s
}

func truncateForLog(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// sleepCtx sleeps for d, aborting early if ctx is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
