package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.HTTPAddr != ":8080" {
		t.Errorf("unexpected addr: %s", c.HTTPAddr)
	}
	if c.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("unexpected model: %s", c.GeminiModel)
	}
	if len(c.TokenLadder) != 2 || c.TokenLadder[0] != 2048 || c.TokenLadder[1] != 4096 {
		t.Errorf("unexpected token ladder: %v", c.TokenLadder)
	}
	if c.GeminiAPIKey != "" {
		t.Skip("GEMINI_API_KEY set in environment")
	}
}

func TestLoad_MissingKeyIsValid(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err != nil {
		t.Fatalf("an empty API key must not be a configuration error: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_TOKEN_LADDER", "1024, 2048, 8192")
	t.Setenv("LLM_MAX_OVERLOAD_RETRIES", "7")
	t.Setenv("LLM_TOTAL_TIMEOUT", "90s")
	t.Setenv("PROMPT_STYLE", "compact")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1024, 2048, 8192}
	if len(c.TokenLadder) != len(want) {
		t.Fatalf("unexpected ladder: %v", c.TokenLadder)
	}
	for i, n := range want {
		if c.TokenLadder[i] != n {
			t.Errorf("ladder[%d]: expected %d, got %d", i, n, c.TokenLadder[i])
		}
	}
	if c.MaxOverloadRetries != 7 {
		t.Errorf("unexpected overload retries: %d", c.MaxOverloadRetries)
	}
	if c.LLMTotalTimeout != 90*time.Second {
		t.Errorf("unexpected total timeout: %v", c.LLMTotalTimeout)
	}
	if c.PromptStyle != "compact" {
		t.Errorf("unexpected prompt style: %s", c.PromptStyle)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"LLM_TOKEN_LADDER":  "4096,2048",
		"LLM_MAX_RETRIES":   "-1",
		"LLM_TOTAL_TIMEOUT": "soon",
		"LOG_LEVEL":         "loud",
		"PROMPT_STYLE":      "haiku",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%q: expected error", key, value)
			}
		})
	}
}
