package gemini

import "time"

// Config holds everything the interpretation client needs. It is built by
// whoever constructs the client; there is no hidden global state.
type Config struct {
	// BaseURL is the generateContent endpoint root, without trailing slash.
	BaseURL string
	// Model is the model identifier appended to the URL path.
	Model string
	// APIKey empty means no network attempt: the client short-circuits to
	// the local fallback generator.
	APIKey string
	// Temperature for generation. Kept low for reproducible readings.
	Temperature float64
	// MaxRetries bounds the outer retry loop for transport-level failures
	// and non-overload HTTP errors.
	MaxRetries int
	// MaxOverloadRetries bounds in-place retries of 429/503 responses,
	// per token rung.
	MaxOverloadRetries int
	// TokenLadder is the ascending sequence of maxOutputTokens caps to
	// escalate through when output is truncated or a rung stays overloaded.
	TokenLadder []int
	// OverloadBackoffBase is the base of the exponential overload backoff.
	OverloadBackoffBase time.Duration
	// OverloadJitterMax bounds the random jitter added to each overload
	// backoff sleep.
	OverloadJitterMax time.Duration
	// RetryBackoffStep is the linear step of the outer retry backoff.
	RetryBackoffStep time.Duration
}

const (
	defaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel       = "gemini-2.0-flash"
	defaultTemperature = 0.0
)

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.MaxOverloadRetries < 0 {
		c.MaxOverloadRetries = 0
	}
	if len(c.TokenLadder) == 0 {
		c.TokenLadder = []int{2048, 4096}
	}
	if c.OverloadBackoffBase <= 0 {
		c.OverloadBackoffBase = time.Second
	}
	if c.OverloadJitterMax <= 0 {
		c.OverloadJitterMax = 500 * time.Millisecond
	}
	if c.RetryBackoffStep <= 0 {
		c.RetryBackoffStep = 500 * time.Millisecond
	}
	return c
}
