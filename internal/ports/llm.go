package ports

import (
	"context"

	"github.com/j81a/TarotGemini/internal/domain"
)

// Interpretation is the text produced for a spread or a single card.
// Degraded marks results synthesized locally when the remote backend was
// unavailable; Note carries the human-readable reason.
type Interpretation struct {
	Text     string `json:"text"`
	Model    string `json:"model"`
	Degraded bool   `json:"degraded"`
	Note     string `json:"note,omitempty"`
}

// Interpreter produces natural-language readings. Implementations resolve
// every terminal state to usable text; the only error they may return is
// the caller's own context cancellation.
type Interpreter interface {
	InterpretSpread(ctx context.Context, question string, cards []domain.DrawnCard) (Interpretation, error)
	CardMeaning(ctx context.Context, card domain.DrawnCard) (Interpretation, error)
}
