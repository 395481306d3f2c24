package app

import (
	"context"
	"strings"
	"sync"

	"github.com/j81a/TarotGemini/internal/domain"
	"github.com/j81a/TarotGemini/internal/ports"
)

// Snapshot is the UI-facing view of a reading session at one instant.
type Snapshot struct {
	Question       string
	SpreadID       string
	Cards          []domain.DrawnCard
	Interpretation string
	Degraded       bool
	CardMeaning    string
	ShowingMeaning bool
	Loading        bool
	ErrorMessage   string
}

// ViewState holds the reading-session state and exposes the intents the
// UI triggers. Blocking work (draws are cheap, interpretations are not)
// runs outside the lock; one request is in flight at a time and intents
// arriving while busy are rejected with a visible error message.
type ViewState struct {
	svc *ReaderService

	mu             sync.Mutex
	question       string
	spreadID       string
	cards          []domain.DrawnCard
	interpretation ports.Interpretation
	cardMeaning    string
	showingMeaning bool
	loading        bool
	errMsg         string
}

func NewViewState(svc *ReaderService) *ViewState {
	return &ViewState{svc: svc, spreadID: "tres_cartas"}
}

// Snapshot returns a copy of the current state.
func (v *ViewState) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *ViewState) snapshotLocked() Snapshot {
	cards := make([]domain.DrawnCard, len(v.cards))
	copy(cards, v.cards)
	return Snapshot{
		Question:       v.question,
		SpreadID:       v.spreadID,
		Cards:          cards,
		Interpretation: v.interpretation.Text,
		Degraded:       v.interpretation.Degraded,
		CardMeaning:    v.cardMeaning,
		ShowingMeaning: v.showingMeaning,
		Loading:        v.loading,
		ErrorMessage:   v.errMsg,
	}
}

// SetQuestion updates the question text.
func (v *ViewState) SetQuestion(q string) Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.question = q
	return v.snapshotLocked()
}

// SelectSpread changes the spread used by the next draw.
func (v *ViewState) SelectSpread(spreadID string) Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, err := domain.SpreadByID(spreadID); err != nil {
		v.errMsg = "esa tirada no existe"
		return v.snapshotLocked()
	}
	v.spreadID = spreadID
	return v.snapshotLocked()
}

// PerformDraw draws a fresh spread, replacing any previous cards and
// interpretation.
func (v *ViewState) PerformDraw(ctx context.Context) Snapshot {
	v.mu.Lock()
	if v.loading {
		v.errMsg = "espera a que termine la consulta actual"
		defer v.mu.Unlock()
		return v.snapshotLocked()
	}
	spreadID := v.spreadID
	v.loading = true
	v.mu.Unlock()

	cards, err := v.svc.PerformDraw(ctx, spreadID)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errMsg = "no se pudo hacer la tirada"
		return v.snapshotLocked()
	}
	v.cards = cards
	v.interpretation = ports.Interpretation{}
	v.cardMeaning = ""
	v.showingMeaning = false
	v.errMsg = ""
	return v.snapshotLocked()
}

// RequestInterpretation asks for a reading of the current cards.
func (v *ViewState) RequestInterpretation(ctx context.Context) Snapshot {
	v.mu.Lock()
	switch {
	case v.loading:
		v.errMsg = "espera a que termine la consulta actual"
		defer v.mu.Unlock()
		return v.snapshotLocked()
	case strings.TrimSpace(v.question) == "":
		v.errMsg = "escribe una pregunta primero"
		defer v.mu.Unlock()
		return v.snapshotLocked()
	case len(v.cards) == 0:
		v.errMsg = "haz una tirada primero"
		defer v.mu.Unlock()
		return v.snapshotLocked()
	}
	question := v.question
	cards := make([]domain.DrawnCard, len(v.cards))
	copy(cards, v.cards)
	v.loading = true
	v.mu.Unlock()

	out, err := v.svc.RequestInterpretation(ctx, question, cards)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errMsg = "no se pudo obtener la interpretación"
		return v.snapshotLocked()
	}
	v.interpretation = out
	v.errMsg = ""
	return v.snapshotLocked()
}

// ShowCardMeaning requests the meaning of one drawn card by its index in
// the current spread.
func (v *ViewState) ShowCardMeaning(ctx context.Context, index int) Snapshot {
	v.mu.Lock()
	if v.loading {
		v.errMsg = "espera a que termine la consulta actual"
		defer v.mu.Unlock()
		return v.snapshotLocked()
	}
	if index < 0 || index >= len(v.cards) {
		v.errMsg = "esa carta no está en la tirada"
		defer v.mu.Unlock()
		return v.snapshotLocked()
	}
	card := v.cards[index]
	v.loading = true
	v.mu.Unlock()

	out, err := v.svc.RequestCardMeaning(ctx, card)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errMsg = "no se pudo obtener el significado"
		return v.snapshotLocked()
	}
	v.cardMeaning = out.Text
	v.showingMeaning = true
	v.errMsg = ""
	return v.snapshotLocked()
}

// DismissMeaning hides the card-meaning panel.
func (v *ViewState) DismissMeaning() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showingMeaning = false
	v.cardMeaning = ""
	return v.snapshotLocked()
}

// ClearError clears the visible error message.
func (v *ViewState) ClearError() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errMsg = ""
	return v.snapshotLocked()
}

// Reset returns the session to its initial state.
func (v *ViewState) Reset() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.question = ""
	v.spreadID = "tres_cartas"
	v.cards = nil
	v.interpretation = ports.Interpretation{}
	v.cardMeaning = ""
	v.showingMeaning = false
	v.errMsg = ""
	return v.snapshotLocked()
}
