package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/j81a/TarotGemini/internal/domain"
	"github.com/j81a/TarotGemini/internal/ports"
)

// ReadingResult is the application-level output of a full reading.
type ReadingResult struct {
	Spread         domain.SpreadDefinition
	Question       string
	Cards          []domain.DrawnCard
	Interpretation ports.Interpretation
	LatencyMS      int64
}

// ReaderService orchestrates card draws and interpretation requests. It is
// the only boundary the UI layer touches.
type ReaderService struct {
	catalog     ports.CatalogStore
	interpreter ports.Interpreter
	rng         domain.RNG
	logger      *slog.Logger
}

func NewReaderService(catalog ports.CatalogStore, interpreter ports.Interpreter, rng domain.RNG, logger *slog.Logger) *ReaderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReaderService{
		catalog:     catalog,
		interpreter: interpreter,
		rng:         rng,
		logger:      logger,
	}
}

// PerformDraw draws the cards for a spread. An empty draw from the engine
// means the catalog is smaller than the spread.
func (s *ReaderService) PerformDraw(ctx context.Context, spreadID string) ([]domain.DrawnCard, error) {
	spread, err := domain.SpreadByID(spreadID)
	if err != nil {
		return nil, fmt.Errorf("resolve spread: %w", err)
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	drawn := domain.Draw(catalog, spread, s.rng)
	if len(drawn) == 0 {
		return nil, domain.ErrCatalogTooSmall
	}
	return drawn, nil
}

// RequestInterpretation asks the interpreter for a reading of already
// drawn cards.
func (s *ReaderService) RequestInterpretation(ctx context.Context, question string, cards []domain.DrawnCard) (ports.Interpretation, error) {
	if strings.TrimSpace(question) == "" {
		return ports.Interpretation{}, domain.ErrQuestionBlank
	}
	if len(cards) == 0 {
		return ports.Interpretation{}, domain.ErrNoCardsDrawn
	}

	start := time.Now()
	out, err := s.interpreter.InterpretSpread(ctx, question, cards)
	if err != nil {
		return ports.Interpretation{}, fmt.Errorf("interpret spread: %w", err)
	}

	s.logger.InfoContext(ctx, "interpretation completed",
		"cards", len(cards),
		"model", out.Model,
		"degraded", out.Degraded,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// RequestCardMeaning asks the interpreter for a single-card explanation.
func (s *ReaderService) RequestCardMeaning(ctx context.Context, card domain.DrawnCard) (ports.Interpretation, error) {
	out, err := s.interpreter.CardMeaning(ctx, card)
	if err != nil {
		return ports.Interpretation{}, fmt.Errorf("card meaning: %w", err)
	}
	return out, nil
}

// Reading performs a full draw-and-interpret cycle for one question.
func (s *ReaderService) Reading(ctx context.Context, question, spreadID string) (ReadingResult, error) {
	spread, err := domain.SpreadByID(spreadID)
	if err != nil {
		return ReadingResult{}, fmt.Errorf("resolve spread: %w", err)
	}

	cards, err := s.PerformDraw(ctx, spreadID)
	if err != nil {
		return ReadingResult{}, err
	}

	start := time.Now()
	interpretation, err := s.RequestInterpretation(ctx, question, cards)
	if err != nil {
		return ReadingResult{}, err
	}

	return ReadingResult{
		Spread:         spread,
		Question:       question,
		Cards:          cards,
		Interpretation: interpretation,
		LatencyMS:      time.Since(start).Milliseconds(),
	}, nil
}

// DrawnCardByID rebuilds a DrawnCard for a catalog card outside a spread,
// used by the card-meaning flow when the caller only has the card id.
func (s *ReaderService) DrawnCardByID(ctx context.Context, id string, reversed bool) (domain.DrawnCard, error) {
	card, err := s.catalog.CardByID(ctx, id)
	if err != nil {
		return domain.DrawnCard{}, fmt.Errorf("resolve card: %w", err)
	}
	return domain.DrawnCard{Card: card, IsReversed: reversed}, nil
}
