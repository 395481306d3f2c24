package decks

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/j81a/TarotGemini/internal/domain"
)

//go:embed data/*.json
var catalogFS embed.FS

// catalogFiles lists the embedded JSON fragments that together form the
// full 78-card catalog. Load order is stable: majors first.
var catalogFiles = []string{
	"data/major_arcana.json",
	"data/minor_arcana.json",
}

// EmbeddedStore loads the card catalog from embedded JSON files.
type EmbeddedStore struct {
	once  sync.Once
	cards []domain.Card
	byID  map[string]domain.Card
	err   error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	s.byID = make(map[string]domain.Card)
	for _, filename := range catalogFiles {
		raw, err := catalogFS.ReadFile(filename)
		if err != nil {
			s.err = fmt.Errorf("read embedded catalog %s: %w", filename, err)
			return
		}
		var cards []domain.Card
		if err := json.Unmarshal(raw, &cards); err != nil {
			s.err = fmt.Errorf("parse embedded catalog %s: %w", filename, err)
			return
		}
		for _, c := range cards {
			if _, dup := s.byID[c.ID]; dup {
				s.err = fmt.Errorf("duplicate card id %s in %s", c.ID, filename)
				return
			}
			s.byID[c.ID] = c
		}
		s.cards = append(s.cards, cards...)
	}
}

func (s *EmbeddedStore) Catalog(_ context.Context) ([]domain.Card, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Card, len(s.cards))
	copy(out, s.cards)
	return out, nil
}

func (s *EmbeddedStore) CardByID(_ context.Context, id string) (domain.Card, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Card{}, s.err
	}
	card, ok := s.byID[id]
	if !ok {
		return domain.Card{}, domain.ErrCardNotFound
	}
	return card, nil
}
