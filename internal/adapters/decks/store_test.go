package decks_test

import (
	"context"
	"testing"

	"github.com/j81a/TarotGemini/internal/adapters/decks"
	"github.com/j81a/TarotGemini/internal/domain"
)

func TestCatalog_SeventyEightUniqueCards(t *testing.T) {
	store := decks.NewEmbeddedStore()
	cards, err := store.Catalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cards) != 78 {
		t.Fatalf("expected 78 cards, got %d", len(cards))
	}

	seen := make(map[string]bool)
	majors, minors := 0, 0
	for _, c := range cards {
		if seen[c.ID] {
			t.Errorf("duplicate card id: %s", c.ID)
		}
		seen[c.ID] = true

		if c.Name == "" || c.Upright == "" || c.Reversed == "" {
			t.Errorf("card %s: missing text fields", c.ID)
		}

		switch c.Arcana {
		case domain.ArcanaMajor:
			majors++
			if c.Suit != "" {
				t.Errorf("major card %s has suit %q", c.ID, c.Suit)
			}
		case domain.ArcanaMinor:
			minors++
			switch c.Suit {
			case domain.SuitCups, domain.SuitSwords, domain.SuitWands, domain.SuitPentacles:
			default:
				t.Errorf("minor card %s has invalid suit %q", c.ID, c.Suit)
			}
		default:
			t.Errorf("card %s: invalid arcana %q", c.ID, c.Arcana)
		}
	}

	if majors != 22 {
		t.Errorf("expected 22 major cards, got %d", majors)
	}
	if minors != 56 {
		t.Errorf("expected 56 minor cards, got %d", minors)
	}
}

func TestCardByID(t *testing.T) {
	store := decks.NewEmbeddedStore()

	card, err := store.CardByID(context.Background(), "M19")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Name != "El Sol" {
		t.Errorf("expected El Sol, got %s", card.Name)
	}

	_, err = store.CardByID(context.Background(), "Z99")
	if err != domain.ErrCardNotFound {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}
