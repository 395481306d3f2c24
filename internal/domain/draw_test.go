package domain_test

import (
	"math/rand/v2"
	"testing"

	"github.com/j81a/TarotGemini/internal/domain"
)

// deterministicRNG returns values from a pre-set sequence.
type deterministicRNG struct {
	values []int
	idx    int
}

func (r *deterministicRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

// seededRNG wraps math/rand/v2 with a fixed seed for statistical tests.
type seededRNG struct{ r *rand.Rand }

func newSeededRNG(seed uint64) seededRNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

func testCatalog(n int) []domain.Card {
	cards := make([]domain.Card, n)
	for i := range n {
		cards[i] = domain.Card{
			ID:       "card_" + string(rune('a'+i)),
			Name:     "Carta " + string(rune('A'+i)),
			Arcana:   domain.ArcanaMajor,
			Upright:  "Significado normal.",
			Reversed: "Significado invertido.",
		}
	}
	return cards
}

func threeCardSpread(t *testing.T) domain.SpreadDefinition {
	t.Helper()
	s, err := domain.SpreadByID("tres_cartas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestDraw_DistinctCardsAndPositions(t *testing.T) {
	catalog := testCatalog(22)
	spread := threeCardSpread(t)

	for seed := uint64(1); seed <= 50; seed++ {
		drawn := domain.Draw(catalog, spread, newSeededRNG(seed))
		if len(drawn) != spread.CardCount {
			t.Fatalf("seed %d: expected %d cards, got %d", seed, spread.CardCount, len(drawn))
		}

		seenIDs := make(map[string]bool)
		seenPositions := make(map[int]bool)
		for _, c := range drawn {
			if seenIDs[c.ID] {
				t.Errorf("seed %d: duplicate card ID %s", seed, c.ID)
			}
			seenIDs[c.ID] = true
			if c.Position < 0 || c.Position >= spread.CardCount {
				t.Errorf("seed %d: position %d out of range", seed, c.Position)
			}
			if seenPositions[c.Position] {
				t.Errorf("seed %d: duplicate position %d", seed, c.Position)
			}
			seenPositions[c.Position] = true
		}
	}
}

func TestDraw_CatalogTooSmall(t *testing.T) {
	catalog := testCatalog(2)
	spread := threeCardSpread(t)

	drawn := domain.Draw(catalog, spread, newSeededRNG(1))
	if len(drawn) != 0 {
		t.Fatalf("expected empty result, got %d cards", len(drawn))
	}
}

func TestDraw_PositionBinding(t *testing.T) {
	catalog := testCatalog(10)
	spread := threeCardSpread(t)
	rng := &deterministicRNG{values: []int{0}}

	drawn := domain.Draw(catalog, spread, rng)
	expected := []string{"El pasado", "El presente", "El futuro"}
	for i, c := range drawn {
		if c.Position != i {
			t.Errorf("card %d: expected position %d, got %d", i, i, c.Position)
		}
		if c.PositionMeaning != expected[i] {
			t.Errorf("card %d: expected meaning %q, got %q", i, expected[i], c.PositionMeaning)
		}
	}
}

func TestDraw_MissingPositionsFallBackToIndex(t *testing.T) {
	catalog := testCatalog(5)
	spread := domain.SpreadDefinition{
		ID:        "rota",
		Name:      "Tirada incompleta",
		CardCount: 3,
		Positions: []domain.SpreadPosition{{Index: 0, Meaning: "Única"}},
	}
	rng := &deterministicRNG{values: []int{0}}

	drawn := domain.Draw(catalog, spread, rng)
	if len(drawn) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(drawn))
	}
	if drawn[0].PositionMeaning != "Única" {
		t.Errorf("card 0: expected declared meaning, got %q", drawn[0].PositionMeaning)
	}
	for i := 1; i < 3; i++ {
		if drawn[i].Position != i {
			t.Errorf("card %d: expected fallback position %d, got %d", i, i, drawn[i].Position)
		}
		if drawn[i].PositionMeaning != "" {
			t.Errorf("card %d: expected empty meaning, got %q", i, drawn[i].PositionMeaning)
		}
	}
}

func TestDraw_OrientationSequence(t *testing.T) {
	catalog := testCatalog(5)
	spread := threeCardSpread(t)
	rng := &deterministicRNG{values: []int{
		0, 0, 0, 0, // shuffle (4 swaps for 5 cards)
		0, 1, 0, // orientation: upright, reversed, upright
	}}

	drawn := domain.Draw(catalog, spread, rng)
	expected := []bool{false, true, false}
	for i, c := range drawn {
		if c.IsReversed != expected[i] {
			t.Errorf("card %d: expected reversed=%v, got %v", i, expected[i], c.IsReversed)
		}
	}
}

func TestDraw_OrientationIsFair(t *testing.T) {
	catalog := testCatalog(3)
	spread, err := domain.SpreadByID("una_carta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := newSeededRNG(42)
	const trials = 20000
	reversed := 0
	for range trials {
		drawn := domain.Draw(catalog, spread, rng)
		if drawn[0].IsReversed {
			reversed++
		}
	}

	fraction := float64(reversed) / float64(trials)
	if fraction < 0.47 || fraction > 0.53 {
		t.Errorf("reversed fraction %f outside [0.47, 0.53]", fraction)
	}
}

func TestDraw_MeaningFollowsOrientation(t *testing.T) {
	catalog := testCatalog(3)
	spread, _ := domain.SpreadByID("una_carta")
	rng := &deterministicRNG{values: []int{0, 0, 1}}

	drawn := domain.Draw(catalog, spread, rng)
	if !drawn[0].IsReversed {
		t.Fatal("expected reversed card")
	}
	if drawn[0].Meaning() != "Significado invertido." {
		t.Errorf("unexpected meaning: %q", drawn[0].Meaning())
	}
}

func TestSpreadByID_Unknown(t *testing.T) {
	_, err := domain.SpreadByID("inexistente")
	if err != domain.ErrSpreadNotFound {
		t.Errorf("expected ErrSpreadNotFound, got %v", err)
	}
}

func TestSpreads_PositionsAreDense(t *testing.T) {
	for _, s := range domain.Spreads() {
		if s.CardCount < 1 {
			t.Errorf("spread %s: card count %d", s.ID, s.CardCount)
		}
		if len(s.Positions) != s.CardCount {
			t.Errorf("spread %s: %d positions for %d cards", s.ID, len(s.Positions), s.CardCount)
		}
		for i, p := range s.Positions {
			if p.Index != i {
				t.Errorf("spread %s: position %d has index %d", s.ID, i, p.Index)
			}
			if p.Meaning == "" {
				t.Errorf("spread %s: position %d has empty meaning", s.ID, i)
			}
		}
	}
}
