package domain

// Draw selects spread.CardCount distinct cards from the catalog uniformly
// at random without replacement, flips a fair coin per card for
// orientation, and binds each card to its spread position in order.
//
// A catalog smaller than the spread yields an empty result; callers must
// treat that as "not enough cards", since a legitimate draw can never be
// empty (CardCount is positive by construction).
func Draw(catalog []Card, spread SpreadDefinition, rng RNG) []DrawnCard {
	if len(catalog) < spread.CardCount {
		return nil
	}

	// Fisher-Yates over an index permutation; the first CardCount entries
	// are an unbiased sample without replacement.
	indices := make([]int, len(catalog))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	drawn := make([]DrawnCard, spread.CardCount)
	for i := range spread.CardCount {
		position := i
		meaning := ""
		if i < len(spread.Positions) {
			position = spread.Positions[i].Index
			meaning = spread.Positions[i].Meaning
		}
		drawn[i] = DrawnCard{
			Card:            catalog[indices[i]],
			IsReversed:      rng.Intn(2) == 1,
			Position:        position,
			PositionMeaning: meaning,
		}
	}
	return drawn
}
