package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Arcana identifies the card family.
type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

// Suit identifies the minor-arcana suit. Major cards carry no suit.
type Suit string

const (
	SuitCups      Suit = "copas"
	SuitSwords    Suit = "espadas"
	SuitWands     Suit = "bastos"
	SuitPentacles Suit = "oros"
)

// Card represents a single tarot card in the catalog.
type Card struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Arcana   Arcana `json:"arcana"`
	Suit     Suit   `json:"suit,omitempty"`
	Upright  string `json:"upright"`
	Reversed string `json:"reversed"`
}

// Meaning returns the orientation-appropriate meaning text.
func (c Card) Meaning(reversed bool) string {
	if reversed {
		return c.Reversed
	}
	return c.Upright
}

// SpreadPosition is one slot in a spread layout. Index values are dense
// and 0-based within a spread. Row/Col are presentation hints only.
type SpreadPosition struct {
	Index   int    `json:"index"`
	Meaning string `json:"meaning"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
}

// SpreadDefinition declares a named spread: how many cards are drawn and
// what each position means.
type SpreadDefinition struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CardCount int              `json:"card_count"`
	Positions []SpreadPosition `json:"positions"`
}

// DrawnCard is a card that has been drawn into a spread position.
type DrawnCard struct {
	Card
	IsReversed      bool   `json:"is_reversed"`
	Position        int    `json:"position"`
	PositionMeaning string `json:"position_meaning"`
}

// Meaning returns the meaning text for the drawn orientation.
func (d DrawnCard) Meaning() string {
	return d.Card.Meaning(d.IsReversed)
}
