package domain

// Built-in spreads. Position labels follow the reading flow the app
// presents; Row/Col drive the table layout on screen.
var builtinSpreads = []SpreadDefinition{
	{
		ID:        "una_carta",
		Name:      "Una carta",
		CardCount: 1,
		Positions: []SpreadPosition{
			{Index: 0, Meaning: "La respuesta", Row: 0, Col: 0},
		},
	},
	{
		ID:        "tres_cartas",
		Name:      "Tres cartas",
		CardCount: 3,
		Positions: []SpreadPosition{
			{Index: 0, Meaning: "El pasado", Row: 0, Col: 0},
			{Index: 1, Meaning: "El presente", Row: 0, Col: 1},
			{Index: 2, Meaning: "El futuro", Row: 0, Col: 2},
		},
	},
	{
		ID:        "cruz_celta",
		Name:      "Cruz celta",
		CardCount: 10,
		Positions: []SpreadPosition{
			{Index: 0, Meaning: "La situación actual", Row: 1, Col: 1},
			{Index: 1, Meaning: "El obstáculo", Row: 1, Col: 1},
			{Index: 2, Meaning: "La raíz del asunto", Row: 2, Col: 1},
			{Index: 3, Meaning: "El pasado reciente", Row: 1, Col: 0},
			{Index: 4, Meaning: "Lo que puede lograrse", Row: 0, Col: 1},
			{Index: 5, Meaning: "El futuro inmediato", Row: 1, Col: 2},
			{Index: 6, Meaning: "El consultante", Row: 3, Col: 3},
			{Index: 7, Meaning: "El entorno", Row: 2, Col: 3},
			{Index: 8, Meaning: "Esperanzas y temores", Row: 1, Col: 3},
			{Index: 9, Meaning: "El resultado", Row: 0, Col: 3},
		},
	},
}

// Spreads returns the built-in spread definitions in a stable order.
func Spreads() []SpreadDefinition {
	out := make([]SpreadDefinition, len(builtinSpreads))
	copy(out, builtinSpreads)
	return out
}

// SpreadByID resolves a spread definition by its id.
func SpreadByID(id string) (SpreadDefinition, error) {
	for _, s := range builtinSpreads {
		if s.ID == id {
			return s, nil
		}
	}
	return SpreadDefinition{}, ErrSpreadNotFound
}
