package http

// DrawRequest is the JSON body of POST /v1/draw.
type DrawRequest struct {
	Spread string `json:"spread"`
}

// ReadingRequest is the JSON body of POST /v1/reading.
type ReadingRequest struct {
	Question string `json:"question"`
	Spread   string `json:"spread"`
}

// CardMeaningRequest is the JSON body of POST /v1/card-meaning.
type CardMeaningRequest struct {
	CardID   string `json:"card_id"`
	Reversed bool   `json:"reversed"`
}

type CardResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Arcana          string `json:"arcana"`
	Suit            string `json:"suit,omitempty"`
	IsReversed      bool   `json:"is_reversed"`
	Position        int    `json:"position"`
	PositionMeaning string `json:"position_meaning"`
	Meaning         string `json:"meaning"`
}

type InterpretationResponse struct {
	Text     string `json:"text"`
	Model    string `json:"model"`
	Degraded bool   `json:"degraded"`
	Note     string `json:"note,omitempty"`
}

type MetaResponse struct {
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

// DrawResponse is the JSON shape returned by POST /v1/draw.
type DrawResponse struct {
	Spread string         `json:"spread"`
	Cards  []CardResponse `json:"cards"`
}

// ReadingResponse is the JSON shape returned by POST /v1/reading.
type ReadingResponse struct {
	Spread         string                 `json:"spread"`
	Question       string                 `json:"question"`
	Cards          []CardResponse         `json:"cards"`
	Interpretation InterpretationResponse `json:"interpretation"`
	Meta           MetaResponse           `json:"meta"`
}

// SpreadResponse is one entry of GET /v1/spreads.
type SpreadResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CardCount int            `json:"card_count"`
	Positions []PositionInfo `json:"positions"`
}

type PositionInfo struct {
	Index   int    `json:"index"`
	Meaning string `json:"meaning"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
