package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/j81a/TarotGemini/internal/app"
	"github.com/j81a/TarotGemini/internal/domain"
	"github.com/j81a/TarotGemini/internal/ports"
)

const maxQuestionLength = 500

type Handler struct {
	svc *app.ReaderService
}

func NewHandler(svc *app.ReaderService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/spreads", h.ListSpreads)
	e.POST("/v1/draw", h.Draw)
	e.POST("/v1/reading", h.Reading)
	e.POST("/v1/card-meaning", h.CardMeaning)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListSpreads(c echo.Context) error {
	spreads := domain.Spreads()
	out := make([]SpreadResponse, len(spreads))
	for i, s := range spreads {
		positions := make([]PositionInfo, len(s.Positions))
		for j, p := range s.Positions {
			positions[j] = PositionInfo{Index: p.Index, Meaning: p.Meaning, Row: p.Row, Col: p.Col}
		}
		out[i] = SpreadResponse{ID: s.ID, Name: s.Name, CardCount: s.CardCount, Positions: positions}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Draw(c echo.Context) error {
	var req DrawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Spread == "" {
		req.Spread = "tres_cartas"
	}

	cards, err := h.svc.PerformDraw(c.Request().Context(), req.Spread)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, DrawResponse{
		Spread: req.Spread,
		Cards:  toCardResponses(cards),
	})
}

func (h *Handler) Reading(c echo.Context) error {
	var req ReadingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if len(req.Question) > maxQuestionLength {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question must be at most 500 characters"})
	}
	if req.Spread == "" {
		req.Spread = "tres_cartas"
	}

	result, err := h.svc.Reading(c.Request().Context(), req.Question, req.Spread)
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, ReadingResponse{
		Spread:         result.Spread.ID,
		Question:       result.Question,
		Cards:          toCardResponses(result.Cards),
		Interpretation: toInterpretationResponse(result.Interpretation),
		Meta: MetaResponse{
			RequestID: requestID,
			LatencyMS: result.LatencyMS,
		},
	})
}

func (h *Handler) CardMeaning(c echo.Context) error {
	var req CardMeaningRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	card, err := h.svc.DrawnCardByID(c.Request().Context(), req.CardID, req.Reversed)
	if err != nil {
		return mapError(c, err)
	}

	out, err := h.svc.RequestCardMeaning(c.Request().Context(), card)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, toInterpretationResponse(out))
}

func toCardResponses(cards []domain.DrawnCard) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i, dc := range cards {
		out[i] = CardResponse{
			ID:              dc.ID,
			Name:            dc.Name,
			Arcana:          string(dc.Arcana),
			Suit:            string(dc.Suit),
			IsReversed:      dc.IsReversed,
			Position:        dc.Position,
			PositionMeaning: dc.PositionMeaning,
			Meaning:         dc.Meaning(),
		}
	}
	return out
}

func toInterpretationResponse(in ports.Interpretation) InterpretationResponse {
	return InterpretationResponse{
		Text:     in.Text,
		Model:    in.Model,
		Degraded: in.Degraded,
		Note:     in.Note,
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrSpreadNotFound), errors.Is(err, domain.ErrCardNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCatalogTooSmall),
		errors.Is(err, domain.ErrQuestionBlank),
		errors.Is(err, domain.ErrNoCardsDrawn):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
