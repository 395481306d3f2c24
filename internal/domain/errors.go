package domain

import "errors"

var (
	ErrSpreadNotFound  = errors.New("spread not found")
	ErrCardNotFound    = errors.New("card not found")
	ErrCatalogTooSmall = errors.New("catalog has fewer cards than the spread requires")
	ErrQuestionBlank   = errors.New("question is blank")
	ErrNoCardsDrawn    = errors.New("no cards drawn yet")
	ErrBusy            = errors.New("a request is already in flight")
)
