package ports

import (
	"context"

	"github.com/j81a/TarotGemini/internal/domain"
)

// CatalogStore provides access to the card catalog.
type CatalogStore interface {
	Catalog(ctx context.Context) ([]domain.Card, error)
	CardByID(ctx context.Context, id string) (domain.Card, error)
}
