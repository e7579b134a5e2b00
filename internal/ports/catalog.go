package ports

import (
	"context"

	"github.com/randomtoy/coresim/internal/domain"
)

// CardCatalog provides named card sets, each card carrying its default
// count in the deck.
type CardCatalog interface {
	GetCatalog(ctx context.Context, catalogID string) ([]domain.CardSpec, error)
}
