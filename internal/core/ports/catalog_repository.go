package ports

import (
	"context"

	"github.com/elibrary/library-system/internal/core/domain"
)

// CatalogRepository persists the ordered book list as a whole. Load must
// replace absent or unparseable backing data with the fixed seed catalog
// and return that seed; Save overwrites unconditionally, leaving invariant
// enforcement to callers.
type CatalogRepository interface {
	Load(ctx context.Context) ([]domain.Book, error)
	Save(ctx context.Context, books []domain.Book) error
}
