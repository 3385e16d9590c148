package ports

import (
	"context"

	"github.com/elibrary/library-system/internal/core/domain"
)

// AddBookInput carries the fields for creating a catalog record.
// TotalCopies below 1 is clamped to 1 by the service.
type AddBookInput struct {
	Title       string
	Author      string
	TotalCopies int
}

// Counts is the dashboard reduction over the catalog:
// Total = Σ total, Available = Σ available, Issued = Total − Available.
type Counts struct {
	Total     int `json:"total"`
	Issued    int `json:"issued"`
	Available int `json:"available"`
}

type CatalogService interface {
	List(ctx context.Context) ([]domain.Book, error)
	Issue(ctx context.Context, bookID, recipient string) (*domain.Book, error)
	Return(ctx context.Context, bookID string) (*domain.Book, error)
	Add(ctx context.Context, input AddBookInput) (*domain.Book, error)
	Counts(ctx context.Context) (Counts, error)
}
