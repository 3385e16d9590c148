package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/domain"
)

// CatalogRepository stores the whole book list as one JSON array under the
// books key. Absent or unparseable data is replaced by the seed catalog;
// that recovery is logged but never surfaced to callers.
type CatalogRepository struct {
	store Store
	log   zerolog.Logger
}

func NewCatalogRepository(store Store, log zerolog.Logger) *CatalogRepository {
	return &CatalogRepository{store: store, log: log}
}

func (r *CatalogRepository) Load(ctx context.Context) ([]domain.Book, error) {
	raw, err := r.store.Get(ctx, KeyBooks)
	if errors.Is(err, ErrKeyNotFound) {
		return r.reseed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var books []domain.Book
	if err := json.Unmarshal([]byte(raw), &books); err != nil {
		r.log.Warn().Err(err).Msg("catalog entry unparseable, reseeding")
		return r.reseed(ctx)
	}
	return books, nil
}

func (r *CatalogRepository) Save(ctx context.Context, books []domain.Book) error {
	buf, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := r.store.Set(ctx, KeyBooks, string(buf)); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

func (r *CatalogRepository) reseed(ctx context.Context) ([]domain.Book, error) {
	seed := domain.SeedCatalog()
	if err := r.Save(ctx, seed); err != nil {
		return nil, err
	}
	return seed, nil
}
