package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
)

// ChangeNotifier publishes catalog change events so consumers can re-query
// instead of assuming stale reads. The notify package provides the hub.
type ChangeNotifier interface {
	CatalogChanged(op, bookID string)
}

type CatalogService struct {
	repo     ports.CatalogRepository
	notifier ChangeNotifier
	log      zerolog.Logger
}

// NewCatalogService returns a CatalogService. notifier may be nil, in which
// case change events are simply not published.
func NewCatalogService(repo ports.CatalogRepository, notifier ChangeNotifier, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, notifier: notifier, log: log}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Book, error) {
	return s.repo.Load(ctx)
}

// Issue hands out one copy of a book. The recipient label is a
// confirmation-only input: it is logged but deliberately never persisted.
// A book with no available copies is left untouched.
func (s *CatalogService) Issue(ctx context.Context, bookID, recipient string) (*domain.Book, error) {
	books, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	i := indexOf(books, bookID)
	if i < 0 {
		return nil, domain.ErrBookNotFound
	}
	if books[i].Available <= 0 {
		return nil, domain.ErrNoCopiesAvailable
	}

	books[i].Available--
	if err := s.repo.Save(ctx, books); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("book_id", bookID).
		Str("recipient", recipient).
		Int("available", books[i].Available).
		Msg("book issued")
	s.notify("issue", bookID)

	book := books[i]
	return &book, nil
}

// Return takes one copy of a book back. A book with every copy already on
// the shelf is left untouched.
func (s *CatalogService) Return(ctx context.Context, bookID string) (*domain.Book, error) {
	books, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	i := indexOf(books, bookID)
	if i < 0 {
		return nil, domain.ErrBookNotFound
	}
	if books[i].Available >= books[i].Total {
		return nil, domain.ErrAllCopiesPresent
	}

	books[i].Available++
	if err := s.repo.Save(ctx, books); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("book_id", bookID).
		Int("available", books[i].Available).
		Msg("book returned")
	s.notify("return", bookID)

	book := books[i]
	return &book, nil
}

// Add appends a new record with a time-derived identifier. Copy counts
// below 1 are clamped to 1 and every copy starts available.
func (s *CatalogService) Add(ctx context.Context, input ports.AddBookInput) (*domain.Book, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	total := input.TotalCopies
	if total < 1 {
		total = 1
	}

	books, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	at := time.Now().UTC()
	id := domain.NewBookID(at)
	for indexOf(books, id) >= 0 {
		at = at.Add(time.Millisecond)
		id = domain.NewBookID(at)
	}

	book := domain.Book{
		ID:        id,
		Title:     title,
		Author:    strings.TrimSpace(input.Author),
		Total:     total,
		Available: total,
	}
	books = append(books, book)

	if err := s.repo.Save(ctx, books); err != nil {
		return nil, err
	}

	s.log.Info().Str("book_id", id).Str("title", title).Int("total", total).Msg("book added")
	s.notify("add", id)

	return &book, nil
}

// Counts recomputes the dashboard reduction in full on every call; no
// aggregation state is kept between calls.
func (s *CatalogService) Counts(ctx context.Context) (ports.Counts, error) {
	books, err := s.repo.Load(ctx)
	if err != nil {
		return ports.Counts{}, err
	}

	var c ports.Counts
	for _, b := range books {
		c.Total += b.Total
		c.Available += b.Available
	}
	c.Issued = c.Total - c.Available
	return c, nil
}

func (s *CatalogService) notify(op, bookID string) {
	if s.notifier != nil {
		s.notifier.CatalogChanged(op, bookID)
	}
}

func indexOf(books []domain.Book, id string) int {
	for i := range books {
		if books[i].ID == id {
			return i
		}
	}
	return -1
}
