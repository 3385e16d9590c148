package ports

import (
	"context"

	"github.com/elibrary/library-system/internal/core/domain"
)

// AccountRepository persists registered (non-admin) accounts keyed by
// lowercase username. Create enforces uniqueness and the reserved admin
// name, returning domain.ErrDuplicateUsername on conflict.
type AccountRepository interface {
	Find(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, username string, account domain.Account) error
}
