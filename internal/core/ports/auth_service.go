package ports

import (
	"context"

	"github.com/elibrary/library-system/internal/core/domain"
)

type AuthService interface {
	// Register creates a new user-role account. The username is lowercased
	// before any check; a name equal to the reserved admin name or an
	// already-registered name fails with domain.ErrDuplicateUsername.
	Register(ctx context.Context, username, password string) error

	// Login authenticates, starts the session, and returns a signed token
	// alongside the session. Failures are domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.Session, error)

	// Logout clears the session unconditionally.
	Logout(ctx context.Context) error

	// Session returns the current session, or nil when nobody is logged in.
	Session(ctx context.Context) (*domain.Session, error)
}
