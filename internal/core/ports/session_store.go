package ports

import (
	"context"

	"github.com/elibrary/library-system/internal/core/domain"
)

// SessionStore persists the single active session under the user and role
// backing keys. Current returns nil when no username is stored and defaults
// the role to user when the username is present but the role key is missing.
type SessionStore interface {
	Start(ctx context.Context, username, role string) error
	End(ctx context.Context) error
	Current(ctx context.Context) (*domain.Session, error)
}

// ThemeStore persists the UI theme preference under the theme backing key.
// Theme returns light when nothing valid is stored.
type ThemeStore interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
	Toggle(ctx context.Context) (string, error)
}
