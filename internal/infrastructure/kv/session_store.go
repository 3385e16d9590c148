package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/elibrary/library-system/internal/core/domain"
)

// SessionStore persists the single active session under the user and role
// keys, each a bare string.
type SessionStore struct {
	store Store
}

func NewSessionStore(store Store) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) Start(ctx context.Context, username, role string) error {
	if err := s.store.Set(ctx, KeyUser, username); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if err := s.store.Set(ctx, KeyRole, role); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

func (s *SessionStore) End(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeyUser); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	if err := s.store.Delete(ctx, KeyRole); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

func (s *SessionStore) Current(ctx context.Context) (*domain.Session, error) {
	username, err := s.store.Get(ctx, KeyUser)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	// A username without a role key is still a valid session; default the
	// role rather than failing.
	role, err := s.store.Get(ctx, KeyRole)
	if errors.Is(err, ErrKeyNotFound) || role == "" {
		role = domain.RoleUser
	} else if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	return &domain.Session{Username: username, Role: role}, nil
}
