package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/elibrary/library-system/internal/core/domain"
)

// ThemeStore persists the UI theme preference under the theme key.
type ThemeStore struct {
	store Store
}

func NewThemeStore(store Store) *ThemeStore {
	return &ThemeStore{store: store}
}

func (s *ThemeStore) Theme(ctx context.Context) (string, error) {
	t, err := s.store.Get(ctx, KeyTheme)
	if errors.Is(err, ErrKeyNotFound) {
		return domain.ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	if t != domain.ThemeDark {
		return domain.ThemeLight, nil
	}
	return domain.ThemeDark, nil
}

func (s *ThemeStore) SetTheme(ctx context.Context, theme string) error {
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return domain.ErrInvalidTheme
	}
	if err := s.store.Set(ctx, KeyTheme, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

func (s *ThemeStore) Toggle(ctx context.Context) (string, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}

	next := domain.ThemeDark
	if current == domain.ThemeDark {
		next = domain.ThemeLight
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
