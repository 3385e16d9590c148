package kv

import (
	"context"
	"testing"

	"github.com/elibrary/library-system/internal/core/domain"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	store := NewMemory()
	sessions := NewSessionStore(store)
	ctx := context.Background()

	sess, err := sessions.Current(ctx)
	if err != nil || sess != nil {
		t.Fatalf("expected absent session, got %+v (%v)", sess, err)
	}

	if err := sessions.Start(ctx, "alice", domain.RoleUser); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	sess, err = sessions.Current(ctx)
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if sess.Username != "alice" || sess.Role != domain.RoleUser {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := sessions.End(ctx); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	sess, _ = sessions.Current(ctx)
	if sess != nil {
		t.Fatalf("expected cleared session, got %+v", sess)
	}

	// End with no session is still fine.
	if err := sessions.End(ctx); err != nil {
		t.Fatalf("end of absent session errored: %v", err)
	}
}

func TestSessionStore_MissingRoleDefaultsToUser(t *testing.T) {
	store := NewMemory()
	_ = store.Set(context.Background(), KeyUser, "alice")
	sessions := NewSessionStore(store)

	sess, err := sessions.Current(context.Background())
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if sess == nil || sess.Role != domain.RoleUser {
		t.Fatalf("expected default user role, got %+v", sess)
	}
}

func TestThemeStore_DefaultAndToggle(t *testing.T) {
	store := NewMemory()
	themes := NewThemeStore(store)
	ctx := context.Background()

	theme, err := themes.Theme(ctx)
	if err != nil || theme != domain.ThemeLight {
		t.Fatalf("expected default light, got %q (%v)", theme, err)
	}

	next, err := themes.Toggle(ctx)
	if err != nil || next != domain.ThemeDark {
		t.Fatalf("expected toggle to dark, got %q (%v)", next, err)
	}
	next, err = themes.Toggle(ctx)
	if err != nil || next != domain.ThemeLight {
		t.Fatalf("expected toggle back to light, got %q (%v)", next, err)
	}

	if err := themes.SetTheme(ctx, "sepia"); err != domain.ErrInvalidTheme {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}

	// Unknown stored values read as light.
	_ = store.Set(ctx, KeyTheme, "garbage")
	theme, _ = themes.Theme(ctx)
	if theme != domain.ThemeLight {
		t.Fatalf("expected light for unknown stored value, got %q", theme)
	}
}
