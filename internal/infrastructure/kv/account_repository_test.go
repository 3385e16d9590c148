package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/domain"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository(NewMemory(), zerolog.Nop())
	ctx := context.Background()

	if err := repo.Create(ctx, "alice", domain.Account{Password: "secret", Role: domain.RoleUser}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	account, err := repo.Find(ctx, "alice")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if account.Password != "secret" || account.Role != domain.RoleUser {
		t.Fatalf("unexpected account: %+v", account)
	}

	if _, err := repo.Find(ctx, "bob"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_DuplicateUsername(t *testing.T) {
	store := NewMemory()
	repo := NewAccountRepository(store, zerolog.Nop())
	ctx := context.Background()

	if err := repo.Create(ctx, "alice", domain.Account{Password: "one", Role: domain.RoleUser}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	before, _ := store.Get(ctx, KeyCustomUsers)
	if err := repo.Create(ctx, "alice", domain.Account{Password: "two", Role: domain.RoleUser}); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	after, _ := store.Get(ctx, KeyCustomUsers)
	if before != after {
		t.Fatalf("store changed on rejected create")
	}
}

func TestAccountRepository_ReservedAdminName(t *testing.T) {
	repo := NewAccountRepository(NewMemory(), zerolog.Nop())

	if err := repo.Create(context.Background(), "admin", domain.Account{Password: "x", Role: domain.RoleUser}); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername for reserved name, got %v", err)
	}
}

func TestAccountRepository_MalformedDataTreatedAsEmpty(t *testing.T) {
	store := NewMemory()
	_ = store.Set(context.Background(), KeyCustomUsers, "not json at all")
	repo := NewAccountRepository(store, zerolog.Nop())

	if err := repo.Create(context.Background(), "alice", domain.Account{Password: "p", Role: domain.RoleUser}); err != nil {
		t.Fatalf("create over malformed data failed: %v", err)
	}
	if _, err := repo.Find(context.Background(), "alice"); err != nil {
		t.Fatalf("find after recovery failed: %v", err)
	}
}
