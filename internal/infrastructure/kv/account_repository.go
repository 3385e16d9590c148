package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/domain"
)

// AccountRepository stores registered accounts as one JSON object under the
// custom_users key, mapping lowercase username to account record. The
// reserved admin name is rejected here so no backing state can ever shadow
// the fixed administrator credential.
type AccountRepository struct {
	store Store
	log   zerolog.Logger
}

func NewAccountRepository(store Store, log zerolog.Logger) *AccountRepository {
	return &AccountRepository{store: store, log: log}
}

func (r *AccountRepository) Find(ctx context.Context, username string) (*domain.Account, error) {
	accounts, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	account, ok := accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &account, nil
}

func (r *AccountRepository) Create(ctx context.Context, username string, account domain.Account) error {
	if username == domain.AdminUsername {
		return domain.ErrDuplicateUsername
	}

	accounts, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, exists := accounts[username]; exists {
		return domain.ErrDuplicateUsername
	}

	accounts[username] = account

	buf, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := r.store.Set(ctx, KeyCustomUsers, string(buf)); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	return nil
}

// load returns the accounts mapping, treating an absent or unparseable
// entry as empty so registration always has a base to build on.
func (r *AccountRepository) load(ctx context.Context) (map[string]domain.Account, error) {
	raw, err := r.store.Get(ctx, KeyCustomUsers)
	if errors.Is(err, ErrKeyNotFound) {
		return map[string]domain.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	accounts := map[string]domain.Account{}
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		r.log.Warn().Err(err).Msg("accounts entry unparseable, treating as empty")
		return map[string]domain.Account{}, nil
	}
	return accounts, nil
}
