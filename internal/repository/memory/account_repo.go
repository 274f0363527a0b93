package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"bank_lookup/internal/domain"
	"bank_lookup/internal/repository"
	"bank_lookup/pkg/validator"

	"github.com/google/uuid"
)

// AccountRepository keeps accounts in process memory. Stored pointers are
// returned as-is, so callers mutating an account see it reflected here.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[uuid.UUID]*domain.Account),
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (uuid.UUID, error) {
	id := uuid.New()
	if err := r.Save(ctx, id, account); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *AccountRepository) Save(ctx context.Context, id uuid.UUID, account *domain.Account) error {
	if err := validator.ValidateID(id); err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("account %s: nil account", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[id]; exists {
		return fmt.Errorf("%w: account %s", repository.ErrDuplicate, id)
	}
	r.accounts[id] = account

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if err := validator.ValidateID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[id]
	if !exists {
		return nil, fmt.Errorf("%w: account %s", repository.ErrNotFound, id)
	}
	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, id uuid.UUID, account *domain.Account) error {
	if account == nil {
		return fmt.Errorf("account %s: nil account", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[id]; !exists {
		return fmt.Errorf("%w: account %s", repository.ErrNotFound, id)
	}
	r.accounts[id] = account

	return nil
}

func (r *AccountRepository) GetAll(ctx context.Context) (map[uuid.UUID]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.accounts), nil
}
