package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bank_lookup/internal/domain"
	"bank_lookup/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestAccountRepository_CreateAndGetByID(t *testing.T) {
	repo := NewAccountRepository()
	account := domain.NewAccount(decimal.NewFromInt(100))

	id, err := repo.Create(context.Background(), account)
	if err != nil {
		t.Fatalf("unexpected error on Create: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected a generated id")
	}
	got, err := repo.GetByID(context.Background(), id)

	if err != nil {
		t.Fatalf("unexpected error on GetByID: %v", err)
	}
	if got != account {
		t.Errorf("expected stored account %v, got %v", account, got)
	}
}

func TestAccountRepository_SaveDuplicate(t *testing.T) {
	repo := NewAccountRepository()
	id := uuid.New()
	_ = repo.Save(context.Background(), id, domain.NewAccount(decimal.Zero))

	err := repo.Save(context.Background(), id, domain.NewAccount(decimal.Zero))

	if !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestAccountRepository_SaveNilAccount(t *testing.T) {
	repo := NewAccountRepository()

	if err := repo.Save(context.Background(), uuid.New(), nil); err == nil {
		t.Error("expected error for nil account, got nil")
	}
}

func TestAccountRepository_GetByIDNotFound(t *testing.T) {
	repo := NewAccountRepository()
	id := uuid.New()

	_, err := repo.GetByID(context.Background(), id)

	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountRepository_NilID(t *testing.T) {
	repo := NewAccountRepository()

	_, err := repo.GetByID(context.Background(), uuid.Nil)
	if !errors.Is(err, repository.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID on GetByID, got %v", err)
	}
	err = repo.Save(context.Background(), uuid.Nil, domain.NewAccount(decimal.Zero))
	if !errors.Is(err, repository.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID on Save, got %v", err)
	}
}

func TestAccountRepository_Update(t *testing.T) {
	repo := NewAccountRepository()
	id, _ := repo.Create(context.Background(), domain.NewAccount(decimal.NewFromInt(50)))
	replacement := domain.NewAccount(decimal.NewFromInt(75))

	err := repo.Update(context.Background(), id, replacement)
	got, _ := repo.GetByID(context.Background(), id)

	if err != nil {
		t.Fatalf("unexpected error on Update: %v", err)
	}
	if !got.Balance().Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected balance 75, got %s", got.Balance())
	}
}

func TestAccountRepository_UpdateMissing(t *testing.T) {
	repo := NewAccountRepository()

	err := repo.Update(context.Background(), uuid.New(), domain.NewAccount(decimal.Zero))

	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountRepository_GetAll(t *testing.T) {
	repo := NewAccountRepository()
	a1, _ := repo.Create(context.Background(), domain.NewAccount(decimal.NewFromInt(1)))
	a2, _ := repo.Create(context.Background(), domain.NewAccount(decimal.NewFromInt(2)))

	all, err := repo.GetAll(context.Background())

	if err != nil {
		t.Fatalf("unexpected error on GetAll: %v", err)
	}
	if len(all) != 2 || all[a1] == nil || all[a2] == nil {
		t.Errorf("expected accounts %s and %s, got %v", a1, a2, all)
	}
	delete(all, a1)
	if again, _ := repo.GetAll(context.Background()); len(again) != 2 {
		t.Errorf("expected GetAll to return a copy, repository now holds %d", len(again))
	}
}

func TestAccountRepository_ConcurrentCreate(t *testing.T) {
	repo := NewAccountRepository()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Create(context.Background(), domain.NewAccount(decimal.Zero)); err != nil {
				t.Errorf("unexpected error on Create: %v", err)
			}
		}()
	}
	wg.Wait()

	if all, _ := repo.GetAll(context.Background()); len(all) != 50 {
		t.Errorf("expected 50 accounts, got %d", len(all))
	}
}
