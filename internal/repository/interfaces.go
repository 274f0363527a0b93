package repository

import (
	"context"
	"errors"

	"bank_lookup/internal/domain"
	"bank_lookup/pkg/validator"

	"github.com/google/uuid"
)

// Repository fetches an opaque record by id.
type Repository[T any] interface {
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
}

// Converter renders a record as a JSON string.
type Converter[T any] interface {
	ToJSON(record T) (string, error)
}

type AccountRepository interface {
	Repository[*domain.Account]
	Create(ctx context.Context, account *domain.Account) (uuid.UUID, error)
	Save(ctx context.Context, id uuid.UUID, account *domain.Account) error
	Update(ctx context.Context, id uuid.UUID, account *domain.Account) error
	GetAll(ctx context.Context) (map[uuid.UUID]*domain.Account, error)
}

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicate     = errors.New("duplicate entry")
	ErrSerialization = errors.New("serialization failed")
	ErrInvalidID     = validator.ErrInvalidID
)
