package validator

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidID     = errors.New("invalid id")
)

// ValidateAmount rejects negative amounts. Zero is a valid amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: negative values not allowed: %s", ErrInvalidAmount, amount)
	}
	return nil
}

func ValidateID(id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: nil uuid", ErrInvalidID)
	}
	return nil
}
