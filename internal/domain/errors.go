package domain

import "bank_lookup/pkg/validator"

// ErrInvalidAmount is returned by Deposit for negative amounts.
var ErrInvalidAmount = validator.ErrInvalidAmount
