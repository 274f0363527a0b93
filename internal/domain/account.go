package domain

import (
	"encoding/json"

	"bank_lookup/pkg/validator"

	"github.com/shopspring/decimal"
)

// MaxWithdrawal caps a single withdrawal unless the account was built with
// WithMaxWithdrawal.
const MaxWithdrawal int64 = 100

// Account holds a mutable balance. It is not safe for concurrent use; callers
// serialize access to a given account.
type Account struct {
	balance       decimal.Decimal
	maxWithdrawal *decimal.Decimal
}

type AccountOption func(*Account)

func WithMaxWithdrawal(limit decimal.Decimal) AccountOption {
	return func(a *Account) {
		a.maxWithdrawal = &limit
	}
}

func NewAccount(initial decimal.Decimal, opts ...AccountOption) *Account {
	a := &Account{balance: initial}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Deposit adds amount to the balance. Negative amounts fail with
// ErrInvalidAmount and leave the balance untouched.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := validator.ValidateAmount(amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw subtracts min(limit, amount) from the balance and returns the
// amount actually taken. It never fails: requests above the limit are clamped,
// negative requests are applied as given and the balance may go negative.
func (a *Account) Withdraw(amount decimal.Decimal) decimal.Decimal {
	applied := decimal.Min(a.WithdrawalLimit(), amount)
	a.balance = a.balance.Sub(applied)
	return applied
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) WithdrawalLimit() decimal.Decimal {
	if a.maxWithdrawal == nil {
		return decimal.NewFromInt(MaxWithdrawal)
	}
	return *a.maxWithdrawal
}

// Equal reports whether both accounts hold numerically equal balances.
// Two nil accounts are equal.
func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return a == nil && other == nil
	}
	return a.balance.Equal(other.balance)
}

// HashKey is consistent with Equal: 500 and 500.00 share a key.
func (a *Account) HashKey() string {
	return a.balance.String()
}

func (a *Account) String() string {
	return "Account{balance=" + a.balance.String() + "}"
}

type accountJSON struct {
	Balance decimal.Decimal `json:"balance"`
}

func (a *Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(accountJSON{Balance: a.balance})
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var v accountJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	a.balance = v.Balance
	return nil
}
