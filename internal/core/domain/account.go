package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account represents a single ledger holder within the core domain.
// The account number is its identity and never changes after construction;
// the balance is never negative.
type Account struct {
	number     int64
	holderName string
	balance    decimal.Decimal
	email      string
	phone      string
}

// NewAccount builds an account. Name and contact fields are trimmed, and a
// negative initial deposit is clamped to zero rather than rejected; callers
// that want strict behaviour must validate before construction.
func NewAccount(number int64, holderName string, initialDeposit decimal.Decimal, email, phone string) *Account {
	balance := initialDeposit
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	return &Account{
		number:     number,
		holderName: strings.TrimSpace(holderName),
		balance:    balance,
		email:      strings.TrimSpace(email),
		phone:      strings.TrimSpace(phone),
	}
}

// Deposit adds amount to the balance. Only strictly positive amounts are accepted.
func (a *Account) Deposit(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	a.balance = a.balance.Add(amount)
	return true
}

// Withdraw subtracts amount from the balance when 0 < amount <= balance.
func (a *Account) Withdraw(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	if amount.GreaterThan(a.balance) {
		return false
	}
	a.balance = a.balance.Sub(amount)
	return true
}

// UpdateContactDetails applies a partial update: a nil or blank argument
// leaves the corresponding field untouched.
func (a *Account) UpdateContactDetails(email, phone *string) {
	if v, ok := nonBlank(email); ok {
		a.email = v
	}
	if v, ok := nonBlank(phone); ok {
		a.phone = v
	}
}

// Rename replaces the holder name unless name is blank.
func (a *Account) Rename(name string) {
	if v, ok := nonBlank(&name); ok {
		a.holderName = v
	}
}

func (a *Account) Number() int64            { return a.number }
func (a *Account) HolderName() string       { return a.holderName }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) Email() string            { return a.email }
func (a *Account) Phone() string            { return a.phone }

func nonBlank(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}
