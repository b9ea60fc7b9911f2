package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested account could not be found.
var ErrNotFound = errors.New("account not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNonPositiveAmount indicates a deposit or withdrawal amount that is zero or negative.
var ErrNonPositiveAmount = errors.New("amount must be positive")

// ErrInsufficientFunds indicates a withdrawal larger than the current balance.
var ErrInsufficientFunds = errors.New("insufficient balance")

// ErrNoChanges indicates an update request that carried no field to change.
var ErrNoChanges = errors.New("no changes provided")

// ErrOperationFailed indicates the account itself refused a mutation.
var ErrOperationFailed = errors.New("operation failed")

// ErrTooManyAttempts indicates a prompt gave up after the configured number of bad inputs.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// InsufficientFundsError carries the balance at the time a withdrawal was refused.
type InsufficientFundsError struct {
	Balance decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: current balance %s", ErrInsufficientFunds, e.Balance.String())
}

// Is lets errors.Is match ErrInsufficientFunds.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
