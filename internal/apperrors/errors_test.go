package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInsufficientFundsError(t *testing.T) {
	err := fmt.Errorf("withdraw from 1001: %w", &apperrors.InsufficientFundsError{Balance: decimal.NewFromInt(100)})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "current balance 100")

	var target *apperrors.InsufficientFundsError
	if assert.True(t, errors.As(err, &target)) {
		assert.True(t, target.Balance.Equal(decimal.NewFromInt(100)))
	}
}
