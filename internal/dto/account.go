package dto

import (
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
// Email and phone are free-form; their format is only checked advisorily.
// InitialDeposit is checked by a struct-level rule (non-negative, in range).
type CreateAccountRequest struct {
	Name           string          `validate:"required"`
	InitialDeposit decimal.Decimal
	Email          string
	Phone          string
}

// UpdateContactRequest defines the contact fields allowed for updating an account.
// Use pointers to distinguish between blank values and fields not provided;
// both mean "keep the existing value".
type UpdateContactRequest struct {
	Email *string
	Phone *string
}

// Advisory is a non-blocking remark about a submitted field.
type Advisory struct {
	Field   string
	Message string
}

// AccountResponse defines the data shown for an account.
type AccountResponse struct {
	AccountNumber int64
	HolderName    string
	Balance       decimal.Decimal
	Email         string
	Phone         string
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: acc.Number(),
		HolderName:    acc.HolderName(),
		Balance:       acc.Balance(),
		Email:         acc.Email(),
		Phone:         acc.Phone(),
	}
}
