package services

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves a specific account by its account number.
	GetAccount(ctx context.Context, number int64) (*domain.Account, error)

	// ListAccounts retrieves every account of the session in number order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines account lifecycle and profile operations
type AccountWriterSvc interface {
	// CreateAccount validates the request and opens a new account. Advisories
	// about the contact fields are returned alongside a successful result.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, []dto.Advisory, error)

	// UpdateContact applies a partial update of email and phone.
	UpdateContact(ctx context.Context, number int64, req dto.UpdateContactRequest) (*domain.Account, error)

	// RenameAccount changes the holder name.
	RenameAccount(ctx context.Context, number int64, name string) (*domain.Account, error)
}

// AccountFundsSvc defines balance-changing operations
type AccountFundsSvc interface {
	// Deposit adds a strictly positive amount to the account balance.
	Deposit(ctx context.Context, number int64, amount decimal.Decimal) (*domain.Account, error)

	// Withdraw removes a strictly positive amount no larger than the balance.
	Withdraw(ctx context.Context, number int64, amount decimal.Decimal) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountFundsSvc
}
