package repositories

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByNumber retrieves a specific account by its account number.
	// It returns apperrors.ErrNotFound when no account carries that number.
	FindAccountByNumber(ctx context.Context, number int64) (*domain.Account, error)

	// ListAccounts returns every held account in account-number order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// CreateAccount assigns the next account number, stores and returns the new account.
	CreateAccount(ctx context.Context, holderName string, initialDeposit decimal.Decimal, email, phone string) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
