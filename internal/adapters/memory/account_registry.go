package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// AccountRegistry owns every account of the session, assigns account numbers
// and resolves lookups. It is not safe for concurrent use.
type AccountRegistry struct {
	seq      *Sequence
	accounts []*domain.Account
	byNumber map[int64]*domain.Account
}

// NewAccountRegistry creates an empty registry drawing numbers from seq.
// A nil seq starts numbering at DefaultFirstAccountNumber.
func NewAccountRegistry(seq *Sequence) *AccountRegistry {
	if seq == nil {
		seq = NewSequence(DefaultFirstAccountNumber)
	}
	return &AccountRegistry{
		seq:      seq,
		byNumber: make(map[int64]*domain.Account),
	}
}

// Ensure AccountRegistry implements the AccountRepositoryFacade interface
var _ portsrepo.AccountRepositoryFacade = (*AccountRegistry)(nil)

// CreateAccount allocates the next account number, constructs the account and stores it.
func (r *AccountRegistry) CreateAccount(ctx context.Context, holderName string, initialDeposit decimal.Decimal, email, phone string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	number := r.seq.Next()
	acc := domain.NewAccount(number, holderName, initialDeposit, email, phone)
	r.accounts = append(r.accounts, acc)
	r.byNumber[number] = acc
	return acc, nil
}

// FindAccountByNumber resolves an account by number or returns apperrors.ErrNotFound.
func (r *AccountRegistry) FindAccountByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	acc, ok := r.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", number, apperrors.ErrNotFound)
	}
	return acc, nil
}

// ListAccounts returns a snapshot of all accounts in creation order.
func (r *AccountRegistry) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Account, len(r.accounts))
	for i, acc := range r.accounts {
		out[i] = *acc
	}
	return out, nil
}

// Count reports how many accounts the registry holds.
func (r *AccountRegistry) Count() int {
	return len(r.accounts)
}
