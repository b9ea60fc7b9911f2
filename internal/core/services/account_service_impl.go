package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/validation"
	"github.com/shopspring/decimal"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	validator   *validation.Validator
}

// ServiceOption is a functional option for configuring the account service
type ServiceOption func(*accountServiceImpl)

// WithValidator replaces the default validator
func WithValidator(v *validation.Validator) ServiceOption {
	return func(s *accountServiceImpl) {
		s.validator = v
	}
}

// NewAccountServiceImpl creates a new account service with the provided options
func NewAccountServiceImpl(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountServiceImpl{
		accountRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}
	if svc.validator == nil {
		svc.validator = validation.New()
	}

	return svc
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, []dto.Advisory, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := s.validator.ValidateStruct(req); err != nil {
		s.LogWarn(ctx, err, "Rejected account creation request")
		return nil, nil, err
	}

	advisories := s.validator.CheckContact(req.Email, req.Phone)

	account, err := s.accountRepo.CreateAccount(ctx, req.Name, req.InitialDeposit, req.Email, req.Phone)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account",
			slog.String("holder_name", req.Name))
		return nil, nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.Int64("account_number", account.Number()),
		slog.String("initial_deposit", account.Balance().String()),
		slog.Int("advisories", len(advisories)))
	return account, advisories, nil
}

func (s *accountServiceImpl) GetAccount(ctx context.Context, number int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, number)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by number",
				slog.Int64("account_number", number))
		} else {
			s.LogDebug(ctx, "Account not found",
				slog.Int64("account_number", number))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Account retrieved successfully",
		slog.Int64("account_number", account.Number()))
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountServiceImpl) Deposit(ctx context.Context, number int64, amount decimal.Decimal) (*domain.Account, error) {
	account, err := s.GetAccount(ctx, number)
	if err != nil {
		return nil, err
	}

	if !validation.AmountInRange(amount) {
		err := fmt.Errorf("%w: deposit amount out of range", apperrors.ErrValidation)
		s.LogWarn(ctx, err, "Rejected deposit",
			slog.Int64("account_number", number))
		return nil, err
	}

	if !amount.IsPositive() {
		err := fmt.Errorf("deposit %s: %w", amount.String(), apperrors.ErrNonPositiveAmount)
		s.LogWarn(ctx, err, "Rejected deposit",
			slog.Int64("account_number", number))
		return nil, err
	}

	if !account.Deposit(amount) {
		err := fmt.Errorf("deposit %s into %d: %w", amount.String(), number, apperrors.ErrOperationFailed)
		s.LogError(ctx, err, "Account refused deposit",
			slog.Int64("account_number", number))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit applied",
		slog.Int64("account_number", number),
		slog.String("amount", amount.String()),
		slog.String("balance", account.Balance().String()))
	return account, nil
}

func (s *accountServiceImpl) Withdraw(ctx context.Context, number int64, amount decimal.Decimal) (*domain.Account, error) {
	account, err := s.GetAccount(ctx, number)
	if err != nil {
		return nil, err
	}

	if !validation.AmountInRange(amount) {
		err := fmt.Errorf("%w: withdraw amount out of range", apperrors.ErrValidation)
		s.LogWarn(ctx, err, "Rejected withdrawal",
			slog.Int64("account_number", number))
		return nil, err
	}

	if !amount.IsPositive() {
		err := fmt.Errorf("withdraw %s: %w", amount.String(), apperrors.ErrNonPositiveAmount)
		s.LogWarn(ctx, err, "Rejected withdrawal",
			slog.Int64("account_number", number))
		return nil, err
	}

	// Checked here so the caller can report the balance without touching the account.
	if amount.GreaterThan(account.Balance()) {
		err := fmt.Errorf("withdraw %s from %d: %w", amount.String(), number,
			&apperrors.InsufficientFundsError{Balance: account.Balance()})
		s.LogWarn(ctx, err, "Rejected withdrawal",
			slog.Int64("account_number", number))
		return nil, err
	}

	if !account.Withdraw(amount) {
		err := fmt.Errorf("withdraw %s from %d: %w", amount.String(), number, apperrors.ErrOperationFailed)
		s.LogError(ctx, err, "Account refused withdrawal",
			slog.Int64("account_number", number))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal applied",
		slog.Int64("account_number", number),
		slog.String("amount", amount.String()),
		slog.String("balance", account.Balance().String()))
	return account, nil
}

func (s *accountServiceImpl) UpdateContact(ctx context.Context, number int64, req dto.UpdateContactRequest) (*domain.Account, error) {
	account, err := s.GetAccount(ctx, number)
	if err != nil {
		return nil, err
	}

	email, hasEmail := trimmed(req.Email)
	phone, hasPhone := trimmed(req.Phone)
	if !hasEmail && !hasPhone {
		s.LogDebug(ctx, "No fields provided for contact update",
			slog.Int64("account_number", number))
		return nil, apperrors.ErrNoChanges
	}

	var emailArg, phoneArg *string
	if hasEmail {
		emailArg = &email
	}
	if hasPhone {
		phoneArg = &phone
	}
	account.UpdateContactDetails(emailArg, phoneArg)

	s.LogInfo(ctx, "Contact details updated",
		slog.Int64("account_number", number),
		slog.Bool("email_changed", hasEmail),
		slog.Bool("phone_changed", hasPhone))
	return account, nil
}

func (s *accountServiceImpl) RenameAccount(ctx context.Context, number int64, name string) (*domain.Account, error) {
	account, err := s.GetAccount(ctx, number)
	if err != nil {
		return nil, err
	}

	if _, ok := trimmed(&name); !ok {
		err := fmt.Errorf("%w: name is required", apperrors.ErrValidation)
		s.LogWarn(ctx, err, "Rejected rename",
			slog.Int64("account_number", number))
		return nil, err
	}

	account.Rename(name)
	s.LogInfo(ctx, "Account renamed",
		slog.Int64("account_number", number))
	return account, nil
}

func trimmed(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}
