package console

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/SscSPs/pocket_ledger/internal/validation"
	"github.com/shopspring/decimal"
)

func (s *Session) createAccount(ctx context.Context) error {
	s.println("=== Create New Account ===")
	name, err := s.readLine("Enter account holder name: ")
	if err != nil {
		return err
	}
	if name == "" {
		s.println("Name cannot be empty. Account creation cancelled.")
		return nil
	}

	deposit, err := s.readAmount("Enter initial deposit amount: ", func(d decimal.Decimal) string {
		if d.IsNegative() {
			return "Initial deposit cannot be negative."
		}
		return ""
	})
	if err != nil {
		return err
	}

	email, err := s.readLine("Enter email address: ")
	if err != nil {
		return err
	}
	if !validation.IsValidEmail(email) {
		s.println("Warning: " + validation.EmailAdvisory)
	}

	phone, err := s.readLine("Enter phone number: ")
	if err != nil {
		return err
	}
	if !validation.IsValidPhone(phone) {
		s.println("Warning: " + validation.PhoneAdvisory)
	}

	acc, advisories, err := s.accounts.CreateAccount(ctx, dto.CreateAccountRequest{
		Name:           name,
		InitialDeposit: deposit,
		Email:          email,
		Phone:          phone,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			s.printf("Account creation cancelled: %v\n", err)
			return nil
		}
		return err
	}
	// Warnings were already shown next to their prompts; the service reports
	// the same advisories for non-interactive callers.
	for _, adv := range advisories {
		middleware.GetLoggerFromCtx(ctx).Debug("Contact advisory", slog.String("field", adv.Field))
	}

	s.printf("Account created successfully with Account Number: %d\n", acc.Number())
	return nil
}

func (s *Session) deposit(ctx context.Context) error {
	s.println("=== Deposit Money ===")
	number, ok, err := s.resolveAccount(ctx)
	if err != nil || !ok {
		return err
	}

	amount, err := s.readAmount("Enter amount to deposit: ", nil)
	if err != nil {
		return err
	}

	acc, err := s.accounts.Deposit(ctx, number, amount)
	switch {
	case err == nil:
		s.printf("Deposit successful. New balance: %s\n", utils.FormatAmount(acc.Balance()))
	case errors.Is(err, apperrors.ErrNotFound):
		s.println("Account not found.")
	case errors.Is(err, apperrors.ErrNonPositiveAmount):
		s.println("Deposit amount must be positive.")
	case errors.Is(err, apperrors.ErrOperationFailed):
		s.println("Deposit failed.")
	default:
		return err
	}
	return nil
}

func (s *Session) withdraw(ctx context.Context) error {
	s.println("=== Withdraw Money ===")
	number, ok, err := s.resolveAccount(ctx)
	if err != nil || !ok {
		return err
	}

	amount, err := s.readAmount("Enter amount to withdraw: ", nil)
	if err != nil {
		return err
	}

	acc, err := s.accounts.Withdraw(ctx, number, amount)
	var insufficient *apperrors.InsufficientFundsError
	switch {
	case err == nil:
		s.printf("Withdrawal successful. New balance: %s\n", utils.FormatAmount(acc.Balance()))
	case errors.Is(err, apperrors.ErrNotFound):
		s.println("Account not found.")
	case errors.Is(err, apperrors.ErrNonPositiveAmount):
		s.println("Withdrawal amount must be positive.")
	case errors.As(err, &insufficient):
		s.printf("Insufficient balance. Current balance: %s\n", utils.FormatRaw(insufficient.Balance))
	case errors.Is(err, apperrors.ErrOperationFailed):
		s.println("Withdrawal failed.")
	default:
		return err
	}
	return nil
}

func (s *Session) viewAccount(ctx context.Context) error {
	s.println("=== View Account Details ===")
	number, ok, err := s.resolveAccount(ctx)
	if err != nil || !ok {
		return err
	}

	acc, err := s.accounts.GetAccount(ctx, number)
	if err != nil {
		return err
	}
	s.writeDetails(dto.ToAccountResponse(acc))
	return nil
}

func (s *Session) updateContact(ctx context.Context) error {
	s.println("=== Update Contact Details ===")
	number, ok, err := s.resolveAccount(ctx)
	if err != nil || !ok {
		return err
	}

	email, err := s.readLine("Enter new email (leave blank to keep existing): ")
	if err != nil {
		return err
	}
	phone, err := s.readLine("Enter new phone number (leave blank to keep existing): ")
	if err != nil {
		return err
	}

	_, err = s.accounts.UpdateContact(ctx, number, dto.UpdateContactRequest{Email: &email, Phone: &phone})
	switch {
	case err == nil:
		s.println("Contact details updated.")
	case errors.Is(err, apperrors.ErrNoChanges):
		s.println("No changes provided.")
	case errors.Is(err, apperrors.ErrNotFound):
		s.println("Account not found.")
	default:
		return err
	}
	return nil
}

// resolveAccount prompts for an account number and reports whether it exists.
// A missing account has already been reported to the user when ok is false.
func (s *Session) resolveAccount(ctx context.Context) (number int64, ok bool, err error) {
	number, err = s.readInt("Enter account number: ")
	if err != nil {
		return 0, false, err
	}
	if _, err := s.accounts.GetAccount(ctx, number); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.println("Account not found.")
			return number, false, nil
		}
		return 0, false, err
	}
	return number, true, nil
}

func (s *Session) writeDetails(acc dto.AccountResponse) {
	s.println("----- Account Details -----")
	s.printf("Account Number    : %d\n", acc.AccountNumber)
	s.printf("Account Holder    : %s\n", acc.HolderName)
	s.printf("Balance           : %s\n", utils.FormatAmount(acc.Balance))
	s.printf("Email             : %s\n", acc.Email)
	s.printf("Phone Number      : %s\n", acc.Phone)
	s.println("---------------------------")
}
