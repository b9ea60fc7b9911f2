package validation_test

import (
	"testing"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"alice@example.com", true},
		{"a@b.c", true},
		{"  a@b.c  ", true},
		{"a@bc", false},
		{"alice.example.com", false},
		{"a@.", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsValidEmail(tt.in))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0123456789", true},
		{"0123456789012", true},
		{"012345678", false},
		{"01234567890123", false},
		{"+123456789012", false},
		{"012-345-6789", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsValidPhone(tt.in))
		})
	}
}

func TestValidateStruct_CreateAccountRequest(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		req     dto.CreateAccountRequest
		wantErr string
	}{
		{name: "valid", req: dto.CreateAccountRequest{Name: "Alice", InitialDeposit: decimal.NewFromInt(100)}},
		{name: "zero deposit", req: dto.CreateAccountRequest{Name: "Alice", InitialDeposit: decimal.Zero}},
		{name: "missing name", req: dto.CreateAccountRequest{InitialDeposit: decimal.NewFromInt(1)}, wantErr: "name is required"},
		{name: "negative deposit", req: dto.CreateAccountRequest{Name: "Alice", InitialDeposit: decimal.RequireFromString("-0.01")}, wantErr: "cannot be negative"},
		{name: "negative below float precision", req: dto.CreateAccountRequest{Name: "Alice", InitialDeposit: decimal.RequireFromString("-1e-400")}, wantErr: "cannot be negative"},
		{name: "huge deposit", req: dto.CreateAccountRequest{Name: "Alice", InitialDeposit: decimal.RequireFromString("1e50000000")}, wantErr: "out of range"},
		{name: "missing name and negative", req: dto.CreateAccountRequest{InitialDeposit: decimal.NewFromInt(-1)}, wantErr: "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAmountInRange(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"10.005", true},
		{"1000000000000000", true},
		{"-1000000000000000", true},
		{"1000000000000000.01", false},
		{"1e50000000", false},
		{"1e-50000000", false},
		{"0.000000000000000001", true},
		{"0.0000000000000000001", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.AmountInRange(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestCheckContact(t *testing.T) {
	v := validation.New()

	assert.Empty(t, v.CheckContact("alice@example.com", "0123456789"))

	adv := v.CheckContact("nope", "12")
	if assert.Len(t, adv, 2) {
		assert.Equal(t, "email", adv[0].Field)
		assert.Equal(t, validation.EmailAdvisory, adv[0].Message)
		assert.Equal(t, "phone", adv[1].Field)
		assert.Equal(t, validation.PhoneAdvisory, adv[1].Message)
	}

	adv = v.CheckContact("alice@example.com", "")
	if assert.Len(t, adv, 1) {
		assert.Equal(t, "phone", adv[0].Field)
	}
}
