package utils_test

import (
	"testing"

	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"60", "60.00"},
		{"0", "0.00"},
		{"12.345", "12.35"},
		{"100.1", "100.10"},
		{"1e3", "1000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatRaw(t *testing.T) {
	assert.Equal(t, "100", utils.FormatRaw(decimal.NewFromInt(100)))
	assert.Equal(t, "60.5", utils.FormatRaw(decimal.RequireFromString("60.50")))
}
