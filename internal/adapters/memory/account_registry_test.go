package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pocket_ledger/internal/adapters/memory"
	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRegistry_NumbersStartAt1001AndIncrease(t *testing.T) {
	ctx := context.Background()
	reg := memory.NewAccountRegistry(nil)

	first, err := reg.CreateAccount(ctx, "Alice", decimal.NewFromInt(100), "", "")
	require.NoError(t, err)
	second, err := reg.CreateAccount(ctx, "Bob", decimal.Zero, "", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1001), first.Number())
	assert.Equal(t, int64(1002), second.Number())
	assert.Equal(t, 2, reg.Count())
}

func TestAccountRegistry_NumbersUnaffectedByInterveningOperations(t *testing.T) {
	ctx := context.Background()
	reg := memory.NewAccountRegistry(memory.NewSequence(memory.DefaultFirstAccountNumber))

	a, err := reg.CreateAccount(ctx, "Alice", decimal.NewFromInt(10), "", "")
	require.NoError(t, err)
	a.Deposit(decimal.NewFromInt(5))
	a.Withdraw(decimal.NewFromInt(1))
	_, err = reg.FindAccountByNumber(ctx, 4242)
	require.Error(t, err)

	b, err := reg.CreateAccount(ctx, "Bob", decimal.Zero, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), a.Number())
	assert.Equal(t, int64(1002), b.Number())
}

func TestAccountRegistry_CustomStart(t *testing.T) {
	ctx := context.Background()
	reg := memory.NewAccountRegistry(memory.NewSequence(5000))

	var last int64
	for i := 0; i < 20; i++ {
		acc, err := reg.CreateAccount(ctx, "Holder", decimal.Zero, "", "")
		require.NoError(t, err)
		if i == 0 {
			assert.Equal(t, int64(5000), acc.Number())
		} else {
			assert.Greater(t, acc.Number(), last)
		}
		last = acc.Number()
	}
}

func TestAccountRegistry_FindAccountByNumber(t *testing.T) {
	ctx := context.Background()
	reg := memory.NewAccountRegistry(nil)
	created, err := reg.CreateAccount(ctx, "Alice", decimal.NewFromInt(100), "a@b.co", "0123456789")
	require.NoError(t, err)

	found, err := reg.FindAccountByNumber(ctx, created.Number())
	require.NoError(t, err)
	assert.Same(t, created, found, "lookup should resolve the owned account, not a copy")

	_, err = reg.FindAccountByNumber(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountRegistry_ListAccountsInNumberOrder(t *testing.T) {
	ctx := context.Background()
	reg := memory.NewAccountRegistry(nil)
	for _, name := range []string{"A", "B", "C"} {
		_, err := reg.CreateAccount(ctx, name, decimal.Zero, "", "")
		require.NoError(t, err)
	}

	accounts, err := reg.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	for i, acc := range accounts {
		assert.Equal(t, int64(1001+i), acc.Number())
	}
}

func TestAccountRegistry_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reg := memory.NewAccountRegistry(nil)

	_, err := reg.CreateAccount(ctx, "Alice", decimal.Zero, "", "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, reg.Count())
}

func TestSequence(t *testing.T) {
	seq := memory.NewSequence(1001)
	assert.Equal(t, int64(1001), seq.Peek())
	assert.Equal(t, int64(1001), seq.Next())
	assert.Equal(t, int64(1002), seq.Next())
	assert.Equal(t, int64(1003), seq.Peek())
}
