package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/pocket_ledger/internal/adapters/memory"
	"github.com/SscSPs/pocket_ledger/internal/core/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSessionSummary(t *testing.T) {
	ctx := middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	seq := memory.NewSequence(2001)
	svc := services.NewAccountServiceImpl(memory.NewAccountRegistry(seq))

	for _, deposit := range []string{"100", "20.505"} {
		_, _, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{
			Name:           "Alice",
			InitialDeposit: decimal.RequireFromString(deposit),
		})
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	logSessionSummary(ctx, middleware.NewLogger(&buf, "json", slog.LevelInfo), svc, seq)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Session finished", entry["msg"])
	assert.EqualValues(t, 2, entry["accounts"])
	assert.Equal(t, "120.51", entry["total_balance"])
	assert.EqualValues(t, 2003, entry["next_account_number"])
}
