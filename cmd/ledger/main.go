package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/pocket_ledger/internal/adapters/memory"
	"github.com/SscSPs/pocket_ledger/internal/console"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/core/services"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/SscSPs/pocket_ledger/pkg/config"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr so the console transcript on stdout stays readable.
	logger := middleware.NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	seq := memory.NewSequence(cfg.FirstAccountNumber)
	registry := memory.NewAccountRegistry(seq)
	container := services.NewServiceContainer(portsrepo.RepositoryProvider{
		AccountRepo: registry,
	})

	session := console.NewSession(os.Stdin, os.Stdout, container.Account,
		console.WithLogger(logger),
		console.WithMaxAttempts(cfg.MaxInputAttempts),
		console.WithBankName(cfg.BankName),
	)

	ctx := middleware.WithLogger(context.Background(), logger)
	if err := session.Run(ctx); err != nil {
		logger.Error("Console session failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logSessionSummary(ctx, logger, container.Account, seq)
}

// logSessionSummary records how many accounts exist, what they hold in total
// and which number would be issued next.
func logSessionSummary(ctx context.Context, logger *slog.Logger, accounts portssvc.AccountReaderSvc, seq *memory.Sequence) {
	list, err := accounts.ListAccounts(ctx)
	if err != nil {
		logger.Warn("Failed to summarize session", slog.String("error", err.Error()))
		return
	}

	total := decimal.Zero
	for _, acc := range list {
		total = total.Add(acc.Balance())
	}
	logger.Info("Session finished",
		slog.Int("accounts", len(list)),
		slog.String("total_balance", utils.FormatAmount(total)),
		slog.Int64("next_account_number", seq.Peek()))
}
