package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"bank_lookup/internal/config"
	"bank_lookup/internal/converter"
	"bank_lookup/internal/domain"
	"bank_lookup/internal/repository"
	"bank_lookup/internal/repository/memory"
	"bank_lookup/internal/service"
	"bank_lookup/internal/spy"
	"bank_lookup/pkg/metrics"

	"github.com/shopspring/decimal"
)

const (
	appName = "bankdemo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}

	logger := setupLogger(cfg, os.Stderr)
	logger.Info("Starting application",
		slog.String("name", appName))

	if err := run(context.Background(), cfg, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

type operation struct {
	kind   string
	amount decimal.Decimal
}

// parseOperations reads "deposit <amount>" and "withdraw <amount>" pairs.
func parseOperations(args []string) ([]operation, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("expected <deposit|withdraw> <amount> pairs, got %d arguments", len(args))
	}

	ops := make([]operation, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		kind := strings.ToLower(args[i])
		if kind != "deposit" && kind != "withdraw" {
			return nil, fmt.Errorf("unknown operation %q", args[i])
		}
		amount, err := decimal.NewFromString(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", args[i+1], err)
		}
		ops = append(ops, operation{kind: kind, amount: amount})
	}
	return ops, nil
}

func run(ctx context.Context, cfg *config.Config, args []string, out io.Writer, logger *slog.Logger) error {
	ops, err := parseOperations(args)
	if err != nil {
		return err
	}

	metricsCollector := metrics.NewMetricsCollector(logger)
	accountRepo := memory.NewAccountRepository()

	account := domain.NewAccount(cfg.InitialBalance, domain.WithMaxWithdrawal(cfg.MaxWithdrawal))
	id, err := accountRepo.Create(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	logger.Info("Account opened",
		slog.String("account_id", id.String()),
		slog.String("balance", account.Balance().String()))

	for _, op := range ops {
		switch op.kind {
		case "deposit":
			if err := account.Deposit(op.amount); err != nil {
				return fmt.Errorf("deposit %s: %w", op.amount, err)
			}
			logger.Info("Deposit applied",
				slog.String("account_id", id.String()),
				slog.String("amount", op.amount.String()),
				slog.String("balance", account.Balance().String()))
		case "withdraw":
			applied := account.Withdraw(op.amount)
			logger.Info("Withdrawal applied",
				slog.String("account_id", id.String()),
				slog.String("requested", op.amount.String()),
				slog.String("applied", applied.String()),
				slog.String("balance", account.Balance().String()))
		}
	}
	metricsCollector.UpdateAccountBalance(id.String(), account.Balance().InexactFloat64())

	var convOpts []converter.Option
	if cfg.RenderIndent {
		convOpts = append(convOpts, converter.WithIndent("  "))
	}
	var (
		repo repository.Repository[*domain.Account] = accountRepo
		conv repository.Converter[*domain.Account]  = converter.NewJSON[*domain.Account](convOpts...)
		log  *spy.CallLog
	)
	if cfg.TraceCalls {
		log = &spy.CallLog{}
		repo = &spy.Repository[*domain.Account]{Next: repo, Log: log}
		conv = &spy.Converter[*domain.Account]{Next: conv, Log: log}
	}

	lookup := service.NewLookupService(repo, conv, metricsCollector, logger)
	rendered, err := lookup.GetAsRenderedString(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rendered)

	if log != nil {
		logger.Info("Collaborator calls", slog.Any("order", log.Methods()))
	}
	if err := metricsCollector.LogSnapshot(); err != nil {
		logger.Warn("Metrics snapshot failed", slog.String("error", err.Error()))
	}
	return nil
}
