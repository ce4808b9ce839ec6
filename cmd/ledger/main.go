package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/sheikh-saqib/single-account-ledger/internal/config"
	"github.com/sheikh-saqib/single-account-ledger/internal/events"
	"github.com/sheikh-saqib/single-account-ledger/internal/events/kafka"
	"github.com/sheikh-saqib/single-account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/single-account-ledger/internal/ledger"
	"github.com/sheikh-saqib/single-account-ledger/internal/logger"
	"github.com/sheikh-saqib/single-account-ledger/internal/money"
)

var errUsage = errors.New("usage: ledger [deposit:<amount>|withdraw:<amount>]...")

type operation struct {
	kind   string
	amount money.Amount
}

func parseOps(args []string) ([]operation, error) {
	ops := make([]operation, 0, len(args))
	for _, arg := range args {
		kind, raw, ok := strings.Cut(arg, ":")
		if !ok || (kind != "deposit" && kind != "withdraw") {
			return nil, fmt.Errorf("%w: bad operation %q", errUsage, arg)
		}
		amount, err := money.ParseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		ops = append(ops, operation{kind: kind, amount: amount})
	}
	return ops, nil
}

// run opens the configured account, applies ops in order and writes the
// statement to out. pub may be nil.
func run(ctx context.Context, cfg *config.Config, ops []operation, out io.Writer, log zerolog.Logger, pub interfaces.EventPublisher) error {
	policy, err := ledger.ParseOverdraftPolicy(cfg.Ledger.Overdraft)
	if err != nil {
		return err
	}

	account, err := ledger.CreateNewAccount(
		cfg.Ledger.AccountID,
		money.NewBalance(cfg.Ledger.OpeningBalance),
		ledger.WithOverdraftPolicy(policy),
		ledger.WithDateLayout(cfg.Ledger.DateLayout),
		ledger.WithLogger(log),
	)
	if err != nil {
		return err
	}

	for _, op := range ops {
		if op.kind == "deposit" {
			err = account.Deposit(op.amount)
		} else {
			err = account.Withdraw(op.amount)
		}
		if err != nil {
			return err
		}
	}

	if err := account.WriteStatement(out); err != nil {
		return fmt.Errorf("write statement: %w", err)
	}

	if pub != nil {
		n, err := events.PublishAll(ctx, pub, cfg.Kafka.Topic, account)
		if err != nil {
			return err
		}
		log.Info().Int("events", n).Str("topic", cfg.Kafka.Topic).Msg("transactions published")
	}

	log.Info().
		Str("account_id", account.ID()).
		Stringer("overdraft", account.OverdraftPolicy()).
		Int("transactions", account.Len()).
		Int64("balance", account.Balance().Int64()).
		Msg("ledger closed")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	ops, err := parseOps(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pub interfaces.EventPublisher
	var producer *kafka.Publisher
	if cfg.Kafka.Enabled() {
		producer = kafka.NewPublisher(cfg.Kafka.Brokers)
		pub = producer
	}

	code := 0
	if err := run(ctx, cfg, ops, os.Stdout, log, pub); err != nil {
		log.Error().Err(err).Msg("ledger run failed")
		code = 1
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error().Err(err).Msg("close kafka writer")
		}
	}
	stop()
	os.Exit(code)
}
