package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	papertrading "github.com/Ninad572/PaperTrading"
	"github.com/google/subcommands"
)

type buyCmd struct {
	symbol   string
	quantity int64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares of a stock at the current market price" }
func (*buyCmd) Usage() string {
	return `pt buy -s <symbol> -q <quantity>

  Fetches the latest price for the symbol and records a new lot in the ledger.
  The buy fails without touching the ledger when no price is available.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol to buy (e.g. INFY.NS).")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares to buy.")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := newEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	lot, err := engine.Buy(ctx, c.symbol, c.quantity)
	var persistence *papertrading.PersistenceError
	switch {
	case errors.As(err, &persistence):
		// The buy is recorded in memory but the ledger file is stale.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return subcommands.ExitFailure
	case errors.Is(err, papertrading.ErrInvalidInput):
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %d shares of %s at %s each.\n", lot.Quantity, lot.Symbol, lot.BuyPrice)
	return subcommands.ExitSuccess
}
