package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	papertrading "github.com/Ninad572/PaperTrading"
	"github.com/google/subcommands"
)

type sellCmd struct {
	symbol   string
	quantity int64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares of a held stock at the current market price" }
func (*sellCmd) Usage() string {
	return `pt sell -s <symbol> -q <quantity>

  Sells against the oldest lot whose remaining quantity covers the whole
  requested amount. A sell is never split across lots: if no single lot is
  large enough the sell fails, even when the total held quantity would cover it.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol to sell.")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares to sell.")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := newEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	profitLoss, err := engine.Sell(ctx, c.symbol, c.quantity)
	var persistence *papertrading.PersistenceError
	switch {
	case errors.As(err, &persistence):
		// The sell is recorded in memory but the ledger file is stale.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return subcommands.ExitFailure
	case errors.Is(err, papertrading.ErrInsufficientQuantity):
		fmt.Fprintln(os.Stderr, "Not enough quantity in the portfolio to sell.")
		if symbols := engine.Ledger().SellableSymbols(); len(symbols) > 0 {
			fmt.Fprintf(os.Stderr, "Stocks available to sell: %s\n", strings.Join(symbols, ", "))
		}
		return subcommands.ExitFailure
	case errors.Is(err, papertrading.ErrInvalidInput):
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Sold %d shares of %s. Profit/Loss: %s\n", c.quantity, papertrading.NormalizeSymbol(c.symbol), profitLoss.SignedString())
	return subcommands.ExitSuccess
}
