package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	papertrading "github.com/Ninad572/PaperTrading"
	"github.com/Ninad572/PaperTrading/renderer"
	"github.com/Ninad572/PaperTrading/yahoo"
	"github.com/google/subcommands"
)

type priceCmd struct {
	symbol string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "display the latest known price of a stock" }
func (*priceCmd) Usage() string {
	return `pt price -s <symbol>

  Fetches and displays the most recent closing price for the symbol.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol to look up (e.g. INFY.NS).")
}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol := papertrading.NormalizeSymbol(c.symbol)
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: a symbol is required.")
		return subcommands.ExitUsageError
	}

	price, err := yahoo.New().LatestPrice(ctx, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching data for %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Price(symbol, papertrading.M(price.Decimal(), *currency)))
	return subcommands.ExitSuccess
}
