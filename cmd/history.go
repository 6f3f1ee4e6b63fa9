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

type historyCmd struct {
	symbol   string
	period   string
	interval string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the closing price history of a stock" }
func (*historyCmd) Usage() string {
	return `pt history -s <symbol> [-p <period>] [-i <interval>]

  Displays the close-price series for the symbol over the given period, by
  default the last six months of daily closes.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol to chart (e.g. INFY.NS).")
	f.StringVar(&c.period, "p", "6mo", "Period of history to fetch (1d, 5d, 1mo, 6mo, 1y, ...).")
	f.StringVar(&c.interval, "i", "1d", "Sampling interval (1d, 1wk, 1mo).")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol := papertrading.NormalizeSymbol(c.symbol)
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: a symbol is required.")
		return subcommands.ExitUsageError
	}

	samples, err := yahoo.New().History(ctx, symbol, c.period, c.interval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching data for %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	for i, sample := range samples {
		samples[i].Close = papertrading.M(sample.Close.Decimal(), *currency)
	}
	printMarkdown(renderer.History(symbol, samples))
	return subcommands.ExitSuccess
}
