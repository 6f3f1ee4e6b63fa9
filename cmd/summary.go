package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ninad572/PaperTrading/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the aggregated portfolio with invested and profit/loss totals" }
func (*summaryCmd) Usage() string {
	return `pt summary

  Groups the ledger's lots by stock and displays per-stock quantity, invested
  amount, current value and profit/loss, with portfolio-wide totals. A stock
  whose price is unavailable is valued at cost.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := newEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	positions, summary := engine.Aggregate(ctx)
	printMarkdown(renderer.Portfolio(positions, summary))
	return subcommands.ExitSuccess
}
