package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ninad572/PaperTrading/renderer"
	"github.com/google/subcommands"
)

type lotsCmd struct{}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "list every lot in the ledger, including fully-sold ones" }
func (*lotsCmd) Usage() string {
	return `pt lots

  Lists the raw lots in buy order. Lots sold down to zero quantity stay on
  record as an audit trail.
`
}

func (*lotsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := newEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Lots(engine.Ledger()))
	return subcommands.ExitSuccess
}
