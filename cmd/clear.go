package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "discard all lots and start over with an empty ledger" }
func (*clearCmd) Usage() string {
	return `pt clear

  Unconditionally discards all lots and persists the empty ledger.
`
}

func (*clearCmd) SetFlags(_ *flag.FlagSet) {}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := newEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := engine.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Portfolio cleared.")
	return subcommands.ExitSuccess
}
