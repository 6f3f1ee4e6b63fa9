// Package cmd implements the CLI application to manage the paper-trading ledger.
package cmd

import (
	"flag"
	"fmt"

	papertrading "github.com/Ninad572/PaperTrading"
	"github.com/Ninad572/PaperTrading/yahoo"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&clearCmd{}, "trading")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&lotsCmd{}, "reports")
	c.Register(&priceCmd{}, "market data")
	c.Register(&historyCmd{}, "market data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "portfolio.jsonl", "Path to the ledger file containing lots (JSONL format)")
var currency = flag.String("currency", "INR", "Currency the ledger is denominated in")

// newEngine wires the engine to the file store and the quote client.
func newEngine() (*papertrading.Engine, error) {
	store := papertrading.NewFileStore(*ledgerFile)
	return papertrading.NewEngine(store, yahoo.New(), *currency)
}

// printMarkdown renders markdown content to the terminal.
func printMarkdown(content string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(content)
		return
	}
	out, err := r.Render(content)
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}
