package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct {
	symbol string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove positions from the portfolio" }
func (*removeCmd) Usage() string {
	return `gf remove -symbol <ticker>

  Removes every position with the given symbol, ignoring case. Removing a
  symbol that is not held does nothing.

Usage Examples:
$ gf remove -symbol AAPL

`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to remove (required)")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
		return subcommands.ExitUsageError
	}

	store, err := openPositions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	removed := store.RemoveSymbol(c.symbol)
	if removed == 0 {
		fmt.Printf("No position with symbol %q.\n", c.symbol)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Removed %d position(s); portfolio total is now %s.\n", removed, store.TotalMarketValue())
	return subcommands.ExitSuccess
}
