package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list positions and the portfolio total" }
func (*listCmd) Usage() string {
	return `gf list

  Prints every position with its computed market value, the per-currency
  subtotals and the headline total.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openPositions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	positions := store.Positions()
	if len(positions) == 0 {
		fmt.Println("The portfolio is empty.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("# Portfolio\n\n")
	b.WriteString("| Category | Symbol | Name | Quantity | Market Value |\n")
	b.WriteString("|---|---|---|--:|--:|\n")
	for _, p := range positions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			p.Category, p.Symbol, p.Name, p.Quantity, p.MarketValue())
	}

	b.WriteString("\n## Totals\n\n")
	totals := store.CurrencyTotals()
	currencies := make([]string, 0, len(totals))
	for cur := range totals {
		currencies = append(currencies, cur)
	}
	sort.Strings(currencies)
	for _, cur := range currencies {
		fmt.Fprintf(&b, "* %s: %s\n", cur, totals[cur])
	}
	fmt.Fprintf(&b, "\n**Total: %s**\n", store.TotalMarketValue().StringFixed(2))

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
