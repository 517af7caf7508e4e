package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/goalfolio/goalfolio"
	"github.com/google/subcommands"
)

type addCashCmd struct {
	name       string
	amount     string
	currency   string
	notes      string
	withdrawal bool
}

func (*addCashCmd) Name() string     { return "add-cash" }
func (*addCashCmd) Synopsis() string { return "add a cash position to the portfolio" }
func (*addCashCmd) Usage() string {
	return `gf add-cash -name <name> -amount <amount> [-currency <code>] [-withdrawal]

  Records a cash deposit (or a withdrawal with -withdrawal). The amount must
  be strictly positive; the direction flag controls the sign.

Usage Examples:
$ gf add-cash -name "Savings" -amount 2500 -currency EUR

`
}

func (c *addCashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name for the position (required)")
	f.StringVar(&c.amount, "amount", "", "Cash amount, strictly positive (required)")
	f.StringVar(&c.currency, "currency", "USD", "Currency code")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
	f.BoolVar(&c.withdrawal, "withdrawal", false, "Record a withdrawal instead of a deposit")
}

func (c *addCashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form := goalfolio.PositionForm{
		Category: goalfolio.Cash,
		Name:     c.name,
		Amount:   c.amount,
		Currency: c.currency,
		Notes:    c.notes,
	}
	if c.withdrawal {
		form.Direction = goalfolio.Withdrawal
	}
	return addPosition(form)
}

// addPosition validates the form, opens the store and records the position.
// Shared by all the add-* commands.
func addPosition(form goalfolio.PositionForm) subcommands.ExitStatus {
	position, err := form.Position()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid position:\n%v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openPositions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store.Add(position)

	fmt.Printf("Added %s %q: market value %s (portfolio total %s)\n",
		position.Category, position.Name, position.MarketValue(), store.TotalMarketValue())
	return subcommands.ExitSuccess
}
