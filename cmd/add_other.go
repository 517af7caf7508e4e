package cmd

import (
	"context"
	"flag"

	"github.com/goalfolio/goalfolio"
	"github.com/google/subcommands"
)

type addOtherCmd struct {
	name       string
	quantity   string
	price      string
	currency   string
	notes      string
	withdrawal bool
}

func (*addOtherCmd) Name() string { return "add-other" }
func (*addOtherCmd) Synopsis() string {
	return "add a position that is neither cash, equity nor digital asset"
}
func (*addOtherCmd) Usage() string {
	return `gf add-other -name <name> -quantity <count> -price <unit price> [-currency <code>] [-withdrawal]

  Records any other kind of holding: collectibles, bonds, real estate
  shares... No symbol is needed, only a name, a quantity and a unit price.

Usage Examples:
$ gf add-other -name "Vintage watch" -quantity 1 -price 3000 -currency EUR

`
}

func (c *addOtherCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name for the position (required)")
	f.StringVar(&c.quantity, "quantity", "", "Quantity, strictly positive (required)")
	f.StringVar(&c.price, "price", "", "Price per unit, strictly positive (required)")
	f.StringVar(&c.currency, "currency", "USD", "Currency code")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
	f.BoolVar(&c.withdrawal, "withdrawal", false, "Record a disposal instead of an acquisition")
}

func (c *addOtherCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form := goalfolio.PositionForm{
		Category:  goalfolio.Other,
		Name:      c.name,
		Quantity:  c.quantity,
		UnitPrice: c.price,
		Currency:  c.currency,
		Notes:     c.notes,
	}
	if c.withdrawal {
		form.Direction = goalfolio.Withdrawal
	}
	return addPosition(form)
}
