package cmd

import (
	"context"
	"flag"

	"github.com/goalfolio/goalfolio"
	"github.com/google/subcommands"
)

type addDigitalCmd struct {
	symbol   string
	name     string
	quantity string
	price    string
	currency string
	notes    string
	sell     bool
}

func (*addDigitalCmd) Name() string     { return "add-digital" }
func (*addDigitalCmd) Synopsis() string { return "add a digital asset position to the portfolio" }
func (*addDigitalCmd) Usage() string {
	return `gf add-digital -symbol <ticker> -name <name> -quantity <units> -price <unit price> [-currency <code>] [-sell]

  Records a digital asset purchase (or a sale with -sell). Token codes such
  as BTC are accepted as currency next to ISO codes.

Usage Examples:
$ gf add-digital -symbol BTC -name "Bitcoin" -quantity 0.5 -price 60000

`
}

func (c *addDigitalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol (required)")
	f.StringVar(&c.name, "name", "", "Display name for the position (required)")
	f.StringVar(&c.quantity, "quantity", "", "Number of units, strictly positive (required)")
	f.StringVar(&c.price, "price", "", "Price per unit, strictly positive (required)")
	f.StringVar(&c.currency, "currency", "USD", "Currency code")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
	f.BoolVar(&c.sell, "sell", false, "Record a sale instead of a purchase")
}

func (c *addDigitalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form := goalfolio.PositionForm{
		Category:  goalfolio.DigitalAssets,
		Symbol:    c.symbol,
		Name:      c.name,
		Quantity:  c.quantity,
		UnitPrice: c.price,
		Currency:  c.currency,
		Notes:     c.notes,
	}
	if c.sell {
		form.Direction = goalfolio.Withdrawal
	}
	return addPosition(form)
}
