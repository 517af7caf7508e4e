package cmd

import (
	"context"
	"flag"

	"github.com/goalfolio/goalfolio"
	"github.com/google/subcommands"
)

type addEquityCmd struct {
	symbol   string
	name     string
	quantity string
	price    string
	currency string
	notes    string
	sell     bool
}

func (*addEquityCmd) Name() string     { return "add-equity" }
func (*addEquityCmd) Synopsis() string { return "add an equity position to the portfolio" }
func (*addEquityCmd) Usage() string {
	return `gf add-equity -symbol <ticker> -name <name> -quantity <shares> -price <unit price> [-currency <code>] [-sell]

  Records an equity purchase (or a sale with -sell). Quantity and unit price
  must be strictly positive; the market value is quantity x price and is
  never stored, always computed.

Usage Examples:
$ gf add-equity -symbol AAPL -name "Apple Inc" -quantity 10 -price 150

`
}

func (c *addEquityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol (required)")
	f.StringVar(&c.name, "name", "", "Display name for the position (required)")
	f.StringVar(&c.quantity, "quantity", "", "Number of shares, strictly positive (required)")
	f.StringVar(&c.price, "price", "", "Price per share, strictly positive (required)")
	f.StringVar(&c.currency, "currency", "USD", "Currency code")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
	f.BoolVar(&c.sell, "sell", false, "Record a sale instead of a purchase")
}

func (c *addEquityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form := goalfolio.PositionForm{
		Category:  goalfolio.Equities,
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
