package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goalfolio/goalfolio/finnhub"
	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show the current quote for a symbol" }
func (*quoteCmd) Usage() string {
	return `gf quote <ticker>...

  Fetches the current quote from Finnhub: price, day range, open and
  previous close. Responses are cached for the rest of the day.

Usage Examples:
$ gf quote AAPL MSFT

`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(f.Args()) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker symbol is required.")
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if cfg.Providers.Finnhub == "" {
		fmt.Fprintln(os.Stderr, "Error: no Finnhub API key configured (providers.finnhub).")
		return subcommands.ExitFailure
	}
	client := finnhub.New(cfg.Providers.Finnhub)

	var b strings.Builder
	b.WriteString("# Quotes\n\n")
	b.WriteString("| Symbol | Current | High | Low | Open | Prev Close |\n")
	b.WriteString("|---|--:|--:|--:|--:|--:|\n")
	for _, symbol := range f.Args() {
		symbol = strings.ToUpper(symbol)
		quote, err := client.Quote(ctx, symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
			symbol, quote.Current, quote.High, quote.Low, quote.Open, quote.PreviousClose)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
