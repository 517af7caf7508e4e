package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goalfolio/goalfolio"
	"github.com/google/subcommands"
)

type chartCmd struct {
	rangeToken string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "show the portfolio valuation over a time range" }
func (*chartCmd) Usage() string {
	return `gf chart [-range <token>]

  Prints the recorded daily valuations within the selected window, with the
  absolute and relative change over it. Ranges: 1D, 5D, 1M, 6M, YTD, 1Y.
  When no valuation falls inside the window, today's live total is shown as
  a single point.

Usage Examples:
$ gf chart -range 1M

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rangeToken, "range", "1M", "Chart range: 1D, 5D, 1M, 6M, YTD or 1Y")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := goalfolio.ParseChartRange(c.rangeToken)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openPositions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	now := goalfolio.Today()
	points := goalfolio.Window(store.Valuations(), r, now)
	if len(points) == 0 {
		total, _ := store.TotalMarketValue().Float64()
		points = goalfolio.FallbackWindow(total, now)
	}
	change, percent := goalfolio.WindowChange(points)

	var b strings.Builder
	fmt.Fprintf(&b, "# Valuation %s\n\n", r)
	b.WriteString("| Day | Value |\n")
	b.WriteString("|---|--:|\n")
	for _, p := range points {
		fmt.Fprintf(&b, "| %s | %.2f |\n", p.On, p.Value)
	}
	fmt.Fprintf(&b, "\nChange over %s: %+.2f (%s)\n", r, change, percent.SignedString())

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
