package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goalfolio/goalfolio"
	"github.com/goalfolio/goalfolio/alphavantage"
	"github.com/google/subcommands"
)

type candlesCmd struct {
	interval string
	full     bool
	extended bool
	month    string
	all      bool
}

func (*candlesCmd) Name() string     { return "candles" }
func (*candlesCmd) Synopsis() string { return "show intraday candles for a symbol" }
func (*candlesCmd) Usage() string {
	return `gf candles [-interval <i>] [-full] [-extended] [-month <YYYY-MM>] [-all] <ticker>

  Fetches the intraday series from Alpha Vantage and prints the most recent
  trading day (or the whole series with -all). Timestamps are US Eastern,
  the exchange's clock. On weekends the last open session is shown.

Usage Examples:
$ gf candles AAPL
$ gf candles -interval 5min -extended AAPL

`
}

func (c *candlesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.interval, "interval", "15min", "Candle interval: 1min, 5min, 15min, 30min or 60min")
	f.BoolVar(&c.full, "full", false, "Fetch the full history instead of the latest points")
	f.BoolVar(&c.extended, "extended", false, "Include pre/post market candles")
	f.StringVar(&c.month, "month", "", "Query a specific month (YYYY-MM)")
	f.BoolVar(&c.all, "all", false, "Print the whole series, not only the last trading day")
}

func (c *candlesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(f.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ticker symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if cfg.Providers.Alphavantage == "" {
		fmt.Fprintln(os.Stderr, "Error: no Alpha Vantage API key configured (providers.alphavantage).")
		return subcommands.ExitFailure
	}
	client := alphavantage.New(cfg.Providers.Alphavantage)

	var candles []goalfolio.Candle
	if c.all || c.full || c.month != "" {
		candles, err = client.Fetch(ctx, alphavantage.IntradayRequest{
			Symbol:        symbol,
			Interval:      alphavantage.Interval(c.interval),
			Full:          c.full,
			ExtendedHours: c.extended,
			Month:         c.month,
		})
	} else {
		candles, err = client.MostRecentTradingDay(ctx, symbol)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(candles) == 0 {
		fmt.Printf("No candles for %q.\n", symbol)
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s intraday\n\n", symbol)
	b.WriteString("| Time | Open | High | Low | Close | Volume |\n")
	b.WriteString("|---|--:|--:|--:|--:|--:|\n")
	for _, candle := range candles {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.2f | %.2f | %d |\n",
			candle.Time.Format("2006-01-02 15:04"), candle.Open, candle.High, candle.Low, candle.Close, candle.Volume)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
