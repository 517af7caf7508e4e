package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goalfolio/goalfolio/alphavantage"
	"github.com/google/subcommands"
)

type searchCmd struct {
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for stock symbols" }
func (*searchCmd) Usage() string {
	return `gf search [-limit <n>] <query>

  Looks up symbols matching the query through Alpha Vantage and prints the
  best matches. Saved watchlist entries are marked.

Usage Examples:
$ gf search apple

`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 10, "Maximum number of matches to print")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.TrimSpace(strings.Join(f.Args(), " "))
	if query == "" {
		fmt.Fprintln(os.Stderr, "Error: a search query is required.")
		return subcommands.ExitUsageError
	}

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
	stocks, err := client.Search(ctx, query, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(stocks) == 0 {
		fmt.Printf("No match for %q.\n", query)
		return subcommands.ExitSuccess
	}

	watchlist, err := openWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Matches for %q\n\n", query)
	for _, s := range stocks {
		saved := ""
		if watchlist.IsSaved(s.Symbol) {
			saved = " (watching)"
		}
		fmt.Fprintf(&b, "* %s: %s%s\n", s.Symbol, s.Name, saved)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
