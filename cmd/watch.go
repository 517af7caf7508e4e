package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type watchCmd struct {
	add    string
	name   string
	remove string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "manage the stock watchlist" }
func (*watchCmd) Usage() string {
	return `gf watch [-add <ticker> [-name <name>]] [-remove <ticker>]

  Without flags, prints the watchlist. -add saves a stock (the symbol is
  stored uppercase), -remove deletes it ignoring case. On very first run the
  watchlist is seeded with a few well-known stocks; an explicitly emptied
  watchlist stays empty.

Usage Examples:
$ gf watch -add NVDA -name "NVIDIA Corporation"
$ gf watch -remove nvda
$ gf watch

`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Ticker symbol to save")
	f.StringVar(&c.name, "name", "", "Display name for the saved stock")
	f.StringVar(&c.remove, "remove", "", "Ticker symbol to remove")
}

func (c *watchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add != "":
		if store.IsSaved(c.add) {
			fmt.Printf("%s is already on the watchlist.\n", strings.ToUpper(c.add))
			return subcommands.ExitSuccess
		}
		store.Save(c.add, c.name)
		fmt.Printf("Saved %s.\n", strings.ToUpper(c.add))
	case c.remove != "":
		if !store.IsSaved(c.remove) {
			fmt.Printf("%s is not on the watchlist.\n", strings.ToUpper(c.remove))
			return subcommands.ExitSuccess
		}
		store.Remove(c.remove)
		fmt.Printf("Removed %s.\n", strings.ToUpper(c.remove))
	default:
		stocks := store.Stocks()
		if len(stocks) == 0 {
			fmt.Println("The watchlist is empty.")
			return subcommands.ExitSuccess
		}
		var b strings.Builder
		b.WriteString("# Watchlist\n\n")
		for _, s := range stocks {
			fmt.Fprintf(&b, "* %s: %s\n", s.Symbol, s.Name)
		}
		printMarkdown(b.String())
	}
	return subcommands.ExitSuccess
}
