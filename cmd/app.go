// Package cmd implements the gf command line application.
package cmd

import (
	"flag"
	"fmt"

	"github.com/goalfolio/goalfolio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCashCmd{}, "positions")
	c.Register(&addEquityCmd{}, "positions")
	c.Register(&addDigitalCmd{}, "positions")
	c.Register(&addOtherCmd{}, "positions")
	c.Register(&removeCmd{}, "positions")
	c.Register(&listCmd{}, "positions")
	c.Register(&chartCmd{}, "positions")

	c.Register(&watchCmd{}, "watchlist")
	c.Register(&searchCmd{}, "watchlist")

	c.Register(&quoteCmd{}, "market data")
	c.Register(&candlesCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application with a short-lived lifecycle, global flags are fine.

var dataDir = flag.String("data-dir", "", "Directory holding the portfolio files (default from config)")
var configPath = flag.String("config", "", "Path to the config file (default ~/.config/goalfolio/config.toml)")

// openStorage resolves the data directory (flag beats config beats default)
// and opens the file storage there.
func openStorage() (*goalfolio.DirStorage, error) {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	dir := cfg.DataDir
	if *dataDir != "" {
		dir = *dataDir
	}
	storage, err := goalfolio.NewDirStorage(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot open data dir: %w", err)
	}
	return storage, nil
}

// openPositions is the central function to open the position store.
func openPositions() (*goalfolio.PositionStore, error) {
	storage, err := openStorage()
	if err != nil {
		return nil, err
	}
	return goalfolio.OpenPositionStore(storage), nil
}

// openWatchlist opens the watchlist store, seeding it on first run.
func openWatchlist() (*goalfolio.WatchlistStore, error) {
	storage, err := openStorage()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	return goalfolio.OpenWatchlist(storage, cfg.Seed()), nil
}
