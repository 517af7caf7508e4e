package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/goalfolio/goalfolio"
)

// Config is the gf configuration file, TOML formatted:
//
//	data_dir = "~/.goalfolio"
//
//	[providers]
//	finnhub = "..."
//	alphavantage = "..."
//
//	[[watchlist]]
//	symbol = "AAPL"
//	name = "Apple Inc"
type Config struct {
	DataDir string `toml:"data_dir"`

	Providers struct {
		Finnhub      string `toml:"finnhub"`
		Alphavantage string `toml:"alphavantage"`
	} `toml:"providers"`

	Watchlist []struct {
		Symbol string `toml:"symbol"`
		Name   string `toml:"name"`
	} `toml:"watchlist"`
}

// defaultSeed populates the watchlist on very first run; a config [[watchlist]]
// section replaces it.
var defaultSeed = []goalfolio.Stock{
	{Symbol: "AAPL", Name: "Apple Inc"},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "GOOGL", Name: "Alphabet Inc"},
	{Symbol: "AMZN", Name: "Amazon.com Inc"},
	{Symbol: "TSLA", Name: "Tesla Inc"},
}

// LoadConfig reads the config at path, or the default location when path is
// empty. A missing file is not an error: defaults apply.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath()
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			applyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DataDir == "" {
		cfg.DataDir = expandHome("~/.goalfolio")
	} else {
		cfg.DataDir = expandHome(cfg.DataDir)
	}
}

// Seed returns the first-run watchlist: the config's [[watchlist]] entries,
// or the built-in defaults when none are configured.
func (cfg *Config) Seed() []goalfolio.Stock {
	if len(cfg.Watchlist) == 0 {
		return defaultSeed
	}
	seed := make([]goalfolio.Stock, 0, len(cfg.Watchlist))
	for _, entry := range cfg.Watchlist {
		seed = append(seed, goalfolio.Stock{Symbol: entry.Symbol, Name: entry.Name})
	}
	return seed
}

func defaultConfigPath() string {
	return expandHome(filepath.Join("~", ".config", "goalfolio", "config.toml"))
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~"+string(filepath.Separator) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
