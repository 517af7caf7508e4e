package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "/tmp/gf-test"

[providers]
finnhub = "fh-key"
alphavantage = "av-key"

[[watchlist]]
symbol = "NVDA"
name = "NVIDIA Corporation"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "/tmp/gf-test" {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
	if cfg.Providers.Finnhub != "fh-key" || cfg.Providers.Alphavantage != "av-key" {
		t.Errorf("providers = %+v", cfg.Providers)
	}
	seed := cfg.Seed()
	if len(seed) != 1 || seed[0].Symbol != "NVDA" {
		t.Errorf("seed = %v", seed)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	// No config file at the default location in a throwaway home.
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir default missing")
	}
	if len(cfg.Seed()) == 0 {
		t.Error("built-in watchlist seed missing")
	}
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("an explicitly named missing config must be an error")
	}
}
