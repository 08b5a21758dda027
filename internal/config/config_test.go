package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.General.Currency != "₹" {
		t.Fatalf("currency = %q, want ₹", cfg.General.Currency)
	}
	if cfg.General.DefaultCompounding != 4 {
		t.Fatalf("compounding = %d, want 4", cfg.General.DefaultCompounding)
	}
	if cfg.Tax.Regime != "new" {
		t.Fatalf("regime = %q, want new", cfg.Tax.Regime)
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "₹" {
		t.Fatalf("expected defaults, got currency %q", cfg.General.Currency)
	}
	if Exists() {
		t.Fatal("Exists should be false before Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.Tax.FilingStatus = "single"
	cfg.Categories.Keywords = map[string][]string{
		"Food & Dining": {"dosa", "idli"},
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists should be true after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Currency != "$" {
		t.Fatalf("currency = %q, want $", got.General.Currency)
	}
	if kws := got.Categories.Keywords["Food & Dining"]; len(kws) != 2 || kws[0] != "dosa" {
		t.Fatalf("keywords = %v", kws)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "finsight")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"),
		[]byte("[general]\ncurrency = \"$\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "$" {
		t.Fatalf("currency = %q, want $", cfg.General.Currency)
	}
	if cfg.General.DefaultCompounding != 4 {
		t.Fatalf("compounding default lost: %d", cfg.General.DefaultCompounding)
	}
}
