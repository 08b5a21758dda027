// Package cmd implements the finsight CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"finsight/internal/calc"
	"finsight/internal/cli"
	"finsight/internal/config"
	"finsight/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagCurrency string
	flagDataDir  string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "finsight",
	Short: "Personal Finance Toolkit",
	Long:  "Calculators, budgets, expense tracking and risk profiling for your money.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "Currency symbol (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory for the snapshot database")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress decorative output")
}

// loadConfig reads the config file, tolerating a missing one.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config error: %v (using defaults)\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// currencySymbol resolves the symbol from flag then config.
func currencySymbol(cfg config.Config) string {
	if flagCurrency != "" {
		return flagCurrency
	}
	return cfg.General.Currency
}

// dbPath resolves the snapshot database location from flag, config,
// then the XDG default.
func dbPath(cfg config.Config) string {
	switch {
	case flagDataDir != "":
		return filepath.Join(flagDataDir, "finsight.db")
	case cfg.General.DataDir != "":
		return filepath.Join(cfg.General.DataDir, "finsight.db")
	default:
		return store.DefaultPath()
	}
}

// openStore opens the snapshot database shared by the stateful
// commands.
func openStore(cfg config.Config) (*store.Store, error) {
	s, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening data store: %w", err)
	}
	return s, nil
}

// runCalc validates inputs against the calculator schema, runs the
// calculation and renders the result.
func runCalc(kind calc.Kind, in calc.Inputs) error {
	cfg := loadConfig()
	if err := calc.Validate(kind, in); err != nil {
		return err
	}
	c := calc.New(currencySymbol(cfg))
	result, err := c.Calculate(kind, in)
	if err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Println(cli.RenderTitle(calc.Schemas[kind].Title))
	}
	fmt.Println(cli.RenderResult(result))
	return nil
}

func numbers(pairs map[string]float64) calc.Inputs {
	return calc.Inputs{Numbers: pairs}
}
