package cmd

import (
	"fmt"
	"sort"
	"strings"

	"finsight/internal/cli"
	"finsight/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(config.ConfigPath())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	if !flagQuiet {
		fmt.Println(cli.RenderTitle("Configuration"))
	}
	fmt.Printf("  File: %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Print(" (not written, showing defaults)")
	}
	fmt.Println()

	table := cli.Table{Rows: [][]string{
		{"general.currency", cfg.General.Currency},
		{"general.default_compounding", fmt.Sprintf("%d", cfg.General.DefaultCompounding)},
		{"general.data_dir", orDefault(cfg.General.DataDir)},
		{"tax.regime", cfg.Tax.Regime},
		{"tax.filing_status", cfg.Tax.FilingStatus},
		{"appearance.theme", cfg.Appearance.Theme},
	}}
	fmt.Println(cli.RenderTable(table))

	if len(cfg.Categories.Keywords) > 0 {
		names := make([]string, 0, len(cfg.Categories.Keywords))
		for name := range cfg.Categories.Keywords {
			names = append(names, name)
		}
		sort.Strings(names)

		kw := cli.Table{Title: "Extra Category Keywords", Headers: []string{"Category", "Keywords"}}
		for _, name := range names {
			kw.Rows = append(kw.Rows, []string{name, strings.Join(cfg.Categories.Keywords[name], ", ")})
		}
		fmt.Println(cli.RenderTable(kw))
	}
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config already exists at %s", config.ConfigPath())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", config.ConfigPath())
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
