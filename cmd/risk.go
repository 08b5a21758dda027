package cmd

import (
	"fmt"

	"finsight/internal/cli"
	"finsight/internal/risk"
	"finsight/internal/tui"
	"finsight/internal/tui/components"
	"finsight/internal/tui/theme"

	"github.com/spf13/cobra"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Risk tolerance profiling",
}

var riskRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Take the 10-question risk assessment",
	RunE:  runRiskRun,
}

var riskShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your saved risk profile",
	RunE:  runRiskShow,
}

func init() {
	riskCmd.AddCommand(riskRunCmd, riskShowCmd)
	rootCmd.AddCommand(riskCmd)
}

func runRiskRun(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	profile, done, err := tui.RunAssessment()
	if err != nil {
		return err
	}
	if !done {
		fmt.Println("  Assessment cancelled.")
		return nil
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := risk.SaveProfile(s, profile); err != nil {
		return err
	}

	printProfile(profile)
	return nil
}

func runRiskShow(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	profile, ok, err := risk.LoadProfile(s)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("  No saved profile. Run `finsight risk run` first.")
		return nil
	}
	printProfile(profile)
	return nil
}

func printProfile(p risk.Profile) {
	if !flagQuiet {
		fmt.Println(cli.RenderTitle("Risk Profile"))
	}
	fmt.Println(components.MetricCardRow([]struct{ Label, Value, Sublabel string }{
		{Label: "Profile", Value: p.Name},
		{Label: "Score", Value: fmt.Sprintf("%.0f%%", p.ScorePct)},
		{Label: "Assessed", Value: p.Date.Format("2006-01-02")},
	}, 60))
	fmt.Println()

	categories := []struct {
		label string
		key   risk.AnswerCategory
	}{
		{"Timeline", risk.CategoryTime},
		{"Finances", risk.CategoryFinancial},
		{"Comfort", risk.CategoryComfort},
		{"Experience", risk.CategoryExperience},
	}
	for _, c := range categories {
		pct := float64(p.Categories[c.key]) / 100
		fmt.Println("  " + components.ScoreBar(c.label, pct, 12, 30))
	}

	fmt.Println()
	fmt.Println("  Suggested allocation:")
	fmt.Println("  " + components.StackedBar([]components.Segment{
		{Label: "Stocks", Pct: p.Allocation.Stocks},
		{Label: "Bonds", Pct: p.Allocation.Bonds},
		{Label: "Cash", Pct: p.Allocation.Cash},
	}, 40))

	fmt.Println()
	for _, rec := range risk.Recommendations(p) {
		fmt.Printf("  [%s] %s\n        %s\n", rec.Type, rec.Title, rec.Description)
	}
}
