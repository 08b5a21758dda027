package cmd

import (
	"fmt"

	"finsight/internal/cli"
	"finsight/internal/finance"
	"finsight/internal/invest"

	"github.com/spf13/cobra"
)

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Investment growth projections",
}

var (
	flagInvInitial   float64
	flagInvMonthly   float64
	flagInvYears     int
	flagInvAsset     string
	flagInvTolerance string
	flagInvBreakdown bool

	flagGoalTarget float64
	flagGoalYears  int

	flagIRAge       int
	flagIRRetireAge int
	flagIRIncome    float64
	flagIRSavings   float64
	flagIRLifeExp   int
	flagIRInflation float64
)

var investProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project growth under three return scenarios",
	RunE:  runInvestProject,
}

var investGoalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Monthly contribution needed to hit a target",
	RunE:  runInvestGoal,
}

var investRetirementCmd = &cobra.Command{
	Use:   "retirement",
	Short: "Estimate your retirement savings gap",
	RunE:  runInvestRetirement,
}

var investCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare start-today, wait and double-contribution paths",
	RunE:  runInvestCompare,
}

var investRiskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Volatility-adjusted outcome ranges",
	RunE:  runInvestRisk,
}

func init() {
	for _, c := range []*cobra.Command{investProjectCmd, investCompareCmd, investRiskCmd} {
		c.Flags().Float64VarP(&flagInvInitial, "initial", "i", 0, "Initial lump sum")
		c.Flags().Float64VarP(&flagInvMonthly, "monthly", "m", 0, "Monthly contribution")
		c.Flags().IntVarP(&flagInvYears, "years", "y", 10, "Investment horizon in years")
		c.Flags().StringVar(&flagInvAsset, "asset", "mixed", "Asset type: stocks, bonds or mixed")
		c.Flags().StringVarP(&flagInvTolerance, "tolerance", "t", "moderate", "Risk tolerance: conservative, moderate or aggressive")
	}
	investProjectCmd.Flags().BoolVar(&flagInvBreakdown, "breakdown", false, "Show the year-by-year table")

	investGoalCmd.Flags().Float64Var(&flagGoalTarget, "target", 0, "Target amount")
	investGoalCmd.Flags().IntVarP(&flagGoalYears, "years", "y", 10, "Years to reach the target")
	investGoalCmd.Flags().StringVarP(&flagInvTolerance, "tolerance", "t", "moderate", "Risk tolerance: conservative, moderate or aggressive")
	investGoalCmd.MarkFlagRequired("target")

	investRetirementCmd.Flags().IntVar(&flagIRAge, "age", 0, "Current age")
	investRetirementCmd.Flags().IntVar(&flagIRRetireAge, "retire-age", 65, "Planned retirement age")
	investRetirementCmd.Flags().Float64Var(&flagIRIncome, "income", 0, "Desired annual income in retirement")
	investRetirementCmd.Flags().Float64Var(&flagIRSavings, "savings", 0, "Current retirement savings")
	investRetirementCmd.Flags().IntVar(&flagIRLifeExp, "life-expectancy", 90, "Planning horizon age")
	investRetirementCmd.Flags().Float64Var(&flagIRInflation, "inflation", 3, "Expected inflation in percent")
	investRetirementCmd.MarkFlagRequired("age")
	investRetirementCmd.MarkFlagRequired("income")

	investCmd.AddCommand(investProjectCmd, investGoalCmd, investRetirementCmd, investCompareCmd, investRiskCmd)
	rootCmd.AddCommand(investCmd)
}

func investParams() invest.Params {
	return invest.Params{
		InitialAmount:       flagInvInitial,
		MonthlyContribution: flagInvMonthly,
		Years:               flagInvYears,
		AssetType:           invest.AssetType(flagInvAsset),
		Tolerance:           finance.RiskTolerance(flagInvTolerance),
	}
}

func printProjection(sym string, proj invest.Projection) {
	scenarios := cli.Table{
		Headers: []string{"Scenario", "Final Balance", "Gains", "ROI"},
		Rows: [][]string{
			{"Conservative", cli.FormatMoney(sym, proj.Conservative.FinalBalance), cli.FormatMoney(sym, proj.Conservative.TotalGains), cli.FormatPercent(proj.Conservative.ROI)},
			{"Expected", cli.FormatMoney(sym, proj.Expected.FinalBalance), cli.FormatMoney(sym, proj.Expected.TotalGains), cli.FormatPercent(proj.Expected.ROI)},
			{"Optimistic", cli.FormatMoney(sym, proj.Optimistic.FinalBalance), cli.FormatMoney(sym, proj.Optimistic.TotalGains), cli.FormatPercent(proj.Optimistic.ROI)},
		},
	}
	fmt.Println(cli.RenderTable(scenarios))

	s := proj.Summary
	summary := cli.Table{Rows: [][]string{
		{"Total invested", cli.FormatMoney(sym, s.TotalInvested)},
		{"Expected value", cli.FormatMoney(sym, s.ExpectedValue)},
		{"Avg monthly gain", cli.FormatMoney(sym, s.AvgMonthlyGain)},
	}}
	fmt.Println(cli.RenderTable(summary))

	for _, in := range s.Insights {
		fmt.Printf("  %s: %s\n", in.Title, in.Message)
	}
}

func runInvestProject(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	sym := currencySymbol(cfg)

	proj, err := invest.Project(investParams())
	if err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Println(cli.RenderTitle("Investment Projection"))
	}
	printProjection(sym, proj)

	if flagInvBreakdown {
		table := cli.Table{Title: "Year by Year", Headers: []string{"Year", "Balance", "Contributions", "Gains"}}
		balances := make([]float64, 0, len(proj.Breakdown))
		for _, row := range proj.Breakdown {
			balances = append(balances, row.Balance)
			table.Rows = append(table.Rows, []string{
				fmt.Sprintf("%d", row.Year),
				cli.FormatMoney(sym, row.Balance),
				cli.FormatMoney(sym, row.Contributions),
				cli.FormatMoney(sym, row.Gains),
			})
		}
		fmt.Println(cli.RenderTable(table))
		if len(balances) > 0 {
			peak := balances[len(balances)-1]
			fmt.Printf("  Balance trend: %s  peaks at %s%s\n",
				cli.RenderSparkline(balances), sym, cli.FormatCompact(peak))
		}
	}
	return nil
}

func runInvestGoal(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	sym := currencySymbol(cfg)

	plan, err := invest.RequiredContribution(flagGoalTarget, flagGoalYears, finance.RiskTolerance(flagInvTolerance))
	if err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Println(cli.RenderTitle("Goal Plan"))
	}
	table := cli.Table{Rows: [][]string{
		{"Target", cli.FormatMoney(sym, plan.TargetAmount)},
		{"Monthly contribution", cli.FormatMoney(sym, plan.MonthlyContribution)},
		{"Total contributed", cli.FormatMoney(sym, plan.TotalContributions)},
		{"Growth covers", cli.FormatMoney(sym, plan.TotalGains)},
		{"Timeline", cli.FormatMonths(plan.Years * 12)},
	}}
	fmt.Println(cli.RenderTable(table))
	return nil
}

func runInvestRetirement(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	sym := currencySymbol(cfg)

	needs, err := invest.EstimateRetirementNeeds(invest.RetirementParams{
		CurrentAge:          flagIRAge,
		RetirementAge:       flagIRRetireAge,
		DesiredAnnualIncome: flagIRIncome,
		CurrentSavings:      flagIRSavings,
		LifeExpectancy:      flagIRLifeExp,
		Inflation:           flagIRInflation / 100,
	})
	if err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Println(cli.RenderTitle("Retirement Outlook"))
	}
	table := cli.Table{Rows: [][]string{
		{"Years to retirement", fmt.Sprintf("%d", needs.YearsToRetirement)},
		{"Years in retirement", fmt.Sprintf("%d", needs.YearsInRetirement)},
		{"Future annual income", cli.FormatMoney(sym, needs.FutureAnnualIncome)},
		{"Total needed", cli.FormatMoney(sym, needs.TotalNeeded)},
		{"Current savings", cli.FormatMoney(sym, needs.CurrentSavings)},
		{"Gap", cli.FormatMoney(sym, needs.Gap)},
		{"Monthly required", cli.FormatMoney(sym, needs.MonthlyRequired)},
		{"Confidence", needs.Confidence},
	}}
	fmt.Println(cli.RenderTable(table))
	return nil
}

func runInvestCompare(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	sym := currencySymbol(cfg)

	scenarios, err := invest.CompareScenarios(investParams())
	if err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Println(cli.RenderTitle("Scenario Comparison"))
	}
	table := cli.Table{Headers: []string{"Scenario", "Final Balance", "Invested", "Opportunity Cost"}}
	for _, sc := range scenarios {
		cost := "-"
		if sc.OpportunityCost > 0 {
			cost = cli.FormatMoney(sym, sc.OpportunityCost)
		}
		table.Rows = append(table.Rows, []string{
			sc.Name,
			cli.FormatMoney(sym, sc.Projection.Expected.FinalBalance),
			cli.FormatMoney(sym, sc.Projection.Summary.TotalInvested),
			cost,
		})
	}
	fmt.Println(cli.RenderTable(table))
	return nil
}

func runInvestRisk(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	sym := currencySymbol(cfg)

	ra, err := invest.RiskAdjustedReturns(investParams())
	if err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Println(cli.RenderTitle("Risk-Adjusted Outlook"))
	}
	table := cli.Table{Rows: [][]string{
		{"Expected", cli.FormatMoney(sym, ra.Expected)},
		{"Likely range (68%)", fmt.Sprintf("%s to %s", cli.FormatMoney(sym, ra.Range68.Low), cli.FormatMoney(sym, ra.Range68.High))},
		{"Wide range (95%)", fmt.Sprintf("%s to %s", cli.FormatMoney(sym, ra.Range95.Low), cli.FormatMoney(sym, ra.Range95.High))},
	}}
	fmt.Println(cli.RenderTable(table))
	fmt.Printf("  [%s] %s\n", ra.Recommendation.Type, ra.Recommendation.Message)
	return nil
}
