package cmd

import (
	"fmt"

	"finsight/internal/cli"
	"finsight/internal/finance"

	"github.com/spf13/cobra"
)

var ratiosCmd = &cobra.Command{
	Use:   "ratios",
	Short: "Financial health ratios",
}

var (
	flagDTIDebt   float64
	flagDTIIncome float64
)

var dtiCmd = &cobra.Command{
	Use:   "dti",
	Short: "Debt-to-income ratio with rating",
	RunE: func(_ *cobra.Command, _ []string) error {
		r := finance.DebtToIncome(flagDTIDebt, flagDTIIncome)
		fmt.Printf("  DTI ratio: %s (%s)\n", cli.FormatPercent(r.Ratio), r.Rating)
		fmt.Printf("  %s\n", r.Recommendation)
		return nil
	},
}

var (
	flagSRIncome  float64
	flagSRSavings float64
)

var savingsRateCmd = &cobra.Command{
	Use:   "savings-rate",
	Short: "Savings rate with rating",
	RunE: func(_ *cobra.Command, _ []string) error {
		r := finance.SavingsRate(flagSRIncome, flagSRSavings)
		fmt.Printf("  Savings rate: %s (%s)\n", cli.FormatPercent(r.Rate), r.Rating)
		fmt.Printf("  %s\n", r.Recommendation)
		return nil
	},
}

var (
	flagEFExpenses float64
	flagEFMonths   int
)

var emergencyFundCmd = &cobra.Command{
	Use:   "emergency-fund",
	Short: "Emergency fund sizing",
	RunE: func(_ *cobra.Command, _ []string) error {
		sym := currencySymbol(loadConfig())
		r := finance.EmergencyFund(flagEFExpenses, flagEFMonths)
		fmt.Println(cli.RenderTable(cli.Table{
			Rows: [][]string{
				{fmt.Sprintf("Recommended (%d months)", flagEFMonths), cli.FormatCurrency(sym, r.Recommended)},
				{"Minimum (3 months)", cli.FormatCurrency(sym, r.Minimum)},
				{"Ideal (12 months)", cli.FormatCurrency(sym, r.Ideal)},
			},
		}))
		return nil
	},
}

var (
	flagBEFixed   float64
	flagBEPrice   float64
	flagBEVarCost float64
)

var breakEvenCmd = &cobra.Command{
	Use:   "break-even",
	Short: "Break-even unit count",
	RunE: func(_ *cobra.Command, _ []string) error {
		units, ok := finance.BreakEven(flagBEFixed, flagBEPrice, flagBEVarCost)
		if !ok {
			return fmt.Errorf("price equals variable cost, break-even is unreachable")
		}
		fmt.Printf("  Break-even volume: %s units\n", cli.FormatNumber(int64(units)))
		return nil
	},
}

func init() {
	dtiCmd.Flags().Float64Var(&flagDTIDebt, "debt", 0, "Total monthly debt payments")
	dtiCmd.Flags().Float64VarP(&flagDTIIncome, "income", "i", 0, "Gross monthly income")
	dtiCmd.MarkFlagRequired("income")

	savingsRateCmd.Flags().Float64VarP(&flagSRIncome, "income", "i", 0, "Monthly income")
	savingsRateCmd.Flags().Float64VarP(&flagSRSavings, "savings", "s", 0, "Monthly savings")
	savingsRateCmd.MarkFlagRequired("income")

	emergencyFundCmd.Flags().Float64VarP(&flagEFExpenses, "expenses", "e", 0, "Monthly expenses")
	emergencyFundCmd.Flags().IntVar(&flagEFMonths, "months", 6, "Months of cover to recommend")
	emergencyFundCmd.MarkFlagRequired("expenses")

	breakEvenCmd.Flags().Float64Var(&flagBEFixed, "fixed", 0, "Fixed costs")
	breakEvenCmd.Flags().Float64Var(&flagBEPrice, "price", 0, "Price per unit")
	breakEvenCmd.Flags().Float64Var(&flagBEVarCost, "variable-cost", 0, "Variable cost per unit")
	breakEvenCmd.MarkFlagRequired("fixed")
	breakEvenCmd.MarkFlagRequired("price")

	ratiosCmd.AddCommand(dtiCmd, savingsRateCmd, emergencyFundCmd, breakEvenCmd)
	rootCmd.AddCommand(ratiosCmd)
}
