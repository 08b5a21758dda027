package cmd

import (
	"finsight/internal/calc"

	"github.com/spf13/cobra"
)

var (
	flagTaxIncome     float64
	flagTaxDeductions float64
	flagTaxRegime     string

	flagUSTaxIncome float64
	flagUSTaxStatus string
)

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Indian income tax under the old or new regime",
	RunE:  runTax,
}

var usTaxCmd = &cobra.Command{
	Use:   "ustax",
	Short: "US federal tax estimate (2024 brackets)",
	RunE:  runUSTax,
}

func init() {
	taxCmd.Flags().Float64VarP(&flagTaxIncome, "income", "i", 1_000_000, "Annual income")
	taxCmd.Flags().Float64Var(&flagTaxDeductions, "deductions", 150_000, "Deductions (old regime only)")
	taxCmd.Flags().StringVar(&flagTaxRegime, "regime", "", "Tax regime: old or new (default from config)")
	rootCmd.AddCommand(taxCmd)

	usTaxCmd.Flags().Float64VarP(&flagUSTaxIncome, "income", "i", 80_000, "Annual income in dollars")
	usTaxCmd.Flags().StringVar(&flagUSTaxStatus, "status", "", "Filing status (default from config)")
	rootCmd.AddCommand(usTaxCmd)
}

func runTax(_ *cobra.Command, _ []string) error {
	regime := flagTaxRegime
	if regime == "" {
		regime = loadConfig().Tax.Regime
	}
	return runCalc(calc.KindIncomeTax, calc.Inputs{
		Numbers: map[string]float64{
			"income":     flagTaxIncome,
			"deductions": flagTaxDeductions,
		},
		Choices: map[string]string{"regime": regime},
	})
}

func runUSTax(_ *cobra.Command, _ []string) error {
	status := flagUSTaxStatus
	if status == "" {
		status = loadConfig().Tax.FilingStatus
	}
	return runCalc(calc.KindUSTax, calc.Inputs{
		Numbers: map[string]float64{"income": flagUSTaxIncome},
		Choices: map[string]string{"status": status},
	})
}
