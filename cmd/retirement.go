package cmd

import (
	"finsight/internal/calc"

	"github.com/spf13/cobra"
)

var (
	flagRetAge       int
	flagRetRetireAge int
	flagRetExpense   float64
	flagRetInflation float64
	flagRetReturn    float64
)

var retirementCmd = &cobra.Command{
	Use:   "retirement",
	Short: "Retirement corpus and required monthly SIP",
	RunE:  runRetirement,
}

func init() {
	retirementCmd.Flags().IntVar(&flagRetAge, "age", 30, "Current age")
	retirementCmd.Flags().IntVar(&flagRetRetireAge, "retire-age", 60, "Planned retirement age")
	retirementCmd.Flags().Float64VarP(&flagRetExpense, "expense", "e", 50_000, "Current monthly expenses")
	retirementCmd.Flags().Float64Var(&flagRetInflation, "inflation", 6, "Expected inflation in percent")
	retirementCmd.Flags().Float64VarP(&flagRetReturn, "return", "r", 10, "Expected annual return in percent")
	rootCmd.AddCommand(retirementCmd)
}

func runRetirement(_ *cobra.Command, _ []string) error {
	return runCalc(calc.KindRetirement, numbers(map[string]float64{
		"age":        float64(flagRetAge),
		"retire_age": float64(flagRetRetireAge),
		"expense":    flagRetExpense,
		"inflation":  flagRetInflation,
		"return":     flagRetReturn,
	}))
}
