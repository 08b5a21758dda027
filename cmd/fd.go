package cmd

import (
	"finsight/internal/calc"

	"github.com/spf13/cobra"
)

var (
	flagFDAmount      float64
	flagFDRate        float64
	flagFDYears       float64
	flagFDCompounding int
)

var fdCmd = &cobra.Command{
	Use:   "fd",
	Short: "Fixed deposit maturity value",
	RunE:  runFD,
}

func init() {
	fdCmd.Flags().Float64VarP(&flagFDAmount, "amount", "a", 100_000, "Deposit principal")
	fdCmd.Flags().Float64VarP(&flagFDRate, "rate", "r", 6.5, "Annual interest rate in percent")
	fdCmd.Flags().Float64VarP(&flagFDYears, "years", "y", 5, "Deposit tenure in years")
	fdCmd.Flags().IntVar(&flagFDCompounding, "compounding", 0, "Compounding periods per year (default from config)")
	rootCmd.AddCommand(fdCmd)
}

func runFD(_ *cobra.Command, _ []string) error {
	compounding := flagFDCompounding
	if compounding == 0 {
		compounding = loadConfig().General.DefaultCompounding
	}
	return runCalc(calc.KindFD, numbers(map[string]float64{
		"amount":      flagFDAmount,
		"rate":        flagFDRate,
		"years":       flagFDYears,
		"compounding": float64(compounding),
	}))
}
