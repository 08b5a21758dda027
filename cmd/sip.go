package cmd

import (
	"finsight/internal/calc"

	"github.com/spf13/cobra"
)

var (
	flagSIPMonthly float64
	flagSIPRate    float64
	flagSIPYears   float64
)

var sipCmd = &cobra.Command{
	Use:   "sip",
	Short: "SIP future value for monthly investing",
	RunE:  runSIP,
}

func init() {
	sipCmd.Flags().Float64VarP(&flagSIPMonthly, "monthly", "m", 5000, "Monthly investment")
	sipCmd.Flags().Float64VarP(&flagSIPRate, "rate", "r", 12, "Expected annual return in percent")
	sipCmd.Flags().Float64VarP(&flagSIPYears, "years", "y", 10, "Investment duration in years")
	rootCmd.AddCommand(sipCmd)
}

func runSIP(_ *cobra.Command, _ []string) error {
	return runCalc(calc.KindSIP, numbers(map[string]float64{
		"monthly": flagSIPMonthly,
		"rate":    flagSIPRate,
		"years":   flagSIPYears,
	}))
}
