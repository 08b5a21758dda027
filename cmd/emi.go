package cmd

import (
	"fmt"

	"finsight/internal/calc"
	"finsight/internal/cli"
	"finsight/internal/finance"

	"github.com/spf13/cobra"
)

var (
	flagEMIAmount   float64
	flagEMIRate     float64
	flagEMIYears    float64
	flagEMISchedule bool
)

var emiCmd = &cobra.Command{
	Use:   "emi",
	Short: "Loan EMI with total interest breakdown",
	RunE:  runEMI,
}

func init() {
	emiCmd.Flags().Float64VarP(&flagEMIAmount, "amount", "a", 5_000_000, "Loan principal")
	emiCmd.Flags().Float64VarP(&flagEMIRate, "rate", "r", 8.5, "Annual interest rate in percent")
	emiCmd.Flags().Float64VarP(&flagEMIYears, "years", "y", 20, "Loan tenure in years")
	emiCmd.Flags().BoolVar(&flagEMISchedule, "schedule", false, "Print the month-by-month amortization schedule")
	rootCmd.AddCommand(emiCmd)
}

func runEMI(_ *cobra.Command, _ []string) error {
	in := numbers(map[string]float64{
		"amount": flagEMIAmount,
		"rate":   flagEMIRate,
		"years":  flagEMIYears,
	})
	if err := runCalc(calc.KindLoanEMI, in); err != nil {
		return err
	}

	if flagEMISchedule {
		cfg := loadConfig()
		sym := currencySymbol(cfg)
		rows := finance.AmortizationSchedule(flagEMIAmount, flagEMIRate, flagEMIYears)

		table := cli.Table{
			Title:   "Amortization Schedule",
			Headers: []string{"Month", "Payment", "Principal", "Interest", "Balance"},
		}
		for _, r := range rows {
			table.Rows = append(table.Rows, []string{
				fmt.Sprintf("%d", r.Month),
				cli.FormatCurrency(sym, r.Payment),
				cli.FormatCurrency(sym, r.Principal),
				cli.FormatCurrency(sym, r.Interest),
				cli.FormatCurrency(sym, r.Balance),
			})
		}
		fmt.Println(cli.RenderTable(table))
	}
	return nil
}
