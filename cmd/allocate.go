package cmd

import (
	"finsight/internal/calc"

	"github.com/spf13/cobra"
)

var (
	flagAllocAge       int
	flagAllocTolerance string
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Age-based stock/bond allocation",
	RunE:  runAllocate,
}

func init() {
	allocateCmd.Flags().IntVar(&flagAllocAge, "age", 30, "Current age")
	allocateCmd.Flags().StringVarP(&flagAllocTolerance, "tolerance", "t", "moderate", "Risk tolerance: conservative, moderate or aggressive")
	rootCmd.AddCommand(allocateCmd)
}

func runAllocate(_ *cobra.Command, _ []string) error {
	return runCalc(calc.KindAllocation, calc.Inputs{
		Numbers: map[string]float64{"age": float64(flagAllocAge)},
		Choices: map[string]string{"tolerance": flagAllocTolerance},
	})
}
