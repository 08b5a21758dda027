// Package finance implements the closed-form financial formulas behind the
// calculators: loan amortization, compounding, retirement planning, tax
// slabs, and household ratios. All functions are pure and deterministic.
//
// Rate arguments are whole-number percents (8.5 means 8.5% p.a.) unless a
// parameter is explicitly documented as a decimal.
package finance

// LoanResult holds the outcome of an EMI calculation.
type LoanResult struct {
	EMI           float64
	TotalPayment  float64
	TotalInterest float64
}

// LoanEMI computes the equated monthly installment for a loan.
// A zero rate degenerates to straight principal division.
func LoanEMI(principal, annualRatePct, years float64) LoanResult {
	r := annualRatePct / 1200
	n := years * 12

	var emi float64
	if r == 0 {
		emi = principal / n
	} else {
		growth := pow1p(r, n)
		emi = principal * r * growth / (growth - 1)
	}

	total := emi * n
	return LoanResult{
		EMI:           emi,
		TotalPayment:  total,
		TotalInterest: total - principal,
	}
}

// AmortizationRow is one month of a loan repayment schedule.
type AmortizationRow struct {
	Month     int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// AmortizationSchedule builds the month-by-month repayment schedule.
// The final balance is clamped to zero to absorb float rounding.
func AmortizationSchedule(principal, annualRatePct, years float64) []AmortizationRow {
	res := LoanEMI(principal, annualRatePct, years)
	r := annualRatePct / 1200
	n := int(years * 12)

	balance := principal
	schedule := make([]AmortizationRow, 0, n)
	for month := 1; month <= n; month++ {
		interest := balance * r
		repaid := res.EMI - interest
		balance -= repaid
		if balance < 0 {
			balance = 0
		}
		schedule = append(schedule, AmortizationRow{
			Month:     month,
			Payment:   res.EMI,
			Principal: repaid,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return schedule
}
