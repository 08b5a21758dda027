package finance

import "math"

// RiskTolerance shifts age-based allocation and projection returns.
type RiskTolerance string

const (
	Conservative RiskTolerance = "conservative"
	Moderate     RiskTolerance = "moderate"
	Aggressive   RiskTolerance = "aggressive"
)

// toleranceAdjustment shifts the 110-minus-age stock rule per tolerance.
var toleranceAdjustment = map[RiskTolerance]int{
	Conservative: -10,
	Moderate:     0,
	Aggressive:   10,
}

// AgeAllocation is a stock/bond split with a suggested equity breakdown.
type AgeAllocation struct {
	Stocks int
	Bonds  int

	LargeCap      int
	International int
	SmallCap      int
}

// AllocationByAge applies the 110-minus-age rule of thumb, shifted by
// risk tolerance and clamped to 20–90% equity.
func AllocationByAge(age int, tolerance RiskTolerance) AgeAllocation {
	stocks := 110 - age + toleranceAdjustment[tolerance]
	if stocks < 20 {
		stocks = 20
	}
	if stocks > 90 {
		stocks = 90
	}

	return AgeAllocation{
		Stocks:        stocks,
		Bonds:         100 - stocks,
		LargeCap:      int(math.Round(float64(stocks) * 0.6)),
		International: int(math.Round(float64(stocks) * 0.3)),
		SmallCap:      int(math.Round(float64(stocks) * 0.1)),
	}
}

// DTIResult rates a debt-to-income ratio.
type DTIResult struct {
	Ratio          float64 // percent, one decimal
	Rating         string
	Recommendation string
}

// DebtToIncome computes the DTI ratio with the standard 28/36/43 rating
// cutoffs. Zero income yields a zero ratio rather than dividing.
func DebtToIncome(monthlyDebt, monthlyIncome float64) DTIResult {
	if monthlyIncome == 0 {
		return DTIResult{Rating: "Excellent", Recommendation: dtiAdvice(0)}
	}

	ratio := math.Round(monthlyDebt/monthlyIncome*1000) / 10

	rating := "Excellent"
	switch {
	case ratio > 43:
		rating = "Poor"
	case ratio > 36:
		rating = "Fair"
	case ratio > 28:
		rating = "Good"
	}

	return DTIResult{Ratio: ratio, Rating: rating, Recommendation: dtiAdvice(ratio)}
}

func dtiAdvice(ratio float64) string {
	switch {
	case ratio <= 28:
		return "Your debt-to-income ratio is excellent. You have good financial flexibility."
	case ratio <= 36:
		return "Your debt-to-income ratio is good. Consider paying down debt to improve it further."
	case ratio <= 43:
		return "Your debt-to-income ratio is manageable but high. Focus on reducing debt."
	default:
		return "Your debt-to-income ratio is high. Prioritize debt reduction immediately."
	}
}

// SavingsRateResult rates a monthly savings rate.
type SavingsRateResult struct {
	Rate           float64 // percent, one decimal
	Rating         string
	Recommendation string
}

// SavingsRate computes savings as a share of income with 5/10/20 cutoffs.
func SavingsRate(monthlyIncome, monthlySavings float64) SavingsRateResult {
	if monthlyIncome == 0 {
		return SavingsRateResult{Rating: "Poor", Recommendation: savingsAdvice(0)}
	}

	rate := math.Round(monthlySavings/monthlyIncome*1000) / 10

	rating := "Excellent"
	switch {
	case rate < 5:
		rating = "Poor"
	case rate < 10:
		rating = "Fair"
	case rate < 20:
		rating = "Good"
	}

	return SavingsRateResult{Rate: rate, Rating: rating, Recommendation: savingsAdvice(rate)}
}

func savingsAdvice(rate float64) string {
	switch {
	case rate >= 20:
		return "Excellent savings rate! You're on track for strong financial security."
	case rate >= 10:
		return "Good savings rate. Try to increase to 20% or more for faster wealth building."
	case rate >= 5:
		return "You're saving, but try to increase your rate. Start with the 20% rule."
	default:
		return "Your savings rate is low. Start with at least 5% and increase gradually."
	}
}

// EmergencyFundResult sizes an emergency fund at three ambition levels.
type EmergencyFundResult struct {
	Recommended float64
	Minimum     float64
	Ideal       float64
}

// EmergencyFund sizes an emergency fund from monthly expenses. months is
// the recommended cover, conventionally 6; minimum is 3 months and ideal
// a full year regardless.
func EmergencyFund(monthlyExpenses float64, months int) EmergencyFundResult {
	return EmergencyFundResult{
		Recommended: monthlyExpenses * float64(months),
		Minimum:     monthlyExpenses * 3,
		Ideal:       monthlyExpenses * 12,
	}
}

// BreakEven returns the unit count where revenue covers fixed costs.
// ok is false when price equals variable cost, since no volume can ever
// break even.
func BreakEven(fixedCosts, pricePerUnit, variableCostPerUnit float64) (units int, ok bool) {
	margin := pricePerUnit - variableCostPerUnit
	if margin == 0 {
		return 0, false
	}
	return int(math.Ceil(fixedCosts / margin)), true
}
