package finance

import "math"

// pow1p returns (1+r)^n.
func pow1p(r, n float64) float64 {
	return math.Pow(1+r, n)
}

// SIPResult holds the outcome of a systematic investment plan projection.
type SIPResult struct {
	FutureValue float64
	Invested    float64
	Returns     float64
}

// SIPFutureValue computes the maturity value of a monthly SIP using the
// annuity-due future value formula (contributions at the start of each
// month, so each payment compounds one extra period).
func SIPFutureValue(monthly, annualRatePct, years float64) SIPResult {
	r := annualRatePct / 1200
	n := years * 12

	var fv float64
	if r == 0 {
		fv = monthly * n
	} else {
		fv = monthly * ((pow1p(r, n) - 1) / r) * (1 + r)
	}

	invested := monthly * n
	return SIPResult{
		FutureValue: fv,
		Invested:    invested,
		Returns:     fv - invested,
	}
}

// FDResult holds a fixed deposit maturity calculation.
type FDResult struct {
	Maturity float64
	Interest float64
}

// DefaultCompounding is the quarterly compounding most banks apply to
// fixed deposits.
const DefaultCompounding = 4

// FDMaturity computes the maturity amount of a fixed deposit compounded
// compoundingPerYear times a year.
func FDMaturity(principal, annualRatePct, years float64, compoundingPerYear int) FDResult {
	k := float64(compoundingPerYear)
	r := annualRatePct / 100
	maturity := principal * math.Pow(1+r/k, k*years)
	return FDResult{
		Maturity: maturity,
		Interest: maturity - principal,
	}
}

// CompoundResult holds a generic compound interest calculation.
type CompoundResult struct {
	FinalAmount float64
	Interest    float64
	Principal   float64
}

// CompoundInterest grows principal at annualRatePct compounded frequency
// times per year for the given number of years.
func CompoundInterest(principal, annualRatePct, years float64, frequency int) CompoundResult {
	k := float64(frequency)
	r := annualRatePct / 100
	amount := principal * math.Pow(1+r/k, k*years)
	return CompoundResult{
		FinalAmount: amount,
		Interest:    amount - principal,
		Principal:   principal,
	}
}
