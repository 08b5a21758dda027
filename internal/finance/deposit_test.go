package finance

import "testing"

func TestSIPFutureValueKnownValue(t *testing.T) {
	res := SIPFutureValue(5000, 12, 10)
	within(t, res.Invested, 600_000, 1e-9, "invested")
	within(t, res.FutureValue, 1_161_695, 10, "future value")
	within(t, res.Returns, res.FutureValue-res.Invested, 1e-6, "returns identity")
}

func TestSIPFutureValueZeroRate(t *testing.T) {
	res := SIPFutureValue(1000, 0, 5)
	within(t, res.FutureValue, 60_000, 1e-9, "zero-rate FV")
	within(t, res.Returns, 0, 1e-9, "zero-rate returns")
}

func TestFDMaturityQuarterly(t *testing.T) {
	// 1L at 6.5% for 5 years, quarterly compounding.
	res := FDMaturity(100_000, 6.5, 5, DefaultCompounding)
	within(t, res.Maturity, 138_041.98, 1, "maturity")
	within(t, res.Interest, res.Maturity-100_000, 1e-9, "interest identity")
}

func TestFDMaturityCompoundingMatters(t *testing.T) {
	annual := FDMaturity(100_000, 8, 3, 1)
	monthly := FDMaturity(100_000, 8, 3, 12)
	if monthly.Maturity <= annual.Maturity {
		t.Fatalf("monthly compounding %.2f not above annual %.2f", monthly.Maturity, annual.Maturity)
	}
}

func TestCompoundInterestMatchesFD(t *testing.T) {
	ci := CompoundInterest(100_000, 6.5, 5, 4)
	fd := FDMaturity(100_000, 6.5, 5, 4)
	within(t, ci.FinalAmount, fd.Maturity, 1e-6, "amount parity")
}
