package finance

import "testing"

func TestRetirementCorpus(t *testing.T) {
	plan := RetirementCorpus(30, 60, 50_000, 6, 10, DefaultLifeExpectancy)

	if plan.YearsToRetirement != 30 || plan.YearsInRetirement != 20 {
		t.Fatalf("horizon = %d/%d, want 30/20", plan.YearsToRetirement, plan.YearsInRetirement)
	}

	// 50k inflated at 6% over 30 years.
	within(t, plan.FutureMonthlyExpense, 287_174.56, 1, "future expense")

	if plan.CorpusNeeded <= plan.FutureMonthlyExpense*12 {
		t.Fatalf("corpus %.0f implausibly small", plan.CorpusNeeded)
	}
	if plan.MonthlySIP <= 0 || plan.MonthlySIP >= plan.CorpusNeeded {
		t.Fatalf("monthly SIP %.0f out of range for corpus %.0f", plan.MonthlySIP, plan.CorpusNeeded)
	}
}

func TestRetirementCorpusZeroRealRate(t *testing.T) {
	// Return equals inflation: corpus is the flat expense times months.
	plan := RetirementCorpus(30, 60, 50_000, 8, 8, DefaultLifeExpectancy)
	months := float64(plan.YearsInRetirement * 12)
	within(t, plan.CorpusNeeded, plan.FutureMonthlyExpense*months, 1e-4, "flat corpus")
}

func TestRetirementCorpusZeroReturn(t *testing.T) {
	// Zero nominal return: the SIP path must not divide by zero.
	plan := RetirementCorpus(40, 60, 30_000, 0, 0, DefaultLifeExpectancy)
	within(t, plan.MonthlySIP, plan.CorpusNeeded/(20*12), 1e-6, "linear SIP")
}
