package finance

// DefaultLifeExpectancy caps the drawdown horizon for retirement planning.
const DefaultLifeExpectancy = 80

// RetirementPlan holds the corpus target and funding requirement for
// retiring at a given age.
type RetirementPlan struct {
	CorpusNeeded         float64
	MonthlySIP           float64
	FutureMonthlyExpense float64
	YearsToRetirement    int
	YearsInRetirement    int
}

// RetirementCorpus sizes the corpus needed at retirement and the level
// monthly contribution required to build it.
//
// Today's expense is inflated to the retirement age, the corpus is the
// present value of that expense stream over the retirement years at the
// real (return minus inflation) rate, and the contribution solves the
// annuity-due future value formula for the corpus. Both rate terms fall
// back to linear accumulation when they are zero.
func RetirementCorpus(currentAge, retireAge int, monthlyExpense, inflationPct, returnPct float64, lifeExpectancy int) RetirementPlan {
	yearsToRetire := retireAge - currentAge
	yearsRetired := lifeExpectancy - retireAge

	futureExpense := monthlyExpense * pow1p(inflationPct/100, float64(yearsToRetire))

	r := (returnPct - inflationPct) / 1200
	n := float64(yearsRetired * 12)
	var corpus float64
	if r == 0 {
		corpus = futureExpense * n
	} else {
		corpus = futureExpense * (1 - pow1p(r, -n)) / r
	}

	rSIP := returnPct / 1200
	nSIP := float64(yearsToRetire * 12)
	var sip float64
	if rSIP == 0 {
		sip = corpus / nSIP
	} else {
		sip = corpus * rSIP / ((pow1p(rSIP, nSIP) - 1) * (1 + rSIP))
	}

	return RetirementPlan{
		CorpusNeeded:         corpus,
		MonthlySIP:           sip,
		FutureMonthlyExpense: futureExpense,
		YearsToRetirement:    yearsToRetire,
		YearsInRetirement:    yearsRetired,
	}
}
