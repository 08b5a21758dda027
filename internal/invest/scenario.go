package invest

import (
	"fmt"
	"math"

	"finsight/internal/finance"
)

// Scenario is one named projection in a comparison.
type Scenario struct {
	Name            string
	Projection      Projection
	OpportunityCost float64
}

// CompareScenarios projects starting today, waiting five years and
// doubling contributions. The waiting scenario carries the opportunity
// cost of the delay.
func CompareScenarios(p Params) ([]Scenario, error) {
	now, err := Project(p)
	if err != nil {
		return nil, err
	}
	scenarios := []Scenario{{Name: "Start Today", Projection: now}}

	if p.Years > 5 {
		delayed := p
		delayed.Years -= 5
		dp, err := Project(delayed)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, Scenario{
			Name:            "Wait 5 Years",
			Projection:      dp,
			OpportunityCost: math.Round(now.Expected.FinalBalance - dp.Expected.FinalBalance),
		})
	}

	doubled := p
	doubled.MonthlyContribution *= 2
	dbl, err := Project(doubled)
	if err != nil {
		return nil, err
	}
	scenarios = append(scenarios, Scenario{Name: "Double Contributions", Projection: dbl})

	return scenarios, nil
}

// RetirementParams describes a retirement gap estimate request.
// Inflation is a decimal rate (0.03 for 3%), unlike the whole-percent
// convention of the formula layer; callers taking percent input must
// divide by 100.
type RetirementParams struct {
	CurrentAge          int
	RetirementAge       int
	DesiredAnnualIncome float64
	CurrentSavings      float64
	LifeExpectancy      int
	Inflation           float64
}

// RetirementNeeds is the estimated retirement gap.
type RetirementNeeds struct {
	YearsToRetirement  int
	YearsInRetirement  int
	TotalNeeded        float64
	CurrentSavings     float64
	Gap                float64
	MonthlyRequired    float64
	FutureAnnualIncome float64
	Confidence         string
}

// EstimateRetirementNeeds inflates the desired income to retirement
// age and sizes the savings gap. The drawdown phase ignores growth.
func EstimateRetirementNeeds(p RetirementParams) (RetirementNeeds, error) {
	if p.RetirementAge == 0 {
		p.RetirementAge = 65
	}
	if p.LifeExpectancy == 0 {
		p.LifeExpectancy = 90
	}
	if p.Inflation == 0 {
		p.Inflation = 0.03
	}
	if p.CurrentAge <= 0 || p.CurrentAge >= p.RetirementAge {
		return RetirementNeeds{}, fmt.Errorf("current age %d must be below retirement age %d", p.CurrentAge, p.RetirementAge)
	}
	if p.RetirementAge >= p.LifeExpectancy {
		return RetirementNeeds{}, fmt.Errorf("retirement age %d must be below life expectancy %d", p.RetirementAge, p.LifeExpectancy)
	}

	yearsTo := p.RetirementAge - p.CurrentAge
	yearsIn := p.LifeExpectancy - p.RetirementAge

	futureIncome := p.DesiredAnnualIncome * math.Pow(1+p.Inflation, float64(yearsTo))
	totalNeeded := futureIncome * float64(yearsIn)
	gap := totalNeeded - p.CurrentSavings

	var monthly float64
	if gap > 0 {
		plan, err := RequiredContribution(gap, yearsTo, finance.Moderate)
		if err != nil {
			return RetirementNeeds{}, err
		}
		monthly = plan.MonthlyContribution
	}

	confidence := "low"
	switch {
	case yearsTo > 10:
		confidence = "high"
	case yearsTo > 5:
		confidence = "medium"
	}

	return RetirementNeeds{
		YearsToRetirement:  yearsTo,
		YearsInRetirement:  yearsIn,
		TotalNeeded:        math.Round(totalNeeded),
		CurrentSavings:     p.CurrentSavings,
		Gap:                math.Round(gap),
		MonthlyRequired:    monthly,
		FutureAnnualIncome: math.Round(futureIncome),
		Confidence:         confidence,
	}, nil
}

// Band is a low/high confidence interval.
type Band struct {
	Low  float64
	High float64
}

// RiskRecommendation flags tolerance/timeline mismatches.
type RiskRecommendation struct {
	Type    string
	Message string
}

// RiskAdjusted is a projection with volatility-derived ranges.
type RiskAdjusted struct {
	Expected       float64
	Range68        Band
	Range95        Band
	Recommendation RiskRecommendation
}

// RiskAdjustedReturns wraps a projection's expected outcome in one and
// two standard-deviation bands using fixed per-tolerance volatility.
func RiskAdjustedReturns(p Params) (RiskAdjusted, error) {
	proj, err := Project(p)
	if err != nil {
		return RiskAdjusted{}, err
	}
	stdDev, ok := volatility[p.Tolerance]
	if !ok {
		return RiskAdjusted{}, fmt.Errorf("unknown risk tolerance %q", p.Tolerance)
	}

	expected := proj.Expected.FinalBalance
	spread := expected * stdDev

	return RiskAdjusted{
		Expected:       expected,
		Range68:        Band{Low: expected - spread, High: expected + spread},
		Range95:        Band{Low: expected - 2*spread, High: expected + 2*spread},
		Recommendation: riskRecommendation(p.Tolerance, p.Years),
	}, nil
}

func riskRecommendation(tol finance.RiskTolerance, years int) RiskRecommendation {
	switch {
	case years < 3 && tol == finance.Aggressive:
		return RiskRecommendation{
			Type:    "warning",
			Message: "Aggressive strategy with short timeline (<3 years) increases risk of losses. Consider moderating risk.",
		}
	case years > 20 && tol == finance.Conservative:
		return RiskRecommendation{
			Type:    "info",
			Message: "Long timeline (20+ years) allows for more aggressive growth. Consider increasing stock allocation.",
		}
	default:
		return RiskRecommendation{
			Type:    "success",
			Message: "Your risk tolerance aligns well with your investment timeline.",
		}
	}
}
