// Package invest projects investment growth under historical return
// assumptions: multi-scenario compounding, goal backsolving, retirement
// gap estimation and risk-adjusted ranges.
package invest

import (
	"fmt"
	"math"

	"finsight/internal/finance"
)

// AssetType selects a historical return row.
type AssetType string

const (
	AssetStocks AssetType = "stocks"
	AssetBonds  AssetType = "bonds"
	AssetMixed  AssetType = "mixed"
)

// HistoricalReturns maps asset type and risk tolerance to an assumed
// annual return.
var HistoricalReturns = map[AssetType]map[finance.RiskTolerance]float64{
	AssetStocks: {finance.Conservative: 0.07, finance.Moderate: 0.10, finance.Aggressive: 0.12},
	AssetBonds:  {finance.Conservative: 0.03, finance.Moderate: 0.04, finance.Aggressive: 0.05},
	AssetMixed:  {finance.Conservative: 0.05, finance.Moderate: 0.075, finance.Aggressive: 0.095},
}

// volatility is the assumed annual standard deviation per tolerance.
var volatility = map[finance.RiskTolerance]float64{
	finance.Conservative: 0.05,
	finance.Moderate:     0.15,
	finance.Aggressive:   0.25,
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Growth is the outcome of one compounding run.
type Growth struct {
	FinalBalance       float64
	TotalContributions float64
	TotalGains         float64
	ROI                float64
}

// ProjectGrowth compounds an initial balance with monthly contributions
// at a monthly rate, month by month.
func ProjectGrowth(initial, monthly float64, months int, monthlyRate float64) Growth {
	balance := initial
	contributions := initial
	for i := 0; i < months; i++ {
		balance = balance*(1+monthlyRate) + monthly
		contributions += monthly
	}
	gains := balance - contributions

	g := Growth{
		FinalBalance:       round2(balance),
		TotalContributions: contributions,
		TotalGains:         round2(gains),
	}
	if contributions > 0 {
		g.ROI = round2(gains / contributions * 100)
	}
	return g
}

// Params describes one projection request.
type Params struct {
	InitialAmount       float64
	MonthlyContribution float64
	Years               int
	AssetType           AssetType
	Tolerance           finance.RiskTolerance
}

// YearRow is one year of the projection breakdown.
type YearRow struct {
	Year          int
	Balance       float64
	Contributions float64
	Gains         float64
}

// Insight is one observation attached to a projection summary.
type Insight struct {
	Title   string
	Message string
}

// Summary aggregates the expected scenario with derived insights.
type Summary struct {
	TotalInvested  float64
	ExpectedValue  float64
	ExpectedGains  float64
	AvgMonthlyGain float64
	ROI            float64
	Insights       []Insight
}

// Projection holds the three return scenarios plus summary and yearly
// breakdown.
type Projection struct {
	Conservative Growth
	Expected     Growth
	Optimistic   Growth
	Summary      Summary
	Breakdown    []YearRow
}

// Project runs the projection under three scenarios: 70%, 100% and
// 130% of the assumed return.
func Project(p Params) (Projection, error) {
	rate, err := annualReturn(p.AssetType, p.Tolerance)
	if err != nil {
		return Projection{}, err
	}
	if p.Years <= 0 {
		return Projection{}, fmt.Errorf("years must be positive, got %d", p.Years)
	}

	monthlyRate := rate / 12
	months := p.Years * 12

	proj := Projection{
		Conservative: ProjectGrowth(p.InitialAmount, p.MonthlyContribution, months, monthlyRate*0.7),
		Expected:     ProjectGrowth(p.InitialAmount, p.MonthlyContribution, months, monthlyRate),
		Optimistic:   ProjectGrowth(p.InitialAmount, p.MonthlyContribution, months, monthlyRate*1.3),
		Breakdown:    yearlyBreakdown(p.InitialAmount, p.MonthlyContribution, months, monthlyRate),
	}
	proj.Summary = summarize(p, proj.Expected)
	return proj, nil
}

func annualReturn(asset AssetType, tol finance.RiskTolerance) (float64, error) {
	row, ok := HistoricalReturns[asset]
	if !ok {
		return 0, fmt.Errorf("unknown asset type %q", asset)
	}
	rate, ok := row[tol]
	if !ok {
		return 0, fmt.Errorf("unknown risk tolerance %q", tol)
	}
	return rate, nil
}

func yearlyBreakdown(initial, monthly float64, totalMonths int, monthlyRate float64) []YearRow {
	years := (totalMonths + 11) / 12
	rows := make([]YearRow, 0, years)
	balance := initial
	contributions := initial

	for year := 1; year <= years; year++ {
		monthsThisYear := totalMonths - (year-1)*12
		if monthsThisYear > 12 {
			monthsThisYear = 12
		}
		for m := 0; m < monthsThisYear; m++ {
			balance = balance*(1+monthlyRate) + monthly
			contributions += monthly
		}
		rows = append(rows, YearRow{
			Year:          year,
			Balance:       round2(balance),
			Contributions: round2(contributions),
			Gains:         round2(balance - contributions),
		})
	}
	return rows
}

func summarize(p Params, expected Growth) Summary {
	totalInvested := p.InitialAmount + p.MonthlyContribution*float64(p.Years)*12

	s := Summary{
		TotalInvested:  totalInvested,
		ExpectedValue:  expected.FinalBalance,
		ExpectedGains:  expected.TotalGains,
		AvgMonthlyGain: round2(expected.TotalGains / (float64(p.Years) * 12)),
		ROI:            expected.ROI,
	}

	s.Insights = append(s.Insights, Insight{
		Title:   "Time is Your Asset",
		Message: fmt.Sprintf("Over %d years, compound interest can turn %.2f into %.2f.", p.Years, totalInvested, expected.FinalBalance),
	})
	if p.MonthlyContribution > 0 {
		s.Insights = append(s.Insights, Insight{
			Title:   "Consistency Pays Off",
			Message: fmt.Sprintf("Your regular %.2f/month contributions will generate approximately %.2f in gains.", p.MonthlyContribution, expected.FinalBalance-totalInvested),
		})
	}
	if expected.ROI > 50 {
		s.Insights = append(s.Insights, Insight{
			Title:   "Strong Returns Expected",
			Message: fmt.Sprintf("With %.2f%% ROI, you're on track for excellent wealth building. Stay the course!", expected.ROI),
		})
	}
	return s
}

// ContributionPlan is a goal solved backward to a monthly payment.
type ContributionPlan struct {
	MonthlyContribution float64
	TotalContributions  float64
	TotalGains          float64
	Years               int
	TargetAmount        float64
}

// RequiredContribution solves the future-value annuity formula for the
// monthly payment that reaches target in the given years under the
// mixed-asset return for tol.
func RequiredContribution(target float64, years int, tol finance.RiskTolerance) (ContributionPlan, error) {
	if target <= 0 {
		return ContributionPlan{}, fmt.Errorf("target must be positive, got %g", target)
	}
	if years <= 0 {
		return ContributionPlan{}, fmt.Errorf("years must be positive, got %d", years)
	}
	rate, err := annualReturn(AssetMixed, tol)
	if err != nil {
		return ContributionPlan{}, err
	}

	monthlyRate := rate / 12
	months := years * 12

	var payment float64
	if monthlyRate == 0 {
		payment = target / float64(months)
	} else {
		payment = target * monthlyRate / (math.Pow(1+monthlyRate, float64(months)) - 1)
	}

	return ContributionPlan{
		MonthlyContribution: round2(payment),
		TotalContributions:  round2(payment * float64(months)),
		TotalGains:          target - payment*float64(months),
		Years:               years,
		TargetAmount:        target,
	}, nil
}
