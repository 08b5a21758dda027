package invest

import (
	"math"
	"testing"

	"finsight/internal/finance"
)

func TestProjectGrowthZeroRate(t *testing.T) {
	g := ProjectGrowth(1000, 100, 12, 0)
	if g.FinalBalance != 2200 {
		t.Fatalf("final = %g, want 2200", g.FinalBalance)
	}
	if g.TotalGains != 0 {
		t.Fatalf("gains = %g, want 0", g.TotalGains)
	}
	if g.ROI != 0 {
		t.Fatalf("roi = %g, want 0", g.ROI)
	}
}

func TestProjectGrowthCompounds(t *testing.T) {
	g := ProjectGrowth(10000, 0, 12, 0.01)
	want := math.Round(10000*math.Pow(1.01, 12)*100) / 100
	if g.FinalBalance != want {
		t.Fatalf("final = %g, want %g", g.FinalBalance, want)
	}
	if g.TotalContributions != 10000 {
		t.Fatalf("contributions = %g", g.TotalContributions)
	}
}

func TestProjectScenarioOrdering(t *testing.T) {
	p := Params{InitialAmount: 10000, MonthlyContribution: 500, Years: 10, AssetType: AssetMixed, Tolerance: finance.Moderate}
	proj, err := Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if !(proj.Conservative.FinalBalance < proj.Expected.FinalBalance) {
		t.Fatalf("conservative %g not below expected %g", proj.Conservative.FinalBalance, proj.Expected.FinalBalance)
	}
	if !(proj.Expected.FinalBalance < proj.Optimistic.FinalBalance) {
		t.Fatalf("expected %g not below optimistic %g", proj.Expected.FinalBalance, proj.Optimistic.FinalBalance)
	}
	if len(proj.Breakdown) != 10 {
		t.Fatalf("breakdown has %d rows, want 10", len(proj.Breakdown))
	}
	last := proj.Breakdown[len(proj.Breakdown)-1]
	if last.Balance != proj.Expected.FinalBalance {
		t.Fatalf("breakdown final %g != expected final %g", last.Balance, proj.Expected.FinalBalance)
	}
	for i := 1; i < len(proj.Breakdown); i++ {
		if proj.Breakdown[i].Balance <= proj.Breakdown[i-1].Balance {
			t.Fatalf("balance not increasing at year %d", proj.Breakdown[i].Year)
		}
	}
}

func TestProjectRejectsUnknownInputs(t *testing.T) {
	if _, err := Project(Params{Years: 5, AssetType: "crypto", Tolerance: finance.Moderate}); err == nil {
		t.Fatal("unknown asset type should error")
	}
	if _, err := Project(Params{Years: 5, AssetType: AssetMixed, Tolerance: "yolo"}); err == nil {
		t.Fatal("unknown tolerance should error")
	}
	if _, err := Project(Params{Years: 0, AssetType: AssetMixed, Tolerance: finance.Moderate}); err == nil {
		t.Fatal("zero years should error")
	}
}

func TestSummaryInsights(t *testing.T) {
	p := Params{InitialAmount: 1000, MonthlyContribution: 200, Years: 20, AssetType: AssetStocks, Tolerance: finance.Aggressive}
	proj, err := Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if proj.Summary.TotalInvested != 1000+200*20*12 {
		t.Fatalf("invested = %g", proj.Summary.TotalInvested)
	}
	// long horizon at 12% gives ROI well over 50; all three insights fire
	if len(proj.Summary.Insights) != 3 {
		t.Fatalf("got %d insights", len(proj.Summary.Insights))
	}
}

func TestRequiredContributionReachesTarget(t *testing.T) {
	plan, err := RequiredContribution(1000000, 15, finance.Moderate)
	if err != nil {
		t.Fatalf("RequiredContribution: %v", err)
	}
	// replay the payment and confirm it lands near the target
	g := ProjectGrowth(0, plan.MonthlyContribution, 15*12, 0.075/12)
	if math.Abs(g.FinalBalance-1000000) > 1000 {
		t.Fatalf("replayed balance %g too far from target", g.FinalBalance)
	}
	if plan.TotalContributions >= plan.TargetAmount {
		t.Fatalf("contributions %g should be below target %g", plan.TotalContributions, plan.TargetAmount)
	}
}

func TestRequiredContributionRejectsBadInput(t *testing.T) {
	if _, err := RequiredContribution(0, 10, finance.Moderate); err == nil {
		t.Fatal("zero target should error")
	}
	if _, err := RequiredContribution(1000, 0, finance.Moderate); err == nil {
		t.Fatal("zero years should error")
	}
}

func TestCompareScenarios(t *testing.T) {
	p := Params{InitialAmount: 5000, MonthlyContribution: 300, Years: 20, AssetType: AssetMixed, Tolerance: finance.Moderate}
	scenarios, err := CompareScenarios(p)
	if err != nil {
		t.Fatalf("CompareScenarios: %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("got %d scenarios", len(scenarios))
	}
	if scenarios[1].Name != "Wait 5 Years" || scenarios[1].OpportunityCost <= 0 {
		t.Fatalf("waiting scenario = %+v", scenarios[1])
	}
	if scenarios[2].Projection.Expected.FinalBalance <= scenarios[0].Projection.Expected.FinalBalance {
		t.Fatal("doubling contributions should raise the final balance")
	}
}

func TestCompareScenariosShortHorizon(t *testing.T) {
	p := Params{InitialAmount: 5000, MonthlyContribution: 300, Years: 4, AssetType: AssetMixed, Tolerance: finance.Moderate}
	scenarios, err := CompareScenarios(p)
	if err != nil {
		t.Fatalf("CompareScenarios: %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("got %d scenarios, want 2 without the waiting case", len(scenarios))
	}
}

func TestEstimateRetirementNeeds(t *testing.T) {
	needs, err := EstimateRetirementNeeds(RetirementParams{
		CurrentAge:          30,
		DesiredAnnualIncome: 50000,
	})
	if err != nil {
		t.Fatalf("EstimateRetirementNeeds: %v", err)
	}
	if needs.YearsToRetirement != 35 || needs.YearsInRetirement != 25 {
		t.Fatalf("years = %d/%d", needs.YearsToRetirement, needs.YearsInRetirement)
	}
	wantIncome := math.Round(50000 * math.Pow(1.03, 35))
	if needs.FutureAnnualIncome != wantIncome {
		t.Fatalf("future income = %g, want %g", needs.FutureAnnualIncome, wantIncome)
	}
	if needs.TotalNeeded != math.Round(wantIncome*25) {
		t.Fatalf("total needed = %g", needs.TotalNeeded)
	}
	if needs.Confidence != "high" {
		t.Fatalf("confidence = %q", needs.Confidence)
	}
	if needs.MonthlyRequired <= 0 {
		t.Fatalf("monthly required = %g", needs.MonthlyRequired)
	}
}

func TestEstimateRetirementNeedsDecimalInflation(t *testing.T) {
	needs, err := EstimateRetirementNeeds(RetirementParams{
		CurrentAge:          30,
		DesiredAnnualIncome: 50000,
		Inflation:           0.05,
	})
	if err != nil {
		t.Fatalf("EstimateRetirementNeeds: %v", err)
	}
	want := math.Round(50000 * math.Pow(1.05, 35))
	if needs.FutureAnnualIncome != want {
		t.Fatalf("future income = %g, want %g (0.05 means 5%%)", needs.FutureAnnualIncome, want)
	}
}

func TestEstimateRetirementNeedsRejectsOrdering(t *testing.T) {
	if _, err := EstimateRetirementNeeds(RetirementParams{CurrentAge: 70}); err == nil {
		t.Fatal("age past retirement should error")
	}
	if _, err := EstimateRetirementNeeds(RetirementParams{CurrentAge: 30, RetirementAge: 95}); err == nil {
		t.Fatal("retirement past life expectancy should error")
	}
}

func TestRiskAdjustedReturns(t *testing.T) {
	p := Params{InitialAmount: 10000, MonthlyContribution: 0, Years: 10, AssetType: AssetMixed, Tolerance: finance.Moderate}
	ra, err := RiskAdjustedReturns(p)
	if err != nil {
		t.Fatalf("RiskAdjustedReturns: %v", err)
	}
	spread := ra.Expected * 0.15
	if math.Abs(ra.Range68.High-ra.Expected-spread) > 1e-6 {
		t.Fatalf("68%% high = %g", ra.Range68.High)
	}
	if math.Abs(ra.Expected-ra.Range95.Low-2*spread) > 1e-6 {
		t.Fatalf("95%% low = %g", ra.Range95.Low)
	}
	if ra.Recommendation.Type != "success" {
		t.Fatalf("recommendation = %+v", ra.Recommendation)
	}
}

func TestRiskRecommendationMismatch(t *testing.T) {
	short, _ := RiskAdjustedReturns(Params{InitialAmount: 1000, Years: 2, AssetType: AssetMixed, Tolerance: finance.Aggressive})
	if short.Recommendation.Type != "warning" {
		t.Fatalf("short aggressive = %+v", short.Recommendation)
	}
	long, _ := RiskAdjustedReturns(Params{InitialAmount: 1000, Years: 25, AssetType: AssetMixed, Tolerance: finance.Conservative})
	if long.Recommendation.Type != "info" {
		t.Fatalf("long conservative = %+v", long.Recommendation)
	}
}
