// Package budget plans monthly budgets from allocation rules, compares
// them against actual spending and derives recommendations.
package budget

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const budgetKey = "budget"

// Ratio splits income across the three top-level buckets.
type Ratio struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// Built-in rule names.
const (
	Rule503020 = "50/30/20"
	Rule702010 = "70/20/10"
	Rule8020   = "80/20"
	RuleCustom = "custom"
)

// Rules maps rule names to their bucket ratios. Built-in ratios sum
// to 1.0; custom is a placeholder filled by the caller.
var Rules = map[string]Ratio{
	Rule503020: {Needs: 0.50, Wants: 0.30, Savings: 0.20},
	Rule702010: {Needs: 0.70, Wants: 0.20, Savings: 0.10},
	Rule8020:   {Needs: 0.80, Wants: 0, Savings: 0.20},
	RuleCustom: {},
}

// Bucket names for category weights.
const (
	BucketNeeds   = "needs"
	BucketWants   = "wants"
	BucketSavings = "savings"
)

// Weight assigns a category a fixed fraction of its parent bucket.
type Weight struct {
	Category string
	Bucket   string
	Fraction float64
}

// CategoryWeights is the fixed sub-allocation table. Fractions within
// each bucket sum to 1.0.
var CategoryWeights = []Weight{
	{"housing", BucketNeeds, 0.35},
	{"transportation", BucketNeeds, 0.15},
	{"groceries", BucketNeeds, 0.12},
	{"utilities", BucketNeeds, 0.10},
	{"insurance", BucketNeeds, 0.10},
	{"healthcare", BucketNeeds, 0.08},
	{"debt_payments", BucketNeeds, 0.10},
	{"dining_out", BucketWants, 0.30},
	{"entertainment", BucketWants, 0.25},
	{"shopping", BucketWants, 0.25},
	{"subscriptions", BucketWants, 0.20},
	{"emergency_fund", BucketSavings, 0.40},
	{"retirement", BucketSavings, 0.35},
	{"goals", BucketSavings, 0.25},
}

// Budget is one active monthly plan.
type Budget struct {
	Income     float64            `json:"income"`
	Rule       string             `json:"rule"`
	Needs      float64            `json:"needs"`
	Wants      float64            `json:"wants"`
	Savings    float64            `json:"savings"`
	Categories map[string]float64 `json:"categories"`
	Created    time.Time          `json:"created"`
}

// Snapshots is the persistence surface the planner needs.
type Snapshots interface {
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error
	Remove(key string) error
}

// Planner creates and persists budgets. One budget is active at a
// time; creating a new one replaces it.
type Planner struct {
	snaps Snapshots
}

// NewPlanner returns a planner backed by snaps.
func NewPlanner(snaps Snapshots) *Planner {
	return &Planner{snaps: snaps}
}

// Create builds a budget for monthlyIncome under the named rule and
// persists it. For RuleCustom the caller supplies the ratios; they are
// used as given and are not checked to sum to 1.
func (p *Planner) Create(monthlyIncome float64, rule string, custom *Ratio) (Budget, error) {
	if monthlyIncome <= 0 {
		return Budget{}, fmt.Errorf("income must be positive, got %g", monthlyIncome)
	}
	ratio, ok := Rules[rule]
	if !ok {
		return Budget{}, fmt.Errorf("unknown budget rule %q", rule)
	}
	if rule == RuleCustom {
		if custom == nil {
			return Budget{}, fmt.Errorf("custom rule requires ratios")
		}
		ratio = *custom
	}

	b := Budget{
		Income:     monthlyIncome,
		Rule:       rule,
		Needs:      monthlyIncome * ratio.Needs,
		Wants:      monthlyIncome * ratio.Wants,
		Savings:    monthlyIncome * ratio.Savings,
		Categories: make(map[string]float64, len(CategoryWeights)),
		Created:    time.Now().UTC(),
	}
	buckets := map[string]float64{
		BucketNeeds:   b.Needs,
		BucketWants:   b.Wants,
		BucketSavings: b.Savings,
	}
	for _, w := range CategoryWeights {
		b.Categories[w.Category] = buckets[w.Bucket] * w.Fraction
	}

	if err := p.snaps.Set(budgetKey, b); err != nil {
		return Budget{}, fmt.Errorf("saving budget: %w", err)
	}
	return b, nil
}

// Load returns the active budget, if any.
func (p *Planner) Load() (Budget, bool, error) {
	var b Budget
	ok, err := p.snaps.Get(budgetKey, &b)
	if err != nil {
		return Budget{}, false, fmt.Errorf("loading budget: %w", err)
	}
	return b, ok, nil
}

// Clear removes the active budget.
func (p *Planner) Clear() error {
	return p.snaps.Remove(budgetKey)
}

// CategoryStatus compares one category's actual spend to its budget.
type CategoryStatus struct {
	Category string
	Budgeted float64
	Actual   float64
	Diff     float64
	PctDiff  float64
}

// Analysis groups categories by how they track against the budget.
type Analysis struct {
	OverBudget    []CategoryStatus
	UnderBudget   []CategoryStatus
	OnTrack       []CategoryStatus
	TotalOverage  float64
	TotalUnderUse float64
}

// Analyze classifies each budgeted category against actual spending.
// Within 5% either way counts as on track. Categories are visited in
// weight-table order so results are deterministic.
func Analyze(b Budget, actual map[string]float64) Analysis {
	var a Analysis
	for _, w := range CategoryWeights {
		budgeted := b.Categories[w.Category]
		spent := actual[w.Category]
		diff := spent - budgeted
		pct := 0.0
		if budgeted > 0 {
			pct = diff / budgeted * 100
		}
		st := CategoryStatus{Category: w.Category, Budgeted: budgeted, Actual: spent, Diff: diff, PctDiff: pct}

		switch {
		case math.Abs(pct) < 5:
			a.OnTrack = append(a.OnTrack, st)
		case diff > 0:
			a.OverBudget = append(a.OverBudget, st)
			a.TotalOverage += diff
		default:
			a.UnderBudget = append(a.UnderBudget, st)
			a.TotalUnderUse += -diff
		}
	}
	return a
}

// Recommendation is one actionable suggestion.
type Recommendation struct {
	Priority string
	Category string
	Message  string
	Action   string
}

// Recommendations derives suggestions from an analysis. The rules are
// independent; every applicable one fires, in a fixed order.
func Recommendations(a Analysis, b Budget) []Recommendation {
	var recs []Recommendation

	over := append([]CategoryStatus(nil), a.OverBudget...)
	sort.Slice(over, func(i, j int) bool { return over[i].Diff > over[j].Diff })
	under := append([]CategoryStatus(nil), a.UnderBudget...)
	sort.Slice(under, func(i, j int) bool { return -under[i].Diff > -under[j].Diff })

	if len(over) > 0 {
		top := over[0]
		recs = append(recs, Recommendation{
			Priority: "high",
			Category: top.Category,
			Message:  fmt.Sprintf("You're %.2f over budget on %s. Consider reducing spending by %.0f%%.", top.Diff, FormatCategory(top.Category), math.Abs(top.PctDiff)),
			Action:   fmt.Sprintf("Set a weekly limit of %.2f to stay on track.", top.Budgeted/4),
		})
	}

	if len(over) > 0 && len(under) > 0 {
		recs = append(recs, Recommendation{
			Priority: "medium",
			Category: "reallocation",
			Message:  fmt.Sprintf("You have %.2f unused in %s.", -under[0].Diff, FormatCategory(under[0].Category)),
			Action:   fmt.Sprintf("Consider reallocating some to %s where you're over budget.", FormatCategory(over[0].Category)),
		})
	}

	if rate := b.Savings / b.Income * 100; rate < 15 {
		recs = append(recs, Recommendation{
			Priority: "medium",
			Category: "savings",
			Message:  fmt.Sprintf("Your savings rate is %.1f%%, below the recommended 20%%.", rate),
			Action:   fmt.Sprintf("Try to increase savings by %.2f/month.", b.Income*0.20-b.Savings),
		})
	}

	if disc := b.Wants / b.Income * 100; disc > 35 {
		recs = append(recs, Recommendation{
			Priority: "low",
			Category: "discretionary",
			Message:  fmt.Sprintf("%.0f%% of income goes to discretionary spending.", disc),
			Action:   "Look for subscription services or entertainment costs you can reduce.",
		})
	}

	return recs
}

// FormatCategory turns a snake_case category key into a display name.
func FormatCategory(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Goal is a named savings target.
type Goal struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
}

// NewGoal builds a goal with a fresh id.
func NewGoal(name string, targetAmount float64) Goal {
	return Goal{ID: uuid.NewString(), Name: name, TargetAmount: targetAmount}
}

// GoalPlan is the contribution schedule for one goal.
type GoalPlan struct {
	Goal                Goal
	MonthlyContribution float64
	MonthsNeeded        int
	CompletionDate      time.Time
}

// GoalContributions splits the budget's goals allocation across targets
// in proportion to their size and projects a completion date for each.
func GoalContributions(b Budget, goals []Goal, now time.Time) []GoalPlan {
	if len(goals) == 0 {
		return nil
	}
	available := b.Categories["goals"]
	var total float64
	for _, g := range goals {
		total += g.TargetAmount
	}
	if total <= 0 || available <= 0 {
		return nil
	}

	plans := make([]GoalPlan, len(goals))
	for i, g := range goals {
		monthly := available * g.TargetAmount / total
		months := int(math.Ceil(g.TargetAmount / monthly))
		plans[i] = GoalPlan{
			Goal:                g,
			MonthlyContribution: monthly,
			MonthsNeeded:        months,
			CompletionDate:      now.AddDate(0, months, 0),
		}
	}
	return plans
}
