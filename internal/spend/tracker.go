package spend

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

const ledgerKey = "expenses"

// Expense is one ledger entry.
type Expense struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// Snapshots is the persistence surface the tracker needs.
type Snapshots interface {
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error
	Remove(key string) error
}

// Tracker owns the expense ledger. Every mutation rewrites the whole
// ledger snapshot.
type Tracker struct {
	snaps  Snapshots
	table  []Category
	ledger []Expense
	nextID int64
}

// NewTracker loads the ledger from snaps and categorizes with table.
func NewTracker(snaps Snapshots, table []Category) (*Tracker, error) {
	t := &Tracker{snaps: snaps, table: table, nextID: 1}
	if _, err := snaps.Get(ledgerKey, &t.ledger); err != nil {
		return nil, fmt.Errorf("loading expense ledger: %w", err)
	}
	for _, e := range t.ledger {
		if e.ID >= t.nextID {
			t.nextID = e.ID + 1
		}
	}
	return t, nil
}

// Add categorizes and appends an expense, then persists the ledger.
func (t *Tracker) Add(description string, amount float64, date time.Time) (Expense, error) {
	if amount <= 0 {
		return Expense{}, fmt.Errorf("amount must be positive, got %g", amount)
	}
	e := Expense{
		ID:          t.nextID,
		Description: description,
		Amount:      amount,
		Date:        date,
		Category:    Categorize(t.table, description),
		CreatedAt:   time.Now().UTC(),
	}
	t.nextID++
	t.ledger = append(t.ledger, e)
	if err := t.snaps.Set(ledgerKey, t.ledger); err != nil {
		return Expense{}, fmt.Errorf("saving expense ledger: %w", err)
	}
	return e, nil
}

// Expenses returns the ledger in insertion order.
func (t *Tracker) Expenses() []Expense {
	return t.ledger
}

// Clear empties the ledger and removes its snapshot.
func (t *Tracker) Clear() error {
	t.ledger = nil
	t.nextID = 1
	return t.snaps.Remove(ledgerKey)
}

// InRange returns the expenses dated within [start, end].
func (t *Tracker) InRange(start, end time.Time) []Expense {
	var out []Expense
	for _, e := range t.ledger {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out
}

// CategoryTotalsAll sums the whole ledger per category.
func (t *Tracker) CategoryTotalsAll() map[string]float64 {
	return t.CategoryTotals(t.ledger)
}

// CategoryTotals sums amounts per category over subset. Every declared
// category is present in the result, zero when unused.
func (t *Tracker) CategoryTotals(subset []Expense) map[string]float64 {
	totals := make(map[string]float64, len(t.table))
	for _, c := range t.table {
		totals[c.Name] = 0
	}
	for _, e := range subset {
		totals[e.Category] += e.Amount
	}
	return totals
}

// InsightType classifies an insight for display.
type InsightType string

const (
	InsightWarning InsightType = "warning"
	InsightTip     InsightType = "tip"
	InsightInfo    InsightType = "info"
	InsightSuccess InsightType = "success"
)

// Insight is one derived observation about spending.
type Insight struct {
	Type    InsightType
	Title   string
	Message string
}

// Subscription is a detected recurring charge.
type Subscription struct {
	Description string
	Amount      float64
	Frequency   int
	Category    string
}

// Insights derives all applicable observations over the ledger, in a
// fixed priority order: top category, dining share, subscriptions,
// month-over-month trend.
func (t *Tracker) Insights(now time.Time) []Insight {
	var insights []Insight
	totals := t.CategoryTotalsAll()

	var total float64
	for _, v := range totals {
		total += v
	}

	topCat, topAmount := "", 0.0
	for _, c := range t.table {
		if totals[c.Name] > topAmount {
			topAmount = totals[c.Name]
			topCat = c.Name
		}
	}
	if topAmount > 0 {
		insights = append(insights, Insight{
			Type:    InsightWarning,
			Title:   "Highest Spending: " + topCat,
			Message: fmt.Sprintf("%.2f (%.1f%%) went to %s.", topAmount, topAmount/total*100, topCat),
		})
	}

	if dining := totals["Food & Dining"]; dining > total*0.35 {
		insights = append(insights, Insight{
			Type:    InsightTip,
			Title:   "Reduce Dining Out",
			Message: fmt.Sprintf("Food & Dining is %.0f%% of spending. Meal planning could save about %.0f/month.", dining/total*100, dining*0.2),
		})
	}

	if subs := t.DetectSubscriptions(); len(subs) > 0 {
		var subsTotal float64
		for _, s := range subs {
			subsTotal += s.Amount
		}
		insights = append(insights, Insight{
			Type:    InsightInfo,
			Title:   "Subscription Alert",
			Message: fmt.Sprintf("%d recurring subscriptions total %.2f/month. Consider canceling unused ones.", len(subs), subsTotal),
		})
	}

	last := t.monthTotal(now.AddDate(0, -1, 0))
	this := t.monthTotal(now)
	if last > 0 {
		change := (this - last) / last * 100
		if math.Abs(change) > 10 {
			typ, dir := InsightSuccess, "lower"
			if change > 0 {
				typ, dir = InsightWarning, "higher"
			}
			insights = append(insights, Insight{
				Type:    typ,
				Title:   "Spending Trend",
				Message: fmt.Sprintf("Spending is %.0f%% %s than last month.", math.Abs(change), dir),
			})
		}
	}

	return insights
}

// DetectSubscriptions groups the ledger by lowercase-trimmed description
// and flags groups of 2+ whose mean absolute deviation is under 5% of
// their mean amount.
func (t *Tracker) DetectSubscriptions() []Subscription {
	groups := make(map[string][]Expense)
	var order []string
	for _, e := range t.ledger {
		key := strings.TrimSpace(strings.ToLower(e.Description))
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e)
	}

	var subs []Subscription
	for _, key := range order {
		exps := groups[key]
		if len(exps) < 2 {
			continue
		}
		var mean float64
		for _, e := range exps {
			mean += e.Amount
		}
		mean /= float64(len(exps))

		var dev float64
		for _, e := range exps {
			dev += math.Abs(e.Amount - mean)
		}
		dev /= float64(len(exps))

		if dev < mean*0.05 {
			subs = append(subs, Subscription{
				Description: exps[0].Description,
				Amount:      mean,
				Frequency:   len(exps),
				Category:    exps[0].Category,
			})
		}
	}
	return subs
}

func (t *Tracker) monthTotal(ref time.Time) float64 {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	var total float64
	for _, e := range t.InRange(start, end) {
		total += e.Amount
	}
	return total
}

// WeekReport summarizes the trailing 7 days of spending.
type WeekReport struct {
	Total        float64
	DailyAverage float64
	Count        int
	Categories   map[string]float64
	TopDay       string
	TopDayAmount float64
}

// WeeklyReport builds a WeekReport for the 7 days ending at now.
func (t *Tracker) WeeklyReport(now time.Time) WeekReport {
	weekAgo := now.AddDate(0, 0, -7)
	week := t.InRange(weekAgo, now)

	var total float64
	for _, e := range week {
		total += e.Amount
	}

	r := WeekReport{
		Total:        total,
		DailyAverage: total / 7,
		Count:        len(week),
		Categories:   t.CategoryTotals(week),
	}

	dayTotals := make(map[string]float64)
	for _, e := range week {
		dayTotals[e.Date.Format("2006-01-02")] += e.Amount
	}
	days := make([]string, 0, len(dayTotals))
	for d := range dayTotals {
		days = append(days, d)
	}
	sort.Strings(days)
	for _, d := range days {
		if dayTotals[d] > r.TopDayAmount {
			r.TopDayAmount = dayTotals[d]
			r.TopDay = d
		}
	}
	return r
}
