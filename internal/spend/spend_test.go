package spend

import (
	"testing"
	"time"
)

type memSnaps struct {
	data map[string][]Expense
}

func newMemSnaps() *memSnaps { return &memSnaps{data: make(map[string][]Expense)} }

func (m *memSnaps) Get(key string, dest any) (bool, error) {
	v, ok := m.data[key]
	if !ok {
		return false, nil
	}
	*(dest.(*[]Expense)) = append([]Expense(nil), v...)
	return true, nil
}

func (m *memSnaps) Set(key string, value any) error {
	m.data[key] = append([]Expense(nil), value.([]Expense)...)
	return nil
}

func (m *memSnaps) Remove(key string) error {
	delete(m.data, key)
	return nil
}

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := NewTracker(newMemSnaps(), DefaultCategories)
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	return tr
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		desc string
		want string
	}{
		{"Starbucks Coffee", "Food & Dining"},
		{"UBER trip downtown", "Transportation"},
		{"Netflix monthly", "Entertainment"},
		{"random unmatched text", "Other"},
		{"", "Other"},
	}
	for _, c := range cases {
		if got := Categorize(DefaultCategories, c.desc); got != c.want {
			t.Errorf("Categorize(%q) = %q, want %q", c.desc, got, c.want)
		}
	}
}

func TestCategorizeTableOrder(t *testing.T) {
	// "gas" appears under both Transportation and Bills & Utilities;
	// the earlier entry wins.
	if got := Categorize(DefaultCategories, "gas refill"); got != "Transportation" {
		t.Fatalf("got %q, want Transportation", got)
	}
}

func TestWithExtraKeywords(t *testing.T) {
	table := WithExtraKeywords(DefaultCategories, map[string][]string{
		"Food & Dining": {"dosa"},
	})
	if got := Categorize(table, "Dosa corner"); got != "Food & Dining" {
		t.Fatalf("got %q, want Food & Dining", got)
	}
	// original table untouched
	if got := Categorize(DefaultCategories, "Dosa corner"); got != "Other" {
		t.Fatalf("default table mutated: got %q", got)
	}
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	tr := newTracker(t)
	now := time.Now()

	a, err := tr.Add("Starbucks", 5.50, now)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	b, _ := tr.Add("Uber", 12, now)
	if b.ID <= a.ID {
		t.Fatalf("ids not increasing: %d then %d", a.ID, b.ID)
	}
	if a.Category != "Food & Dining" {
		t.Fatalf("category = %q", a.Category)
	}
}

func TestAddRejectsNonPositive(t *testing.T) {
	tr := newTracker(t)
	if _, err := tr.Add("x", 0, time.Now()); err == nil {
		t.Fatal("expected error for zero amount")
	}
	if _, err := tr.Add("x", -3, time.Now()); err == nil {
		t.Fatal("expected error for negative amount")
	}
}

func TestIDsSurviveReload(t *testing.T) {
	snaps := newMemSnaps()
	tr, _ := NewTracker(snaps, DefaultCategories)
	tr.Add("a", 1, time.Now())
	last, _ := tr.Add("b", 2, time.Now())

	tr2, err := NewTracker(snaps, DefaultCategories)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	next, _ := tr2.Add("c", 3, time.Now())
	if next.ID <= last.ID {
		t.Fatalf("id %d not above persisted max %d", next.ID, last.ID)
	}
}

func TestCategoryTotalsAllKeysPresent(t *testing.T) {
	tr := newTracker(t)
	tr.Add("Starbucks", 10, time.Now())

	totals := tr.CategoryTotalsAll()
	if len(totals) != len(DefaultCategories) {
		t.Fatalf("got %d categories, want %d", len(totals), len(DefaultCategories))
	}
	if totals["Food & Dining"] != 10 {
		t.Fatalf("Food & Dining = %g", totals["Food & Dining"])
	}
	if totals["Healthcare"] != 0 {
		t.Fatalf("unused category not zero: %g", totals["Healthcare"])
	}
}

func TestDetectSubscriptions(t *testing.T) {
	tr := newTracker(t)
	now := time.Now()
	tr.Add("Netflix", 9.99, now.AddDate(0, -1, 0))
	tr.Add("netflix ", 9.99, now)
	tr.Add("Gym", 9.99, now.AddDate(0, -1, 0))
	tr.Add("Gym", 50.00, now)

	subs := tr.DetectSubscriptions()
	if len(subs) != 1 {
		t.Fatalf("got %d subscriptions, want 1", len(subs))
	}
	if subs[0].Description != "Netflix" || subs[0].Frequency != 2 {
		t.Fatalf("got %+v", subs[0])
	}
}

func TestInsightsOrder(t *testing.T) {
	tr := newTracker(t)
	now := time.Now()
	// heavy dining share plus a recurring pair
	tr.Add("Starbucks latte", 200, now)
	tr.Add("Spotify", 9.99, now.AddDate(0, 0, -3))
	tr.Add("Spotify", 9.99, now)

	insights := tr.Insights(now)
	if len(insights) < 3 {
		t.Fatalf("got %d insights: %+v", len(insights), insights)
	}
	if insights[0].Type != InsightWarning {
		t.Fatalf("first insight type = %q, want warning", insights[0].Type)
	}
	if insights[1].Type != InsightTip {
		t.Fatalf("second insight type = %q, want tip", insights[1].Type)
	}
	if insights[2].Type != InsightInfo {
		t.Fatalf("third insight type = %q, want info", insights[2].Type)
	}
}

func TestInsightsTrend(t *testing.T) {
	tr := newTracker(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	tr.Add("rent office", 1000, now.AddDate(0, -1, 0))
	tr.Add("rent office", 1000, now)
	tr.Add("Starbucks", 500, now)

	var trend Insight
	var found bool
	for _, in := range tr.Insights(now) {
		if in.Title == "Spending Trend" {
			trend, found = in, true
		}
	}
	if !found {
		t.Fatal("expected a trend insight for a 50% increase")
	}
	if trend.Type != InsightWarning {
		t.Fatalf("trend type = %q, want warning", trend.Type)
	}
}

func TestWeeklyReport(t *testing.T) {
	tr := newTracker(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tr.Add("Starbucks", 30, now.AddDate(0, 0, -1))
	tr.Add("Uber", 40, now.AddDate(0, 0, -2))
	tr.Add("old grocery run", 99, now.AddDate(0, 0, -20))

	r := tr.WeeklyReport(now)
	if r.Total != 70 {
		t.Fatalf("total = %g, want 70", r.Total)
	}
	if r.Count != 2 {
		t.Fatalf("count = %d, want 2", r.Count)
	}
	if got := r.DailyAverage; got != 10 {
		t.Fatalf("daily average = %g, want 10", got)
	}
	if r.TopDayAmount != 40 {
		t.Fatalf("top day amount = %g, want 40", r.TopDayAmount)
	}
}

func TestWeeklyReportEmptyWeek(t *testing.T) {
	tr := newTracker(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tr.Add("Starbucks", 100, now.AddDate(0, 0, -30))

	r := tr.WeeklyReport(now)
	if r.Total != 0 || r.Count != 0 {
		t.Fatalf("total = %g count = %d, want both 0", r.Total, r.Count)
	}
	if got := r.Categories["Food & Dining"]; got != 0 {
		t.Fatalf("Food & Dining = %g, want 0 for an empty week", got)
	}
	if r.TopDay != "" {
		t.Fatalf("top day = %q, want empty", r.TopDay)
	}
}

func TestCategoryTotalsEmptySubset(t *testing.T) {
	tr := newTracker(t)
	tr.Add("Starbucks", 100, time.Now())

	totals := tr.CategoryTotals(nil)
	for cat, amt := range totals {
		if amt != 0 {
			t.Fatalf("%s = %g, want 0 for an empty subset", cat, amt)
		}
	}
	if got := tr.CategoryTotalsAll()["Food & Dining"]; got != 100 {
		t.Fatalf("all-time Food & Dining = %g, want 100", got)
	}
}

func TestClear(t *testing.T) {
	tr := newTracker(t)
	tr.Add("Starbucks", 5, time.Now())
	if err := tr.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(tr.Expenses()) != 0 {
		t.Fatal("ledger not empty after Clear")
	}
}
