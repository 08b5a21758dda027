package spend

import (
	"strings"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
}

func mustAdd(t *testing.T, tr *Tracker, desc string, amount float64, date time.Time) {
	t.Helper()
	if _, err := tr.Add(desc, amount, date); err != nil {
		t.Fatalf("Add(%q): %v", desc, err)
	}
}

func TestImportCSV(t *testing.T) {
	tr := newTracker(t)

	in := strings.Join([]string{
		"date,description,amount",
		"2026-01-05,Starbucks latte,5.50",
		"2026-01-06,Uber ride,12",
		"not-a-date,Broken,9",
		"2026-01-07,Free sample,0",
		"2026-01-08,Netflix,9.99",
	}, "\n")

	res, err := tr.ImportCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.Imported != 3 || res.Skipped != 2 {
		t.Fatalf("imported %d skipped %d, want 3 and 2", res.Imported, res.Skipped)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(res.Errors), res.Errors)
	}

	exps := tr.Expenses()
	if len(exps) != 3 {
		t.Fatalf("ledger has %d entries, want 3", len(exps))
	}
	if exps[0].Category != "Food & Dining" {
		t.Errorf("first import categorized as %q", exps[0].Category)
	}
	if exps[1].Amount != 12 {
		t.Errorf("second import amount = %g, want 12", exps[1].Amount)
	}
}

func TestImportCSVNoHeader(t *testing.T) {
	tr := newTracker(t)

	res, err := tr.ImportCSV(strings.NewReader("2026-02-01,Shell gas station,40\n"))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.Imported != 1 || res.Skipped != 0 {
		t.Fatalf("imported %d skipped %d, want 1 and 0", res.Imported, res.Skipped)
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	tr := newTracker(t)
	mustAdd(t, tr, "Starbucks", 5.5, day(1))
	mustAdd(t, tr, "Uber", 12, day(2))

	var out strings.Builder
	if err := tr.ExportCSV(&out); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "date,description,amount,category" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Starbucks") || !strings.Contains(lines[1], "5.50") {
		t.Errorf("row = %q", lines[1])
	}

	back := newTracker(t)
	res, err := back.ImportCSV(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if res.Imported != 2 {
		t.Fatalf("re-imported %d, want 2", res.Imported)
	}
	if back.Expenses()[0].Category != "Food & Dining" {
		t.Errorf("re-import categorized as %q", back.Expenses()[0].Category)
	}
}
