package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"finsight/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(10, 3)
	if len(widths) != 3 {
		t.Fatalf("got %d widths", len(widths))
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 10 {
		t.Fatalf("widths sum to %d, want 10", sum)
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("setup: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("joined height = %d, want %d", got, tallLines)
	}
}

func TestMetricCardContainsValues(t *testing.T) {
	theme.SetActive("flexoki-dark")
	card := MetricCard("Monthly EMI", "₹43,391", "8.5% for 20y", 30)
	for _, want := range []string{"Monthly EMI", "₹43,391", "8.5% for 20y"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q", want)
		}
	}
}

func TestProgressBarBounds(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := ProgressBar(0.5, 10)
	if !strings.Contains(out, "50%") {
		t.Fatalf("missing percent: %q", out)
	}
	if ProgressBar(-0.2, 10) == "" {
		t.Fatal("negative pct should still render a bar")
	}
}

func TestScoreBar(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := ScoreBar("Time Horizon", 0.75, 18, 20)
	if !strings.Contains(out, "Time Horizon") || !strings.Contains(out, "75%") {
		t.Fatalf("score bar = %q", out)
	}
}

func TestStackedBarSkipsZeroSegments(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := StackedBar([]Segment{
		{Label: "Stocks", Pct: 90},
		{Label: "Bonds", Pct: 10},
		{Label: "Cash", Pct: 0},
	}, 40)
	if !strings.Contains(out, "Stocks (90%)") || !strings.Contains(out, "Bonds (10%)") {
		t.Fatalf("legend missing: %q", out)
	}
	if strings.Contains(out, "Cash") {
		t.Fatal("zero segment should be skipped")
	}
}
