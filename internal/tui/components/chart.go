package components

import (
	"fmt"
	"strings"

	"finsight/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Segment is one slice of a stacked bar.
type Segment struct {
	Label string
	Pct   int // whole percent, segments should sum to 100
}

// StackedBar renders segments as one horizontal bar sized to width,
// followed by a color-keyed legend line. Zero-percent segments are
// skipped.
func StackedBar(segments []Segment, width int) string {
	t := theme.Active
	colors := []lipgloss.Color{t.Accent, t.Blue, t.Yellow, t.Magenta, t.Green}

	var bar strings.Builder
	var legend []string
	used := 0
	for i, s := range segments {
		if s.Pct <= 0 {
			continue
		}
		w := s.Pct * width / 100
		if w < 1 {
			w = 1
		}
		if used+w > width {
			w = width - used
		}
		used += w
		style := lipgloss.NewStyle().Foreground(colors[i%len(colors)])
		bar.WriteString(style.Render(strings.Repeat("█", w)))
		legend = append(legend, style.Render("■")+" "+
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf("%s (%d%%)", s.Label, s.Pct)))
	}

	return bar.String() + "\n" + strings.Join(legend, "  ")
}
