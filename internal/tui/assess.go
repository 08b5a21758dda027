// Package tui hosts the interactive risk questionnaire.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"finsight/internal/risk"
	"finsight/internal/tui/components"
	"finsight/internal/tui/theme"
)

// AssessModel walks the risk questionnaire one question per screen.
type AssessModel struct {
	assessment *risk.Assessment
	cursor     int
	width      int
	quit       bool
	profile    *risk.Profile
	err        error
}

// NewAssessModel starts a fresh questionnaire.
func NewAssessModel() *AssessModel {
	return &AssessModel{assessment: risk.NewAssessment(), width: 80}
}

// Profile returns the computed profile, nil if the user quit early.
func (m *AssessModel) Profile() *risk.Profile {
	return m.profile
}

// Err reports a scoring failure, if any.
func (m *AssessModel) Err() error {
	return m.err
}

func (m *AssessModel) Init() tea.Cmd {
	return nil
}

func (m *AssessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if q, ok := m.assessment.Current(); ok && m.cursor < len(q.Options)-1 {
				m.cursor++
			}
			return m, nil

		case "left", "h", "p":
			m.assessment.Previous()
			m.cursor = 0
			return m, nil

		case "1", "2", "3", "4":
			score := int(msg.String()[0] - '0')
			return m.answer(score)

		case "enter", " ":
			return m.answer(m.cursor + 1)
		}
	}
	return m, nil
}

func (m *AssessModel) answer(score int) (tea.Model, tea.Cmd) {
	if err := m.assessment.Answer(score); err != nil {
		return m, nil
	}
	m.cursor = 0
	if m.assessment.Complete() {
		p, err := risk.ComputeProfile(m.assessment.Answers())
		if err != nil {
			m.err = err
		} else {
			m.profile = &p
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m *AssessModel) View() string {
	if m.quit || m.profile != nil || m.err != nil {
		return ""
	}
	q, ok := m.assessment.Current()
	if !ok {
		return ""
	}
	t := theme.Active

	idx, total := m.assessment.Progress()

	var b strings.Builder
	b.WriteString(components.ProgressBar(float64(idx+1)/float64(total), 30))
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render(
		fmt.Sprintf("  Question %d of %d", idx+1, total)))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(q.Text)
	b.WriteString(question)
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(t.TextMuted)
		if i == m.cursor {
			marker = "> "
			style = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d. %s", marker, opt.Score, opt.Text)))
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("  " + opt.Explanation))
		b.WriteString("\n")
	}

	hint := "1-4 or ↑/↓ + enter to answer"
	if idx > 0 {
		hint += " · ← previous"
	}
	hint += " · q quit"
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(hint))

	return components.ContentCard("Risk Assessment", b.String(), min(m.width, 74))
}

// RunAssessment runs the questionnaire and returns the computed
// profile. ok is false when the user quit before finishing.
func RunAssessment() (risk.Profile, bool, error) {
	m := NewAssessModel()
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return risk.Profile{}, false, fmt.Errorf("running assessment: %w", err)
	}
	fm := final.(*AssessModel)
	if fm.Err() != nil {
		return risk.Profile{}, false, fm.Err()
	}
	if fm.Profile() == nil {
		return risk.Profile{}, false, nil
	}
	return *fm.Profile(), true, nil
}
