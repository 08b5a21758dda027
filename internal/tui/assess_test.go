package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestAssessViewShowsFirstQuestion(t *testing.T) {
	m := NewAssessModel()
	view := m.View()
	if !strings.Contains(view, "Question 1 of 10") {
		t.Fatalf("view missing progress line:\n%s", view)
	}
	if !strings.Contains(view, "time horizon") {
		t.Fatalf("view missing first question:\n%s", view)
	}
}

func TestAssessNumberKeysAdvance(t *testing.T) {
	var m tea.Model = NewAssessModel()
	m, _ = m.Update(key("3"))
	view := m.View()
	if !strings.Contains(view, "Question 2 of 10") {
		t.Fatalf("expected second question:\n%s", view)
	}
}

func TestAssessCursorAndEnter(t *testing.T) {
	var m tea.Model = NewAssessModel()
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter")) // cursor on option 3
	am := m.(*AssessModel)
	if got := am.assessment.Answers()[0].Score; got != 3 {
		t.Fatalf("recorded score = %d, want 3", got)
	}
}

func TestAssessPreviousKeepsAnswer(t *testing.T) {
	var m tea.Model = NewAssessModel()
	m, _ = m.Update(key("4"))
	m, _ = m.Update(key("left"))
	am := m.(*AssessModel)
	if got := am.assessment.Answers()[0].Score; got != 4 {
		t.Fatalf("answer lost on previous: %d", got)
	}
	if !strings.Contains(m.View(), "Question 1 of 10") {
		t.Fatal("expected to be back on the first question")
	}
}

func TestAssessCompletesWithProfile(t *testing.T) {
	var m tea.Model = NewAssessModel()
	var cmd tea.Cmd
	for i := 0; i < 10; i++ {
		m, cmd = m.Update(key("4"))
	}
	if cmd == nil {
		t.Fatal("expected quit command after last answer")
	}
	am := m.(*AssessModel)
	p := am.Profile()
	if p == nil {
		t.Fatal("profile not computed")
	}
	if p.ScorePct != 100 || p.Name != "Aggressive" {
		t.Fatalf("profile = %.0f%% %q", p.ScorePct, p.Name)
	}
	if am.View() != "" {
		t.Fatal("completed model should render empty")
	}
}

func TestAssessQuitEarly(t *testing.T) {
	var m tea.Model = NewAssessModel()
	m, cmd := m.Update(key("esc"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.(*AssessModel).Profile() != nil {
		t.Fatal("no profile expected on early quit")
	}
}
