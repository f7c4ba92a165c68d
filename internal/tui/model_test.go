package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"courtside/internal/model"
	"courtside/internal/review"
)

func tuiFixture() ([]*model.Team, *review.Manager) {
	teams := []*model.Team{
		{SourceIdx: 0, Team: "Tigres", School: "Colegio A", Gender: "Masculino", Category: "U12",
			Players: []*model.Player{
				{RecordID: "player_0001", Name: "Juan", Jersey: "7", DOBDisplay: "March 05, 2014"},
				{RecordID: "player_0002", Name: "Pedro", Jersey: "12", DOBDisplay: "July 01, 2014"},
			}},
		{SourceIdx: 1, Team: "Leonas", School: "Colegio B", Gender: "Femenino", Category: "U14",
			Players: []*model.Player{
				{RecordID: "player_0003", Name: "Maria", Jersey: "9", DOBDisplay: "May 20, 2012"},
			}},
	}
	return teams, review.NewManager(review.NewMemStore(), "k")
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return got
}

func TestNew_ListsAllPlayers(t *testing.T) {
	t.Parallel()

	teams, manager := tuiFixture()
	m := New(teams, manager)
	if len(m.teamRefs) != 3 {
		t.Fatalf("want 3 rows got=%d", len(m.teamRefs))
	}

	view := m.View()
	for _, want := range []string{"Tigres", "Leonas", "Juan", "Maria"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestGenderToggleFiltersList(t *testing.T) {
	t.Parallel()

	teams, manager := tuiFixture()
	m := New(teams, manager)

	m = step(t, m, key("f"))
	if len(m.teamRefs) != 1 {
		t.Fatalf("femenino filter want 1 row got=%d", len(m.teamRefs))
	}
	// 再按一次清除
	m = step(t, m, key("f"))
	if len(m.teamRefs) != 3 {
		t.Fatalf("toggle clear want 3 rows got=%d", len(m.teamRefs))
	}
}

func TestEnterFreezesSequence(t *testing.T) {
	t.Parallel()

	teams, manager := tuiFixture()
	m := New(teams, manager)

	m = step(t, m, key("enter"))
	if m.sequence == nil {
		t.Fatalf("detail should open")
	}
	if m.sequence.Len() != 3 || m.sequence.Pos() != 0 {
		t.Fatalf("len=%d pos=%d", m.sequence.Len(), m.sequence.Pos())
	}

	m = step(t, m, key("right"))
	if m.sequence.Pos() != 1 {
		t.Fatalf("pos=%d", m.sequence.Pos())
	}

	m = step(t, m, key("esc"))
	if m.sequence != nil {
		t.Fatalf("detail should close")
	}
}

func TestDetailStatusSave(t *testing.T) {
	t.Parallel()

	teams, manager := tuiFixture()
	m := New(teams, manager)

	m = step(t, m, key("enter"))
	m = step(t, m, key("r"))

	if e := manager.Get("player_0001"); e.Status != review.StatusReview {
		t.Fatalf("status not saved: %+v", e)
	}

	m = step(t, m, key("x"))
	if manager.Len() != 0 {
		t.Fatalf("clear should delete entry, len=%d", manager.Len())
	}
}

func TestNoteEditingRequiresReviewStatus(t *testing.T) {
	t.Parallel()

	teams, manager := tuiFixture()
	m := New(teams, manager)
	m = step(t, m, key("enter"))

	// 未标注状态下 n 不进入编辑
	m = step(t, m, key("n"))
	if m.editingNote {
		t.Fatalf("note editing should be gated on review status")
	}

	m = step(t, m, key("r"))
	m = step(t, m, key("n"))
	if !m.editingNote {
		t.Fatalf("note editing should open")
	}

	m = step(t, m, key("a"))
	m = step(t, m, key("enter"))
	if m.editingNote {
		t.Fatalf("enter should close editor")
	}
	if e := manager.Get("player_0001"); e.Note != "a" {
		t.Fatalf("note not saved: %+v", e)
	}
}

func TestBoardTabModes(t *testing.T) {
	t.Parallel()

	teams, manager := tuiFixture()
	_ = manager.Save("player_0002", review.StatusReview, "check")

	m := New(teams, manager)
	m = step(t, m, key("tab"))
	if m.activeTab != tabBoard {
		t.Fatalf("tab switch failed")
	}
	if len(m.boardRows) != 3 {
		t.Fatalf("board all want 3 got=%d", len(m.boardRows))
	}

	m = step(t, m, key("2"))
	if len(m.boardRows) != 1 || m.boardRows[0].Player.RecordID != "player_0002" {
		t.Fatalf("review mode rows: %+v", m.boardRows)
	}

	view := m.View()
	if !strings.Contains(view, "Pedro") {
		t.Fatalf("board view missing player")
	}
}

func TestSearchNarrowsTeams(t *testing.T) {
	t.Parallel()

	teams, manager := tuiFixture()
	m := New(teams, manager)

	m = step(t, m, key("/"))
	if !m.searching {
		t.Fatalf("search should open")
	}
	for _, r := range "maria" {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if len(m.teamRefs) != 1 {
		t.Fatalf("search want 1 row got=%d", len(m.teamRefs))
	}
	m = step(t, m, key("esc"))
	if m.searching {
		t.Fatalf("search should close")
	}
}
