package tui

import (
	"fmt"
	"strings"

	"courtside/internal/review"
)

// visibleWindow 光标附近的滚动窗口
func visibleWindow(total, cursor, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}

func (m Model) listHeight() int {
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

// viewTeams 球队页：按队分组的球员行
func (m Model) viewTeams() string {
	var b strings.Builder

	filters := make([]string, 0, 3)
	if m.teamFilter.Gender != "" {
		filters = append(filters, "gender="+m.teamFilter.Gender)
	}
	if m.teamFilter.School != "" {
		filters = append(filters, "school="+m.teamFilter.School)
	}
	if m.teamFilter.Query != "" {
		filters = append(filters, "search="+m.teamFilter.Query)
	}
	if len(filters) > 0 {
		b.WriteString(m.styles.Muted.Render("filters: " + strings.Join(filters, "  ")))
		b.WriteString("\n")
	}
	if m.searching {
		b.WriteString("search: " + m.searchInput.View() + "\n")
	}

	if len(m.teamRefs) == 0 {
		b.WriteString(m.styles.Muted.Render("No teams match your search."))
		b.WriteString("\n")
		return b.String()
	}

	start, end := visibleWindow(len(m.teamRefs), m.cursor, m.listHeight())
	lastTeam := -1
	for i := start; i < end; i++ {
		ref := m.teamRefs[i]
		team, player := m.playerAt(ref)
		if player == nil {
			continue
		}

		if ref.TeamIdx != lastTeam {
			lastTeam = ref.TeamIdx
			b.WriteString(m.styles.Header.Render(fmt.Sprintf("%s — %s (%s, %s, %d players)",
				team.Team, team.School, team.Gender, team.Category, len(team.Players))))
			b.WriteString("\n")
		}

		entry := m.manager.Get(player.RecordID)
		line := fmt.Sprintf("  #%-4s %-28s %s", player.Jersey, player.Name, player.DOBDisplay)
		if entry.Status != "" {
			line += "  " + m.statusBadge(entry.Status)
		}
		if i == m.cursor {
			line = m.styles.Selected.Render("▶" + line[1:])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// viewBoard 评审面板页
func (m Model) viewBoard() string {
	var b strings.Builder

	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("mode: %s   rows: %d", m.boardMode, len(m.boardRows))))
	b.WriteString("\n")
	if m.searching {
		b.WriteString("search: " + m.searchInput.View() + "\n")
	}

	if len(m.boardRows) == 0 {
		b.WriteString(m.styles.Muted.Render("No review records match this filter."))
		b.WriteString("\n")
		return b.String()
	}

	start, end := visibleWindow(len(m.boardRows), m.cursor, m.listHeight())
	for i := start; i < end; i++ {
		r := m.boardRows[i]
		note := r.Entry.Note
		if len(note) > 28 {
			note = note[:25] + "…"
		}
		line := fmt.Sprintf("  %-26s %-20s %-18s %-14s %s",
			r.Player.Name, r.Team.School, r.Team.Team,
			review.StatusLabel(r.Entry.Status), note)
		if i == m.cursor {
			line = m.styles.Selected.Render("▶" + line[1:])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// viewDetail 详情视图：冻结序列上的单条记录
func (m Model) viewDetail() string {
	team, player := m.playerAt(m.sequence.Current())
	if player == nil {
		return m.styles.Muted.Render("record unavailable") + "\n"
	}
	entry := m.manager.Get(player.RecordID)

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(player.Name))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("record %d of %d", m.sequence.Pos()+1, m.sequence.Len())))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Team:     %s | %s\n", team.Team, team.School))
	b.WriteString(fmt.Sprintf("  DOB:      %s\n", player.DOBDisplay))
	b.WriteString(fmt.Sprintf("  Jersey:   #%s   Grade: %s   Category: %s\n", player.Jersey, player.Grade, team.Category))
	b.WriteString(fmt.Sprintf("  Cert:     %s\n", orDash(player.CertURL)))
	b.WriteString(fmt.Sprintf("  Waiver:   %s\n", orDash(player.WaiverURL)))
	b.WriteString(fmt.Sprintf("  Photo:    %s\n", orDash(player.Photo)))
	b.WriteString("\n")

	b.WriteString("  Status:   " + m.statusBadge(entry.Status) + "\n")
	if entry.Status == review.StatusReview {
		b.WriteString("  Note:     " + orDash(entry.Note) + "\n")
	}
	if entry.UpdatedAt != "" {
		b.WriteString(m.styles.Muted.Render("  Last saved: " + entry.UpdatedAt))
		b.WriteString("\n")
	}

	if m.editingNote {
		b.WriteString("\n  note: " + m.noteInput.View() + "\n")
	}

	return b.String()
}

func (m Model) statusBadge(status string) string {
	switch status {
	case review.StatusReview:
		return m.styles.StatusWarn.Render("⚠ " + review.StatusLabel(status))
	case review.StatusCorrect:
		return m.styles.StatusOK.Render("✓ " + review.StatusLabel(status))
	default:
		return m.styles.Muted.Render(review.StatusLabel(status))
	}
}

func (m Model) viewFooter() string {
	if m.editingNote {
		return m.styles.Help.Render("enter save · esc cancel")
	}
	if m.searching {
		return m.styles.Help.Render("type to filter · enter/esc done")
	}
	if m.sequence != nil {
		return m.styles.Help.Render("←/→ prev/next · r review · c correct · x clear · n note · esc back")
	}
	if m.activeTab == tabTeams {
		return m.styles.Help.Render("↑/↓ move · enter open · / search · m/f gender · s school · c clear · tab board · q quit")
	}
	return m.styles.Help.Render("↑/↓ move · enter open · / search · 1-4 filter mode · tab teams · q quit")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
