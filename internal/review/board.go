package review

import (
	"sort"
	"strings"

	"courtside/internal/model"
)

// FilterMode 评审面板的四种互斥过滤模式
type FilterMode string

const (
	FilterAll     FilterMode = "all"
	FilterReview  FilterMode = "review"
	FilterCorrect FilterMode = "correct_review"
	FilterTagged  FilterMode = "flagged"
)

// BoardRow 评审面板的一行：球员 + 所属球队 + 当前标注
type BoardRow struct {
	Player    *model.Player
	Team      *model.Team
	PlayerIdx int
	Entry     Entry
}

// BuildBoard 构建评审面板行集
// 基础集是全部球员各自连上当前标注（缺省为空标注），先按模式过滤，
// 再做文本匹配，最后按 状态优先级 > 学校 > 球队 > 姓名 排序
func BuildBoard(teams []*model.Team, m *Manager, mode FilterMode, query string) []BoardRow {
	rows := make([]BoardRow, 0)
	for _, t := range teams {
		for i, p := range t.Players {
			rows = append(rows, BoardRow{Player: p, Team: t, PlayerIdx: i, Entry: m.Get(p.RecordID)})
		}
	}

	switch mode {
	case FilterReview:
		rows = filterRows(rows, func(r BoardRow) bool { return r.Entry.Status == StatusReview })
	case FilterCorrect:
		rows = filterRows(rows, func(r BoardRow) bool { return r.Entry.Status == StatusCorrect })
	case FilterTagged:
		rows = filterRows(rows, func(r BoardRow) bool { return r.Entry.Status != "" })
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" {
		rows = filterRows(rows, func(r BoardRow) bool {
			bag := strings.ToLower(r.Player.Name + " " + r.Team.School + " " + r.Team.Team +
				" " + r.Entry.Note + " " + StatusLabel(r.Entry.Status))
			return strings.Contains(bag, q)
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if ra, rb := statusRank(a.Entry.Status), statusRank(b.Entry.Status); ra != rb {
			return ra < rb
		}
		if a.Team.School != b.Team.School {
			return a.Team.School < b.Team.School
		}
		if a.Team.Team != b.Team.Team {
			return a.Team.Team < b.Team.Team
		}
		return a.Player.Name < b.Player.Name
	})

	return rows
}

func filterRows(rows []BoardRow, keep func(BoardRow) bool) []BoardRow {
	out := rows[:0]
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
