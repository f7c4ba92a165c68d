package review

import (
	"sort"
	"strings"

	"courtside/internal/model"
)

// TeamFilter 球队页的组合过滤条件；零值表示不过滤
type TeamFilter struct {
	Gender string
	School string
	Query  string
}

// ToggleGender 再点一次同一性别即清除
func (f *TeamFilter) ToggleGender(gender string) {
	if f.Gender == gender {
		f.Gender = ""
	} else {
		f.Gender = gender
	}
}

// ToggleSchool 再点一次同一学校即清除
func (f *TeamFilter) ToggleSchool(school string) {
	if f.School == school {
		f.School = ""
	} else {
		f.School = school
	}
}

// Match 球队需同时通过所有启用的谓词
// 文本匹配对 队名+学校+全体球员姓名 的拼接做大小写不敏感子串查找
func (f TeamFilter) Match(t *model.Team) bool {
	if f.Gender != "" && t.Gender != f.Gender {
		return false
	}
	if f.School != "" && t.School != f.School {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		var b strings.Builder
		b.WriteString(t.Team)
		b.WriteString(" ")
		b.WriteString(t.School)
		for _, p := range t.Players {
			b.WriteString(" ")
			b.WriteString(p.Name)
		}
		if !strings.Contains(strings.ToLower(b.String()), q) {
			return false
		}
	}
	return true
}

// FilterTeams 重算一遍可见球队集合，不做增量
func FilterTeams(teams []*model.Team, f TeamFilter) []*model.Team {
	out := make([]*model.Team, 0, len(teams))
	for _, t := range teams {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Schools 去重后的学校列表，字典序
func Schools(teams []*model.Team) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, t := range teams {
		if !seen[t.School] {
			seen[t.School] = true
			out = append(out, t.School)
		}
	}
	sort.Strings(out)
	return out
}
