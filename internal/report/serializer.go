package report

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"courtside/internal/model"
)

// Stats 生成结束后打印的汇总数字
type Stats struct {
	Teams     int
	Players   int
	Schools   int
	WithPhoto int
	WithCert  int
}

// MarshalTeams 序列化为嵌入文档的 JSON 负载
// 字段名与顺序即浏览器端的绑定契约；encoding/json 默认转义 <>& ，
// 负载可以安全内嵌在 <script> 里
func MarshalTeams(teams []*model.Team) ([]byte, error) {
	if teams == nil {
		teams = []*model.Team{}
	}
	return json.MarshalIndent(teams, "", "  ")
}

// CountStats 统计汇总数字
func CountStats(teams []*model.Team) Stats {
	s := Stats{Teams: len(teams)}
	schools := make(map[string]bool)
	for _, t := range teams {
		schools[t.School] = true
		s.Players += len(t.Players)
		for _, p := range t.Players {
			if p.Photo != "" {
				s.WithPhoto++
			}
			if p.CertURL != "" {
				s.WithCert++
			}
		}
	}
	s.Schools = len(schools)
	return s
}

// TableRows 生成平铺球员总表的静态行标记
// 与 JSON 负载冗余，仅作兜底的第二视图，不是权威数据
func TableRows(teams []*model.Team) string {
	var b strings.Builder

	for _, team := range teams {
		for _, p := range team.Players {
			photoHTML := `<div class="no-photo-mini">📷</div>`
			if p.Photo != "" {
				photoHTML = fmt.Sprintf(
					`<img src="%s" alt="%s" class="mini-photo" onerror="this.style.display='none'">`,
					html.EscapeString(p.Photo), html.EscapeString(p.Name))
			}

			genderClass := "female-tag"
			if team.Gender == "Masculino" {
				genderClass = "male-tag"
			}
			genderInitial := ""
			if team.Gender != "" {
				genderInitial = string([]rune(team.Gender)[0])
			}

			fmt.Fprintf(&b, `
        <tr>
            <td class="photo-cell">%s</td>
            <td class="player-name-cell">
                <span class="player-name">%s</span>
                <span class="jersey-badge">#%s</span>
            </td>
            <td class="dob-cell"><span class="dob-badge">%s</span></td>
            <td class="doc-cell">%s %s</td>
            <td class="doc-cell">%s</td>
            <td class="school-cell">%s</td>
            <td class="team-cell"><span class="gender-tag %s">%s</span> %s</td>
            <td>%s</td>
            <td><span class="category-tag">%s</span></td>
        </tr>`,
				photoHTML,
				html.EscapeString(p.Name),
				html.EscapeString(p.Jersey),
				html.EscapeString(p.DOBDisplay),
				docLink(p.CertURL, "📋 Open", "btn btn-sm btn-outline-primary"),
				docLink(p.CertPreview, "🔎 Preview", "btn btn-sm btn-outline-warning"),
				docLink(p.WaiverURL, "✍️ Open", "btn btn-sm btn-outline-primary"),
				html.EscapeString(team.School),
				genderClass,
				html.EscapeString(genderInitial),
				html.EscapeString(team.Team),
				html.EscapeString(p.Grade),
				html.EscapeString(team.Category),
			)
		}
	}

	return b.String()
}

// docLink 有链接时渲染按钮，否则渲染占位短横
func docLink(url, label, class string) string {
	if url == "" {
		return `<span class="text-muted small">—</span>`
	}
	return fmt.Sprintf(
		`<a href="%s" target="_blank" rel="noopener noreferrer" class="%s">%s</a>`,
		html.EscapeString(url), class, label)
}
