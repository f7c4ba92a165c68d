package parser

import (
	"fmt"

	"courtside/internal/model"
)

// lastSeen 前向填充用的最近非空值
type lastSeen struct {
	school   string
	team     string
	gender   string
	category string
}

// Normalize 对球队/学校四列做前向填充，再丢弃没有球员姓名的行
// 首个数据行在这四列上必须完整，否则视为数据质量问题直接报错
func Normalize(rows []model.SourceRow) ([]model.SourceRow, error) {
	if len(rows) == 0 {
		return []model.SourceRow{}, nil
	}

	first := rows[0]
	for _, c := range []struct {
		name  string
		value string
	}{
		{"school", first.School},
		{"team", first.Team},
		{"gender", first.Gender},
		{"category", first.Category},
	} {
		if c.value == "" {
			return nil, fmt.Errorf("row %d: first data row has empty %s column", first.RowNo, c.name)
		}
	}

	seen := lastSeen{}
	out := make([]model.SourceRow, 0, len(rows))

	for _, row := range rows {
		// 四列各自独立填充，而不是整行成组填充
		if row.School == "" {
			row.School = seen.school
		} else {
			seen.school = row.School
		}
		if row.Team == "" {
			row.Team = seen.team
		} else {
			seen.team = row.Team
		}
		if row.Gender == "" {
			row.Gender = seen.gender
		} else {
			seen.gender = row.Gender
		}
		if row.Category == "" {
			row.Category = seen.category
		} else {
			seen.category = row.Category
		}

		// 没有球员姓名的是教练/领队等附属行，直接跳过
		if row.PlayerName == "" {
			continue
		}
		out = append(out, row)
	}

	return out, nil
}
