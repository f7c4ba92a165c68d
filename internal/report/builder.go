package report

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"courtside/internal/drive"
	"courtside/internal/model"
)

// Dash 球衣号码等字段缺失时的占位符
const Dash = "—"

// dobLayouts 出生日期尝试解析的格式，前面的优先
var dobLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
}

// BuildTeams 把归一化后的行序列投影为球队/球员层级
// record_id 按行序递增一次性分配；球队按队名首次出现的顺序聚合
func BuildTeams(rows []model.SourceRow) []*model.Team {
	teams := make([]*model.Team, 0)
	byName := make(map[string]*model.Team)

	counter := 0
	for _, row := range rows {
		team, ok := byName[row.Team]
		if !ok {
			// 首次出现的行决定学校/性别/组别快照，后续行不再更新
			team = &model.Team{
				SourceIdx: len(teams),
				Team:      row.Team,
				School:    row.School,
				Gender:    row.Gender,
				Category:  row.Category,
				Players:   make([]*model.Player, 0),
			}
			byName[row.Team] = team
			teams = append(teams, team)
		} else if team.School != row.School {
			// 已知的数据质量风险：队名相同的两所学校会被并进同一个桶
			log.Printf("WARN row %d: team %q already registered by %q, row school %q ignored",
				row.RowNo, row.Team, team.School, row.School)
		}

		counter++
		team.Players = append(team.Players, buildPlayer(row, counter))
	}

	return teams
}

// buildPlayer 单行投影为球员记录并补齐链接派生字段
func buildPlayer(row model.SourceRow, seq int) *model.Player {
	certURL := drive.DocumentURL(row.CertHTML)
	waiverURL := drive.DocumentURL(row.WaiverHTML)

	// 照片在两个单元格里都可能出现，出生证明优先
	photo := drive.ExtractPhotoURL(row.CertHTML)
	if photo == "" {
		photo = drive.ExtractPhotoURL(row.WaiverHTML)
	}
	photoFull := drive.ExtractPhotoFullURL(row.CertHTML)
	if photoFull == "" {
		photoFull = drive.ExtractPhotoFullURL(row.WaiverHTML)
	}

	return &model.Player{
		RecordID:      fmt.Sprintf("player_%04d", seq),
		Name:          row.PlayerName,
		DOB:           row.DateOfBirth,
		DOBDisplay:    FormatDOB(row.DateOfBirth),
		Jersey:        FormatJersey(row.Jersey),
		Grade:         row.Grade,
		CertURL:       certURL,
		WaiverURL:     waiverURL,
		CertPreview:   drive.PreviewURL(certURL),
		WaiverPreview: drive.PreviewURL(waiverURL),
		Photo:         photo,
		PhotoFull:     photoFull,
	}
}

// FormatDOB 解析出生日期并渲染为 "January 02, 2006"；解析不了就原样返回
func FormatDOB(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 02, 2006")
		}
	}
	return raw
}

// FormatJersey 球衣号码为数值时渲染为整数字符串，否则渲染为占位短横
func FormatJersey(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Dash
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Dash
	}
	return strconv.Itoa(int(f))
}
