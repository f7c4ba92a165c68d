package model

// SourceRow 对应导出表的一行原始数据（列名已在输入边界解析完成）
type SourceRow struct {
	RowNo       int    // 1-based row number in the input file, header included
	School      string
	Team        string
	Gender      string
	Category    string
	PlayerName  string
	DateOfBirth string
	Jersey      string
	Grade       string
	CertHTML    string // 出生证明富文本单元格
	WaiverHTML  string // 免责声明富文本单元格
}

// Player 单个球员记录；字段名即输出 JSON 契约，不可随意改动
type Player struct {
	RecordID      string `json:"record_id"`
	Name          string `json:"name"`
	DOB           string `json:"dob"`
	DOBDisplay    string `json:"dob_display"`
	Jersey        string `json:"jersey"`
	Grade         string `json:"grade"`
	CertURL       string `json:"cert_url"`
	WaiverURL     string `json:"waiver_url"`
	CertPreview   string `json:"cert_preview"`
	WaiverPreview string `json:"waiver_preview"`
	Photo         string `json:"photo"`
	PhotoFull     string `json:"photo_full"`
}

// Team 按首次出现顺序聚合的球队
type Team struct {
	SourceIdx int       `json:"source_idx"`
	Team      string    `json:"team"`
	School    string    `json:"school"`
	Gender    string    `json:"gender"`
	Category  string    `json:"category"`
	Players   []*Player `json:"players"`
}
