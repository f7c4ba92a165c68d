// Package review 实现对球员记录的本地标注工作流
// 核心状态机与 UI 解耦：持久化通过注入的 Storage 能力完成，
// 浏览器端与终端端共用同一套语义
package review

// 标注状态取值；空串表示未标注
const (
	StatusNone    = ""
	StatusReview  = "review"
	StatusCorrect = "correct_review"
)

// Entry 单条标注：状态 + 备注 + 最近更新时间
// 字段名与浏览器端 localStorage 里的 JSON 保持一致
type Entry struct {
	Status    string `json:"status"`
	Note      string `json:"note"`
	UpdatedAt string `json:"updated_at"`
}

// IsZero 状态与备注都为空
func (e Entry) IsZero() bool {
	return e.Status == "" && e.Note == ""
}

// StatusLabel 状态的展示文案
func StatusLabel(status string) string {
	switch status {
	case StatusReview:
		return "Review"
	case StatusCorrect:
		return "Correct Review"
	default:
		return "No Tag"
	}
}

// statusRank 评审优先级：待处理最靠前
func statusRank(status string) int {
	switch status {
	case StatusReview:
		return 0
	case StatusCorrect:
		return 1
	case StatusNone:
		return 2
	default:
		return 99
	}
}
