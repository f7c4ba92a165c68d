package tui

import "github.com/charmbracelet/lipgloss"

// Styles 终端界面配色；与生成文档的暗色主题保持一个调性
type Styles struct {
	Header      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Pill        lipgloss.Style
	Selected    lipgloss.Style
	Muted       lipgloss.Style
	StatusWarn  lipgloss.Style
	StatusOK    lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles 默认样式
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")).Underline(true),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Pill:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusWarn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		StatusOK:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
