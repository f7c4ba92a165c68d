// Package tui 是评审状态机的终端绑定
// 与生成文档里的浏览器端共用 internal/review 的语义：
// 同样的过滤、排序、冻结导航序列和标注保存规则
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"courtside/internal/model"
	"courtside/internal/review"
)

type tab int

const (
	tabTeams tab = iota
	tabBoard
)

// Model 终端评审界面的根模型
type Model struct {
	teams   []*model.Team
	manager *review.Manager
	styles  Styles

	activeTab  tab
	teamFilter review.TeamFilter
	boardMode  review.FilterMode
	boardQuery string

	// 两个页签各自的可见行与光标
	teamRefs  []review.Ref
	boardRows []review.BoardRow
	cursor    int

	// 详情视图；nil 表示未打开
	sequence *review.Sequence

	noteInput   textinput.Model
	editingNote bool
	searchInput textinput.Model
	searching   bool

	width  int
	height int
	quit   bool
}

// New 创建终端评审模型
func New(teams []*model.Team, manager *review.Manager) Model {
	note := textinput.New()
	note.Placeholder = "Add note (required for review)"
	note.CharLimit = 500

	search := textinput.New()
	search.Placeholder = "Search…"
	search.CharLimit = 120

	m := Model{
		teams:       teams,
		manager:     manager,
		styles:      DefaultStyles(),
		activeTab:   tabTeams,
		boardMode:   review.FilterAll,
		noteInput:   note,
		searchInput: search,
		width:       100,
		height:      32,
	}
	m.recompute()
	return m
}

// Init 实现 tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// recompute 重算当前页签的可见行集并收紧光标
func (m *Model) recompute() {
	switch m.activeTab {
	case tabTeams:
		m.teamRefs = m.teamRefs[:0]
		for _, t := range review.FilterTeams(m.teams, m.teamFilter) {
			for i := range t.Players {
				m.teamRefs = append(m.teamRefs, review.Ref{TeamIdx: t.SourceIdx, PlayerIdx: i})
			}
		}
		m.clampCursor(len(m.teamRefs))
	case tabBoard:
		m.boardRows = review.BuildBoard(m.teams, m.manager, m.boardMode, m.boardQuery)
		m.clampCursor(len(m.boardRows))
	}
}

func (m *Model) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// playerAt 按坐标取球员；越界返回 nil
func (m *Model) playerAt(ref review.Ref) (*model.Team, *model.Player) {
	if ref.TeamIdx < 0 || ref.TeamIdx >= len(m.teams) {
		return nil, nil
	}
	t := m.teams[ref.TeamIdx]
	if ref.PlayerIdx < 0 || ref.PlayerIdx >= len(t.Players) {
		return nil, nil
	}
	return t, t.Players[ref.PlayerIdx]
}

// currentRefs 当前页签可见行的导航坐标
func (m *Model) currentRefs() []review.Ref {
	if m.activeTab == tabTeams {
		return m.teamRefs
	}
	refs := make([]review.Ref, len(m.boardRows))
	for i, r := range m.boardRows {
		refs[i] = review.Ref{TeamIdx: r.Team.SourceIdx, PlayerIdx: r.PlayerIdx}
	}
	return refs
}

// Update 实现 tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editingNote {
			return m.updateNoteEditing(msg)
		}
		if m.searching {
			return m.updateSearching(msg)
		}
		if m.sequence != nil {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

// updateList 列表视图按键处理
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quit = true
		return m, tea.Quit

	case "tab":
		if m.activeTab == tabTeams {
			m.activeTab = tabBoard
		} else {
			m.activeTab = tabTeams
		}
		m.cursor = 0
		m.recompute()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
		m.recompute()

	case "/":
		m.searching = true
		if m.activeTab == tabTeams {
			m.searchInput.SetValue(m.teamFilter.Query)
		} else {
			m.searchInput.SetValue(m.boardQuery)
		}
		m.searchInput.Focus()
		return m, textinput.Blink

	case "enter":
		refs := m.currentRefs()
		// 打开详情即冻结当前可见序列；之后的过滤变化不影响翻页
		if seq := review.NewSequence(refs, m.cursor); seq != nil {
			m.sequence = seq
		}

	case "m":
		if m.activeTab == tabTeams {
			m.teamFilter.ToggleGender("Masculino")
			m.recompute()
		}
	case "f":
		if m.activeTab == tabTeams {
			m.teamFilter.ToggleGender("Femenino")
			m.recompute()
		}
	case "s":
		if m.activeTab == tabTeams {
			m.cycleSchool()
			m.recompute()
		}
	case "c":
		if m.activeTab == tabTeams {
			m.teamFilter = review.TeamFilter{}
			m.recompute()
		}

	case "1", "2", "3", "4":
		if m.activeTab == tabBoard {
			modes := map[string]review.FilterMode{
				"1": review.FilterAll,
				"2": review.FilterReview,
				"3": review.FilterCorrect,
				"4": review.FilterTagged,
			}
			m.boardMode = modes[msg.String()]
			m.cursor = 0
			m.recompute()
		}
	}

	return m, nil
}

// cycleSchool 学校过滤按列表轮转，转满一圈回到不过滤
func (m *Model) cycleSchool() {
	schools := review.Schools(m.teams)
	if len(schools) == 0 {
		return
	}
	if m.teamFilter.School == "" {
		m.teamFilter.School = schools[0]
		return
	}
	for i, s := range schools {
		if s == m.teamFilter.School {
			if i+1 < len(schools) {
				m.teamFilter.School = schools[i+1]
			} else {
				m.teamFilter.School = ""
			}
			return
		}
	}
	m.teamFilter.School = ""
}

// updateSearching 搜索输入态
func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.activeTab == tabTeams {
		m.teamFilter.Query = m.searchInput.Value()
	} else {
		m.boardQuery = m.searchInput.Value()
	}
	m.cursor = 0
	m.recompute()
	return m, cmd
}

// updateDetail 详情视图按键处理
func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, player := m.playerAt(m.sequence.Current())
	if player == nil {
		m.sequence = nil
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.sequence = nil

	case "left", "h":
		m.sequence.Prev()
	case "right", "l":
		m.sequence.Next()

	// 状态按钮与浏览器端一致：点了立即保存
	case "r":
		m.saveStatus(player, review.StatusReview)
	case "c":
		m.saveStatus(player, review.StatusCorrect)
	case "x":
		m.saveStatus(player, review.StatusNone)

	case "n":
		// 备注仅在 review 状态下开放编辑
		if m.manager.Get(player.RecordID).Status == review.StatusReview {
			m.editingNote = true
			m.noteInput.SetValue(m.manager.Get(player.RecordID).Note)
			m.noteInput.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

// saveStatus 保存状态，保留既有备注（非 review 状态由 Manager 强制清空）
func (m *Model) saveStatus(player *model.Player, status string) {
	note := m.manager.Get(player.RecordID).Note
	if err := m.manager.Save(player.RecordID, status, note); err != nil {
		// 存储失败静默降级，内存状态仍然可用
		_ = err
	}
	m.recompute()
}

// updateNoteEditing 备注输入态
func (m Model) updateNoteEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editingNote = false
		m.noteInput.Blur()
		if _, player := m.playerAt(m.sequence.Current()); player != nil {
			status := m.manager.Get(player.RecordID).Status
			if err := m.manager.Save(player.RecordID, status, m.noteInput.Value()); err != nil {
				_ = err
			}
			m.recompute()
		}
		return m, nil
	case "esc":
		m.editingNote = false
		m.noteInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

// View 实现 tea.Model
func (m Model) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.sequence != nil {
		b.WriteString(m.viewDetail())
	} else if m.activeTab == tabTeams {
		b.WriteString(m.viewTeams())
	} else {
		b.WriteString(m.viewBoard())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	counts := m.manager.Counts()
	players := 0
	for _, t := range m.teams {
		players += len(t.Players)
	}

	title := m.styles.Header.Render("🏀 Courtside Review")
	pills := m.styles.Pill.Render(fmt.Sprintf("%d teams · %d players · %d tagged · %d review · %d correct",
		len(m.teams), players, counts.Tagged, counts.Review, counts.Correct))

	teamsTab := m.styles.TabInactive.Render("[Teams]")
	boardTab := m.styles.TabInactive.Render("[Review Board]")
	if m.activeTab == tabTeams {
		teamsTab = m.styles.TabActive.Render("[Teams]")
	} else {
		boardTab = m.styles.TabActive.Render("[Review Board]")
	}

	return title + "  " + pills + "\n" + teamsTab + " " + boardTab
}
