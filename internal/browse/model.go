// Package browse 提供浏览注册表条目的终端界面
package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"instreg/internal/render"
	"instreg/pkg/registry"
)

// Model 是注册表浏览界面的 Bubble Tea 模型
type Model struct {
	// 组件
	table    table.Model
	viewport viewport.Model

	// 状态
	reg       registry.Registry
	showing   bool
	selected  string
	errorText string
	quitting  bool
	width     int
	height    int

	// 渲染器
	renderer *glamour.TermRenderer

	// 样式
	titleStyle lipgloss.Style
	errorStyle lipgloss.Style
	helpStyle  lipgloss.Style
}

// NewModel 创建浏览模型，style 为 glamour 样式名，空字符串表示自动检测
func NewModel(reg registry.Registry, style string) (*Model, error) {
	renderer, err := render.NewMarkdownRenderer(style, 80)
	if err != nil {
		return nil, err
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "NAME", Width: 32},
			{Title: "TYPE", Width: 24},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#04B575")).
		Bold(false)
	t.SetStyles(s)

	m := &Model{
		table:    t,
		viewport: viewport.New(100, 40),
		reg:      reg,
		renderer: renderer,
		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ffff")).
			Bold(true).
			MarginLeft(1),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")).
			MarginLeft(1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginLeft(1),
	}
	m.refresh()
	return m, nil
}

// refresh 从注册表重新加载表格行
func (m *Model) refresh() {
	items := m.reg.List()
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, table.Row{item.Name, item.Type})
	}
	m.table.SetRows(rows)
}

// Init 实现 tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update 实现 tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		m.table.SetHeight(max(msg.Height-6, 3))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.showing = false
			m.errorText = ""
			return m, nil
		case "r":
			if !m.showing {
				m.refresh()
				return m, nil
			}
		case "enter":
			if !m.showing {
				m.openSelected()
				return m, nil
			}
		}
	}

	if m.showing {
		m.viewport, cmd = m.viewport.Update(msg)
	} else {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// openSelected 渲染当前选中条目的详情
func (m *Model) openSelected() {
	row := m.table.SelectedRow()
	if row == nil {
		return
	}

	name := row[0]
	entry, ok := m.reg.GetEntry(name)
	if !ok {
		// 条目可能已在其他地方被清空
		m.errorText = fmt.Sprintf("实例 %s 已不在注册表中", name)
		m.refresh()
		return
	}

	content, err := render.Entry(m.renderer, entry)
	if err != nil {
		m.errorText = err.Error()
		return
	}

	m.selected = name
	m.errorText = ""
	m.showing = true
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// View 实现 tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body, help string
	if m.showing {
		body = m.viewport.View()
		help = "↑/↓ 滚动 • esc 返回 • q 退出"
	} else {
		body = m.table.View()
		help = "↑/↓ 选择 • enter 查看 • r 刷新 • q 退出"
	}

	title := m.titleStyle.Render(fmt.Sprintf("instreg · %d 个实例", m.reg.Len()))
	view := lipgloss.JoinVertical(lipgloss.Left, title, body)
	if m.errorText != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.errorStyle.Render(m.errorText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, m.helpStyle.Render(help))
}

// Showing 返回当前是否处于详情视图，以及对应的条目名称
func (m *Model) Showing() (string, bool) {
	return m.selected, m.showing
}

// Run 启动全屏浏览界面
func Run(reg registry.Registry) error {
	m, err := NewModel(reg, "")
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
