// Package tui provides the Bubble Tea challenge interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sugarcut/internal/calendar"
	"github.com/verte-zerg/sugarcut/internal/challenge"
	"github.com/verte-zerg/sugarcut/internal/motivation"
	"github.com/verte-zerg/sugarcut/internal/stats"
)

const (
	tabHome = iota
	tabProgress
	tabSettings
)

const messageTimeout = 6 * time.Second

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FF6B6B"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4")).Bold(true)
	modalStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Padding(1, 2)
)

type confirmation struct {
	prompt string
	done   string
	action func() error
}

type clearMessageMsg struct {
	seq int
}

// Model implements the Bubble Tea challenge UI.
type Model struct {
	engine  *challenge.Engine
	version string

	keys keyMap
	help help.Model

	tabs      []string
	activeTab int

	width  int
	height int

	message    string
	messageSeq int
	confirm    *confirmation
	notice     string
	errMsg     string
}

// NewModel constructs the challenge UI over a loaded engine.
func NewModel(engine *challenge.Engine, version string) *Model {
	m := &Model{
		engine:  engine,
		version: version,
		keys:    newKeyMap(),
		help:    help.New(),
		tabs:    []string{"Home", "Progress", "Settings"},
	}
	m.syncKeys()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case clearMessageMsg:
		if msg.seq == m.messageSeq {
			m.message = ""
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	// The date may have rolled over since the last key press.
	m.syncKeys()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.moveTab(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveTab(1)
	case key.Matches(msg, m.keys.CheckIn):
		return m, m.checkIn()
	case key.Matches(msg, m.keys.Reset):
		m.askReset()
	case key.Matches(msg, m.keys.Switch):
		m.askSwitch()
	}
	m.syncKeys()
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		c := m.confirm
		m.confirm = nil
		if err := c.action(); err != nil {
			m.errMsg = err.Error()
			m.notice = ""
		} else {
			m.errMsg = ""
			m.notice = c.done
		}
	case key.Matches(msg, m.keys.Cancel):
		m.confirm = nil
	}
	m.syncKeys()
	return m, nil
}

func (m *Model) checkIn() tea.Cmd {
	if m.engine.IsCheckedInToday() {
		return nil
	}
	if err := m.engine.CheckIn(context.Background()); err != nil {
		m.errMsg = err.Error()
	} else {
		m.errMsg = ""
	}
	m.notice = ""
	m.messageSeq++
	m.message = motivation.Message(m.engine.CurrentStreak())
	m.syncKeys()
	seq := m.messageSeq
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return clearMessageMsg{seq: seq}
	})
}

func (m *Model) askReset() {
	length := m.engine.Length()
	m.confirm = &confirmation{
		prompt: fmt.Sprintf("Are you sure you want to reset your %d-day challenge? You'll lose your current %d-day streak.",
			length, m.engine.CurrentStreak()),
		done: "Challenge reset. Start fresh!",
		action: func() error {
			return m.engine.Reset(context.Background(), 0)
		},
	}
}

func (m *Model) askSwitch() {
	next := m.engine.Length().Other()
	m.confirm = &confirmation{
		prompt: fmt.Sprintf("Switch to %d-day challenge? This will reset your current progress.", next),
		done:   fmt.Sprintf("Switched to %d-day challenge!", next),
		action: func() error {
			return m.engine.Reset(context.Background(), next)
		},
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	m.notice = ""
}

func (m *Model) syncKeys() {
	confirming := m.confirm != nil
	m.keys.Left.SetEnabled(!confirming)
	m.keys.Right.SetEnabled(!confirming)
	m.keys.Quit.SetEnabled(!confirming)
	m.keys.CheckIn.SetEnabled(!confirming && m.activeTab == tabHome && !m.engine.IsCheckedInToday())
	m.keys.Reset.SetEnabled(!confirming && m.activeTab == tabSettings)
	m.keys.Switch.SetEnabled(!confirming && m.activeTab == tabSettings)
	m.keys.Confirm.SetEnabled(confirming)
	m.keys.Cancel.SetEnabled(confirming)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.renderBody()
	}
	if m.confirm != nil {
		return m.renderModal(m.confirm.prompt, mutedStyle.Render("y/enter to confirm · n/esc to cancel"))
	}
	header := padLines(m.renderTabs(), m.width)
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := m.renderBody()
	if m.message != "" {
		body = m.renderMessage()
	}
	body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	return strings.Join([]string{header, fitLines(body, m.width, bodyHeight), footer}, "\n")
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFooter() string {
	lines := []string{m.help.View(m.keys)}
	if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice))
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody() string {
	switch m.activeTab {
	case tabProgress:
		return m.renderProgress()
	case tabSettings:
		return m.renderSettings()
	default:
		return m.renderHome()
	}
}

func (m *Model) renderHome() string {
	p := m.engine.Progress()
	card := cardStyle.Render(strings.Join([]string{
		cardValueStyle.Render(fmt.Sprintf("Day %d", p.Streak)),
		cardTitleStyle.Render(fmt.Sprintf("%d Day Challenge", p.Length)),
		barStyle.Render(stats.ProgressBar(p.Percentage, 30)),
		cardTitleStyle.Render(fmt.Sprintf("%.1f%% Complete", p.Percentage)),
	}, "\n"))

	button := titleStyle.Render("♥ Mark Today Sugar-Free (c)")
	if p.CheckedInToday {
		button = doneStyle.Render("✓ Completed Today!")
	}

	focus := cardStyle.Render(cardValueStyle.Render("Today's Focus") + "\n" +
		mutedStyle.Italic(true).Render(fmt.Sprintf("%q", motivation.Tip)))

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Sugar Cut Challenge"),
		mutedStyle.Render("Stay strong, stay healthy!"),
		"",
		card,
		"",
		button,
		"",
		focus,
	)
}

func (m *Model) renderProgress() string {
	p := m.engine.Progress()
	cards := []string{
		metricCard("Current Streak", fmt.Sprintf("%d days", p.Streak)),
		metricCard("Goal", fmt.Sprintf("%d days", p.Length)),
		metricCard("Days Left", fmt.Sprintf("%d days", p.DaysRemaining)),
		metricCard("Total Completed", fmt.Sprintf("%d days", p.TotalCompleted)),
	}
	var grid string
	if m.width > 0 && m.width < 80 {
		grid = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]))
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	badges := make([]string, 0, len(p.Milestones))
	for _, ms := range p.Milestones {
		style := cardStyle
		if ms.Reached {
			style = cardStyle.BorderForeground(lipgloss.Color("#4ECDC4"))
		}
		badges = append(badges, style.Render(cardValueStyle.Render(fmt.Sprintf("%d Days", ms.Days))+"\n"+cardTitleStyle.Render(ms.Title)))
	}

	heatmap := calendar.Render(calendar.Build(p.Today, m.engine.History(), calendar.DefaultDays), true)

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Your Progress"),
		barStyle.Render(stats.ProgressBar(p.Percentage, 40))+" "+cardValueStyle.Render(fmt.Sprintf("%.0f%%", p.Percentage)),
		"",
		grid,
		"",
		cardValueStyle.Render("Check-in History"),
		heatmap,
		"",
		cardValueStyle.Render("Milestones"),
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
	)
}

func (m *Model) renderSettings() string {
	length := m.engine.Length()
	items := []string{
		metricCard("Challenge Duration (t)", fmt.Sprintf("%d Days", length)),
		metricCard("Reset Challenge (r)", "Start over from day 1"),
		metricCard("About", "Sugar Cut Challenge "+m.version),
	}
	tips := make([]string, 0, len(motivation.Tips))
	for _, tip := range motivation.Tips {
		tips = append(tips, "• "+tip)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Settings"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, items...),
		"",
		cardValueStyle.Render("Tips for Success"),
		mutedStyle.Render(strings.Join(tips, "\n")),
	)
}

func (m *Model) renderMessage() string {
	body := cardValueStyle.Render("Congratulations!") + "\n\n" + m.message + "\n\n" + mutedStyle.Render("Keep going! Press any key.")
	return modalStyle.Width(modalWidth(m.width)).Render(body)
}

func (m *Model) renderModal(lines ...string) string {
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(lines, "\n\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}
