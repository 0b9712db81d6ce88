package timerview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/companion/internal/timer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 1)
)

// CompletedMsg is emitted exactly once, when the countdown reaches zero
// naturally. Closing the widget never emits it.
type CompletedMsg struct {
	ActivityID string
}

// ClosedMsg is emitted when the user dismisses the widget.
type ClosedMsg struct{}

// TickMsg is the component's one-second heartbeat. The generation tag
// identifies which arming of the ticker a message belongs to, so ticks
// armed before a pause, resume, or reset are discarded instead of
// stacking into overlapping timers.
type TickMsg struct {
	Gen int
}

type Model struct {
	ActivityID string
	Title      string

	countdown *timer.Countdown
	bar       progress.Model
	gen       int
	width     int
	height    int
}

// New builds the widget for one activity. The countdown starts Idle;
// nothing ticks until the user starts it.
func New(activityID, title, duration string) Model {
	return Model{
		ActivityID: activityID,
		Title:      title,
		countdown:  timer.New(duration),
		bar:        progress.New(progress.WithDefaultGradient()),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	barWidth := width - 8
	if barWidth > 40 {
		barWidth = 40
	}
	if barWidth > 0 {
		m.bar.Width = barWidth
	}
}

// tick arms the next one-second tick for the current generation.
func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

func completedCmd(activityID string) tea.Cmd {
	return func() tea.Msg { return CompletedMsg{ActivityID: activityID} }
}

func closedCmd() tea.Msg { return ClosedMsg{} }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.Gen != m.gen {
			// Stale tick from before a state change; already torn down.
			return m, nil
		}
		if m.countdown.Tick() {
			return m, completedCmd(m.ActivityID)
		}
		if m.countdown.State() == timer.StateRunning {
			return m, m.tick()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "enter":
			if m.countdown.State() == timer.StateIdle {
				m.gen++
				if m.countdown.Start() {
					// Zero-length duration completes immediately.
					return m, completedCmd(m.ActivityID)
				}
				return m, m.tick()
			}
		case "p", " ":
			state := m.countdown.State()
			if state == timer.StateRunning || state == timer.StatePaused {
				m.gen++
				m.countdown.Toggle()
				if m.countdown.State() == timer.StateRunning {
					return m, m.tick()
				}
			}
		case "r":
			m.gen++
			m.countdown.Reset()
			return m, nil
		case "esc", "q":
			return m, closedCmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	percent := int(m.countdown.Progress() * 100)

	var status string
	switch m.countdown.State() {
	case timer.StateIdle:
		status = "s start · r reset · esc close"
	case timer.StateRunning:
		status = "p pause · r reset · esc close"
	case timer.StatePaused:
		status = "p resume · r reset · esc close"
	case timer.StateCompleted:
		status = "esc close"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.Title),
		hintStyle.Render("Focus time for your wellness activity"),
		clockStyle.Render(m.countdown.FormatRemaining()),
		m.bar.ViewAs(m.countdown.Progress()),
		hintStyle.Render(fmt.Sprintf("%d%% complete", percent)),
		hintStyle.Render(status),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// State exposes the countdown state for the host's routing decisions.
func (m Model) State() timer.State {
	return m.countdown.State()
}
