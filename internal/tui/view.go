package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/companion/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateDashboard:
		content = docStyle.Render(m.dashboardModel.View())
	case constants.StateMood:
		content = docStyle.Render(m.moodModel.View())
	case constants.StateCoach:
		content = docStyle.Render(m.coachModel.View())
	case constants.StateCommunity:
		content = docStyle.Render(m.communityModel.View())
	case constants.StateStats:
		content = docStyle.Render(m.statsModel.View())
	case constants.StateTimer:
		content = docStyle.Render(m.timerModel.View())
	case constants.StateMoodNote, constants.StateCompose:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		}
	}

	sections := []string{m.viewTabs(), content}
	if m.statusLine != "" {
		sections = append(sections, statusStyle.Render(m.statusLine))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	active := m.state
	// Modal screens highlight the tab they were opened from.
	switch m.state {
	case constants.StateMoodNote:
		active = constants.StateMood
	case constants.StateTimer:
		active = constants.StateCoach
	case constants.StateCompose:
		active = constants.StateCommunity
	}

	rendered := make([]string, 0, len(tabs))
	for i, s := range tabs {
		if s == active {
			rendered = append(rendered, activeTabStyle.Render(tabTitles[i]))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(tabTitles[i]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
