package coach

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/companion/internal/content"
	"github.com/julianstephens/companion/internal/models"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)

// StartMsg asks the host to open the countdown timer for an activity.
type StartMsg struct {
	Activity content.Activity
}

// CompleteMsg asks the host to mark an activity done without a timer.
type CompleteMsg struct {
	ID string
}

type Item struct {
	Activity    content.Activity
	IsCompleted bool
}

func (i Item) Title() string {
	if i.IsCompleted {
		return "✓ " + i.Activity.Title
	}
	return "○ " + i.Activity.Title
}

func (i Item) Description() string {
	if i.IsCompleted {
		return "completed"
	}
	return fmt.Sprintf("%s · %s · %s · +%d pts",
		i.Activity.Description, i.Activity.Duration, i.Activity.Category, i.Activity.Points)
}

func (i Item) FilterValue() string { return i.Activity.Title }

type KeyMap struct {
	Start key.Binding
	Done  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start with timer"),
		),
		Done: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "mark done"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	stats models.UserStats
}

func New(completed []string, stats models.UserStats, width, height int) Model {
	keys := DefaultKeyMap()

	l := list.New(buildItems(completed), list.NewDefaultDelegate(), width, height)
	l.Title = "Recommended Activities"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Start, keys.Done}
	}

	return Model{
		list:  l,
		keys:  keys,
		stats: stats,
	}
}

func buildItems(completed []string) []list.Item {
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	activities := content.Activities()
	items := make([]list.Item, len(activities))
	for i, a := range activities {
		items[i] = Item{Activity: a, IsCompleted: done[a.ID]}
	}
	return items
}

// Refresh rebuilds the item list after a completion.
func (m *Model) Refresh(completed []string, stats models.UserStats) {
	m.list.SetItems(buildItems(completed))
	m.stats = stats
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the activity under the cursor.
func (m Model) Selected() (Item, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item, ok
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Start):
			if item, ok := m.Selected(); ok && !item.IsCompleted {
				activity := item.Activity
				return m, func() tea.Msg { return StartMsg{Activity: activity} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Done):
			if item, ok := m.Selected(); ok && !item.IsCompleted {
				id := item.Activity.ID
				return m, func() tea.Msg { return CompleteMsg{ID: id} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	done := 0
	for _, item := range m.list.Items() {
		if i, ok := item.(Item); ok && i.IsCompleted {
			done++
		}
	}
	footer := footerStyle.Render(fmt.Sprintf("%d/%d completed today · %d points earned",
		done, len(m.list.Items()), m.stats.TotalPoints))
	return m.list.View() + "\n" + footer
}
