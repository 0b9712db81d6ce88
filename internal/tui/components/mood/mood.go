package mood

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/companion/internal/content"
	"github.com/julianstephens/companion/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0)

	choiceStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	selectedChoiceStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("205")).
				Bold(true)

	reflectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("183")).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Width(70)

	historyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// PickedMsg is emitted when the user confirms a mood choice; the host
// opens the optional note form and performs the store mutation.
type PickedMsg struct {
	Mood content.MoodChoice
}

type Model struct {
	choices    []content.MoodChoice
	cursor     int
	entries    []models.MoodEntry
	reflection string
	width      int
	height     int
}

func New(entries []models.MoodEntry) Model {
	return Model{
		choices: content.Moods(),
		entries: entries,
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetEntries refreshes the mood history after a store mutation.
func (m *Model) SetEntries(entries []models.MoodEntry) {
	m.entries = entries
}

// ShowReflection displays the canned reflection for a just-logged mood.
func (m *Model) ShowReflection(text string) {
	m.reflection = text
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			choice := m.choices[m.cursor]
			return m, func() tea.Msg { return PickedMsg{Mood: choice} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var cells []string
	for i, choice := range m.choices {
		label := fmt.Sprintf("%s %s", choice.Emoji, choice.Label)
		if i == m.cursor {
			cells = append(cells, selectedChoiceStyle.Render(label))
		} else {
			cells = append(cells, choiceStyle.Render(label))
		}
	}

	sections := []string{
		headerStyle.Render("How are you feeling today?"),
		dimStyle.Render("Take a moment to check in with yourself"),
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		dimStyle.Render("←/→ choose · enter log mood"),
	}

	if m.reflection != "" {
		sections = append(sections,
			headerStyle.Render("AI Reflection"),
			reflectionStyle.Render(m.reflection),
		)
	}

	sections = append(sections, headerStyle.Render("Your Mood Journey"))
	if len(m.entries) == 0 {
		sections = append(sections, dimStyle.Render("No check-ins yet."))
	} else {
		limit := len(m.entries)
		if limit > 5 {
			limit = 5
		}
		for _, entry := range m.entries[:limit] {
			choice, _ := content.FindMood(entry.Mood)
			line := fmt.Sprintf("%s %s mood  %s", choice.Emoji, choice.Label, dimStyle.Render(entry.Timestamp))
			if entry.Note != "" {
				line += "\n   " + dimStyle.Render(entry.Note)
			}
			sections = append(sections, historyStyle.Render(line))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
