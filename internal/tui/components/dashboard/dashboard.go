package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/companion/internal/constants"
	"github.com/julianstephens/companion/internal/content"
	"github.com/julianstephens/companion/internal/models"
)

var (
	greetingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle    = lipgloss.NewStyle().Bold(true)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
)

type Model struct {
	stats    models.UserStats
	lastMood *models.MoodEntry
	scoreBar progress.Model
	width    int
	height   int
}

func New(stats models.UserStats, entries []models.MoodEntry) Model {
	bar := progress.New(progress.WithDefaultGradient())
	m := Model{stats: stats, scoreBar: bar}
	m.setLastMood(entries)
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	barWidth := width - 8
	if barWidth > 40 {
		barWidth = 40
	}
	if barWidth > 0 {
		m.scoreBar.Width = barWidth
	}
}

func (m *Model) Refresh(stats models.UserStats, entries []models.MoodEntry) {
	m.stats = stats
	m.setLastMood(entries)
}

func (m *Model) setLastMood(entries []models.MoodEntry) {
	if len(entries) > 0 {
		entry := entries[0]
		m.lastMood = &entry
	} else {
		m.lastMood = nil
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(greetingStyle.Render("Welcome back 🌱"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Here is how your wellness journey is going."))
	b.WriteString("\n\n")

	score := float64(m.stats.WellnessScore) / float64(constants.MaxWellnessScore)
	b.WriteString(labelStyle.Render("Wellness Score") + "  " +
		valueStyle.Render(fmt.Sprintf("%d", m.stats.WellnessScore)))
	b.WriteString("\n")
	b.WriteString(m.scoreBar.ViewAs(score))
	b.WriteString("\n\n")

	cards := []string{
		cardStyle.Render(labelStyle.Render("🔥 Streak") + "\n" +
			valueStyle.Render(fmt.Sprintf("%d days", m.stats.Streak))),
		cardStyle.Render(labelStyle.Render("✅ Tasks") + "\n" +
			valueStyle.Render(fmt.Sprintf("%d/%d", m.stats.CompletedTasks, m.stats.TotalTasks))),
		cardStyle.Render(labelStyle.Render("⭐ Points") + "\n" +
			valueStyle.Render(fmt.Sprintf("%d", m.stats.TotalPoints))),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	if m.lastMood != nil {
		choice, ok := content.FindMood(m.lastMood.Mood)
		emoji := ""
		if ok {
			emoji = choice.Emoji + " "
		}
		b.WriteString(labelStyle.Render("Last check-in: ") +
			fmt.Sprintf("%s%s (%s)", emoji, m.lastMood.Mood, m.lastMood.Timestamp))
	} else {
		b.WriteString(hintStyle.Render("You haven't checked in yet. Head to the Mood tab to log how you feel."))
	}

	return b.String()
}
