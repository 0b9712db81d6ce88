package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/companion/internal/constants"
	"github.com/julianstephens/companion/internal/content"
	"github.com/julianstephens/companion/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	earnedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

type Model struct {
	progress content.Progress
	entries  []models.MoodEntry
	now      func() time.Time
	width    int
	height   int
}

func New(progress content.Progress, entries []models.MoodEntry) Model {
	return Model{progress: progress, entries: entries, now: time.Now}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetProgress(progress content.Progress, entries []models.MoodEntry) {
	m.progress = progress
	m.entries = entries
}

func (m Model) View() string {
	var b strings.Builder

	stats := m.progress.Stats

	b.WriteString(headerStyle.Render("Your Progress"))
	b.WriteString("\n\n")
	b.WriteString(m.summary(stats))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("This Week"))
	b.WriteString("\n")
	b.WriteString(m.weeklyOverview())
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Achievements"))
	b.WriteString("\n")
	b.WriteString(m.achievements())

	return b.String()
}

func (m Model) summary(stats models.UserStats) string {
	rows := []struct {
		label string
		value string
	}{
		{"Wellness Score", fmt.Sprintf("%d / %d", stats.WellnessScore, constants.MaxWellnessScore)},
		{"Day Streak", fmt.Sprintf("%d", stats.Streak)},
		{"Tasks Completed", fmt.Sprintf("%d / %d", stats.CompletedTasks, stats.TotalTasks)},
		{"Total Points", fmt.Sprintf("%d", stats.TotalPoints)},
	}

	cells := make([]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, cardStyle.Render(
			labelStyle.Render(r.label)+"\n"+valueStyle.Render(r.value)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// weeklyOverview charts the average mood score per day for the past week.
func (m Model) weeklyOverview() string {
	type bucket struct {
		sum   int
		count int
	}
	byDate := make(map[string]*bucket)
	for _, entry := range m.entries {
		if b, ok := byDate[entry.Date]; ok {
			b.sum += content.MoodScale(entry.Mood)
			b.count++
		} else {
			byDate[entry.Date] = &bucket{sum: content.MoodScale(entry.Mood), count: 1}
		}
	}

	var b strings.Builder
	today := m.now()
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format(constants.DateFormat)

		score := 0
		if bk, ok := byDate[date]; ok && bk.count > 0 {
			score = bk.sum / bk.count
		}

		bar := strings.Repeat("█", score)
		if score == 0 {
			bar = labelStyle.Render("·")
		} else {
			bar = barStyle.Render(bar)
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render(day.Format("Mon")), bar))
	}
	return b.String()
}

func (m Model) achievements() string {
	var b strings.Builder
	for _, a := range content.Achievements() {
		if a.Earned(m.progress) {
			b.WriteString(earnedStyle.Render(fmt.Sprintf("%s %s", a.Icon, a.Title)))
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(a.Description))
		} else {
			b.WriteString(lockedStyle.Render(fmt.Sprintf("🔒 %s  %s", a.Title, a.Description)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
