package community

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/companion/internal/content"
	"github.com/julianstephens/companion/internal/models"
)

// LikeMsg asks the host to toggle the like state of a post.
type LikeMsg struct {
	ID int64
}

// ComposeMsg asks the host to open the share form.
type ComposeMsg struct{}

var (
	postStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	selectedPostStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("205")).
				Padding(0, 1)
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	likedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
)

type Model struct {
	posts  []models.SupportPost
	cursor int
	width  int
	height int
}

func New(posts []models.SupportPost) Model {
	return Model{posts: posts}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetPosts replaces the feed, keeping the cursor in range.
func (m *Model) SetPosts(posts []models.SupportPost) {
	m.posts = posts
	if m.cursor >= len(posts) {
		m.cursor = len(posts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the post under the cursor.
func (m Model) Selected() (models.SupportPost, bool) {
	if m.cursor < 0 || m.cursor >= len(m.posts) {
		return models.SupportPost{}, false
	}
	return m.posts[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.posts)-1 {
				m.cursor++
			}
		case "l":
			if post, ok := m.Selected(); ok {
				id := post.ID
				return m, func() tea.Msg { return LikeMsg{ID: id} }
			}
		case "n":
			return m, func() tea.Msg { return ComposeMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(noteStyle.Render("A safe space to share and support each other anonymously."))
	b.WriteString("\n\n")

	if len(m.posts) == 0 {
		b.WriteString(metaStyle.Render("No posts yet. Press n to share something."))
		return b.String()
	}

	// Keep the selected post visible on short terminals.
	visible := len(m.posts)
	if m.height > 0 {
		visible = m.height / 5
		if visible < 1 {
			visible = 1
		}
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.posts) {
		end = len(m.posts)
	}

	for i := start; i < end; i++ {
		post := m.posts[i]

		author := "Community Member"
		if post.Anonymous {
			author = "Anonymous"
		}
		heart := "♡"
		style := metaStyle
		if post.LikedByUser {
			heart = "♥"
			style = likedStyle
		}
		meta := fmt.Sprintf("%s · %s", author, post.Timestamp)
		likes := style.Render(fmt.Sprintf("%s %d", heart, post.Likes))
		replies := metaStyle.Render(fmt.Sprintf("%d replies", post.Replies))

		body := lipgloss.JoinVertical(lipgloss.Left,
			metaStyle.Render(meta),
			post.Content,
			likes+"  "+replies,
		)

		frame := postStyle
		if i == m.cursor {
			frame = selectedPostStyle
		}
		if m.width > 4 {
			frame = frame.Width(m.width - 2)
		}
		b.WriteString(frame.Render(body))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render("Guidelines: " + strings.Join(content.Guidelines, " · ")))
	b.WriteString("\n")
	b.WriteString(likedStyle.Render("Need immediate support? " + strings.Join(content.CrisisResources, " · ")))
	return b.String()
}
