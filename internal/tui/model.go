package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/companion/internal/app"
	"github.com/julianstephens/companion/internal/constants"
	"github.com/julianstephens/companion/internal/content"
	"github.com/julianstephens/companion/internal/tui/components/coach"
	"github.com/julianstephens/companion/internal/tui/components/community"
	"github.com/julianstephens/companion/internal/tui/components/dashboard"
	"github.com/julianstephens/companion/internal/tui/components/mood"
	"github.com/julianstephens/companion/internal/tui/components/stats"
	"github.com/julianstephens/companion/internal/tui/components/timerview"
)

// tabs lists the top-level screens in cycling order.
var tabs = []constants.SessionState{
	constants.StateDashboard,
	constants.StateMood,
	constants.StateCoach,
	constants.StateCommunity,
	constants.StateStats,
}

var tabTitles = []string{"Home", "Mood", "Coach", "Community", "Stats"}

type MoodNoteForm struct {
	Note string
}

type ComposeForm struct {
	Content string
}

type Model struct {
	store          *app.Store
	state          constants.SessionState
	keys           KeyMap
	help           help.Model
	dashboardModel dashboard.Model
	moodModel      mood.Model
	coachModel     coach.Model
	communityModel community.Model
	statsModel     stats.Model
	timerModel     timerview.Model
	form           *huh.Form
	noteForm       *MoodNoteForm
	composeForm    *ComposeForm
	pendingMood    content.MoodChoice
	statusLine     string
	quitting       bool
	width          int
	height         int
}

func NewModel(store *app.Store) Model {
	m := Model{
		store:          store,
		state:          constants.StateDashboard,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		dashboardModel: dashboard.New(store.Stats(), store.MoodEntries()),
		moodModel:      mood.New(store.MoodEntries()),
		coachModel:     coach.New(store.CompletedActivities(), store.Stats(), 0, 0),
		communityModel: community.New(store.SupportPosts()),
		statsModel:     stats.New(store.Progress(), store.MoodEntries()),
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateMood:
		keys = append(keys, m.keys.Left, m.keys.Right, m.keys.Enter)
	case constants.StateCoach:
		keys = append(keys, m.keys.Enter, m.keys.Done)
	case constants.StateCommunity:
		keys = append(keys, m.keys.Like, m.keys.Share)
	case constants.StateTimer:
		keys = append(keys, m.keys.Back)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateCoach:
		actions = []key.Binding{m.keys.Done}
	case constants.StateCommunity:
		actions = []key.Binding{m.keys.Like, m.keys.Share}
	case constants.StateTimer:
		actions = []key.Binding{m.keys.Back}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh pushes the store's current state into every component.
func (m *Model) refresh() {
	m.dashboardModel.Refresh(m.store.Stats(), m.store.MoodEntries())
	m.moodModel.SetEntries(m.store.MoodEntries())
	m.coachModel.Refresh(m.store.CompletedActivities(), m.store.Stats())
	m.communityModel.SetPosts(m.store.SupportPosts())
	m.statsModel.SetProgress(m.store.Progress(), m.store.MoodEntries())
}

func (m *Model) setSizes() {
	contentHeight := m.height - 6
	if contentHeight < 1 {
		contentHeight = 1
	}
	listWidth := m.width - 4
	if listWidth < 0 {
		listWidth = 0
	}
	m.dashboardModel.SetSize(m.width, contentHeight)
	m.moodModel.SetSize(m.width, contentHeight)
	m.coachModel.SetSize(listWidth, contentHeight)
	m.communityModel.SetSize(m.width, contentHeight)
	m.statsModel.SetSize(m.width, contentHeight)
	m.timerModel.SetSize(m.width, contentHeight)
}

func newMoodNoteForm(f *MoodNoteForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Add a note (optional)").
				Description("Anything on your mind? Press enter to save.").
				CharLimit(500).
				Value(&f.Note),
		),
	)
}

func newComposeForm(f *ComposeForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Share with the community").
				Description("Posts are anonymous. Be kind.").
				CharLimit(1000).
				Value(&f.Content),
		),
	)
}
