package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/companion/internal/constants"
	"github.com/julianstephens/companion/internal/content"
	"github.com/julianstephens/companion/internal/tui/components/coach"
	"github.com/julianstephens/companion/internal/tui/components/community"
	"github.com/julianstephens/companion/internal/tui/components/mood"
	"github.com/julianstephens/companion/internal/tui/components/timerview"
	"github.com/julianstephens/companion/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.setSizes()
		return m, nil

	case mood.PickedMsg:
		m.pendingMood = msg.Mood
		m.noteForm = &MoodNoteForm{}
		m.form = newMoodNoteForm(m.noteForm)
		m.state = constants.StateMoodNote
		return m, m.form.Init()

	case community.ComposeMsg:
		m.composeForm = &ComposeForm{}
		m.form = newComposeForm(m.composeForm)
		m.state = constants.StateCompose
		return m, m.form.Init()

	case community.LikeMsg:
		m.store.ToggleLike(msg.ID)
		m.refresh()
		return m, nil

	case coach.StartMsg:
		m.timerModel = timerview.New(msg.Activity.ID, msg.Activity.Title, msg.Activity.Duration)
		m.setSizes()
		m.state = constants.StateTimer
		return m, nil

	case coach.CompleteMsg:
		m.completeActivity(msg.ID)
		return m, nil

	case timerview.CompletedMsg:
		m.completeActivity(msg.ActivityID)
		return m, nil

	case timerview.ClosedMsg:
		m.state = constants.StateCoach
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case constants.StateMoodNote, constants.StateCompose:
			return m.updateForm(msg)
		case constants.StateTimer:
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.timerModel, cmd = m.timerModel.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.cycleTab(1)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.cycleTab(-1)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		m.statusLine = ""
		return m.updateActive(msg)
	}

	return m.updateActive(msg)
}

// updateActive routes a message to the component for the current state.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case constants.StateMood:
		m.moodModel, cmd = m.moodModel.Update(msg)
	case constants.StateCoach:
		m.coachModel, cmd = m.coachModel.Update(msg)
	case constants.StateCommunity:
		m.communityModel, cmd = m.communityModel.Update(msg)
	case constants.StateTimer:
		m.timerModel, cmd = m.timerModel.Update(msg)
	case constants.StateMoodNote, constants.StateCompose:
		if m.form != nil {
			return m.updateForm(msg)
		}
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m.closeForm(), nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		switch m.state {
		case constants.StateMoodNote:
			m.store.LogMood(m.pendingMood.Value, m.noteForm.Note)
			m.moodModel.ShowReflection(content.Reflection(m.pendingMood.Value))
			m.refresh()
			m.statusLine = fmt.Sprintf("Mood logged %s  +%d wellness", m.pendingMood.Emoji, constants.MoodScoreBonus)
			m.state = constants.StateMood
		case constants.StateCompose:
			if err := validation.CheckPostContent(m.composeForm.Content); err != nil {
				m.statusLine = "Post not shared: " + err.Error()
			} else {
				m.store.SubmitPost(m.composeForm.Content)
				m.refresh()
				m.statusLine = fmt.Sprintf("Shared with the community  +%d wellness", constants.PostScoreBonus)
			}
			m.state = constants.StateCommunity
		}
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) closeForm() Model {
	switch m.state {
	case constants.StateMoodNote:
		m.state = constants.StateMood
	case constants.StateCompose:
		m.state = constants.StateCommunity
	}
	m.form = nil
	return m
}

func (m *Model) completeActivity(id string) {
	if !m.store.CompleteActivity(id) {
		m.statusLine = "Already completed today's session for this activity."
		return
	}
	m.refresh()
	m.statusLine = fmt.Sprintf("Activity complete  +%d points, +%d wellness",
		content.ActivityPoints(id), constants.ActivityScoreBonus)
}

func (m *Model) cycleTab(direction int) {
	current := 0
	for i, s := range tabs {
		if s == m.state {
			current = i
			break
		}
	}
	next := (current + direction + len(tabs)) % len(tabs)
	m.state = tabs[next]
	m.statusLine = ""
}
