package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haebit/haebit/internal/recurrence"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		listHeight := msg.Height - v - 4
		m.todayList.SetSize(msg.Width-h, listHeight)
		m.habitList.SetSize(msg.Width-h, listHeight)
		m.friendList.SetSize(msg.Width-h, listHeight)
		return m, nil

	case tea.KeyMsg:
		if m.activeList().FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % 3
			m.statusMsg = ""
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + 2) % 3
			m.statusMsg = ""
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.reload()
			m.statusMsg = "Reloaded."
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if habit, ok := m.selectedHabit(); ok && habit.ArchivedAt == nil {
				toggled := recurrence.ToggleCompletion(habit)
				if err := m.store.SetHabitCompleted(m.userID, habit.ID, toggled.Completed); err != nil {
					m.err = err
					return m, nil
				}
				if toggled.Completed {
					m.statusMsg = fmt.Sprintf("Marked %q as done.", habit.Name)
				} else {
					m.statusMsg = fmt.Sprintf("Marked %q as not done.", habit.Name)
				}
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Archive):
			if habit, ok := m.selectedHabit(); ok && habit.ArchivedAt == nil {
				if err := m.store.ArchiveHabit(m.userID, habit.ID); err != nil {
					m.err = err
					return m, nil
				}
				m.statusMsg = fmt.Sprintf("Archived %q.", habit.Name)
				m.reload()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case stateFriends:
		m.friendList, cmd = m.friendList.Update(msg)
	default:
		m.todayList, cmd = m.todayList.Update(msg)
	}
	return m, cmd
}
