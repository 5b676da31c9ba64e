package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabNames = []string{"Today", "Habits", "Friends"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Tab bar
	var tabs []string
	for i, name := range tabNames {
		if sessionState(i) == m.state {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if m.state == stateToday {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Due on %s", today())))
		b.WriteString("\n")
	}

	switch {
	case m.state == stateToday && len(m.todayList.Items()) == 0:
		b.WriteString("\n  Nothing due today.\n")
	case m.state == stateHabits && len(m.habitList.Items()) == 0:
		b.WriteString("\n  No habits yet. Add one with 'haebit habit add'.\n")
	case m.state == stateFriends && len(m.friendList.Items()) == 0:
		b.WriteString("\n  No friends yet. Add one with 'haebit friend add'.\n")
	default:
		switch m.state {
		case stateHabits:
			b.WriteString(m.habitList.View())
		case stateFriends:
			b.WriteString(m.friendList.View())
		default:
			b.WriteString(m.todayList.View())
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(dangerStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}
