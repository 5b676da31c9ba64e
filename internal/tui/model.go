// Package tui is the interactive terminal front end: a tabbed view over
// today's due habits, the full habit list, and friends.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haebit/haebit/internal/cli"
	"github.com/haebit/haebit/internal/models"
	"github.com/haebit/haebit/internal/recurrence"
	"github.com/haebit/haebit/internal/storage"
	"github.com/haebit/haebit/internal/utils"
)

type sessionState int

const (
	stateToday sessionState = iota
	stateHabits
	stateFriends
)

// HabitItem renders one habit in a list.
type HabitItem struct {
	Habit models.Habit
	Due   bool
}

func (i HabitItem) Title() string {
	title := i.Habit.Name
	if i.Habit.DeletedAt != nil {
		return "[DELETED] " + title
	}
	if i.Habit.ArchivedAt != nil {
		return "[ARCHIVED] " + title
	}
	return cli.CompletionGlyph(i.Habit.Completed) + " " + title
}

func (i HabitItem) Description() string {
	desc := cli.FormatRepeat(i.Habit.Repeat)
	if i.Habit.Alarm != "" {
		desc += "  " + i.Habit.Alarm
	}
	if !i.Due {
		desc += "  (not due today)"
	}
	return desc
}

func (i HabitItem) FilterValue() string { return i.Habit.Name }

// FriendItem renders one friend in a list.
type FriendItem struct {
	Friend models.Friend
}

func (i FriendItem) Title() string { return i.Friend.Name }

func (i FriendItem) Description() string {
	if i.Friend.PhotoURL != "" {
		return i.Friend.PhotoURL
	}
	return "friend since " + i.Friend.CreatedAt.Format("2006-01-02")
}

func (i FriendItem) FilterValue() string { return i.Friend.Name }

type Model struct {
	store  storage.Provider
	userID string

	state      sessionState
	keys       KeyMap
	help       help.Model
	todayList  list.Model
	habitList  list.Model
	friendList list.Model

	statusMsg string
	err       error
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, userID string) Model {
	newList := func(title string) list.Model {
		l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
		l.Title = title
		l.SetShowTitle(false)
		l.SetShowHelp(false)
		return l
	}

	m := Model{
		store:      store,
		userID:     userID,
		state:      stateToday,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		todayList:  newList("Today"),
		habitList:  newList("Habits"),
		friendList: newList("Friends"),
	}
	m.reload()
	return m
}

// reload pulls fresh data from the store into all three lists.
func (m *Model) reload() {
	m.err = nil

	habits, err := m.store.GetAllHabits(m.userID, true, false)
	if err != nil {
		m.err = err
		return
	}

	now := time.Now()
	var todayItems, habitItems []list.Item
	for _, habit := range habits {
		due := false
		if habit.ArchivedAt == nil {
			// Rules that fail to evaluate still show in the habit list,
			// just never as due.
			due, _ = recurrence.DueOn(habit, now)
		}
		habitItems = append(habitItems, HabitItem{Habit: habit, Due: due})
		if due {
			todayItems = append(todayItems, HabitItem{Habit: habit, Due: true})
		}
	}
	m.todayList.SetItems(todayItems)
	m.habitList.SetItems(habitItems)

	friends, err := m.store.GetAllFriends(m.userID)
	if err != nil {
		m.err = err
		return
	}
	var friendItems []list.Item
	for _, friend := range friends {
		friendItems = append(friendItems, FriendItem{Friend: friend})
	}
	m.friendList.SetItems(friendItems)
}

// activeList returns the list for the current tab.
func (m *Model) activeList() *list.Model {
	switch m.state {
	case stateHabits:
		return &m.habitList
	case stateFriends:
		return &m.friendList
	default:
		return &m.todayList
	}
}

// selectedHabit returns the habit under the cursor, if the current tab
// shows habits.
func (m *Model) selectedHabit() (models.Habit, bool) {
	if m.state == stateFriends {
		return models.Habit{}, false
	}
	if item, ok := m.activeList().SelectedItem().(HabitItem); ok {
		return item.Habit, true
	}
	return models.Habit{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func today() string {
	return utils.Today()
}
