package storage

import "github.com/haebit/haebit/internal/models"

// Provider is the persistence boundary. Every record operation is scoped
// by the owning user's id, mirroring the per-user collections the data
// model was designed around.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Profiles
	GetProfile(userID string) (models.Profile, error)
	SaveProfile(profile models.Profile) error
	// EnsureDefaultProfile returns the first stored profile, creating one
	// with the given nickname when the database has none.
	EnsureDefaultProfile(nickname string) (models.Profile, error)

	// Habits
	// AddHabit assigns an id when the record carries none and returns the
	// final id.
	AddHabit(userID string, habit models.Habit) (string, error)
	GetHabit(userID, id string) (models.Habit, error)
	GetHabitByName(userID, name string) (models.Habit, error)
	GetAllHabits(userID string, includeArchived, includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(userID string, habit models.Habit) error
	// SetHabitCompleted updates the completed flag and nothing else.
	SetHabitCompleted(userID, habitID string, completed bool) error
	ArchiveHabit(userID, id string) error
	UnarchiveHabit(userID, id string) error
	DeleteHabit(userID, id string) error
	RestoreHabit(userID, id string) error

	// Friends
	AddFriend(userID string, friend models.Friend) (string, error)
	GetAllFriends(userID string) ([]models.Friend, error)
	RemoveFriend(userID, friendID string) error
}
