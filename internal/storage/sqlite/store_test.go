package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/haebit/haebit/internal/models"
)

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	profile, err := store.EnsureDefaultProfile("tester")
	if err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return store, profile.ID
}

func testHabit(name string) models.Habit {
	return models.Habit{
		Name:      name,
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
		Repeat: models.Repeat{
			Kind:     models.RepeatWeekly,
			Weekdays: []time.Weekday{time.Monday, time.Wednesday},
		},
		Alarm: "AM 9:30",
	}
}

func TestHabitCRUD(t *testing.T) {
	store, userID := setupTestStore(t)

	id, err := store.AddHabit(userID, testHabit("Morning meditation"))
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	if id == "" {
		t.Fatal("expected store to assign an id")
	}

	retrieved, err := store.GetHabit(userID, id)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if retrieved.Name != "Morning meditation" {
		t.Errorf("expected name %q, got %q", "Morning meditation", retrieved.Name)
	}
	if retrieved.Repeat.Kind != models.RepeatWeekly {
		t.Errorf("expected weekly repeat, got %q", retrieved.Repeat.Kind)
	}
	if len(retrieved.Repeat.Weekdays) != 2 ||
		retrieved.Repeat.Weekdays[0] != time.Monday ||
		retrieved.Repeat.Weekdays[1] != time.Wednesday {
		t.Errorf("repeat weekdays did not round-trip: %v", retrieved.Repeat.Weekdays)
	}
	if retrieved.Completed {
		t.Error("new habit should not be completed")
	}

	byName, err := store.GetHabitByName(userID, "Morning meditation")
	if err != nil {
		t.Fatalf("failed to get habit by name: %v", err)
	}
	if byName.ID != id {
		t.Errorf("expected ID %q, got %q", id, byName.ID)
	}

	retrieved.Name = "Evening meditation"
	retrieved.EndDate = ""
	if err := store.UpdateHabit(userID, retrieved); err != nil {
		t.Fatalf("failed to update habit: %v", err)
	}
	updated, err := store.GetHabit(userID, id)
	if err != nil {
		t.Fatalf("failed to get updated habit: %v", err)
	}
	if updated.Name != "Evening meditation" || updated.EndDate != "" {
		t.Errorf("update did not persist: %+v", updated)
	}
}

func TestSetHabitCompletedTouchesOnlyTheFlag(t *testing.T) {
	store, userID := setupTestStore(t)

	id, err := store.AddHabit(userID, testHabit("Drink water"))
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	before, err := store.GetHabit(userID, id)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}

	if err := store.SetHabitCompleted(userID, id, true); err != nil {
		t.Fatalf("failed to set completed: %v", err)
	}

	after, err := store.GetHabit(userID, id)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if !after.Completed {
		t.Error("expected habit to be completed")
	}

	after.Completed = before.Completed
	beforeCopy := before
	if after.Name != beforeCopy.Name || after.StartDate != beforeCopy.StartDate ||
		after.EndDate != beforeCopy.EndDate || after.Alarm != beforeCopy.Alarm {
		t.Errorf("SetHabitCompleted changed other fields: before %+v, after %+v", before, after)
	}

	if err := store.SetHabitCompleted(userID, id, false); err != nil {
		t.Fatalf("failed to unset completed: %v", err)
	}
	again, err := store.GetHabit(userID, id)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if again.Completed {
		t.Error("expected habit to be not completed after unsetting")
	}
}

func TestHabitArchiveAndSoftDelete(t *testing.T) {
	store, userID := setupTestStore(t)

	id, err := store.AddHabit(userID, testHabit("Stretch"))
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if err := store.ArchiveHabit(userID, id); err != nil {
		t.Fatalf("failed to archive habit: %v", err)
	}
	active, err := store.GetAllHabits(userID, false, false)
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(active) != 0 {
		t.Error("archived habit should not appear in default list")
	}
	archived, err := store.GetAllHabits(userID, true, false)
	if err != nil {
		t.Fatalf("failed to list archived habits: %v", err)
	}
	if len(archived) != 1 || archived[0].ArchivedAt == nil {
		t.Error("archived habit not found with archived timestamp")
	}

	if err := store.UnarchiveHabit(userID, id); err != nil {
		t.Fatalf("failed to unarchive habit: %v", err)
	}

	if err := store.DeleteHabit(userID, id); err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}
	if _, err := store.GetHabit(userID, id); err == nil {
		t.Error("deleted habit should not be retrievable by id")
	}
	deleted, err := store.GetAllHabits(userID, true, true)
	if err != nil {
		t.Fatalf("failed to list deleted habits: %v", err)
	}
	if len(deleted) != 1 || deleted[0].DeletedAt == nil {
		t.Error("deleted habit should remain with deleted timestamp")
	}

	if err := store.RestoreHabit(userID, id); err != nil {
		t.Fatalf("failed to restore habit: %v", err)
	}
	if _, err := store.GetHabit(userID, id); err != nil {
		t.Errorf("restored habit should be retrievable: %v", err)
	}

	if err := store.RestoreHabit(userID, id); err == nil {
		t.Error("restoring a non-deleted habit should fail")
	}
}

func TestHabitsScopedByUser(t *testing.T) {
	store, userID := setupTestStore(t)

	if _, err := store.AddHabit(userID, testHabit("Mine")); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	if _, err := store.AddHabit("someone-else", testHabit("Theirs")); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	habits, err := store.GetAllHabits(userID, true, true)
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(habits) != 1 || habits[0].Name != "Mine" {
		t.Errorf("expected only own habits, got %+v", habits)
	}
}

func TestFriends(t *testing.T) {
	store, userID := setupTestStore(t)

	id, err := store.AddFriend(userID, models.Friend{Name: "Jin", PhotoURL: "https://example.com/jin.png"})
	if err != nil {
		t.Fatalf("failed to add friend: %v", err)
	}

	friends, err := store.GetAllFriends(userID)
	if err != nil {
		t.Fatalf("failed to list friends: %v", err)
	}
	if len(friends) != 1 || friends[0].Name != "Jin" {
		t.Errorf("unexpected friends list: %+v", friends)
	}

	if err := store.RemoveFriend(userID, id); err != nil {
		t.Fatalf("failed to remove friend: %v", err)
	}
	friends, err = store.GetAllFriends(userID)
	if err != nil {
		t.Fatalf("failed to list friends: %v", err)
	}
	if len(friends) != 0 {
		t.Error("expected no friends after removal")
	}

	if err := store.RemoveFriend(userID, id); err == nil {
		t.Error("removing a missing friend should fail")
	}
}

func TestProfileEmailImmutable(t *testing.T) {
	store, userID := setupTestStore(t)

	profile, err := store.GetProfile(userID)
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}

	profile.Email = "first@example.com"
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	profile.Email = "second@example.com"
	profile.Nickname = "renamed"
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	saved, err := store.GetProfile(userID)
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if saved.Email != "first@example.com" {
		t.Errorf("email should not change once set, got %q", saved.Email)
	}
	if saved.Nickname != "renamed" {
		t.Errorf("nickname should update, got %q", saved.Nickname)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected Load to fail before init")
	}
}
