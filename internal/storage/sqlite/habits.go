package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haebit/haebit/internal/models"
)

const habitColumns = `id, name, start_date, end_date, repeat_kind, repeat_days, alarm, completed, created_at, archived_at, deleted_at`

func (s *Store) AddHabit(userID string, habit models.Habit) (string, error) {
	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, user_id, name, start_date, end_date, repeat_kind, repeat_days, alarm, completed, created_at, archived_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, userID, habit.Name, habit.StartDate, habit.EndDate,
		string(habit.Repeat.Kind), habit.Repeat.SelectorCSV(), habit.Alarm,
		habit.Completed, habit.CreatedAt.Format(time.RFC3339),
		nullTime(habit.ArchivedAt), nullTime(habit.DeletedAt))
	if err != nil {
		return "", err
	}
	return habit.ID, nil
}

func (s *Store) GetHabit(userID, id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE user_id = ? AND id = ? AND deleted_at IS NULL`, userID, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(userID, name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE user_id = ? AND name = ? AND deleted_at IS NULL`, userID, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(userID string, includeArchived, includeDeleted bool) ([]models.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE user_id = ?`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(userID string, habit models.Habit) error {
	result, err := s.db.Exec(`
		UPDATE habits
		SET name = ?, start_date = ?, end_date = ?, repeat_kind = ?, repeat_days = ?, alarm = ?, completed = ?, archived_at = ?, deleted_at = ?
		WHERE user_id = ? AND id = ?`,
		habit.Name, habit.StartDate, habit.EndDate,
		string(habit.Repeat.Kind), habit.Repeat.SelectorCSV(), habit.Alarm,
		habit.Completed, nullTime(habit.ArchivedAt), nullTime(habit.DeletedAt),
		userID, habit.ID)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found")
}

func (s *Store) SetHabitCompleted(userID, habitID string, completed bool) error {
	result, err := s.db.Exec(`
		UPDATE habits SET completed = ? WHERE user_id = ? AND id = ? AND deleted_at IS NULL`,
		completed, userID, habitID)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found")
}

func (s *Store) ArchiveHabit(userID, id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = ? WHERE user_id = ? AND id = ? AND deleted_at IS NULL AND archived_at IS NULL`,
		time.Now().Format(time.RFC3339), userID, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or already archived/deleted")
}

func (s *Store) UnarchiveHabit(userID, id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = NULL WHERE user_id = ? AND id = ? AND deleted_at IS NULL AND archived_at IS NOT NULL`,
		userID, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or not archived")
}

func (s *Store) DeleteHabit(userID, id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = ? WHERE user_id = ? AND id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), userID, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or already deleted")
}

func (s *Store) RestoreHabit(userID, id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = NULL WHERE user_id = ? AND id = ? AND deleted_at IS NOT NULL`,
		userID, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or not deleted")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var repeatKind, repeatDays, createdAt string
	var archivedAt, deletedAt sql.NullString

	err := row.Scan(&h.ID, &h.Name, &h.StartDate, &h.EndDate, &repeatKind, &repeatDays,
		&h.Alarm, &h.Completed, &createdAt, &archivedAt, &deletedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Repeat, err = models.RepeatFromColumns(repeatKind, repeatDays)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to decode repeat rule for habit %s: %w", h.ID, err)
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	if h.ArchivedAt, err = parseNullTime(archivedAt, "archived_at", h.ID); err != nil {
		return models.Habit{}, err
	}
	if h.DeletedAt, err = parseNullTime(deletedAt, "deleted_at", h.ID); err != nil {
		return models.Habit{}, err
	}

	return h, nil
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func parseNullTime(ns sql.NullString, column, id string) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, ns.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s for record %s: %w", column, id, err)
	}
	return &t, nil
}

func requireRow(result sql.Result, msg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s", msg)
	}
	return nil
}
