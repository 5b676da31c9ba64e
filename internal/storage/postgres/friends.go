package postgres

import (
	"time"

	"github.com/google/uuid"

	"github.com/haebit/haebit/internal/models"
)

func (s *Store) AddFriend(userID string, friend models.Friend) (string, error) {
	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}
	if friend.CreatedAt.IsZero() {
		friend.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO friends (id, user_id, name, photo_url, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		friend.ID, userID, friend.Name, friend.PhotoURL, friend.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return friend.ID, nil
}

func (s *Store) GetAllFriends(userID string) ([]models.Friend, error) {
	rows, err := s.db.Query(`
		SELECT id, name, photo_url, created_at
		FROM friends WHERE user_id = $1
		ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []models.Friend
	for rows.Next() {
		var f models.Friend
		var createdAt string
		if err := rows.Scan(&f.ID, &f.Name, &f.PhotoURL, &createdAt); err != nil {
			return nil, err
		}
		f.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, err
		}
		friends = append(friends, f)
	}
	return friends, rows.Err()
}

func (s *Store) RemoveFriend(userID, friendID string) error {
	result, err := s.db.Exec(`DELETE FROM friends WHERE user_id = $1 AND id = $2`, userID, friendID)
	if err != nil {
		return err
	}
	return requireRow(result, "friend not found")
}
