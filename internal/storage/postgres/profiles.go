package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/haebit/haebit/internal/models"
)

func (s *Store) GetProfile(userID string) (models.Profile, error) {
	row := s.db.QueryRow(`
		SELECT id, nickname, email, birthdate, created_at
		FROM profiles WHERE id = $1`, userID)
	return scanProfile(row)
}

func (s *Store) SaveProfile(profile models.Profile) error {
	_, err := s.db.Exec(`
		INSERT INTO profiles (id, nickname, email, birthdate, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			nickname = EXCLUDED.nickname,
			birthdate = EXCLUDED.birthdate,
			email = CASE WHEN profiles.email = '' THEN EXCLUDED.email ELSE profiles.email END`,
		profile.ID, profile.Nickname, profile.Email, profile.Birthdate,
		profile.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) EnsureDefaultProfile(nickname string) (models.Profile, error) {
	row := s.db.QueryRow(`
		SELECT id, nickname, email, birthdate, created_at
		FROM profiles ORDER BY created_at LIMIT 1`)

	profile, err := scanProfile(row)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, err
	}

	profile = models.Profile{
		ID:        uuid.New().String(),
		Nickname:  nickname,
		CreatedAt: time.Now(),
	}
	if err := s.SaveProfile(profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	var createdAt string
	if err := row.Scan(&p.ID, &p.Nickname, &p.Email, &p.Birthdate, &createdAt); err != nil {
		return models.Profile{}, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Profile{}, err
	}
	p.CreatedAt = t
	return p, nil
}
