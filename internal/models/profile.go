package models

import "time"

// Profile is the owning user's account record. Email is set once at
// creation and never edited afterwards.
type Profile struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email,omitempty"`
	Birthdate string    `json:"birthdate,omitempty"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
