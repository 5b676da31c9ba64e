package models

import "time"

// Friend is a minimal display-only record of another user, added via a
// scanned invite code.
type Friend struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
