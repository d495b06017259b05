package domain

import "time"

// Place is a favorite place owned by a single user.
type Place struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"place_name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
