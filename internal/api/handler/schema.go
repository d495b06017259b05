package handler

import (
	"time"

	"github.com/minusd/favorite-places/internal/core/markup"
)

// --- Auth ---

type signUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

func (r *signUpRequest) markupFields() []markup.Field {
	return []markup.Field{
		{Name: "username", Value: r.Username},
		{Name: "email", Value: r.Email},
	}
}

func (r *signInRequest) markupFields() []markup.Field {
	return []markup.Field{{Name: "username", Value: r.Username}}
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- Places ---

type placeRequest struct {
	Name        string `json:"place_name"  validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
}

func (r *placeRequest) markupFields() []markup.Field {
	return []markup.Field{
		{Name: "place_name", Value: r.Name},
		{Name: "description", Value: r.Description},
	}
}
