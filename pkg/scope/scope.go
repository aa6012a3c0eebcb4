package scope

import (
	"lungtracker-srv/internal/model"
)

// NewScope creates a new request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}
