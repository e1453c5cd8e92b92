package domain

import "github.com/google/uuid"

// AdAccount links a user to an account on an external ad platform.
type AdAccount struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Platform        Platform
	RemoteAccountID string
	Name            string
}
