package userRepo

import "glowbook/models"

// Repository resolves user identities handed to the engine by the gateway.
type Repository interface {
	GetByID(id string) (*models.User, error)
}
