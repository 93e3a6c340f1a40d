package userRepo

import (
	"context"
	"errors"

	"glambook/models"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// UserRepository defines the persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error

	// SetTokenHash stores the hash of the user's current auth token; an
	// empty hash revokes it.
	SetTokenHash(ctx context.Context, id, tokenHash string) error
}
