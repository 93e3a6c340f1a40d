package user

import (
	"context"

	"glambook/models"
)

// AuthResult is returned on successful authentication.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages platform accounts and credential auth. Federated
// identity (social login etc.) stays outside this system.
type UserService interface {
	Register(ctx context.Context, reg models.UserRegistration) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
	RevokeToken(ctx context.Context, id string) error
}
