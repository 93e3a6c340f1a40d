package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	userRepo "glambook/database/repository/user"
	"glambook/models"
	"glambook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long issued JWTs stay valid.
const tokenTTL = 24 * time.Hour

// DefaultUserService implements UserService over the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, reg models.UserRegistration) (*models.User, error) {
	role := reg.Role
	switch role {
	case models.RoleCustomer, models.RoleArtist:
	case "":
		role = models.RoleCustomer
	default:
		// ADMIN accounts are provisioned out of band, never via signup.
		return nil, fmt.Errorf("role %s cannot be self-assigned", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(reg.Username),
		Email:        strings.ToLower(strings.TrimSpace(reg.Email)),
		PasswordHash: string(hash),
		Role:         role,
		Phone:        strings.TrimSpace(reg.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("user registered", zap.String("userID", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, user.ID, tokenHash); err != nil {
		return nil, err
	}

	// Seed the auth cache so the middleware can skip the DB lookup.
	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + user.ID
	if err := authCache.Set(ctx, cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to seed auth cache", zap.Error(err))
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	if err := s.RevokeToken(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	if err := s.Repo.SetTokenHash(ctx, id, ""); err != nil {
		return err
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(ctx, utils.AuthCachePrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("failed to evict auth cache", zap.Error(err))
	}
	return nil
}
