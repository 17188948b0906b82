package user

import (
	"context"
	"fmt"
	"time"

	"autocare/models"
	"autocare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// Authenticate verifies credentials and issues a fresh JWT.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(u)
}

// issueToken mints a JWT, persists its hash for revocation checks and primes
// the auth cache.
func (s *DefaultUserService) issueToken(u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(u.ID, bson.M{"token_hash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to persist token hash: %w", err)
	}
	u.TokenHash = tokenHash

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+u.ID, tokenHash, utils.AuthCacheTTL).Err()

	return &models.AuthResponse{Token: token, User: u}, nil
}

// RevokeAuthToken invalidates the user's current token.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	if err := s.Repo.UpdateSetDocument(id, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+id).Err()
}
