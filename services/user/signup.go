package user

import (
	"fmt"

	"autocare/models"
	"autocare/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the registration data, creates the account and signs the
// new user in.
func (s *DefaultUserService) Register(data models.UserRegistrationData) (*models.AuthResponse, error) {
	if data.Email == "" || data.Password == "" || data.Name == "" || data.PhoneNumber == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	role := data.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleTechnician {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if role == models.RoleTechnician && data.CenterID == "" {
		return nil, fmt.Errorf("technicians must belong to a service center")
	}

	existing, err := s.Repo.GetByEmailWithProjection(data.Email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		Name:         data.Name,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: string(hash),
		Role:         role,
		CenterID:     data.CenterID,
	}
	if err := s.Repo.Create(newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(newUser)
}
