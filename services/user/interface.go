package user

import (
	userRepo "autocare/database/repository/user"
	"autocare/models"
)

// UserService defines account operations for customers and technicians.
type UserService interface {
	Register(data models.UserRegistrationData) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(id, name, phoneNumber string) (*models.User, error)
	UpdatePassword(id, currentPassword, newPassword string) error
	UpdateFCMToken(id, token string) error
	RevokeAuthToken(id string) error
	Delete(id string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
