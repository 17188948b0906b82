package user

import (
	"fmt"

	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

// UpdateProfile changes the mutable profile fields.
func (s *DefaultUserService) UpdateProfile(id, name, phoneNumber string) (*models.User, error) {
	update := bson.M{}
	if name != "" {
		update["name"] = name
	}
	if phoneNumber != "" {
		update["phone_number"] = phoneNumber
	}
	if len(update) == 0 {
		return s.GetUserByID(id)
	}

	if err := s.Repo.UpdateSetDocument(id, update); err != nil {
		return nil, err
	}
	return s.GetUserByID(id)
}

// UpdatePassword verifies the current password before replacing it.
func (s *DefaultUserService) UpdatePassword(id, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("new password must be at least 8 characters")
	}

	u, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.Repo.UpdateSetDocument(id, bson.M{"password_hash": string(hash)})
}

// UpdateFCMToken stores the device token used for push notifications.
func (s *DefaultUserService) UpdateFCMToken(id, token string) error {
	return s.Repo.UpdateSetDocument(id, bson.M{"fcm_token": token})
}

// Delete removes the account.
func (s *DefaultUserService) Delete(id string) error {
	return s.Repo.Delete(id)
}
