package models

import "time"

// User roles.
const (
	RoleCustomer   = "customer"
	RoleTechnician = "technician"
)

// User represents a customer or technician account. This is the only identity
// state that survives restarts; everything session-scoped lives in Redis.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PhoneNumber  string    `bson:"phone_number" json:"phoneNumber"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"` // "customer" or "technician"
	CenterID     string    `bson:"center_id,omitempty" json:"centerId,omitempty"` // technicians only
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistrationData carries the fields required to create an account.
type UserRegistrationData struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role"`
	CenterID    string `json:"centerId"`
}

// AuthResponse is returned on successful sign-in.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
