package models

import "time"

// Vehicle represents a customer-registered vehicle.
type Vehicle struct {
	ID           string    `bson:"id" json:"id"`
	OwnerID      string    `bson:"owner_id" json:"ownerId"`
	Make         string    `bson:"make" json:"make"`
	Model        string    `bson:"model" json:"model"`
	Year         int       `bson:"year" json:"year"`
	LicensePlate string    `bson:"license_plate" json:"licensePlate"`
	Mileage      int       `bson:"mileage" json:"mileage"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// VehicleInput carries the fields accepted on vehicle create/update.
type VehicleInput struct {
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	LicensePlate string `json:"licensePlate" binding:"required"`
	Mileage      int    `json:"mileage"`
}
