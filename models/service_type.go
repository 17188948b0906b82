package models

import "time"

// ServiceType represents an offered maintenance service (oil change, brake
// service, tire rotation, ...).
type ServiceType struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Category        string    `bson:"category" json:"category"`
	Description     string    `bson:"description" json:"description"`
	BasePrice       float64   `bson:"base_price" json:"basePrice"`
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	// CompatibleMakes lists vehicle makes the service applies to. Empty means
	// the service is compatible with every make.
	CompatibleMakes []string  `bson:"compatible_makes" json:"compatibleMakes"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// CompatibleWith reports whether the service applies to the given vehicle make.
func (s *ServiceType) CompatibleWith(make string) bool {
	if len(s.CompatibleMakes) == 0 {
		return true
	}
	for _, m := range s.CompatibleMakes {
		if m == make {
			return true
		}
	}
	return false
}
