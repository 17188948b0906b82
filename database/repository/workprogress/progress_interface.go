package progressRepo

import (
	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProgressRepository defines methods for work-progress data access.
type ProgressRepository interface {
	GetByID(id string) (*models.WorkProgress, error)
	// GetByBooking retrieves the progress record attached to a booking, or
	// nil when no technician has created one yet.
	GetByBooking(bookingID string) (*models.WorkProgress, error)
	// GetByTechnician retrieves all records a technician owns, newest first.
	GetByTechnician(technicianID string) ([]models.WorkProgress, error)
	Create(progress *models.WorkProgress) error
	// UpdateSetDocument applies a $set update to a progress document.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
