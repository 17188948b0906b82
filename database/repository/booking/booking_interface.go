package bookingRepo

import (
	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	// GetByCustomer retrieves a customer's bookings, newest first.
	GetByCustomer(customerID string) ([]models.Booking, error)
	// GetByCenter retrieves a center's bookings, newest first.
	GetByCenter(centerID string) ([]models.Booking, error)
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	// UpdateSetDocument applies a $set update to a booking document.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
