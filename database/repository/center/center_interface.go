package centerRepo

import "autocare/models"

// CenterRepository defines methods for service center data access.
type CenterRepository interface {
	GetByID(id string) (*models.ServiceCenter, error)
	GetAll() ([]models.ServiceCenter, error)
	// GetNearby retrieves centers within radius meters of the given point.
	GetNearby(lat, lng float64, radiusMeters float64) ([]models.ServiceCenter, error)
	Create(center *models.ServiceCenter) error
	Update(center *models.ServiceCenter) error
	// UpdateRating folds a new feedback rating into the center's average.
	UpdateRating(id string, rating int) error
}
