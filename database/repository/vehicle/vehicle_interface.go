package vehicleRepo

import "autocare/models"

// VehicleRepository defines methods for vehicle data access.
type VehicleRepository interface {
	GetByID(id string) (*models.Vehicle, error)
	// GetByOwner retrieves all vehicles registered by a customer.
	GetByOwner(ownerID string) ([]models.Vehicle, error)
	Create(vehicle *models.Vehicle) error
	Update(vehicle *models.Vehicle) error
	Delete(id string) error
}
