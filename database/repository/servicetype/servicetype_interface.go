package servicetypeRepo

import "autocare/models"

// ServiceTypeRepository defines methods for service type data access.
type ServiceTypeRepository interface {
	GetByID(id string) (*models.ServiceType, error)
	GetAll() ([]models.ServiceType, error)
	// GetByIDs retrieves the service types carried by a center's catalogue.
	GetByIDs(ids []string) ([]models.ServiceType, error)
	Create(serviceType *models.ServiceType) error
}
