package center

import (
	centerRepo "autocare/database/repository/center"
	servicetypeRepo "autocare/database/repository/servicetype"
	"autocare/models"
)

// CenterService defines operations for browsing service centers.
type CenterService interface {
	ListCenters() ([]models.ServiceCenterView, error)
	GetCenter(id string) (*models.ServiceCenterView, error)
	// NearbyCenters finds centers within radiusMeters of the coordinates.
	NearbyCenters(lat, lng, radiusMeters float64) ([]models.ServiceCenterView, error)
	// CenterServices lists the service types a center offers.
	CenterServices(centerID string) ([]models.ServiceType, error)
}

// DefaultCenterService implements CenterService.
type DefaultCenterService struct {
	Repo         centerRepo.CenterRepository
	ServiceTypes servicetypeRepo.ServiceTypeRepository
}
