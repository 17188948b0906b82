package center

import (
	"fmt"
	"time"

	"autocare/models"
)

// decorate attaches open-now information computed from the center's weekly
// operating hours.
func decorate(c models.ServiceCenter, now time.Time) models.ServiceCenterView {
	view := models.ServiceCenterView{ServiceCenter: c}
	view.IsCurrentlyOpen = IsCurrentlyOpen(c.OperatingHours, now)
	if !view.IsCurrentlyOpen {
		view.NextOpening = NextOpeningTime(c.OperatingHours, now)
	}
	return view
}

// ListCenters returns every center decorated with open-now information.
func (s *DefaultCenterService) ListCenters() ([]models.ServiceCenterView, error) {
	centers, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list service centers: %w", err)
	}

	now := time.Now()
	views := make([]models.ServiceCenterView, 0, len(centers))
	for _, c := range centers {
		views = append(views, decorate(c, now))
	}
	return views, nil
}

// GetCenter returns a single center decorated with open-now information.
func (s *DefaultCenterService) GetCenter(id string) (*models.ServiceCenterView, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("service center %s not found", id)
	}
	view := decorate(*c, time.Now())
	return &view, nil
}

// NearbyCenters finds centers within radiusMeters of the given coordinates.
func (s *DefaultCenterService) NearbyCenters(lat, lng, radiusMeters float64) ([]models.ServiceCenterView, error) {
	centers, err := s.Repo.GetNearby(lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby centers: %w", err)
	}

	now := time.Now()
	views := make([]models.ServiceCenterView, 0, len(centers))
	for _, c := range centers {
		views = append(views, decorate(c, now))
	}
	return views, nil
}

// CenterServices lists the service types offered by a center.
func (s *DefaultCenterService) CenterServices(centerID string) ([]models.ServiceType, error) {
	c, err := s.Repo.GetByID(centerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("service center %s not found", centerID)
	}
	return s.ServiceTypes.GetByIDs(c.ServiceTypeIDs)
}
