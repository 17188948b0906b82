package vehicle

import (
	"fmt"

	servicetypeRepo "autocare/database/repository/servicetype"
	vehicleRepo "autocare/database/repository/vehicle"
	"autocare/models"

	"github.com/google/uuid"
)

// VehicleService defines vehicle management for a customer's garage.
type VehicleService interface {
	ListVehicles(ownerID string) ([]models.Vehicle, error)
	GetVehicle(ownerID, vehicleID string) (*models.Vehicle, error)
	AddVehicle(ownerID string, input models.VehicleInput) (*models.Vehicle, error)
	UpdateVehicle(ownerID, vehicleID string, input models.VehicleInput) (*models.Vehicle, error)
	RemoveVehicle(ownerID, vehicleID string) error
	// CompatibleServices lists service types applicable to the vehicle's
	// make, optionally narrowed to one category.
	CompatibleServices(ownerID, vehicleID, category string) ([]models.ServiceType, error)
}

// DefaultVehicleService implements VehicleService.
type DefaultVehicleService struct {
	Repo         vehicleRepo.VehicleRepository
	ServiceTypes servicetypeRepo.ServiceTypeRepository
}

// ListVehicles returns the customer's registered vehicles.
func (s *DefaultVehicleService) ListVehicles(ownerID string) ([]models.Vehicle, error) {
	return s.Repo.GetByOwner(ownerID)
}

// GetVehicle returns one vehicle after verifying ownership.
func (s *DefaultVehicleService) GetVehicle(ownerID, vehicleID string) (*models.Vehicle, error) {
	v, err := s.Repo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil || v.OwnerID != ownerID {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}
	return v, nil
}

// AddVehicle registers a new vehicle for the customer.
func (s *DefaultVehicleService) AddVehicle(ownerID string, input models.VehicleInput) (*models.Vehicle, error) {
	v := &models.Vehicle{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		LicensePlate: input.LicensePlate,
		Mileage:      input.Mileage,
	}
	if err := s.Repo.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVehicle modifies a vehicle's details.
func (s *DefaultVehicleService) UpdateVehicle(ownerID, vehicleID string, input models.VehicleInput) (*models.Vehicle, error) {
	v, err := s.GetVehicle(ownerID, vehicleID)
	if err != nil {
		return nil, err
	}

	v.Make = input.Make
	v.Model = input.Model
	v.Year = input.Year
	v.LicensePlate = input.LicensePlate
	v.Mileage = input.Mileage

	if err := s.Repo.Update(v); err != nil {
		return nil, err
	}
	return v, nil
}

// RemoveVehicle deletes a vehicle from the customer's garage.
func (s *DefaultVehicleService) RemoveVehicle(ownerID, vehicleID string) error {
	if _, err := s.GetVehicle(ownerID, vehicleID); err != nil {
		return err
	}
	return s.Repo.Delete(vehicleID)
}

// CompatibleServices lists service types applicable to the vehicle's make,
// optionally narrowed to one category.
func (s *DefaultVehicleService) CompatibleServices(ownerID, vehicleID, category string) ([]models.ServiceType, error) {
	v, err := s.GetVehicle(ownerID, vehicleID)
	if err != nil {
		return nil, err
	}

	all, err := s.ServiceTypes.GetAll()
	if err != nil {
		return nil, err
	}

	compatible := make([]models.ServiceType, 0, len(all))
	for _, st := range all {
		if !st.CompatibleWith(v.Make) {
			continue
		}
		if category != "" && st.Category != category {
			continue
		}
		compatible = append(compatible, st)
	}
	return compatible, nil
}
