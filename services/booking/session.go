// File: services/booking/session.go
package booking

import (
	"context"
	"fmt"
	"time"

	"autocare/models"

	"github.com/google/uuid"
)

// StartSession creates a new wizard session at step 1 and stores it.
func (s *DefaultBookingService) StartSession(customerID string) (*models.BookingSession, error) {
	ctx := context.Background()

	session := &models.BookingSession{
		SessionID:   uuid.New().String(),
		CustomerID:  customerID,
		CurrentStep: models.StepSelectVehicle,
		CreatedAt:   time.Now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// loadSession fetches a session and verifies it belongs to the caller.
func (s *DefaultBookingService) loadSession(ctx context.Context, customerID, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CustomerID != customerID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// mutate loads the caller's session, applies fn and saves the result.
// Validation failures from fn leave the stored session untouched.
func (s *DefaultBookingService) mutate(customerID, sessionID string, fn func(*models.BookingSession) error) (*models.BookingSession, error) {
	ctx := context.Background()

	session, err := s.loadSession(ctx, customerID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the caller's current wizard state.
func (s *DefaultBookingService) GetSession(customerID, sessionID string) (*models.BookingSession, error) {
	return s.loadSession(context.Background(), customerID, sessionID)
}

// AdvanceStep moves the wizard forward one step.
func (s *DefaultBookingService) AdvanceStep(customerID, sessionID string) (*models.BookingSession, error) {
	return s.mutate(customerID, sessionID, func(session *models.BookingSession) error {
		advanceStep(session)
		return nil
	})
}

// RetreatStep moves the wizard back one step.
func (s *DefaultBookingService) RetreatStep(customerID, sessionID string) (*models.BookingSession, error) {
	return s.mutate(customerID, sessionID, func(session *models.BookingSession) error {
		retreatStep(session)
		return nil
	})
}

// JumpToStep moves directly to an earlier step.
func (s *DefaultBookingService) JumpToStep(customerID, sessionID string, step int) (*models.BookingSession, error) {
	return s.mutate(customerID, sessionID, func(session *models.BookingSession) error {
		return jumpToStep(session, step)
	})
}

// SelectVehicle toggles the vehicle selection. The vehicle must belong to the
// session's customer; re-selecting the current vehicle clears it without a
// lookup.
func (s *DefaultBookingService) SelectVehicle(customerID, sessionID, vehicleID string) (*models.BookingSession, error) {
	return s.mutate(customerID, sessionID, func(session *models.BookingSession) error {
		if session.Vehicle != nil && session.Vehicle.ID == vehicleID {
			applyVehicleSelection(session, *session.Vehicle)
			return nil
		}

		vehicle, err := s.Vehicles.GetByID(vehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil || vehicle.OwnerID != customerID {
			return NewValidationError("vehicle %s not found", vehicleID)
		}
		applyVehicleSelection(session, models.VehicleRef{
			ID:    vehicle.ID,
			Label: fmt.Sprintf("%s %s · %s", vehicle.Make, vehicle.Model, vehicle.LicensePlate),
			Make:  vehicle.Make,
		})
		return nil
	})
}

// SelectCenter toggles the service center selection.
func (s *DefaultBookingService) SelectCenter(customerID, sessionID, centerID string) (*models.BookingSession, error) {
	return s.mutate(customerID, sessionID, func(session *models.BookingSession) error {
		if session.ServiceCenter != nil && session.ServiceCenter.ID == centerID {
			applyCenterSelection(session, *session.ServiceCenter)
			return nil
		}

		center, err := s.Centers.GetByID(centerID)
		if err != nil {
			return err
		}
		if center == nil {
			return NewValidationError("service center %s not found", centerID)
		}
		applyCenterSelection(session, models.ServiceCenterRef{ID: center.ID, Name: center.Name})
		return nil
	})
}

// SelectService toggles the service selection. Choosing a concrete service
// clears the inspection-only flag.
func (s *DefaultBookingService) SelectService(customerID, sessionID, serviceTypeID string) (*models.BookingSession, error) {
	return s.mutate(customerID, sessionID, func(session *models.BookingSession) error {
		if session.Service != nil && session.Service.ID == serviceTypeID {
			applyServiceSelection(session, *session.Service)
			return nil
		}

		serviceType, err := s.ServiceTypes.GetByID(serviceTypeID)
		if err != nil {
			return err
		}
		if serviceType == nil {
			return NewValidationError("service type %s not found", serviceTypeID)
		}
		if session.Vehicle != nil && !serviceType.CompatibleWith(session.Vehicle.Make) {
			return NewValidationError("service %s is not compatible with your vehicle", serviceType.Name)
		}
		applyServiceSelection(session, models.ServiceRef{ID: serviceType.ID, Name: serviceType.Name})
		return nil
	})
}

// ToggleInspectionOnly flips the inspection-only flag, clearing any selected
// service when enabling it.
func (s *DefaultBookingService) ToggleInspectionOnly(customerID, sessionID string) (*models.BookingSession, error) {
	return s.mutate(customerID, sessionID, func(session *models.BookingSession) error {
		toggleInspectionOnly(session)
		return nil
	})
}

// SetAppointment records the requested date, time and booking details.
func (s *DefaultBookingService) SetAppointment(customerID, sessionID, date, timeOfDay, description, paymentPreference string) (*models.BookingSession, error) {
	return s.mutate(customerID, sessionID, func(session *models.BookingSession) error {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return NewValidationError("invalid appointment date %q", date)
		}
		if _, err := time.Parse("15:04", timeOfDay); err != nil {
			return NewValidationError("invalid appointment time %q", timeOfDay)
		}
		session.AppointmentDate = date
		session.AppointmentTime = timeOfDay
		session.ServiceDescription = description
		if paymentPreference != "" {
			session.PaymentPreference = paymentPreference
		}
		return nil
	})
}

// CancelSession discards the caller's wizard session.
func (s *DefaultBookingService) CancelSession(customerID, sessionID string) error {
	ctx := context.Background()
	if _, err := s.loadSession(ctx, customerID, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}
