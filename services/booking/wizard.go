package booking

import (
	"time"

	"autocare/models"
)

// The wizard state machine. These functions hold the step-gating and selection
// rules for a booking session; the service layer loads a session from the
// store, applies one of them, and saves the result.

// CanProceedToStep reports whether the prerequisite selections for every step
// before the target are present. Step 4 treats inspection-only as standing in
// for a concrete service selection.
func CanProceedToStep(s *models.BookingSession, step int) bool {
	switch step {
	case models.StepSelectVehicle:
		return true
	case models.StepSelectCenter:
		return s.Vehicle != nil
	case models.StepSelectService:
		return s.Vehicle != nil && s.ServiceCenter != nil
	case models.StepDateTime:
		return s.Vehicle != nil && s.ServiceCenter != nil &&
			(s.Service != nil || s.InspectionOnly)
	default:
		return false
	}
}

// advanceStep moves forward one step. Each step screen validates its own
// required fields before asking to advance, so no cross-check happens here.
func advanceStep(s *models.BookingSession) {
	if s.CurrentStep < models.StepDateTime {
		s.CurrentStep++
	}
}

// retreatStep moves back one step.
func retreatStep(s *models.BookingSession) {
	if s.CurrentStep > models.StepSelectVehicle {
		s.CurrentStep--
	}
}

// jumpToStep moves directly to an earlier step. Forward jumps are rejected;
// forward progress always goes through advanceStep.
func jumpToStep(s *models.BookingSession, step int) error {
	if step > s.CurrentStep {
		return NewValidationError("cannot jump forward to step %d", step)
	}
	if !CanProceedToStep(s, step) {
		return NewValidationError("prerequisites for step %d are not met", step)
	}
	s.CurrentStep = step
	return nil
}

// applyVehicleSelection toggles the vehicle selection: re-selecting the
// current vehicle clears it.
func applyVehicleSelection(s *models.BookingSession, ref models.VehicleRef) {
	if s.Vehicle != nil && s.Vehicle.ID == ref.ID {
		s.Vehicle = nil
		return
	}
	s.Vehicle = &ref
}

// applyCenterSelection toggles the service center selection.
func applyCenterSelection(s *models.BookingSession, ref models.ServiceCenterRef) {
	if s.ServiceCenter != nil && s.ServiceCenter.ID == ref.ID {
		s.ServiceCenter = nil
		return
	}
	s.ServiceCenter = &ref
}

// applyServiceSelection toggles the service selection. Choosing a concrete
// service clears the inspection-only flag; the two are mutually exclusive.
func applyServiceSelection(s *models.BookingSession, ref models.ServiceRef) {
	if s.Service != nil && s.Service.ID == ref.ID {
		s.Service = nil
		return
	}
	s.Service = &ref
	s.InspectionOnly = false
}

// toggleInspectionOnly flips the inspection-only flag. Enabling it clears any
// selected service.
func toggleInspectionOnly(s *models.BookingSession) {
	s.InspectionOnly = !s.InspectionOnly
	if s.InspectionOnly {
		s.Service = nil
	}
}

// validateAppointmentMoment rejects an appointment strictly in the past. The
// rule only applies when the appointment date is today; future dates pass
// regardless of the time component.
func validateAppointmentMoment(date, timeOfDay string, now time.Time) error {
	if date == now.Format("2006-01-02") && timeOfDay < now.Format("15:04") {
		return NewValidationError("selected time has already passed")
	}
	return nil
}

// ValidateSubmission checks that a session carries everything a booking
// needs. It is purely local: callers must not touch storage when it fails.
func ValidateSubmission(s *models.BookingSession, now time.Time) error {
	if s.Vehicle == nil {
		return NewValidationError("no vehicle selected")
	}
	if s.ServiceCenter == nil {
		return NewValidationError("no service center selected")
	}
	if s.Service == nil && !s.InspectionOnly {
		return NewValidationError("select a service or choose inspection only")
	}
	if s.AppointmentDate == "" || s.AppointmentTime == "" {
		return NewValidationError("appointment date and time are required")
	}
	return validateAppointmentMoment(s.AppointmentDate, s.AppointmentTime, now)
}
