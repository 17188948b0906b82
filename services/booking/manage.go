// File: services/booking/manage.go
package booking

import (
	"fmt"
	"time"

	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// History returns the customer's bookings, newest first.
func (s *DefaultBookingService) History(customerID string) ([]models.Booking, error) {
	return s.Bookings.GetByCustomer(customerID)
}

// GetBooking returns one booking after verifying ownership.
func (s *DefaultBookingService) GetBooking(customerID, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil || booking.CustomerID != customerID {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	return booking, nil
}

// Reschedule moves a booking to a new date and time. The same past-time rule
// as submission applies, and work that has already started cannot be moved.
func (s *DefaultBookingService) Reschedule(customerID, bookingID, date, timeOfDay string) (*models.Booking, error) {
	booking, err := s.GetBooking(customerID, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.BookingPending, models.BookingConfirmed:
	default:
		return nil, NewValidationError("booking can no longer be rescheduled")
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, NewValidationError("invalid appointment date %q", date)
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return nil, NewValidationError("invalid appointment time %q", timeOfDay)
	}
	if err := validateAppointmentMoment(date, timeOfDay, time.Now()); err != nil {
		return nil, err
	}

	update := bson.M{"appointment_date": date, "appointment_time": timeOfDay}
	if err := s.Bookings.UpdateSetDocument(bookingID, update); err != nil {
		return nil, err
	}
	return s.Bookings.GetByID(bookingID)
}

// Cancel withdraws a booking. A reason is required and work that has already
// started cannot be cancelled.
func (s *DefaultBookingService) Cancel(customerID, bookingID, reason string) (*models.Booking, error) {
	if reason == "" {
		return nil, NewValidationError("a cancellation reason is required")
	}

	booking, err := s.GetBooking(customerID, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.BookingPending, models.BookingConfirmed:
	default:
		return nil, NewValidationError("booking can no longer be cancelled")
	}

	update := bson.M{
		"status":              models.BookingCancelled,
		"cancellation_reason": reason,
	}
	if err := s.Bookings.UpdateSetDocument(bookingID, update); err != nil {
		return nil, err
	}
	return s.Bookings.GetByID(bookingID)
}

// ConfirmCompletion acknowledges finished maintenance, closing the booking.
func (s *DefaultBookingService) ConfirmCompletion(customerID, bookingID string) (*models.Booking, error) {
	booking, err := s.GetBooking(customerID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingMaintenanceCompleted {
		return nil, NewValidationError("maintenance has not been completed yet")
	}

	if err := s.Bookings.UpdateSetDocument(bookingID, bson.M{"status": models.BookingCompleted}); err != nil {
		return nil, err
	}
	return s.Bookings.GetByID(bookingID)
}

// LeaveFeedback attaches a one-time rating and comment to a finished booking
// and folds the rating into the center's average.
func (s *DefaultBookingService) LeaveFeedback(customerID, bookingID string, rating int, comment string) (*models.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, NewValidationError("rating must be between 1 and 5")
	}

	booking, err := s.GetBooking(customerID, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.BookingCompleted, models.BookingMaintenanceCompleted:
	default:
		return nil, NewValidationError("feedback is only possible after the service is done")
	}
	if booking.Feedback != nil {
		return nil, NewValidationError("feedback was already submitted for this booking")
	}

	feedback := &models.Feedback{Rating: rating, Comment: comment, CreatedAt: time.Now()}
	if err := s.Bookings.UpdateSetDocument(bookingID, bson.M{"feedback": feedback}); err != nil {
		return nil, err
	}

	if err := s.Centers.UpdateRating(booking.ServiceCenterID, rating); err != nil {
		return nil, fmt.Errorf("failed to update center rating: %w", err)
	}

	return s.Bookings.GetByID(bookingID)
}
