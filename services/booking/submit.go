// File: services/booking/submit.go
package booking

import (
	"context"
	"time"

	"autocare/models"
	"autocare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit turns a completed wizard session into a confirmed booking. Local
// validation runs before anything is persisted; on a validation failure the
// session and the booking collection are untouched so the customer can fix
// the input and retry. On success the session is deleted (the wizard resets),
// the customer is notified and a reminder is queued.
func (s *DefaultBookingService) Submit(customerID, sessionID string) (*models.Booking, error) {
	ctx := context.Background()

	session, err := s.loadSession(ctx, customerID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := ValidateSubmission(session, time.Now()); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:                 uuid.New().String(),
		CustomerID:         session.CustomerID,
		VehicleID:          session.Vehicle.ID,
		ServiceCenterID:    session.ServiceCenter.ID,
		AppointmentDate:    session.AppointmentDate,
		AppointmentTime:    session.AppointmentTime,
		ServiceDescription: session.ServiceDescription,
		InspectionOnly:     session.InspectionOnly,
		PaymentPreference:  session.PaymentPreference,
		Status:             models.BookingPending,
	}
	if session.Service != nil {
		booking.ServiceTypeID = session.Service.ID
	}

	if err := s.Bookings.Create(booking); err != nil {
		return nil, err
	}

	// The booking is durable; a failed session cleanup only means the wizard
	// can be resumed until the TTL clears it.
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to delete submitted booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	centerName := session.ServiceCenter.Name
	if s.Notifier != nil {
		if err := s.Notifier.NotifyBookingConfirmed(ctx, booking, centerName); err != nil {
			utils.GetLogger().Warn("booking confirmation push failed",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(booking, centerName); err != nil {
			utils.GetLogger().Warn("failed to schedule appointment reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return booking, nil
}
