package notification

import (
	"context"

	userRepo "autocare/database/repository/user"
	"autocare/models"
)

// NotificationService defines methods for sending FCM pushes. Notification
// failures are logged by callers and never fail the flow that triggered them.
type NotificationService interface {
	NotifyBookingConfirmed(ctx context.Context, booking *models.Booking, centerName string) error
	NotifyQuoteSubmitted(ctx context.Context, customerID, bookingID string, total float64) error
	NotifyQuoteResponse(ctx context.Context, technicianID, bookingID string, approved bool) error
	NotifyMaintenanceCompleted(ctx context.Context, customerID, bookingID string) error
	NotifyAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}
