package workprogress

import (
	bookingRepo "autocare/database/repository/booking"
	progressRepo "autocare/database/repository/workprogress"
	"autocare/models"
	"autocare/services/notification"
)

// ProgressView pairs a record with the actions its current state permits.
type ProgressView struct {
	*models.WorkProgress
	Actions PermittedActions `json:"permittedActions"`
}

// ProgressService owns the work-progress lifecycle of a booking. Every
// mutating action re-reads the record after the update so callers always see
// the authoritative state.
type ProgressService interface {
	Create(bookingID, technicianID string) (*ProgressView, error)
	// GetForBooking looks a record up by booking, falling back to a scan of
	// the technician's records before reporting ErrNotFound.
	GetForBooking(bookingID, technicianID string) (*ProgressView, error)
	GetByID(progressID string) (*ProgressView, error)
	TechnicianJobs(technicianID string) ([]models.WorkProgress, error)
	SubmitQuote(progressID, technicianID string, items []models.QuoteItem, notes string) (*ProgressView, error)
	// RespondToQuote records the customer's approval or rejection.
	RespondToQuote(progressID, customerID string, approve bool) (*ProgressView, error)
	StartMaintenance(progressID, technicianID string) (*ProgressView, error)
	Complete(progressID, technicianID string) (*ProgressView, error)
	Pause(progressID, technicianID string) (*ProgressView, error)
	Resume(progressID, technicianID string) (*ProgressView, error)
	MarkDelayed(progressID, technicianID, reason string) (*ProgressView, error)
}

// DefaultProgressService implements ProgressService.
type DefaultProgressService struct {
	Repo     progressRepo.ProgressRepository
	Bookings bookingRepo.BookingRepository
	Notifier notification.NotificationService
}
