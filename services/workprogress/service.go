// File: services/workprogress/service.go
package workprogress

import (
	"context"
	"fmt"
	"time"

	"autocare/models"
	"autocare/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// load fetches a record and verifies the technician owns it.
func (s *DefaultProgressService) load(progressID, technicianID string) (*models.WorkProgress, *models.Booking, error) {
	record, err := s.Repo.GetByID(progressID)
	if err != nil {
		return nil, nil, err
	}
	if record == nil || (technicianID != "" && record.TechnicianID != technicianID) {
		return nil, nil, ErrNotFound
	}

	booking, err := s.Bookings.GetByID(record.BookingID)
	if err != nil {
		return nil, nil, err
	}
	if booking == nil {
		return nil, nil, fmt.Errorf("booking %s for progress %s not found", record.BookingID, progressID)
	}
	return record, booking, nil
}

// view re-reads the authoritative record and pairs it with its gates.
func (s *DefaultProgressService) view(progressID string) (*ProgressView, error) {
	record, booking, err := s.load(progressID, "")
	if err != nil {
		return nil, err
	}
	return &ProgressView{WorkProgress: record, Actions: ActionsFor(record, booking)}, nil
}

// Create opens a progress record for a booking. One record per booking; the
// unique index on booking_id backs this up.
func (s *DefaultProgressService) Create(bookingID, technicianID string) (*ProgressView, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	existing, err := s.Repo.GetByBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewActionError("a work progress record already exists for this booking")
	}

	record := &models.WorkProgress{
		ID:           uuid.New().String(),
		BookingID:    bookingID,
		TechnicianID: technicianID,
		Status:       models.ProgressNone,
	}
	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}

	if err := s.Bookings.UpdateSetDocument(bookingID, bson.M{"status": models.BookingConfirmed}); err != nil {
		return nil, err
	}
	return s.view(record.ID)
}

// GetForBooking resolves a record by booking id. When the direct lookup
// misses, the technician's own records are scanned before giving up.
func (s *DefaultProgressService) GetForBooking(bookingID, technicianID string) (*ProgressView, error) {
	record, err := s.Repo.GetByBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if record == nil && technicianID != "" {
		records, err := s.Repo.GetByTechnician(technicianID)
		if err != nil {
			return nil, err
		}
		for i := range records {
			if records[i].BookingID == bookingID {
				record = &records[i]
				break
			}
		}
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return s.view(record.ID)
}

// GetByID returns one record with its permitted actions.
func (s *DefaultProgressService) GetByID(progressID string) (*ProgressView, error) {
	return s.view(progressID)
}

// TechnicianJobs lists a technician's records, newest first.
func (s *DefaultProgressService) TechnicianJobs(technicianID string) ([]models.WorkProgress, error) {
	return s.Repo.GetByTechnician(technicianID)
}

// SubmitQuote attaches a priced inspection quote and moves the record to
// quote_provided. Permitted per CanSendQuote, including the re-quote window
// after completed maintenance.
func (s *DefaultProgressService) SubmitQuote(progressID, technicianID string, items []models.QuoteItem, notes string) (*ProgressView, error) {
	record, booking, err := s.load(progressID, technicianID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, NewActionError("a quote needs at least one item")
	}
	if !CanSendQuote(record.Status, booking.Status) {
		return nil, NewActionError("a quote cannot be sent in the current state")
	}

	quote := &models.Quote{
		Status:      models.QuotePending,
		Items:       items,
		Total:       models.QuoteTotal(items),
		SubmittedAt: time.Now(),
	}
	update := bson.M{
		"status": models.ProgressQuoteProvided,
		"quote":  quote,
	}
	if notes != "" {
		update["notes"] = notes
	}
	if err := s.Repo.UpdateSetDocument(progressID, update); err != nil {
		return nil, err
	}
	// A fresh quote supersedes any earlier approval.
	if err := s.Bookings.UpdateSetDocument(booking.ID, bson.M{"quote_approved": false}); err != nil {
		return nil, err
	}

	s.notify(func(ctx context.Context) error {
		return s.Notifier.NotifyQuoteSubmitted(ctx, booking.CustomerID, booking.ID, quote.Total)
	}, "quote submitted push failed", progressID)

	return s.view(progressID)
}

// RespondToQuote records the customer's decision on a pending quote.
func (s *DefaultProgressService) RespondToQuote(progressID, customerID string, approve bool) (*ProgressView, error) {
	record, booking, err := s.load(progressID, "")
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != customerID {
		return nil, ErrNotFound
	}
	if record.Quote == nil || record.Quote.Status != models.QuotePending {
		return nil, NewActionError("there is no pending quote to respond to")
	}

	quoteStatus := models.QuoteApproved
	progressStatus := models.ProgressQuoteApproved
	if !approve {
		quoteStatus = models.QuoteRejected
		progressStatus = models.ProgressQuoteRejected
	}

	update := bson.M{
		"status":             progressStatus,
		"quote.status":       quoteStatus,
		"quote.responded_at": time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(progressID, update); err != nil {
		return nil, err
	}
	if err := s.Bookings.UpdateSetDocument(booking.ID, bson.M{"quote_approved": approve}); err != nil {
		return nil, err
	}

	s.notify(func(ctx context.Context) error {
		return s.Notifier.NotifyQuoteResponse(ctx, record.TechnicianID, booking.ID, approve)
	}, "quote response push failed", progressID)

	return s.view(progressID)
}

// StartMaintenance begins the approved work.
func (s *DefaultProgressService) StartMaintenance(progressID, technicianID string) (*ProgressView, error) {
	record, booking, err := s.load(progressID, technicianID)
	if err != nil {
		return nil, err
	}
	if !CanStartMaintenance(record, booking.QuoteApproved) {
		return nil, NewActionError("maintenance cannot be started in the current state")
	}

	if err := s.Repo.UpdateSetDocument(progressID, bson.M{"status": models.ProgressInProgress}); err != nil {
		return nil, err
	}
	if err := s.Bookings.UpdateSetDocument(booking.ID, bson.M{"status": models.BookingInProgress}); err != nil {
		return nil, err
	}
	return s.view(progressID)
}

// Complete marks running maintenance as finished; the booking waits for the
// customer's completion confirmation in maintenance_completed.
func (s *DefaultProgressService) Complete(progressID, technicianID string) (*ProgressView, error) {
	record, booking, err := s.load(progressID, technicianID)
	if err != nil {
		return nil, err
	}
	if !CanComplete(record) {
		return nil, NewActionError("only running maintenance can be completed")
	}

	if err := s.Repo.UpdateSetDocument(progressID, bson.M{"status": models.ProgressCompleted}); err != nil {
		return nil, err
	}
	if err := s.Bookings.UpdateSetDocument(booking.ID, bson.M{"status": models.BookingMaintenanceCompleted}); err != nil {
		return nil, err
	}

	s.notify(func(ctx context.Context) error {
		return s.Notifier.NotifyMaintenanceCompleted(ctx, booking.CustomerID, booking.ID)
	}, "maintenance completed push failed", progressID)

	return s.view(progressID)
}

// Pause suspends running maintenance.
func (s *DefaultProgressService) Pause(progressID, technicianID string) (*ProgressView, error) {
	return s.transition(progressID, technicianID, models.ProgressPaused,
		models.ProgressInProgress)
}

// Resume continues paused or delayed maintenance.
func (s *DefaultProgressService) Resume(progressID, technicianID string) (*ProgressView, error) {
	return s.transition(progressID, technicianID, models.ProgressInProgress,
		models.ProgressPaused, models.ProgressDelayed)
}

// MarkDelayed flags maintenance as held up, keeping the reason.
func (s *DefaultProgressService) MarkDelayed(progressID, technicianID, reason string) (*ProgressView, error) {
	if reason == "" {
		return nil, NewActionError("a delay reason is required")
	}

	record, _, err := s.load(progressID, technicianID)
	if err != nil {
		return nil, err
	}
	switch record.Status {
	case models.ProgressInProgress, models.ProgressPaused:
	default:
		return nil, NewActionError("only active maintenance can be marked delayed")
	}

	update := bson.M{"status": models.ProgressDelayed, "delay_reason": reason}
	if err := s.Repo.UpdateSetDocument(progressID, update); err != nil {
		return nil, err
	}
	return s.view(progressID)
}

// transition applies a status change permitted only from specific states.
func (s *DefaultProgressService) transition(progressID, technicianID string, to models.ProgressStatus, from ...models.ProgressStatus) (*ProgressView, error) {
	record, _, err := s.load(progressID, technicianID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, f := range from {
		if record.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, NewActionError(fmt.Sprintf("cannot move to %s from %s", to, record.Status))
	}

	if err := s.Repo.UpdateSetDocument(progressID, bson.M{"status": to}); err != nil {
		return nil, err
	}
	return s.view(progressID)
}

// notify runs a push send, logging failures instead of surfacing them: the
// state change already happened and the caller should see it.
func (s *DefaultProgressService) notify(fn func(context.Context) error, msg, progressID string) {
	if s.Notifier == nil {
		return
	}
	if err := fn(context.Background()); err != nil {
		utils.GetLogger().Warn(msg, zap.String("progressID", progressID), zap.Error(err))
	}
}
