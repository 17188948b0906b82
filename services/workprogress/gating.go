package workprogress

import "autocare/models"

// Gating predicates. These are pure functions of the progress record and its
// booking; every mutating action checks the matching predicate first, and
// clients use the same answers to decide which buttons to show. The server
// performs all transitions — a client can never move a record between states
// on its own.

// CanSendQuote reports whether a (re-)quote may be submitted. A fully closed
// booking never accepts a quote. A completed progress record normally blocks
// further quotes, with one deliberate exception: when the booking sits in
// maintenance_completed, a fresh quote is allowed so follow-up work found
// after completion can be priced.
func CanSendQuote(progress models.ProgressStatus, booking models.BookingStatus) bool {
	if booking == models.BookingCompleted {
		return false
	}
	if progress == models.ProgressCompleted {
		return booking == models.BookingMaintenanceCompleted
	}
	return true
}

// CanStartMaintenance reports whether maintenance may begin: the work must
// not already be running, paused, delayed or done, and the quote must have
// been approved. Approval is read from the quote itself, from the booking's
// denormalized flag, or from the legacy quote_approved status marker.
func CanStartMaintenance(record *models.WorkProgress, bookingQuoteApproved bool) bool {
	switch record.Status {
	case models.ProgressInProgress, models.ProgressPaused,
		models.ProgressCompleted, models.ProgressDelayed:
		return false
	}

	if record.Quote != nil && record.Quote.Status == models.QuoteApproved {
		return true
	}
	if bookingQuoteApproved {
		return true
	}
	return record.Status == models.ProgressQuoteApproved
}

// CanComplete reports whether maintenance may be marked finished.
func CanComplete(record *models.WorkProgress) bool {
	return record.Status == models.ProgressInProgress
}

// PermittedActions summarizes the gates for one record, for clients that
// render action buttons.
type PermittedActions struct {
	CanSendQuote        bool `json:"canSendQuote"`
	CanStartMaintenance bool `json:"canStartMaintenance"`
	CanComplete         bool `json:"canComplete"`
}

// ActionsFor evaluates every gate against the record and its booking.
func ActionsFor(record *models.WorkProgress, booking *models.Booking) PermittedActions {
	return PermittedActions{
		CanSendQuote:        CanSendQuote(record.Status, booking.Status),
		CanStartMaintenance: CanStartMaintenance(record, booking.QuoteApproved),
		CanComplete:         CanComplete(record),
	}
}
