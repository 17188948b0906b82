package workprogress

import (
	"testing"

	"autocare/models"
)

func TestCanSendQuote(t *testing.T) {
	cases := []struct {
		name     string
		progress models.ProgressStatus
		booking  models.BookingStatus
		want     bool
	}{
		{"fresh record", models.ProgressNone, models.BookingConfirmed, true},
		{"quote already out", models.ProgressQuoteProvided, models.BookingConfirmed, true},
		{"rejected quote can be replaced", models.ProgressQuoteRejected, models.BookingConfirmed, true},
		{"work in progress", models.ProgressInProgress, models.BookingInProgress, true},
		{"booking fully closed", models.ProgressCompleted, models.BookingCompleted, false},
		{"closed booking blocks even a fresh record", models.ProgressNone, models.BookingCompleted, false},
		{"re-quote after maintenance completion", models.ProgressCompleted, models.BookingMaintenanceCompleted, true},
		{"completed record without maintenance-completed booking", models.ProgressCompleted, models.BookingInProgress, false},
	}
	for _, tc := range cases {
		if got := CanSendQuote(tc.progress, tc.booking); got != tc.want {
			t.Errorf("%s: CanSendQuote = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanStartMaintenance(t *testing.T) {
	approvedQuote := &models.Quote{Status: models.QuoteApproved}
	pendingQuote := &models.Quote{Status: models.QuotePending}

	cases := []struct {
		name            string
		record          *models.WorkProgress
		bookingApproved bool
		want            bool
	}{
		{"approved quote", &models.WorkProgress{Status: models.ProgressQuoteProvided, Quote: approvedQuote}, false, true},
		{"booking flag only", &models.WorkProgress{Status: models.ProgressQuoteProvided, Quote: pendingQuote}, true, true},
		{"legacy approved status", &models.WorkProgress{Status: models.ProgressQuoteApproved}, false, true},
		{"pending quote, no approval", &models.WorkProgress{Status: models.ProgressQuoteProvided, Quote: pendingQuote}, false, false},
		{"already running", &models.WorkProgress{Status: models.ProgressInProgress, Quote: approvedQuote}, true, false},
		{"paused", &models.WorkProgress{Status: models.ProgressPaused, Quote: approvedQuote}, true, false},
		{"delayed", &models.WorkProgress{Status: models.ProgressDelayed, Quote: approvedQuote}, true, false},
		{"completed", &models.WorkProgress{Status: models.ProgressCompleted, Quote: approvedQuote}, true, false},
	}
	for _, tc := range cases {
		if got := CanStartMaintenance(tc.record, tc.bookingApproved); got != tc.want {
			t.Errorf("%s: CanStartMaintenance = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanComplete(t *testing.T) {
	if !CanComplete(&models.WorkProgress{Status: models.ProgressInProgress}) {
		t.Fatalf("expected completion allowed while in progress")
	}
	for _, st := range []models.ProgressStatus{
		models.ProgressNone, models.ProgressQuoteProvided, models.ProgressQuoteApproved,
		models.ProgressPaused, models.ProgressDelayed, models.ProgressCompleted,
	} {
		if CanComplete(&models.WorkProgress{Status: st}) {
			t.Errorf("completion should be blocked from %q", st)
		}
	}
}

func TestActionsFor_RequoteWindow(t *testing.T) {
	record := &models.WorkProgress{Status: models.ProgressCompleted}
	booking := &models.Booking{Status: models.BookingMaintenanceCompleted}

	actions := ActionsFor(record, booking)
	if !actions.CanSendQuote {
		t.Fatalf("expected re-quote permitted after maintenance completion")
	}
	if actions.CanStartMaintenance || actions.CanComplete {
		t.Fatalf("only the quote action should be open: %+v", actions)
	}

	booking.Status = models.BookingCompleted
	actions = ActionsFor(record, booking)
	if actions.CanSendQuote {
		t.Fatalf("expected no quote action on a closed booking")
	}
}
