package models

import "time"

// ProgressStatus is the lifecycle state of a technician's work on one booking.
// Status strings arriving from storage or older clients are parsed into this
// closed set; anything unrecognized becomes ProgressUnknown and never matches
// an action gate.
type ProgressStatus string

const (
	ProgressNone          ProgressStatus = "none"
	ProgressQuoteProvided ProgressStatus = "quote_provided"
	ProgressQuoteApproved ProgressStatus = "quote_approved"
	ProgressQuoteRejected ProgressStatus = "quote_rejected"
	ProgressInProgress    ProgressStatus = "in_progress"
	ProgressPaused        ProgressStatus = "paused"
	ProgressDelayed       ProgressStatus = "delayed"
	ProgressCompleted     ProgressStatus = "completed"
	ProgressUnknown       ProgressStatus = "unknown"
)

// ParseProgressStatus maps an arbitrary status string into the closed set.
func ParseProgressStatus(s string) ProgressStatus {
	switch ProgressStatus(s) {
	case ProgressNone, ProgressQuoteProvided, ProgressQuoteApproved,
		ProgressQuoteRejected, ProgressInProgress, ProgressPaused,
		ProgressDelayed, ProgressCompleted:
		return ProgressStatus(s)
	default:
		return ProgressUnknown
	}
}

// QuoteStatus is the customer's decision on an inspection quote.
type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteApproved QuoteStatus = "approved"
	QuoteRejected QuoteStatus = "rejected"
	QuoteUnknown  QuoteStatus = "unknown"
)

// ParseQuoteStatus maps an arbitrary quote status string into the closed set.
func ParseQuoteStatus(s string) QuoteStatus {
	switch QuoteStatus(s) {
	case QuotePending, QuoteApproved, QuoteRejected:
		return QuoteStatus(s)
	default:
		return QuoteUnknown
	}
}

// QuoteItem is one priced line of an inspection quote.
type QuoteItem struct {
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	PartCost  float64 `bson:"part_cost" json:"partCost"`
	LaborCost float64 `bson:"labor_cost" json:"laborCost"`
}

// Quote is the priced list of parts/services a technician proposes after
// inspection, subject to customer approval.
type Quote struct {
	Status      QuoteStatus `bson:"status" json:"quoteStatus"`
	Items       []QuoteItem `bson:"items" json:"items"`
	Total       float64     `bson:"total" json:"total"`
	SubmittedAt time.Time   `bson:"submitted_at" json:"submittedAt"`
	RespondedAt time.Time   `bson:"responded_at,omitempty" json:"respondedAt,omitempty"`
}

// WorkProgress is the server-tracked lifecycle record of a technician's
// servicing of one booking, from quote through completion. Transitions are
// performed only by the service layer; clients read the record and render
// whichever actions the gating predicates permit.
type WorkProgress struct {
	ID           string         `bson:"id" json:"id"`
	BookingID    string         `bson:"booking_id" json:"bookingId"`
	TechnicianID string         `bson:"technician_id" json:"technicianId"`
	Status       ProgressStatus `bson:"status" json:"currentStatus"`
	Quote        *Quote         `bson:"quote,omitempty" json:"quote,omitempty"`
	Notes        string         `bson:"notes,omitempty" json:"notes,omitempty"`
	DelayReason  string         `bson:"delay_reason,omitempty" json:"delayReason,omitempty"`
	CreatedAt    time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updated_at" json:"updatedAt"`
}

// QuoteTotal sums the quote items.
func QuoteTotal(items []QuoteItem) float64 {
	var total float64
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += float64(qty) * (it.PartCost + it.LaborCost)
	}
	return total
}
