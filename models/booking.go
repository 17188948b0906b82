package models

import "time"

// BookingStatus is the lifecycle state of a confirmed booking. The server owns
// every transition; clients only read it.
type BookingStatus string

const (
	BookingPending              BookingStatus = "pending"
	BookingConfirmed            BookingStatus = "confirmed"
	BookingInProgress           BookingStatus = "in_progress"
	BookingMaintenanceCompleted BookingStatus = "maintenance_completed"
	BookingCompleted            BookingStatus = "completed"
	BookingCancelled            BookingStatus = "cancelled"
	BookingStatusUnknown        BookingStatus = "unknown"
)

// ParseBookingStatus maps a stored status string into the closed set,
// falling back to BookingStatusUnknown for anything unrecognized.
func ParseBookingStatus(s string) BookingStatus {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingInProgress,
		BookingMaintenanceCompleted, BookingCompleted, BookingCancelled:
		return BookingStatus(s)
	default:
		return BookingStatusUnknown
	}
}

// Feedback is a customer's post-service rating.
type Feedback struct {
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Booking represents a confirmed appointment record.
type Booking struct {
	ID                 string        `bson:"id" json:"id"`
	CustomerID         string        `bson:"customer_id" json:"customerId"`
	VehicleID          string        `bson:"vehicle_id" json:"vehicleId"`
	ServiceCenterID    string        `bson:"service_center_id" json:"serviceCenterId"`
	ServiceTypeID      string        `bson:"service_type_id,omitempty" json:"serviceTypeId,omitempty"`
	AppointmentDate    string        `bson:"appointment_date" json:"appointmentDate"` // "2006-01-02"
	AppointmentTime    string        `bson:"appointment_time" json:"appointmentTime"` // "15:04"
	ServiceDescription string        `bson:"service_description" json:"serviceDescription"`
	InspectionOnly     bool          `bson:"inspection_only" json:"isInspectionOnly"`
	PaymentPreference  string        `bson:"payment_preference" json:"paymentPreference"`
	Status             BookingStatus `bson:"status" json:"status"`
	// QuoteApproved is denormalized from the work-progress quote so the
	// maintenance gate can fall back to it when the quote document is absent.
	QuoteApproved      bool      `bson:"quote_approved" json:"quoteApproved"`
	CancellationReason string    `bson:"cancellation_reason,omitempty" json:"cancellationReason,omitempty"`
	Feedback           *Feedback `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updatedAt"`
}
