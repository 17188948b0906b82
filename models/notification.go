package models

// ReminderPayload is the asynq task payload for an appointment reminder push.
type ReminderPayload struct {
	BookingID       string `json:"bookingId"`
	CustomerID      string `json:"customerId"`
	CenterName      string `json:"centerName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}
