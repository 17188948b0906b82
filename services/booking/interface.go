package booking

import (
	bookingRepo "autocare/database/repository/booking"
	centerRepo "autocare/database/repository/center"
	servicetypeRepo "autocare/database/repository/servicetype"
	vehicleRepo "autocare/database/repository/vehicle"
	"autocare/models"
	"autocare/services/notification"
)

// SessionService drives the four-step booking wizard for one customer.
type SessionService interface {
	StartSession(customerID string) (*models.BookingSession, error)
	GetSession(customerID, sessionID string) (*models.BookingSession, error)
	AdvanceStep(customerID, sessionID string) (*models.BookingSession, error)
	RetreatStep(customerID, sessionID string) (*models.BookingSession, error)
	JumpToStep(customerID, sessionID string, step int) (*models.BookingSession, error)
	SelectVehicle(customerID, sessionID, vehicleID string) (*models.BookingSession, error)
	SelectCenter(customerID, sessionID, centerID string) (*models.BookingSession, error)
	SelectService(customerID, sessionID, serviceTypeID string) (*models.BookingSession, error)
	ToggleInspectionOnly(customerID, sessionID string) (*models.BookingSession, error)
	SetAppointment(customerID, sessionID, date, timeOfDay, description, paymentPreference string) (*models.BookingSession, error)
	Submit(customerID, sessionID string) (*models.Booking, error)
	CancelSession(customerID, sessionID string) error
}

// ManagementService covers a customer's confirmed bookings: history,
// reschedule, cancel, completion confirmation and feedback.
type ManagementService interface {
	History(customerID string) ([]models.Booking, error)
	GetBooking(customerID, bookingID string) (*models.Booking, error)
	Reschedule(customerID, bookingID, date, timeOfDay string) (*models.Booking, error)
	Cancel(customerID, bookingID, reason string) (*models.Booking, error)
	ConfirmCompletion(customerID, bookingID string) (*models.Booking, error)
	LeaveFeedback(customerID, bookingID string, rating int, comment string) (*models.Booking, error)
}

// ReminderScheduler enqueues an appointment reminder ahead of a booking.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(booking *models.Booking, centerName string) error
}

// DefaultBookingService implements SessionService and ManagementService.
type DefaultBookingService struct {
	Store        SessionStore
	Bookings     bookingRepo.BookingRepository
	Vehicles     vehicleRepo.VehicleRepository
	Centers      centerRepo.CenterRepository
	ServiceTypes servicetypeRepo.ServiceTypeRepository
	Notifier     notification.NotificationService
	Reminders    ReminderScheduler
}
