package notification

import (
	"context"
	"fmt"

	"autocare/models"
	"autocare/utils"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
)

// sendPush looks up a user's FCM token and sends a push message.
func (s *DefaultNotificationService) sendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.Users.GetByIDWithProjection(userID, bson.M{"id": 1, "fcm_token": 1})
	if err != nil {
		return fmt.Errorf("sendPush: could not find user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		return fmt.Errorf("sendPush: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("sendPush: failed to send FCM message: %w", err)
	}
	return nil
}

// NotifyBookingConfirmed tells the customer their appointment is in.
func (s *DefaultNotificationService) NotifyBookingConfirmed(ctx context.Context, booking *models.Booking, centerName string) error {
	body := fmt.Sprintf("Your appointment at %s is booked for %s %s.",
		centerName, booking.AppointmentDate, booking.AppointmentTime)
	return s.sendPush(ctx, booking.CustomerID, "Booking confirmed", body, map[string]string{
		"type":      "booking_confirmed",
		"bookingId": booking.ID,
	})
}

// NotifyQuoteSubmitted tells the customer a quote is waiting for approval.
func (s *DefaultNotificationService) NotifyQuoteSubmitted(ctx context.Context, customerID, bookingID string, total float64) error {
	body := fmt.Sprintf("Your technician sent an inspection quote of %.2f. Review it to continue.", total)
	return s.sendPush(ctx, customerID, "Inspection quote ready", body, map[string]string{
		"type":      "quote_submitted",
		"bookingId": bookingID,
	})
}

// NotifyQuoteResponse tells the technician the customer's decision.
func (s *DefaultNotificationService) NotifyQuoteResponse(ctx context.Context, technicianID, bookingID string, approved bool) error {
	decision := "approved"
	if !approved {
		decision = "rejected"
	}
	body := fmt.Sprintf("The customer %s your quote.", decision)
	return s.sendPush(ctx, technicianID, "Quote "+decision, body, map[string]string{
		"type":      "quote_response",
		"bookingId": bookingID,
		"decision":  decision,
	})
}

// NotifyMaintenanceCompleted tells the customer maintenance is done.
func (s *DefaultNotificationService) NotifyMaintenanceCompleted(ctx context.Context, customerID, bookingID string) error {
	return s.sendPush(ctx, customerID, "Maintenance completed",
		"Your vehicle is ready for pickup.", map[string]string{
			"type":      "maintenance_completed",
			"bookingId": bookingID,
		})
}

// NotifyAppointmentReminder reminds the customer of an upcoming appointment.
func (s *DefaultNotificationService) NotifyAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error {
	body := fmt.Sprintf("Reminder: your appointment at %s is on %s at %s.",
		payload.CenterName, payload.AppointmentDate, payload.AppointmentTime)
	return s.sendPush(ctx, payload.CustomerID, "Upcoming appointment", body, map[string]string{
		"type":      "appointment_reminder",
		"bookingId": payload.BookingID,
	})
}
