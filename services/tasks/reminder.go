package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"autocare/config"
	"autocare/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task carrying an appointment reminder,
// scheduled to fire at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues reminder tasks ahead of appointments.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler connects an asynq client to the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{
		client: client,
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

// ScheduleAppointmentReminder queues a reminder push ahead of the booking's
// appointment. Appointments too close for the lead window are skipped.
func (s *ReminderScheduler) ScheduleAppointmentReminder(booking *models.Booking, centerName string) error {
	appt, err := time.ParseInLocation("2006-01-02 15:04",
		booking.AppointmentDate+" "+booking.AppointmentTime, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse appointment moment: %w", err)
	}

	fireAt := appt.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:       booking.ID,
		CustomerID:      booking.CustomerID,
		CenterName:      centerName,
		AppointmentDate: booking.AppointmentDate,
		AppointmentTime: booking.AppointmentTime,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
