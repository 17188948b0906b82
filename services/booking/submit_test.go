package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// memSessionStore is an in-memory SessionStore for tests.
type memSessionStore struct {
	sessions map[string]*models.BookingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]*models.BookingSession{}}
}

func (m *memSessionStore) Save(_ context.Context, session *models.BookingSession) error {
	m.sessions[session.SessionID] = session
	return nil
}

func (m *memSessionStore) Get(_ context.Context, sessionID string) (*models.BookingSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (m *memSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

// countingBookingRepo records how many bookings were created.
type countingBookingRepo struct {
	created []*models.Booking
}

func (r *countingBookingRepo) GetByID(string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}
func (r *countingBookingRepo) GetByCustomer(string) ([]models.Booking, error) {
	return nil, errors.New("not implemented")
}
func (r *countingBookingRepo) GetByCenter(string) ([]models.Booking, error) {
	return nil, errors.New("not implemented")
}
func (r *countingBookingRepo) Create(b *models.Booking) error {
	r.created = append(r.created, b)
	return nil
}
func (r *countingBookingRepo) Update(*models.Booking) error {
	return errors.New("not implemented")
}
func (r *countingBookingRepo) UpdateSetDocument(string, bson.M) error {
	return errors.New("not implemented")
}

func completedSession(customerID, sessionID string) *models.BookingSession {
	return &models.BookingSession{
		SessionID:   sessionID,
		CustomerID:  customerID,
		CurrentStep: models.StepDateTime,
		Vehicle:     &models.VehicleRef{ID: "veh-1", Label: "Corolla 2018", Make: "Toyota"},
		ServiceCenter: &models.ServiceCenterRef{
			ID:   "ctr-1",
			Name: "Downtown Auto",
		},
		Service: &models.ServiceRef{ID: "svc-1", Name: "Oil Change"},
	}
}

func TestSubmit_CreatesPendingBookingAndClearsSession(t *testing.T) {
	store := newMemSessionStore()
	repo := &countingBookingRepo{}
	svc := &DefaultBookingService{Store: store, Bookings: repo}

	session := completedSession("cust-1", "sess-1")
	session.AppointmentDate = time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	session.AppointmentTime = "10:00"
	store.sessions[session.SessionID] = session

	booking, err := svc.Submit("cust-1", "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != models.BookingPending {
		t.Fatalf("expected status %q, got %q", models.BookingPending, booking.Status)
	}
	if booking.ServiceTypeID != "svc-1" {
		t.Fatalf("expected service type carried over, got %q", booking.ServiceTypeID)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created booking, got %d", len(repo.created))
	}
	if _, ok := store.sessions["sess-1"]; ok {
		t.Fatalf("expected session deleted after submit")
	}
}

// A submit with a time earlier today must fail locally: the session stays in
// the store and the repository is never called.
func TestSubmit_PastTimeTodayTouchesNothing(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	if past.Day() != now.Day() {
		t.Skip("too close to midnight for a same-day past time")
	}

	store := newMemSessionStore()
	repo := &countingBookingRepo{}
	svc := &DefaultBookingService{Store: store, Bookings: repo}

	session := completedSession("cust-1", "sess-1")
	session.AppointmentDate = now.Format("2006-01-02")
	session.AppointmentTime = past.Format("15:04")
	store.sessions[session.SessionID] = session

	_, err := svc.Submit("cust-1", "sess-1")
	if !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no repository writes, got %d", len(repo.created))
	}
	if _, ok := store.sessions["sess-1"]; !ok {
		t.Fatalf("expected session preserved after rejected submit")
	}
}

func TestSubmit_OwnershipEnforced(t *testing.T) {
	store := newMemSessionStore()
	repo := &countingBookingRepo{}
	svc := &DefaultBookingService{Store: store, Bookings: repo}

	session := completedSession("cust-1", "sess-1")
	session.AppointmentDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	session.AppointmentTime = "10:00"
	store.sessions[session.SessionID] = session

	if _, err := svc.Submit("cust-2", "sess-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
