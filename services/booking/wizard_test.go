package booking

import (
	"testing"
	"time"

	"autocare/models"
)

func sessionWith(vehicle, center, service bool, inspectionOnly bool) *models.BookingSession {
	s := &models.BookingSession{CurrentStep: models.StepSelectVehicle}
	if vehicle {
		s.Vehicle = &models.VehicleRef{ID: "veh-1", Label: "Corolla 2018", Make: "Toyota"}
	}
	if center {
		s.ServiceCenter = &models.ServiceCenterRef{ID: "ctr-1", Name: "Downtown Auto"}
	}
	if service {
		s.Service = &models.ServiceRef{ID: "svc-1", Name: "Oil Change"}
	}
	s.InspectionOnly = inspectionOnly
	return s
}

func TestCanProceedToStep(t *testing.T) {
	cases := []struct {
		name    string
		session *models.BookingSession
		step    int
		want    bool
	}{
		{"step 1 always reachable", sessionWith(false, false, false, false), models.StepSelectVehicle, true},
		{"step 2 without vehicle", sessionWith(false, false, false, false), models.StepSelectCenter, false},
		{"step 2 with vehicle", sessionWith(true, false, false, false), models.StepSelectCenter, true},
		{"step 3 without center", sessionWith(true, false, false, false), models.StepSelectService, false},
		{"step 3 with vehicle and center", sessionWith(true, true, false, false), models.StepSelectService, true},
		{"step 4 without service", sessionWith(true, true, false, false), models.StepDateTime, false},
		{"step 4 with service", sessionWith(true, true, true, false), models.StepDateTime, true},
		{"step 4 inspection only", sessionWith(true, true, false, true), models.StepDateTime, true},
		{"unknown step", sessionWith(true, true, true, false), 9, false},
	}
	for _, tc := range cases {
		if got := CanProceedToStep(tc.session, tc.step); got != tc.want {
			t.Errorf("%s: CanProceedToStep = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestApplyVehicleSelection_ReselectClears(t *testing.T) {
	s := sessionWith(false, false, false, false)
	ref := models.VehicleRef{ID: "veh-1", Label: "Corolla 2018", Make: "Toyota"}

	applyVehicleSelection(s, ref)
	if s.Vehicle == nil || s.Vehicle.ID != "veh-1" {
		t.Fatalf("expected vehicle selected")
	}

	applyVehicleSelection(s, ref)
	if s.Vehicle != nil {
		t.Fatalf("expected re-selection to clear the vehicle")
	}
}

func TestApplyServiceSelection_ClearsInspectionOnly(t *testing.T) {
	s := sessionWith(true, true, false, true)

	applyServiceSelection(s, models.ServiceRef{ID: "svc-1", Name: "Oil Change"})
	if s.InspectionOnly {
		t.Fatalf("selecting a service should clear inspection-only")
	}
	if s.Service == nil {
		t.Fatalf("expected service selected")
	}
}

func TestToggleInspectionOnly_ClearsService(t *testing.T) {
	s := sessionWith(true, true, true, false)

	toggleInspectionOnly(s)
	if !s.InspectionOnly {
		t.Fatalf("expected inspection-only enabled")
	}
	if s.Service != nil {
		t.Fatalf("enabling inspection-only should clear the service")
	}

	toggleInspectionOnly(s)
	if s.InspectionOnly {
		t.Fatalf("expected inspection-only disabled after second toggle")
	}
}

func TestJumpToStep(t *testing.T) {
	s := sessionWith(true, true, true, false)
	s.CurrentStep = models.StepDateTime

	if err := jumpToStep(s, models.StepSelectCenter); err != nil {
		t.Fatalf("backward jump failed: %v", err)
	}
	if s.CurrentStep != models.StepSelectCenter {
		t.Fatalf("expected step %d, got %d", models.StepSelectCenter, s.CurrentStep)
	}

	if err := jumpToStep(s, models.StepDateTime); err == nil {
		t.Fatalf("expected forward jump to be rejected")
	}
}

func TestValidateAppointmentMoment(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		date    string
		time    string
		wantErr bool
	}{
		{"earlier today", "2026-03-02", "14:00", true},
		{"same minute today", "2026-03-02", "14:30", false},
		{"later today", "2026-03-02", "16:00", false},
		{"tomorrow early morning", "2026-03-03", "06:00", false},
		{"past date is not checked here", "2026-03-01", "14:00", false},
	}
	for _, tc := range cases {
		err := validateAppointmentMoment(tc.date, tc.time, now)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if err != nil && !IsValidationError(err) {
			t.Errorf("%s: expected a validation error, got %T", tc.name, err)
		}
	}
}

func TestValidateSubmission_MissingSelections(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		session *models.BookingSession
	}{
		{"no vehicle", sessionWith(false, true, true, false)},
		{"no center", sessionWith(true, false, true, false)},
		{"no service and no inspection", sessionWith(true, true, false, false)},
	}
	for _, tc := range cases {
		if err := ValidateSubmission(tc.session, now); !IsValidationError(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestValidateSubmission_InspectionOnlyNeedsNoService(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := sessionWith(true, true, false, true)
	s.AppointmentDate = "2026-03-05"
	s.AppointmentTime = "11:00"

	if err := ValidateSubmission(s, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
