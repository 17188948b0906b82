package models

import "time"

// Wizard step numbers. Step N+1 is reachable only when the prerequisite
// selections for steps <= N are present.
const (
	StepSelectVehicle = 1
	StepSelectCenter  = 2
	StepSelectService = 3
	StepDateTime      = 4
)

// VehicleRef is the slice of a vehicle a wizard session carries around.
type VehicleRef struct {
	ID    string `json:"id"`
	Label string `json:"label"` // e.g. "Toyota Corolla · KDA 123X"
	Make  string `json:"make"`
}

// ServiceCenterRef is the slice of a service center a wizard session carries.
type ServiceCenterRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceRef is the slice of a service type a wizard session carries.
type ServiceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingSession holds the state of one customer's multi-step booking wizard
// (vehicle -> center -> service -> date/time). It lives in Redis with a TTL
// and is deleted on successful submission or explicit cancel.
type BookingSession struct {
	SessionID   string `json:"sessionId"`
	CustomerID  string `json:"customerId"`
	CurrentStep int    `json:"currentStep"`

	Vehicle       *VehicleRef       `json:"vehicle,omitempty"`
	ServiceCenter *ServiceCenterRef `json:"serviceCenter,omitempty"`
	Service       *ServiceRef       `json:"service,omitempty"`

	// InspectionOnly and Service are mutually exclusive by construction:
	// enabling one clears the other.
	InspectionOnly bool `json:"inspectionOnly"`

	AppointmentDate    string `json:"appointmentDate,omitempty"` // "2006-01-02"
	AppointmentTime    string `json:"appointmentTime,omitempty"` // "15:04"
	ServiceDescription string `json:"serviceDescription,omitempty"`
	PaymentPreference  string `json:"paymentPreference,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
