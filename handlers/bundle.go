package handlers

import (
	userRepoPkg "autocare/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Account endpoints
	RegisterHandler       gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	MeHandler             gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	UpdatePasswordHandler gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	DeleteAccountHandler  gin.HandlerFunc

	// Vehicle endpoints
	ListVehiclesHandler       gin.HandlerFunc
	GetVehicleHandler         gin.HandlerFunc
	CreateVehicleHandler      gin.HandlerFunc
	UpdateVehicleHandler      gin.HandlerFunc
	DeleteVehicleHandler      gin.HandlerFunc
	CompatibleServicesHandler gin.HandlerFunc

	// Service center endpoints
	ListCentersHandler    gin.HandlerFunc
	GetCenterHandler      gin.HandlerFunc
	NearbyCentersHandler  gin.HandlerFunc
	CenterServicesHandler gin.HandlerFunc

	// Booking wizard endpoints
	StartSessionHandler     gin.HandlerFunc
	GetSessionHandler       gin.HandlerFunc
	AdvanceStepHandler      gin.HandlerFunc
	RetreatStepHandler      gin.HandlerFunc
	JumpToStepHandler       gin.HandlerFunc
	SelectVehicleHandler    gin.HandlerFunc
	SelectCenterHandler     gin.HandlerFunc
	SelectServiceHandler    gin.HandlerFunc
	ToggleInspectionHandler gin.HandlerFunc
	SetAppointmentHandler   gin.HandlerFunc
	SubmitBookingHandler    gin.HandlerFunc
	CancelSessionHandler    gin.HandlerFunc

	// Booking management endpoints
	BookingHistoryHandler    gin.HandlerFunc
	GetBookingHandler        gin.HandlerFunc
	RescheduleHandler        gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	ConfirmCompletionHandler gin.HandlerFunc
	FeedbackHandler          gin.HandlerFunc

	// Work progress endpoints
	CreateProgressHandler     gin.HandlerFunc
	ProgressForBookingHandler gin.HandlerFunc
	GetProgressHandler        gin.HandlerFunc
	TechnicianJobsHandler     gin.HandlerFunc
	SubmitQuoteHandler        gin.HandlerFunc
	RespondToQuoteHandler     gin.HandlerFunc
	StartMaintenanceHandler   gin.HandlerFunc
	CompleteHandler           gin.HandlerFunc
	PauseHandler              gin.HandlerFunc
	ResumeHandler             gin.HandlerFunc
	MarkDelayedHandler        gin.HandlerFunc
}
