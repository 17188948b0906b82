package routes

import (
	"net/http"
	"time"

	"autocare/handlers"
	"autocare/middleware"
	"autocare/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.UpdatePasswordHandler)
		api.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
		api.POST("/logout", hb.LogoutHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
	}
}

// RegisterVehicleRoutes registers the customer's garage endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleCustomer))
		api.GET("", hb.ListVehiclesHandler)
		api.POST("", hb.CreateVehicleHandler)
		api.GET("/:id", hb.GetVehicleHandler)
		api.PUT("/:id", hb.UpdateVehicleHandler)
		api.DELETE("/:id", hb.DeleteVehicleHandler)
		api.GET("/:id/services", hb.CompatibleServicesHandler)
	}
}

// RegisterCenterRoutes registers service center browsing endpoints.
func RegisterCenterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/centers")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListCentersHandler)
		api.GET("/nearby", hb.NearbyCentersHandler)
		api.GET("/:id", hb.GetCenterHandler)
		api.GET("/:id/services", hb.CenterServicesHandler)
	}
}

// RegisterBookingRoutes registers the wizard session and booking
// management endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleCustomer))

		api.POST("/session", hb.StartSessionHandler)
		api.GET("/session/:sessionID", hb.GetSessionHandler)
		api.POST("/session/:sessionID/next", hb.AdvanceStepHandler)
		api.POST("/session/:sessionID/back", hb.RetreatStepHandler)
		api.POST("/session/:sessionID/step/:step", hb.JumpToStepHandler)
		api.PUT("/session/:sessionID/vehicle", hb.SelectVehicleHandler)
		api.PUT("/session/:sessionID/center", hb.SelectCenterHandler)
		api.PUT("/session/:sessionID/service", hb.SelectServiceHandler)
		api.POST("/session/:sessionID/inspection", hb.ToggleInspectionHandler)
		api.PUT("/session/:sessionID/appointment", hb.SetAppointmentHandler)
		api.POST("/session/:sessionID/submit", hb.SubmitBookingHandler)
		api.DELETE("/session/:sessionID", hb.CancelSessionHandler)

		api.GET("/history", hb.BookingHistoryHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PUT("/:id/reschedule", hb.RescheduleHandler)
		api.PUT("/:id/cancel", hb.CancelBookingHandler)
		api.POST("/:id/confirm-completion", hb.ConfirmCompletionHandler)
		api.POST("/:id/feedback", hb.FeedbackHandler)
	}
}

// RegisterProgressRoutes registers work-progress endpoints. Mutating
// actions are technician-only except the customer's quote response.
func RegisterProgressRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/progress")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))

		api.GET("/booking/:bookingID", hb.ProgressForBookingHandler)
		api.GET("/:id", hb.GetProgressHandler)
		api.POST("/:id/quote/respond", hb.RespondToQuoteHandler)

		tech := api.Group("")
		tech.Use(middleware.RequireRole(models.RoleTechnician))
		tech.POST("", hb.CreateProgressHandler)
		tech.GET("/jobs", hb.TechnicianJobsHandler)
		tech.POST("/:id/quote", hb.SubmitQuoteHandler)
		tech.POST("/:id/start", hb.StartMaintenanceHandler)
		tech.POST("/:id/complete", hb.CompleteHandler)
		tech.POST("/:id/pause", hb.PauseHandler)
		tech.POST("/:id/resume", hb.ResumeHandler)
		tech.POST("/:id/delay", hb.MarkDelayedHandler)
	}
}

// RegisterHealthRoute exposes a liveness check.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
	RegisterCenterRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProgressRoutes(r, hb)
	RegisterHealthRoute(r)
}
