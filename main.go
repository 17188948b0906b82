package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autocare/config"
	"autocare/cron"
	"autocare/database"
	bookingRepoPkg "autocare/database/repository/booking"
	centerRepoPkg "autocare/database/repository/center"
	servicetypeRepoPkg "autocare/database/repository/servicetype"
	userRepoPkg "autocare/database/repository/user"
	vehicleRepoPkg "autocare/database/repository/vehicle"
	progressRepoPkg "autocare/database/repository/workprogress"
	"autocare/handlers"
	"autocare/middleware"
	"autocare/routes"
	"autocare/services/booking"
	centerSvc "autocare/services/center"
	"autocare/services/notification"
	"autocare/services/tasks"
	"autocare/services/user"
	vehicleSvc "autocare/services/vehicle"
	"autocare/services/workprogress"
	"autocare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	centerRepo := centerRepoPkg.NewMongoCenterRepo()
	serviceTypeRepo := servicetypeRepoPkg.NewMongoServiceTypeRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	progressRepo := progressRepoPkg.NewMongoProgressRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Users: userRepo,
	}

	vehicleService := &vehicleSvc.DefaultVehicleService{
		Repo:         vehicleRepo,
		ServiceTypes: serviceTypeRepo,
	}

	centerService := &centerSvc.DefaultCenterService{
		Repo:         centerRepo,
		ServiceTypes: serviceTypeRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Store:        booking.NewRedisSessionStore(),
		Bookings:     bookingRepo,
		Vehicles:     vehicleRepo,
		Centers:      centerRepo,
		ServiceTypes: serviceTypeRepo,
		Notifier:     notificationService,
		Reminders:    tasks.NewReminderScheduler(),
	}

	progressService := &workprogress.DefaultProgressService{
		Repo:     progressRepo,
		Bookings: bookingRepo,
		Notifier: notificationService,
	}

	userHandler := handlers.NewUserHandler(userService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	centerHandler := handlers.NewCenterHandler(centerService)
	bookingHandler := handlers.NewBookingHandler(bookingService, bookingService)
	progressHandler := handlers.NewProgressHandler(progressService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Account endpoints.
		RegisterHandler:       userHandler.RegisterHandler,
		LoginHandler:          userHandler.LoginHandler,
		MeHandler:             userHandler.MeHandler,
		UpdateProfileHandler:  userHandler.UpdateProfileHandler,
		UpdatePasswordHandler: userHandler.UpdatePasswordHandler,
		UpdateFCMTokenHandler: userHandler.UpdateFCMTokenHandler,
		LogoutHandler:         userHandler.LogoutHandler,
		DeleteAccountHandler:  userHandler.DeleteAccountHandler,

		// Vehicle endpoints.
		ListVehiclesHandler:       vehicleHandler.ListHandler,
		GetVehicleHandler:         vehicleHandler.GetHandler,
		CreateVehicleHandler:      vehicleHandler.CreateHandler,
		UpdateVehicleHandler:      vehicleHandler.UpdateHandler,
		DeleteVehicleHandler:      vehicleHandler.DeleteHandler,
		CompatibleServicesHandler: vehicleHandler.CompatibleServicesHandler,

		// Service center endpoints.
		ListCentersHandler:    centerHandler.ListHandler,
		GetCenterHandler:      centerHandler.GetHandler,
		NearbyCentersHandler:  centerHandler.NearbyHandler,
		CenterServicesHandler: centerHandler.ServicesHandler,

		// Booking wizard endpoints.
		StartSessionHandler:     bookingHandler.StartSessionHandler,
		GetSessionHandler:       bookingHandler.GetSessionHandler,
		AdvanceStepHandler:      bookingHandler.AdvanceStepHandler,
		RetreatStepHandler:      bookingHandler.RetreatStepHandler,
		JumpToStepHandler:       bookingHandler.JumpToStepHandler,
		SelectVehicleHandler:    bookingHandler.SelectVehicleHandler,
		SelectCenterHandler:     bookingHandler.SelectCenterHandler,
		SelectServiceHandler:    bookingHandler.SelectServiceHandler,
		ToggleInspectionHandler: bookingHandler.ToggleInspectionHandler,
		SetAppointmentHandler:   bookingHandler.SetAppointmentHandler,
		SubmitBookingHandler:    bookingHandler.SubmitHandler,
		CancelSessionHandler:    bookingHandler.CancelSessionHandler,

		// Booking management endpoints.
		BookingHistoryHandler:    bookingHandler.HistoryHandler,
		GetBookingHandler:        bookingHandler.GetBookingHandler,
		RescheduleHandler:        bookingHandler.RescheduleHandler,
		CancelBookingHandler:     bookingHandler.CancelBookingHandler,
		ConfirmCompletionHandler: bookingHandler.ConfirmCompletionHandler,
		FeedbackHandler:          bookingHandler.FeedbackHandler,

		// Work progress endpoints.
		CreateProgressHandler:     progressHandler.CreateHandler,
		ProgressForBookingHandler: progressHandler.ForBookingHandler,
		GetProgressHandler:        progressHandler.GetHandler,
		TechnicianJobsHandler:     progressHandler.JobsHandler,
		SubmitQuoteHandler:        progressHandler.SubmitQuoteHandler,
		RespondToQuoteHandler:     progressHandler.RespondToQuoteHandler,
		StartMaintenanceHandler:   progressHandler.StartMaintenanceHandler,
		CompleteHandler:           progressHandler.CompleteHandler,
		PauseHandler:              progressHandler.PauseHandler,
		ResumeHandler:             progressHandler.ResumeHandler,
		MarkDelayedHandler:        progressHandler.MarkDelayedHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for appointment reminders.
	cron.InitReminderWorker(notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
