package handlers

import (
	"errors"
	"net/http"
	"strconv"

	bookingSvc "autocare/services/booking"
	"autocare/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the wizard session endpoints and the booking
// management endpoints.
type BookingHandler struct {
	Sessions bookingSvc.SessionService
	Bookings bookingSvc.ManagementService
}

func NewBookingHandler(sessions bookingSvc.SessionService, bookings bookingSvc.ManagementService) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Bookings: bookings}
}

// respondBookingError maps service errors onto HTTP statuses.
func respondBookingError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, bookingSvc.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
	case bookingSvc.IsValidationError(err):
		utils.JSONError(c, http.StatusBadRequest, action+" rejected", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, action+" failed", err.Error())
	}
}

// --- wizard session ---

func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	session, err := h.Sessions.StartSession(c.GetString("userID"))
	if err != nil {
		respondBookingError(c, "start session", err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Sessions.GetSession(c.GetString("userID"), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, "get session", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) AdvanceStepHandler(c *gin.Context) {
	session, err := h.Sessions.AdvanceStep(c.GetString("userID"), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, "advance step", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) RetreatStepHandler(c *gin.Context) {
	session, err := h.Sessions.RetreatStep(c.GetString("userID"), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, "go back", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) JumpToStepHandler(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid step", err.Error())
		return
	}
	session, err := h.Sessions.JumpToStep(c.GetString("userID"), c.Param("sessionID"), step)
	if err != nil {
		respondBookingError(c, "jump to step", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) SelectVehicleHandler(c *gin.Context) {
	var input struct {
		VehicleID string `json:"vehicleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Sessions.SelectVehicle(c.GetString("userID"), c.Param("sessionID"), input.VehicleID)
	if err != nil {
		respondBookingError(c, "select vehicle", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) SelectCenterHandler(c *gin.Context) {
	var input struct {
		CenterID string `json:"centerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Sessions.SelectCenter(c.GetString("userID"), c.Param("sessionID"), input.CenterID)
	if err != nil {
		respondBookingError(c, "select center", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) SelectServiceHandler(c *gin.Context) {
	var input struct {
		ServiceTypeID string `json:"serviceTypeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Sessions.SelectService(c.GetString("userID"), c.Param("sessionID"), input.ServiceTypeID)
	if err != nil {
		respondBookingError(c, "select service", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) ToggleInspectionHandler(c *gin.Context) {
	session, err := h.Sessions.ToggleInspectionOnly(c.GetString("userID"), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, "toggle inspection", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) SetAppointmentHandler(c *gin.Context) {
	var input struct {
		Date              string `json:"date" binding:"required"`
		Time              string `json:"time" binding:"required"`
		Description       string `json:"description"`
		PaymentPreference string `json:"paymentPreference"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Sessions.SetAppointment(
		c.GetString("userID"), c.Param("sessionID"),
		input.Date, input.Time, input.Description, input.PaymentPreference,
	)
	if err != nil {
		respondBookingError(c, "set appointment", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) SubmitHandler(c *gin.Context) {
	booking, err := h.Sessions.Submit(c.GetString("userID"), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, "submit booking", err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.GetString("userID"), c.Param("sessionID")); err != nil {
		respondBookingError(c, "cancel session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session discarded"})
}

// --- booking management ---

func (h *BookingHandler) HistoryHandler(c *gin.Context) {
	bookings, err := h.Bookings.History(c.GetString("userID"))
	if err != nil {
		respondBookingError(c, "load history", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.Bookings.GetBooking(c.GetString("userID"), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) RescheduleHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	booking, err := h.Bookings.Reschedule(c.GetString("userID"), c.Param("id"), input.Date, input.Time)
	if err != nil {
		respondBookingError(c, "reschedule", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	booking, err := h.Bookings.Cancel(c.GetString("userID"), c.Param("id"), input.Reason)
	if err != nil {
		respondBookingError(c, "cancel booking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) ConfirmCompletionHandler(c *gin.Context) {
	booking, err := h.Bookings.ConfirmCompletion(c.GetString("userID"), c.Param("id"))
	if err != nil {
		respondBookingError(c, "confirm completion", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) FeedbackHandler(c *gin.Context) {
	var input struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	booking, err := h.Bookings.LeaveFeedback(c.GetString("userID"), c.Param("id"), input.Rating, input.Comment)
	if err != nil {
		respondBookingError(c, "submit feedback", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
