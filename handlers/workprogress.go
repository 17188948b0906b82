package handlers

import (
	"errors"
	"net/http"

	"autocare/models"
	progressSvc "autocare/services/workprogress"
	"autocare/utils"

	"github.com/gin-gonic/gin"
)

// ProgressHandler exposes the technician work-progress endpoints plus the
// customer quote-response endpoint.
type ProgressHandler struct {
	Service progressSvc.ProgressService
}

func NewProgressHandler(svc progressSvc.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: svc}
}

func respondProgressError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, progressSvc.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "work progress not found", err.Error())
	case progressSvc.IsActionError(err):
		utils.JSONError(c, http.StatusConflict, action+" not permitted", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, action+" failed", err.Error())
	}
}

func (h *ProgressHandler) CreateHandler(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	view, err := h.Service.Create(input.BookingID, c.GetString("userID"))
	if err != nil {
		respondProgressError(c, "create record", err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// ForBookingHandler resolves the record attached to a booking.
func (h *ProgressHandler) ForBookingHandler(c *gin.Context) {
	view, err := h.Service.GetForBooking(c.Param("bookingID"), c.GetString("userID"))
	if err != nil {
		respondProgressError(c, "load record", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProgressHandler) GetHandler(c *gin.Context) {
	view, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondProgressError(c, "load record", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProgressHandler) JobsHandler(c *gin.Context) {
	jobs, err := h.Service.TechnicianJobs(c.GetString("userID"))
	if err != nil {
		respondProgressError(c, "list jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *ProgressHandler) SubmitQuoteHandler(c *gin.Context) {
	var input struct {
		Items []models.QuoteItem `json:"items" binding:"required"`
		Notes string             `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	view, err := h.Service.SubmitQuote(c.Param("id"), c.GetString("userID"), input.Items, input.Notes)
	if err != nil {
		respondProgressError(c, "submit quote", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RespondToQuoteHandler is called by the customer who owns the booking.
func (h *ProgressHandler) RespondToQuoteHandler(c *gin.Context) {
	var input struct {
		Approve *bool `json:"approve" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	view, err := h.Service.RespondToQuote(c.Param("id"), c.GetString("userID"), *input.Approve)
	if err != nil {
		respondProgressError(c, "respond to quote", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProgressHandler) StartMaintenanceHandler(c *gin.Context) {
	view, err := h.Service.StartMaintenance(c.Param("id"), c.GetString("userID"))
	if err != nil {
		respondProgressError(c, "start maintenance", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProgressHandler) CompleteHandler(c *gin.Context) {
	view, err := h.Service.Complete(c.Param("id"), c.GetString("userID"))
	if err != nil {
		respondProgressError(c, "complete maintenance", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProgressHandler) PauseHandler(c *gin.Context) {
	view, err := h.Service.Pause(c.Param("id"), c.GetString("userID"))
	if err != nil {
		respondProgressError(c, "pause", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProgressHandler) ResumeHandler(c *gin.Context) {
	view, err := h.Service.Resume(c.Param("id"), c.GetString("userID"))
	if err != nil {
		respondProgressError(c, "resume", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProgressHandler) MarkDelayedHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	view, err := h.Service.MarkDelayed(c.Param("id"), c.GetString("userID"), input.Reason)
	if err != nil {
		respondProgressError(c, "mark delayed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}
