package handlers

import (
	"net/http"

	"autocare/models"
	vehicleSvc "autocare/services/vehicle"
	"autocare/utils"

	"github.com/gin-gonic/gin"
)

// VehicleHandler exposes the customer's garage endpoints.
type VehicleHandler struct {
	Service vehicleSvc.VehicleService
}

func NewVehicleHandler(svc vehicleSvc.VehicleService) *VehicleHandler {
	return &VehicleHandler{Service: svc}
}

func (h *VehicleHandler) ListHandler(c *gin.Context) {
	vehicles, err := h.Service.ListVehicles(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list vehicles", err.Error())
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) GetHandler(c *gin.Context) {
	v, err := h.Service.GetVehicle(c.GetString("userID"), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "vehicle not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VehicleHandler) CreateHandler(c *gin.Context) {
	var input models.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	v, err := h.Service.AddVehicle(c.GetString("userID"), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to add vehicle", err.Error())
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *VehicleHandler) UpdateHandler(c *gin.Context) {
	var input models.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	v, err := h.Service.UpdateVehicle(c.GetString("userID"), c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update vehicle", err.Error())
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VehicleHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.RemoveVehicle(c.GetString("userID"), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to remove vehicle", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle removed"})
}

// CompatibleServicesHandler lists service types usable by one vehicle,
// optionally filtered by category.
func (h *VehicleHandler) CompatibleServicesHandler(c *gin.Context) {
	services, err := h.Service.CompatibleServices(c.GetString("userID"), c.Param("id"), c.Query("category"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}
