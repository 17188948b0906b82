package handlers

import (
	"net/http"
	"strconv"

	centerSvc "autocare/services/center"
	"autocare/utils"

	"github.com/gin-gonic/gin"
)

// CenterHandler exposes read-only service center endpoints.
type CenterHandler struct {
	Service centerSvc.CenterService
}

func NewCenterHandler(svc centerSvc.CenterService) *CenterHandler {
	return &CenterHandler{Service: svc}
}

func (h *CenterHandler) ListHandler(c *gin.Context) {
	centers, err := h.Service.ListCenters()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list centers", err.Error())
		return
	}
	c.JSON(http.StatusOK, centers)
}

func (h *CenterHandler) GetHandler(c *gin.Context) {
	view, err := h.Service.GetCenter(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "center not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// NearbyHandler expects lat, lng and optional radius (meters) as query params.
func (h *CenterHandler) NearbyHandler(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid lat", err.Error())
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid lng", err.Error())
		return
	}
	radius := 10000.0
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid radius", err.Error())
			return
		}
	}

	centers, err := h.Service.NearbyCenters(lat, lng, radius)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to search centers", err.Error())
		return
	}
	c.JSON(http.StatusOK, centers)
}

func (h *CenterHandler) ServicesHandler(c *gin.Context) {
	services, err := h.Service.CenterServices(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}
