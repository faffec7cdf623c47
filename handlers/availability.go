package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"barberbook/models"
	"barberbook/services/availability"
	"barberbook/utils"
)

// AvailabilityHandler exposes working hours and slot availability endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func (h *AvailabilityHandler) GetWorkingHoursHandler(c *gin.Context) {
	cfg, err := h.Service.GetWorkingHours(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateWorkingHoursHandler replaces a barber's weekly schedule and queues a
// regeneration of the future availability window.
func (h *AvailabilityHandler) UpdateWorkingHoursHandler(c *gin.Context) {
	var cfg models.WorkingHoursConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateWorkingHours(c.Request.Context(), c.Param("id"), cfg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "working hours updated", "workingHours": cfg})
}

// GenerateAvailabilityHandler rebuilds the future slot window synchronously.
// The days query parameter caps the horizon; 0 means the configured default.
func (h *AvailabilityHandler) GenerateAvailabilityHandler(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "days must be a non-negative integer")
			return
		}
		days = parsed
	}

	res, err := h.Service.GenerateWindow(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetAvailableSlotsHandler returns the start slots a service of the given
// duration can begin at on one date.
func (h *AvailabilityHandler) GetAvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "15"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "duration must be an integer number of minutes")
		return
	}

	view, err := h.Service.GetAvailableSlots(c.Request.Context(), c.Param("id"), date, duration)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
