package handlers

import (
	"errors"
	"net/http"
	"time"

	"postpilot/models"
	"postpilot/schedule"
	scheduleSvc "postpilot/services/schedule"
	"postpilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the recurring weekly posting schedule.
type ScheduleHandler struct {
	Service scheduleSvc.ScheduleService
}

func NewScheduleHandler(svc scheduleSvc.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetSchedule returns the saved time slot groups for a profile. A profile
// without a saved schedule gets an empty list, not a 404.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	profileID := c.Param("profileID")
	if profileID == "" {
		utils.JSONError(c, http.StatusBadRequest, "profileID is required")
		return
	}

	groups, err := h.Service.GetTimeSlots(c.Request.Context(), profileID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch schedule", zap.String("profileID", profileID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeSlots": groups})
}

// SaveSchedule replaces a profile's schedule with the submitted groups.
func (h *ScheduleHandler) SaveSchedule(c *gin.Context) {
	profileID := c.Param("profileID")
	if profileID == "" {
		utils.JSONError(c, http.StatusBadRequest, "profileID is required")
		return
	}

	var req models.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	saved, err := h.Service.SaveTimeSlots(c.Request.Context(), profileID, req)
	switch {
	case errors.Is(err, scheduleSvc.ErrEmptySchedule), errors.Is(err, scheduleSvc.ErrInvalidSlot):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		utils.GetLogger().Error("Failed to save schedule", zap.String("profileID", profileID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save schedule")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// QuickPicks returns the relative and named scheduling shortcuts, computed
// against the current clock on every call.
func (h *ScheduleHandler) QuickPicks(c *gin.Context) {
	picks := schedule.QuickPicks(time.Now())

	out := make([]gin.H, 0, len(picks))
	for _, p := range picks {
		out = append(out, gin.H{"label": p.Label, "at": p.At.UTC().Format(time.RFC3339)})
	}
	c.JSON(http.StatusOK, gin.H{"quickPicks": out})
}

// TimeOptions returns every quarter-hour time of day for the slot dropdown.
func (h *ScheduleHandler) TimeOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": schedule.TimeOptions()})
}
