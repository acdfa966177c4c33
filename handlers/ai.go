package handlers

import (
	"errors"
	"net/http"

	"postpilot/models"
	"postpilot/services/billing"
	ai "postpilot/services/intelligence"
	"postpilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the AI composer endpoints. Composing is a Pro feature.
type AIHandler struct {
	Service ai.AIService
	Billing billing.BillingService
}

func NewAIHandler(svc ai.AIService, billingSvc billing.BillingService) *AIHandler {
	return &AIHandler{Service: svc, Billing: billingSvc}
}

// Compose generates a post draft from a prompt, carrying the user's recent
// composing turns as context.
func (h *AIHandler) Compose(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	if err := h.Billing.RequireActivePlan(c.Request.Context(), userID); err != nil {
		if errors.Is(err, billing.ErrPlanRequired) {
			utils.JSONError(c, http.StatusPaymentRequired, err.Error())
			return
		}
		utils.GetLogger().Error("Plan check failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compose draft")
		return
	}

	var req models.AIComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.Service.ComposeDraft(c.Request.Context(), userID, req)
	if err != nil {
		utils.GetLogger().Error("AI compose failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compose draft")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResetContext clears the user's composing session.
func (h *AIHandler) ResetContext(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	if err := h.Service.ResetContext(c.Request.Context(), userID); err != nil {
		utils.GetLogger().Error("AI context reset failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset composing session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Composing session reset"})
}
