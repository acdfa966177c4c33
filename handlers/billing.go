package handlers

import (
	"net/http"

	"postpilot/models"
	"postpilot/services/billing"
	"postpilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingHandler serves subscription endpoints.
type BillingHandler struct {
	Service billing.BillingService
}

func NewBillingHandler(svc billing.BillingService) *BillingHandler {
	return &BillingHandler{Service: svc}
}

// CreateCheckout starts a Stripe checkout session for the Pro plan and
// returns the hosted payment URL.
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	var req struct {
		SuccessURL string `json:"successUrl" binding:"required"`
		CancelURL  string `json:"cancelUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	url, err := h.Service.CreateCheckoutSession(c.Request.Context(), userID, req.SuccessURL, req.CancelURL)
	if err != nil {
		utils.GetLogger().Error("Checkout session creation failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkoutUrl": url})
}

// ActivatePlan marks the caller's subscription active after checkout
// completes.
func (h *BillingHandler) ActivatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	if err := h.Service.ActivatePlan(c.Request.Context(), userID, models.PlanPro); err != nil {
		utils.GetLogger().Error("Plan activation failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to activate plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": models.PlanPro})
}
