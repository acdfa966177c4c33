package handlers

import (
	"errors"
	"net/http"

	"postpilot/models"
	"postpilot/services/billing"
	postSvc "postpilot/services/post"
	scheduleSvc "postpilot/services/schedule"
	"postpilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler serves the post lifecycle endpoints.
type PostHandler struct {
	Service postSvc.PostService
	Billing billing.BillingService
}

func NewPostHandler(svc postSvc.PostService, billingSvc billing.BillingService) *PostHandler {
	return &PostHandler{Service: svc, Billing: billingSvc}
}

// CreateDraft creates a new draft for the authenticated user.
func (h *PostHandler) CreateDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	var req models.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	post, err := h.Service.CreateDraft(c.Request.Context(), userID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to create draft", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create draft")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdateDraft rewrites the body and media of an editable post.
func (h *PostHandler) UpdateDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	var req models.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	post, err := h.Service.UpdateDraft(c.Request.Context(), userID, c.Param("postID"), req)
	if err != nil {
		h.writePostError(c, err, "Failed to update draft")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes an unpublished post.
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	if err := h.Service.DeletePost(c.Request.Context(), userID, c.Param("postID")); err != nil {
		h.writePostError(c, err, "Failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// ListPosts lists a profile's posts, optionally filtered by ?status=.
func (h *PostHandler) ListPosts(c *gin.Context) {
	profileID := c.Param("profileID")
	if profileID == "" {
		utils.JSONError(c, http.StatusBadRequest, "profileID is required")
		return
	}

	posts, err := h.Service.ListPosts(c.Request.Context(), profileID, c.Query("status"))
	if err != nil {
		utils.GetLogger().Error("Failed to list posts", zap.String("profileID", profileID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// PublishNow pushes a post to LinkedIn immediately.
func (h *PostHandler) PublishNow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	post, err := h.Service.PublishNow(c.Request.Context(), userID, c.Param("postID"))
	if err != nil {
		h.writePostError(c, err, "Failed to publish post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// SchedulePost defers a post to a concrete instant chosen by the user.
func (h *PostHandler) SchedulePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	var req models.SchedulePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	post, err := h.Service.SchedulePost(c.Request.Context(), userID, c.Param("postID"), req.ScheduledAt)
	if err != nil {
		h.writePostError(c, err, "Failed to schedule post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// QueuePost drops a post onto the next free recurring slot. Queueing is a
// Pro feature.
func (h *PostHandler) QueuePost(c *gin.Context) {
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
		utils.JSONError(c, http.StatusInternalServerError, "Failed to queue post")
		return
	}

	post, err := h.Service.QueuePost(c.Request.Context(), userID, c.Param("postID"))
	if err != nil {
		h.writePostError(c, err, "Failed to queue post")
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) writePostError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, postSvc.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, postSvc.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, postSvc.ErrNotEditable),
		errors.Is(err, postSvc.ErrPastInstant),
		errors.Is(err, scheduleSvc.ErrNoConfiguredSlots):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		utils.GetLogger().Error(fallback, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}
