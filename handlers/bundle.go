package handlers

import (
	userRepo "postpilot/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every handler the router needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	RevokeUserTokenHandler  gin.HandlerFunc
	UpdateFCMTokenHandler   gin.HandlerFunc
	ConnectLinkedInHandler  gin.HandlerFunc

	// Schedule endpoints.
	GetScheduleHandler  gin.HandlerFunc
	SaveScheduleHandler gin.HandlerFunc
	QuickPicksHandler   gin.HandlerFunc
	TimeOptionsHandler  gin.HandlerFunc

	// Post endpoints.
	CreateDraftHandler  gin.HandlerFunc
	UpdateDraftHandler  gin.HandlerFunc
	DeletePostHandler   gin.HandlerFunc
	ListPostsHandler    gin.HandlerFunc
	PublishNowHandler   gin.HandlerFunc
	SchedulePostHandler gin.HandlerFunc
	QueuePostHandler    gin.HandlerFunc

	// AI endpoints.
	AIComposeHandler gin.HandlerFunc
	AIResetHandler   gin.HandlerFunc

	// Billing endpoints.
	CheckoutHandler     gin.HandlerFunc
	ActivatePlanHandler gin.HandlerFunc

	// Storage endpoints.
	UploadImageHandler gin.HandlerFunc
}

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
