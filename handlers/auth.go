package handlers

import (
	"errors"
	"net/http"

	"postpilot/models"
	"postpilot/services/user"
	"postpilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, login, and account token endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// Register creates a new account and returns a session token.
func (h *UserHandler) Register(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.Service.RegisterUser(c.Request.Context(), u)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login authenticates an email/password pair.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.Service.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			return
		}
		utils.GetLogger().Error("Login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RevokeToken invalidates the caller's current session token.
func (h *UserHandler) RevokeToken(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	if err := h.Service.RevokeAuthToken(c.Request.Context(), userID); err != nil {
		utils.GetLogger().Error("Token revocation failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to revoke token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

// UpdateFCMToken stores the caller's device token for push notifications.
func (h *UserHandler) UpdateFCMToken(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.Service.UpdateFCMToken(c.Request.Context(), userID, req.Token); err != nil {
		utils.GetLogger().Error("FCM token update failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update FCM token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FCM token updated"})
}

// ConnectLinkedIn stores the caller's LinkedIn access token for publishing.
func (h *UserHandler) ConnectLinkedIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	var req struct {
		AccessToken string `json:"accessToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.Service.UpdateLinkedInToken(c.Request.Context(), userID, req.AccessToken); err != nil {
		utils.GetLogger().Error("LinkedIn token update failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to connect LinkedIn account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "LinkedIn account connected"})
}
