package handlers

import (
	"net/http"

	"postpilot/services/storage"
	"postpilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxUploadBytes caps post media uploads at 10 MB.
const maxUploadBytes = 10 << 20

// StorageHandler serves post media uploads.
type StorageHandler struct {
	Service storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Service: svc}
}

// UploadImage accepts a multipart image and returns its public URL for use
// as a post's media attachment.
func (h *StorageHandler) UploadImage(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "An image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	url, err := h.Service.UploadImage(c.Request.Context(), file, "post_media")
	if err != nil {
		utils.GetLogger().Error("Image upload failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
