package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"tailorlink/internal/infrastructure/storage"
	"tailorlink/pkg/errors"
	"tailorlink/pkg/logger"
	"tailorlink/pkg/response"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
	maxFileSize   int64
}

var fileHandler *FileHandler

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
		maxFileSize:   10 * 1024 * 1024,
	}
}

func SetupFileHandler(storageClient *storage.CloudStorageClient) {
	fileHandler = NewFileHandler(storageClient)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

// UploadFile accepts a multipart upload and stores it in the media bucket.
// Deployments without a configured bucket reject uploads instead of writing
// to local disk.
func (h *FileHandler) UploadFile(c echo.Context) error {
	if h.storageClient == nil {
		return response.Error(c, errors.Unavailable("File uploads are not available on this server", nil))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !isAllowedMediaType(contentType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	folder := c.FormValue("folder")
	switch folder {
	case "portfolio", "avatars", "orders", "reviews":
	default:
		folder = "uploads"
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadFile(c.Request().Context(), src, contentType, folder)
	if err != nil {
		logger.Error("Upload failed: %v", err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}

	return response.Created(c, map[string]interface{}{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}

func isAllowedMediaType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "video/mp4":
		return true
	}
	return false
}
