package router

import (
	"github.com/labstack/echo/v4"

	"tailorlink/internal/adapter/api/handler"
	"tailorlink/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)
	files.POST("/upload", fileHandler.UploadFile)
}
