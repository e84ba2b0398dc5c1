package router

import (
	"github.com/labstack/echo/v4"

	"tailorlink/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupTailorRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupMeasurementRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
