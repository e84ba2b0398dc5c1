package router

import (
	"github.com/labstack/echo/v4"

	"tailorlink/internal/adapter/api/handler"
	"tailorlink/internal/adapter/api/middleware"
)

func SetupMeasurementRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	measurementHandler := handler.GetMeasurementHandler()

	measurements := e.Group("/v1/measurements")
	measurements.Use(authMiddleware.Authenticate)
	measurements.POST("", measurementHandler.CreateMeasurement)
	measurements.GET("", measurementHandler.ListMeasurements)
	measurements.PATCH("/:id", measurementHandler.UpdateMeasurement)
	measurements.DELETE("/:id", measurementHandler.DeleteMeasurement)
}
