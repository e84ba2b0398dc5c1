package handler

import (
	"github.com/labstack/echo/v4"

	"tailorlink/internal/usecase"
	"tailorlink/pkg/errors"
	"tailorlink/pkg/response"
)

type MeasurementHandler struct {
	measurementUseCase *usecase.MeasurementUseCase
}

func NewMeasurementHandler(measurementUseCase *usecase.MeasurementUseCase) *MeasurementHandler {
	return &MeasurementHandler{
		measurementUseCase: measurementUseCase,
	}
}

type measurementRequest struct {
	Name   string             `json:"name" validate:"required"`
	Values map[string]float64 `json:"values" validate:"required"`
	Notes  string             `json:"notes,omitempty"`
}

func (h *MeasurementHandler) CreateMeasurement(c echo.Context) error {
	var req measurementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	measurement, err := h.measurementUseCase.Create(c.Request().Context(), userID, usecase.MeasurementInput{
		Name:   req.Name,
		Values: req.Values,
		Notes:  req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, measurement)
}

func (h *MeasurementHandler) ListMeasurements(c echo.Context) error {
	userID := c.Get("uid").(string)

	measurements, err := h.measurementUseCase.List(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, measurements)
}

type updateMeasurementRequest struct {
	Name   string             `json:"name,omitempty"`
	Values map[string]float64 `json:"values,omitempty"`
	Notes  string             `json:"notes,omitempty"`
}

func (h *MeasurementHandler) UpdateMeasurement(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Measurement ID is required", nil))
	}

	var req updateMeasurementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	measurement, err := h.measurementUseCase.Update(c.Request().Context(), userID, id, usecase.MeasurementInput{
		Name:   req.Name,
		Values: req.Values,
		Notes:  req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, measurement)
}

func (h *MeasurementHandler) DeleteMeasurement(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Measurement ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.measurementUseCase.Delete(c.Request().Context(), userID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Measurement deleted successfully"})
}
