package handler

import (
	"github.com/labstack/echo/v4"

	"tailorlink/internal/usecase"
	"tailorlink/pkg/errors"
	"tailorlink/pkg/response"
	"tailorlink/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type createOrderRequest struct {
	TailorID      string   `json:"tailor_id" validate:"required"`
	GarmentType   string   `json:"garment_type" validate:"required"`
	Description   string   `json:"description,omitempty"`
	Amount        float64  `json:"amount" validate:"required,gte=0"`
	MeasurementID string   `json:"measurement_id,omitempty"`
	Images        []string `json:"images,omitempty"`
	DueDate       string   `json:"due_date,omitempty"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), userID, usecase.CreateOrderInput{
		TailorID:      req.TailorID,
		GarmentType:   req.GarmentType,
		Description:   req.Description,
		Amount:        req.Amount,
		MeasurementID: req.MeasurementID,
		Images:        req.Images,
		DueDate:       req.DueDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Order ID is required", nil))
	}

	userID := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), userID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	userID := c.Get("uid").(string)

	var err error
	var orders interface{}
	var total int64

	if c.QueryParam("as") == "tailor" {
		orders, total, err = h.orderUseCase.ListTailorOrders(c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	} else {
		orders, total, err = h.orderUseCase.ListCustomerOrders(c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	}
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, int(total), pagination.Page, pagination.PageSize)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted in_progress completed cancelled"`
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Order ID is required", nil))
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), userID, id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
