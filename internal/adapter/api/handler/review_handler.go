package handler

import (
	"github.com/labstack/echo/v4"

	"tailorlink/internal/usecase"
	"tailorlink/pkg/errors"
	"tailorlink/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type reviewListResponse struct {
	Reviews interface{} `json:"reviews"`
	Summary interface{} `json:"summary"`
}

func (h *ReviewHandler) ListTailorReviews(c echo.Context) error {
	tailorID := c.Param("id")
	if tailorID == "" {
		return response.Error(c, errors.BadRequest("Tailor ID is required", nil))
	}

	reviews, summary, err := h.reviewUseCase.ListTailorReviews(c.Request().Context(), tailorID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviewListResponse{
		Reviews: reviews,
		Summary: summary,
	})
}

type createReviewRequest struct {
	Rating      float64  `json:"rating" validate:"required,min=1,max=5"`
	Comment     string   `json:"comment" validate:"required"`
	OrderType   string   `json:"order_type,omitempty"`
	OrderAmount *float64 `json:"order_amount,omitempty"`
	Images      []string `json:"images,omitempty"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	tailorID := c.Param("id")
	if tailorID == "" {
		return response.Error(c, errors.BadRequest("Tailor ID is required", nil))
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), userID, tailorID, usecase.CreateReviewInput{
		Rating:      req.Rating,
		Comment:     req.Comment,
		OrderType:   req.OrderType,
		OrderAmount: req.OrderAmount,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

type respondToReviewRequest struct {
	Response string `json:"response" validate:"required,min=3"`
}

func (h *ReviewHandler) RespondToReview(c echo.Context) error {
	tailorID := c.Param("id")
	reviewID := c.Param("reviewId")
	if tailorID == "" || reviewID == "" {
		return response.Error(c, errors.BadRequest("Tailor ID and review ID are required", nil))
	}

	var req respondToReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	review, err := h.reviewUseCase.RespondToReview(c.Request().Context(), userID, tailorID, reviewID, req.Response)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}
