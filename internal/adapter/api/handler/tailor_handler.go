package handler

import (
	"github.com/labstack/echo/v4"

	"tailorlink/internal/domain/entity"
	"tailorlink/internal/usecase"
	"tailorlink/pkg/errors"
	"tailorlink/pkg/response"
	"tailorlink/pkg/utils"
)

type TailorHandler struct {
	tailorUseCase *usecase.TailorUseCase
}

func NewTailorHandler(tailorUseCase *usecase.TailorUseCase) *TailorHandler {
	return &TailorHandler{
		tailorUseCase: tailorUseCase,
	}
}

// ListTailors is the discovery endpoint. All filter parameters are optional
// and malformed values degrade to "filter not applied".
func (h *TailorHandler) ListTailors(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	query := usecase.TailorQuery{
		Specialties: c.QueryParam("specialties"),
		MinRating:   c.QueryParam("minRating"),
		Search:      c.QueryParam("search"),
		PriceRange:  c.QueryParam("priceRange"),
		SortBy:      c.QueryParam("sortBy"),
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	}

	tailors, total, err := h.tailorUseCase.ListTailors(c.Request().Context(), query)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, tailors, total, pagination.Page, pagination.PageSize)
}

func (h *TailorHandler) GetTailor(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Tailor ID is required", nil))
	}

	tailor, err := h.tailorUseCase.GetTailor(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tailor)
}

func (h *TailorHandler) GetMyProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	tailor, err := h.tailorUseCase.GetTailorByUserID(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tailor)
}

type updateTailorProfileRequest struct {
	BusinessName   string             `json:"business_name,omitempty"`
	Description    string             `json:"description,omitempty"`
	AvatarURL      string             `json:"avatar_url,omitempty"`
	Specialties    []string           `json:"specialties,omitempty"`
	Location       *entity.Location   `json:"location,omitempty"`
	PriceRange     *entity.PriceRange `json:"price_range,omitempty"`
	TurnaroundTime string             `json:"turnaround_time,omitempty"`
}

func (h *TailorHandler) UpdateMyProfile(c echo.Context) error {
	var req updateTailorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	tailor, err := h.tailorUseCase.UpdateProfile(c.Request().Context(), userID, usecase.UpdateTailorProfileInput{
		BusinessName:   req.BusinessName,
		Description:    req.Description,
		AvatarURL:      req.AvatarURL,
		Specialties:    req.Specialties,
		Location:       req.Location,
		PriceRange:     req.PriceRange,
		TurnaroundTime: req.TurnaroundTime,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tailor)
}

type portfolioItemRequest struct {
	MediaURL string `json:"media_url" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Category string `json:"category,omitempty"`
	Price    *int   `json:"price,omitempty"`
}

func (h *TailorHandler) AddPortfolioItem(c echo.Context) error {
	var req portfolioItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	tailor, err := h.tailorUseCase.AddPortfolioItem(c.Request().Context(), userID, usecase.PortfolioItemInput{
		MediaURL: req.MediaURL,
		Title:    req.Title,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, tailor)
}

func (h *TailorHandler) RemovePortfolioItem(c echo.Context) error {
	itemID := c.Param("itemId")
	if itemID == "" {
		return response.Error(c, errors.BadRequest("Portfolio item ID is required", nil))
	}

	userID := c.Get("uid").(string)

	tailor, err := h.tailorUseCase.RemovePortfolioItem(c.Request().Context(), userID, itemID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tailor)
}
