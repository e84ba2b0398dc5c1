package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "tailorlink/internal/adapter/repository"
	"tailorlink/internal/domain/entity"
	"tailorlink/internal/usecase"
)

type discoveryEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Data     []entity.TailorProfile `json:"data"`
		Total    int                    `json:"total"`
		Page     int                    `json:"page"`
		PageSize int                    `json:"pageSize"`
		HasMore  bool                   `json:"hasMore"`
	} `json:"data"`
}

func newDiscoveryHandler(t *testing.T, tailors []*entity.TailorProfile) *TailorHandler {
	t.Helper()

	tailorRepo := memrepo.NewMemoryTailorRepository()
	reviewRepo := memrepo.NewMemoryReviewRepository()
	for _, tailor := range tailors {
		require.NoError(t, tailorRepo.Create(context.Background(), tailor))
	}

	return NewTailorHandler(usecase.NewTailorUseCase(tailorRepo, reviewRepo, nil))
}

func listTailors(t *testing.T, h *TailorHandler, target string) (*httptest.ResponseRecorder, discoveryEnvelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListTailors(c))

	var envelope discoveryEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestListTailorsEndpoint(t *testing.T) {
	h := newDiscoveryHandler(t, []*entity.TailorProfile{
		{BusinessName: "Suit Studio", Specialties: []string{"Suits"}, PriceRange: entity.PriceRange{Min: 500, Max: 2000}},
		{BusinessName: "Quick Alterations", Specialties: []string{"Alterations"}, PriceRange: entity.PriceRange{Min: 50, Max: 200}},
	})

	rec, envelope := listTailors(t, h, "/v1/tailors")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, 2, envelope.Data.Total)
	assert.Len(t, envelope.Data.Data, 2)
	assert.False(t, envelope.Data.HasMore)
}

func TestListTailorsEndpointAppliesFilters(t *testing.T) {
	h := newDiscoveryHandler(t, []*entity.TailorProfile{
		{BusinessName: "Suit Studio", Specialties: []string{"Suits"}},
		{BusinessName: "Quick Alterations", Specialties: []string{"Alterations"}},
	})

	_, envelope := listTailors(t, h, "/v1/tailors?specialties=suits")

	assert.Equal(t, 1, envelope.Data.Total)
	require.Len(t, envelope.Data.Data, 1)
	assert.Equal(t, "Suit Studio", envelope.Data.Data[0].BusinessName)
}

func TestListTailorsEndpointIgnoresMalformedFilters(t *testing.T) {
	h := newDiscoveryHandler(t, []*entity.TailorProfile{
		{BusinessName: "Suit Studio"},
		{BusinessName: "Quick Alterations"},
	})

	rec, envelope := listTailors(t, h, "/v1/tailors?minRating=banana&priceRange=cheap&sortBy=whatever")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, envelope.Data.Total)
}

func TestListTailorsEndpointPagination(t *testing.T) {
	var tailors []*entity.TailorProfile
	for i := 0; i < 45; i++ {
		tailors = append(tailors, &entity.TailorProfile{
			BusinessName: fmt.Sprintf("Tailor %02d", i),
		})
	}
	h := newDiscoveryHandler(t, tailors)

	_, envelope := listTailors(t, h, "/v1/tailors?page=2&pageSize=20")
	assert.Equal(t, 45, envelope.Data.Total)
	assert.Len(t, envelope.Data.Data, 20)
	assert.True(t, envelope.Data.HasMore)

	_, envelope = listTailors(t, h, "/v1/tailors?page=3&pageSize=20")
	assert.Len(t, envelope.Data.Data, 5)
	assert.False(t, envelope.Data.HasMore)

	_, envelope = listTailors(t, h, "/v1/tailors?page=4&pageSize=20")
	assert.Empty(t, envelope.Data.Data)
	assert.Equal(t, 45, envelope.Data.Total)
}

func TestGetTailorEndpointNotFound(t *testing.T) {
	h := newDiscoveryHandler(t, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tailors/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/tailors/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.GetTailor(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
