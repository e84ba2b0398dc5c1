package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(target string) PaginationParams {
	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	return GetPaginationParams(e.NewContext(req, rec))
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	p := paramsFor("/v1/tailors")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 0, p.Offset)
}

func TestGetPaginationParamsClampsInvalidValues(t *testing.T) {
	for _, target := range []string{
		"/v1/tailors?page=0&pageSize=0",
		"/v1/tailors?page=-3&pageSize=-1",
		"/v1/tailors?page=abc&pageSize=xyz",
	} {
		p := paramsFor(target)
		assert.Equal(t, 1, p.Page, target)
		assert.Equal(t, 20, p.PageSize, target)
	}
}

func TestGetPaginationParamsOffset(t *testing.T) {
	p := paramsFor("/v1/tailors?page=3&pageSize=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 20, p.Offset)
}

func TestPaginateWindows(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	assert.Len(t, Paginate(items, 1, 20), 20)
	assert.Len(t, Paginate(items, 2, 20), 20)
	assert.Len(t, Paginate(items, 3, 20), 5)
	assert.Empty(t, Paginate(items, 4, 20))

	page2 := Paginate(items, 2, 20)
	assert.Equal(t, 20, page2[0])
	assert.Equal(t, 39, page2[len(page2)-1])
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, Paginate([]string{}, 1, 20))
}

func TestHasMoreBoundary(t *testing.T) {
	assert.True(t, HasMore(45, 1, 20))
	assert.True(t, HasMore(45, 2, 20))
	assert.False(t, HasMore(45, 3, 20))
	assert.False(t, HasMore(40, 2, 20)) // exact fit: no extra page
	assert.False(t, HasMore(0, 1, 20))
}
