package productcontroller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"storefront-api/models"
)

func searchContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/products/search?"+rawQuery, nil)
	return c
}

func TestParseSearchParams_CamelCaseNames(t *testing.T) {
	c := searchContext(t, "q=mouse&category=3&minPrice=10.5&maxPrice=99&sortBy=price&order=asc&page=2&limit=5")

	params, err := parseSearchParams(c)

	assert.NoError(t, err)
	assert.Equal(t, "mouse", params.Query)
	assert.Equal(t, uint(3), *params.CategoryID)
	assert.Equal(t, 10.5, *params.MinPrice)
	assert.Equal(t, 99.0, *params.MaxPrice)
	assert.Equal(t, "price", params.SortColumn)
	assert.Equal(t, "asc", params.SortOrder)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 5, params.Limit)
}

func TestParseSearchParams_SnakeCaseNames(t *testing.T) {
	c := searchContext(t, "min_price=1&max_price=2&sort_by=name")

	params, err := parseSearchParams(c)

	assert.NoError(t, err)
	assert.Equal(t, 1.0, *params.MinPrice)
	assert.Equal(t, 2.0, *params.MaxPrice)
	assert.Equal(t, "name", params.SortColumn)
}

func TestParseSearchParams_Defaults(t *testing.T) {
	c := searchContext(t, "")

	params, err := parseSearchParams(c)

	assert.NoError(t, err)
	assert.Empty(t, params.Query)
	assert.Nil(t, params.CategoryID)
	assert.Nil(t, params.MinPrice)
	assert.Nil(t, params.MaxPrice)
	assert.Equal(t, "created_at", params.SortColumn)
	assert.Equal(t, "desc", params.SortOrder)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
}

func TestParseSearchParams_BadValues(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
	}{
		{"non-numeric category", "category=shoes"},
		{"non-numeric minPrice", "minPrice=cheap"},
		{"non-numeric maxPrice", "maxPrice=expensive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSearchParams(searchContext(t, tt.rawQuery))
			assert.Error(t, err)
		})
	}
}

func TestParseSearchParams_UnknownSortFallsBack(t *testing.T) {
	c := searchContext(t, "sortBy=password&order=sideways")

	params, err := parseSearchParams(c)

	assert.NoError(t, err)
	assert.Equal(t, "created_at", params.SortColumn)
	assert.Equal(t, "desc", params.SortOrder)
}

func TestSearchEnvelope(t *testing.T) {
	products := []models.Product{{ID: 1, Name: "Mouse"}}

	envelope := searchEnvelope(products, 23, 2, 10)

	assert.Equal(t, products, envelope["products"])
	assert.Equal(t, int64(23), envelope["total"])
	assert.Equal(t, 2, envelope["page"])
	assert.Equal(t, 10, envelope["limit"])
	assert.Equal(t, 3, envelope["totalPages"])
}

func TestSearchEnvelope_EmptyResult(t *testing.T) {
	envelope := searchEnvelope(nil, 0, 1, 10)

	assert.Equal(t, int64(0), envelope["total"])
	assert.Equal(t, 0, envelope["totalPages"])
}
