package productcontroller

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront-api/models"
)

var sortableColumns = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"price":      "price",
	"name":       "name",
	"stock":      "stock",
}

type searchParams struct {
	Query      string
	CategoryID *uint
	MinPrice   *float64
	MaxPrice   *float64
	Page       int
	Limit      int
	SortColumn string
	SortOrder  string
}

// queryParam returns the first non-empty value among the given aliases, so
// both the documented camelCase names and their snake_case forms work.
func queryParam(c *gin.Context, names ...string) string {
	for _, name := range names {
		if v := c.Query(name); v != "" {
			return v
		}
	}
	return ""
}

func parseSearchParams(c *gin.Context) (searchParams, error) {
	params := searchParams{
		Query:     c.Query("q"),
		SortOrder: strings.ToLower(queryParam(c, "order")),
	}

	params.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if params.Page < 1 {
		params.Page = 1
	}
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}

	column, ok := sortableColumns[queryParam(c, "sortBy", "sort_by")]
	if !ok {
		column = "created_at"
	}
	params.SortColumn = column
	if params.SortOrder != "asc" && params.SortOrder != "desc" {
		params.SortOrder = "desc"
	}

	if v := queryParam(c, "category"); v != "" {
		cid, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return params, fmt.Errorf("invalid category")
		}
		id := uint(cid)
		params.CategoryID = &id
	}
	if v := queryParam(c, "minPrice", "min_price"); v != "" {
		mp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, fmt.Errorf("invalid minPrice")
		}
		params.MinPrice = &mp
	}
	if v := queryParam(c, "maxPrice", "max_price"); v != "" {
		mp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, fmt.Errorf("invalid maxPrice")
		}
		params.MaxPrice = &mp
	}

	return params, nil
}

func searchEnvelope(products []models.Product, total int64, page, limit int) gin.H {
	return gin.H{
		"products":   products,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
	}
}

// GET /products/search?q&category&minPrice&maxPrice&page&limit&sortBy&order
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := parseSearchParams(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		query := db.Model(&models.Product{}).Preload("Category")

		if params.Query != "" {
			query = query.Where("name ILIKE ?", "%"+params.Query+"%")
		}
		if params.CategoryID != nil {
			query = query.Where("category_id = ?", *params.CategoryID)
		}
		if params.MinPrice != nil {
			query = query.Where("price >= ?", *params.MinPrice)
		}
		if params.MaxPrice != nil {
			query = query.Where("price <= ?", *params.MaxPrice)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		err = query.
			Order(fmt.Sprintf("%s %s", params.SortColumn, params.SortOrder)).
			Offset((params.Page - 1) * params.Limit).
			Limit(params.Limit).
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}

		c.JSON(http.StatusOK, searchEnvelope(products, total, params.Page, params.Limit))
	}
}
