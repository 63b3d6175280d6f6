package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront-api/models"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// statusForCategoryError distinguishes a name collision, surfaced by the
// unique index on name, from genuine persistence failures.
func statusForCategoryError(err error) (int, string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return http.StatusConflict, "Category already exists"
	}
	return http.StatusInternalServerError, "Failed to create category"
}

// POST /categories  (admin)
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		category := models.Category{
			Name:        strings.TrimSpace(input.Name),
			Description: input.Description,
		}
		if err := db.Create(&category).Error; err != nil {
			status, msg := statusForCategoryError(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}
