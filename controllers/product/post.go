package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront-api/models"
)

// CreateProduct creates a new product with an optional image upload.
// POST /products  (admin, multipart)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		categoryStr := c.PostForm("category")
		stockStr := c.PostForm("stock")
		if name == "" || priceStr == "" || categoryStr == "" || stockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}
		categoryID, err := strconv.ParseUint(categoryStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		var category models.Category
		if err := db.First(&category, uint(categoryID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveProductImage(c, file)
			if err != nil {
				if errors.Is(err, errBadImage) {
					c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				}
				return
			}
		}

		product := models.Product{
			Name:        name,
			Price:       price,
			Description: c.PostForm("description"),
			Brand:       c.PostForm("brand"),
			Stock:       stock,
			CategoryID:  category.ID,
			Image:       imageURL,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		product.Category = category

		c.JSON(http.StatusCreated, product)
	}
}
