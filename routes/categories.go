package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "storefront-api/controllers/product"
	"storefront-api/middleware"
)

func SetupCategoryRoutes(r *gin.Engine, db *gorm.DB) {
	categories := r.Group("/categories")
	{
		categories.GET("", productcontroller.GetAllCategories(db))
		categories.POST("", middleware.RequireAuth(db), middleware.RequireAdmin(), productcontroller.CreateCategory(db))
	}
}
