package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "storefront-api/controllers/product"
	"storefront-api/middleware"
)

// SetupProductRoutes registers the public catalog reads and the admin-gated
// catalog mutations.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/search", productcontroller.SearchProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		admin := products.Group("")
		admin.Use(middleware.RequireAuth(db), middleware.RequireAdmin())
		{
			admin.POST("", productcontroller.CreateProduct(db))
			admin.PUT("/:id", productcontroller.UpdateProduct(db))
			admin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
	}
}
