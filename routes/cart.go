package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "storefront-api/controllers/cart"
	"storefront-api/middleware"
	"storefront-api/services"
)

// SetupCartRoutes registers all "/cart" endpoints. Item removal is by path
// parameter only; the body-based form is deprecated.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, carts *services.CartService) {
	cart := r.Group("/cart")
	cart.Use(middleware.RequireAuth(db))
	{
		cart.GET("", cartControllers.GetCart(carts))
		cart.POST("", cartControllers.AddCartItem(carts))
		cart.DELETE("/:product_id", cartControllers.DeleteCartItem(carts))
		cart.DELETE("", cartControllers.ClearCart(carts))
	}
}
