package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "storefront-api/controllers/order"
	"storefront-api/middleware"
	"storefront-api/services"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, orders *services.OrderService) {
	group := r.Group("/orders")
	group.Use(middleware.RequireAuth(db))
	{
		group.POST("", orderControllers.PlaceOrderHandler(orders))
		group.GET("", orderControllers.ListOrdersHandler(orders))
		group.GET("/:id", orderControllers.GetOrderHandler(orders))
		group.PUT("/:id/status", middleware.RequireAdmin(), orderControllers.UpdateOrderStatusHandler(orders))
	}
}
