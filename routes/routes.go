package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"storefront-api/repository"
	"storefront-api/services"
)

// SetupRoutes is the single entry point that wires every route group. All
// collaborators (DB handle, Redis client, mailer) are constructed in main
// and injected here.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, mail services.Mailer) {
	users := repository.NewGormUserRepository(db)
	products := repository.NewGormProductRepository(db)
	carts := repository.NewGormCartRepository(db)
	orders := repository.NewGormOrderRepository(db)

	authService := services.NewAuthService(users)
	cartService := services.NewCartService(carts, products)
	orderService := services.NewOrderService(orders, carts, products, mail)

	SetupAuthRoutes(r, db, rdb, authService)
	SetupProductRoutes(r, db)
	SetupCategoryRoutes(r, db)
	SetupCartRoutes(r, db, cartService)
	SetupOrderRoutes(r, db, orderService)
}
