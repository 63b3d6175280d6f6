package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"storefront-api/auth"
	"storefront-api/middleware"
	"storefront-api/services"
)

// SetupAuthRoutes registers all "/auth/*" endpoints. Register and login sit
// behind the rate limiter.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, users *services.AuthService) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimiter(rdb), auth.RegisterHandler(users))
		authGroup.POST("/login", middleware.RateLimiter(rdb), auth.LoginHandler(users))
		authGroup.GET("/me", middleware.RequireAuth(db), auth.MeHandler())
		authGroup.POST("/logout", auth.LogoutHandler())
	}
}
