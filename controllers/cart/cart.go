package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-api/middleware"
	"storefront-api/services"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

func statusForCartError(err error) (int, bool) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		return http.StatusBadRequest, true
	case errors.Is(err, services.ErrProductNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, services.ErrInsufficientStock):
		return http.StatusBadRequest, true
	default:
		return http.StatusInternalServerError, false
	}
}

// GET /cart
func GetCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		cart, err := carts.GetCart(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart
func AddCartItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product or quantity"})
			return
		}

		cart, err := carts.AddItem(c.Request.Context(), user.ID, input.ProductID, input.Quantity)
		if err != nil {
			if status, known := statusForCartError(err); known {
				c.JSON(status, gin.H{"error": err.Error()})
			} else {
				c.JSON(status, gin.H{"error": "Failed to add to cart"})
			}
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		cart, err := carts.RemoveItem(c.Request.Context(), user.ID, uint(productID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart
func ClearCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if err := carts.Clear(c.Request.Context(), user.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
