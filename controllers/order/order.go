package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-api/middleware"
	"storefront-api/models"
	"storefront-api/services"
)

type PlaceOrderRequest struct {
	ShippingInfo  models.ShippingInfo `json:"shipping_info" binding:"required"`
	PaymentMethod string              `json:"payment_method" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /orders
func PlaceOrderHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "shipping_info and payment_method are required"})
			return
		}

		order, err := orders.PlaceOrder(c.Request.Context(), user, req.ShippingInfo, req.PaymentMethod)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyCart),
				errors.Is(err, services.ErrInvalidShipping),
				errors.Is(err, services.ErrUnsupportedPayment),
				errors.Is(err, services.ErrInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, services.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func ListOrdersHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		list, err := orders.List(c.Request.Context(), user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /orders/:id
func GetOrderHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		order, err := orders.Get(c.Request.Context(), uint(orderID))
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		// Owners and admins only.
		if order.UserID != user.ID && !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:id/status  (admin)
func UpdateOrderStatusHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		status, err := orders.UpdateStatus(c.Request.Context(), uint(orderID), req.Status)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUnknownStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			case errors.Is(err, services.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "status": status})
	}
}
