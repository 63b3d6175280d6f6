package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order lifecycle: pending -> confirmed -> shipped -> delivered,
	// cancelled reachable from any non-terminal state.
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"

	// Cash on delivery is the only supported payment method.
	PaymentMethodCOD = "cod"
)

var ErrUnknownStatus = errors.New("unknown order status")

// ParseOrderStatus maps a request string onto a known status value.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", ErrUnknownStatus
	}
}

// ShippingInfo is embedded into Order; Notes is the only optional field.
type ShippingInfo struct {
	RecipientName string `json:"recipient_name"`
	Street        string `json:"street"`
	District      string `json:"district"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	Notes         string `json:"notes,omitempty"`
}

func (s ShippingInfo) Complete() bool {
	return s.RecipientName != "" && s.Street != "" && s.District != "" &&
		s.City != "" && s.Phone != ""
}

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID        string        `gorm:"not null;index" json:"user_id"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total         float64       `json:"total"`
	Shipping      ShippingInfo  `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_info"`
	PaymentMethod string        `gorm:"type:VARCHAR(20)" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// OrderItem is an immutable snapshot: Price is the unit price at checkout
// and is never re-derived from the live catalog.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"-"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
