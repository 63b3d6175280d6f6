package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront-api/models"
)

type OrderService struct {
	orders   OrderRepository
	carts    CartRepository
	products ProductRepository
	mailer   Mailer
}

func NewOrderService(orders OrderRepository, carts CartRepository, products ProductRepository, mailer Mailer) *OrderService {
	return &OrderService{orders: orders, carts: carts, products: products, mailer: mailer}
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder converts the user's cart into an order. Item prices are read
// from the live catalog exactly once, here; the stored snapshot never changes
// afterwards. The confirmation email is attempted last and its failure is
// logged, not returned.
func (s *OrderService) PlaceOrder(ctx context.Context, user *models.User, shipping models.ShippingInfo, paymentMethod string) (*models.Order, error) {
	cart, err := s.carts.GetByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if !shipping.Complete() {
		return nil, ErrInvalidShipping
	}
	if strings.ToLower(paymentMethod) != models.PaymentMethodCOD {
		return nil, ErrUnsupportedPayment
	}

	var total float64
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if product.Stock < item.Quantity {
			return nil, ErrInsufficientStock
		}
		total += product.Price * float64(item.Quantity)
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    item.Quantity,
		})
	}

	order := &models.Order{
		OrderRef:      newOrderRef(),
		UserID:        user.ID,
		Items:         items,
		Total:         total,
		Shipping:      shipping,
		PaymentMethod: models.PaymentMethodCOD,
		PaymentStatus: models.PaymentStatusPending,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	// Stock bookkeeping is best-effort: the order is already persisted and a
	// lost decrement only means an overly optimistic stock count.
	for _, item := range order.Items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("order %s: failed to decrement stock for product %d: %v", order.OrderRef, item.ProductID, err)
		}
	}

	if err := s.carts.Clear(ctx, user.ID); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(user.Email, order); err != nil {
			log.Printf("order %s: confirmation email failed: %v", order.OrderRef, err)
		}
	}

	return order, nil
}

// UpdateStatus validates the value only; any known status may overwrite the
// current one.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status string) (models.OrderStatus, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return "", err
	}
	affected, err := s.orders.UpdateStatus(ctx, orderID, parsed)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", ErrOrderNotFound
	}
	return parsed, nil
}

func (s *OrderService) Get(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List scopes by role: admins see every order, everyone else only their own.
func (s *OrderService) List(ctx context.Context, user *models.User) ([]models.Order, error) {
	if user.IsAdmin() {
		return s.orders.FindAll(ctx)
	}
	return s.orders.FindByUser(ctx, user.ID)
}
