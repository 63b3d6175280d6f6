package services

import (
	"context"

	"storefront-api/models"
)

// Repository lookups return (nil, nil) when the row does not exist; the
// service layer decides which absences are errors.

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type ProductRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	DecrementStock(ctx context.Context, id uint, qty int) error
}

type CartRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	RemoveItem(ctx context.Context, cartID, productID uint) error
	Clear(ctx context.Context, userID string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (int64, error)
}

// Mailer is the notification collaborator; checkout treats its failures as
// log-only.
type Mailer interface {
	SendOrderConfirmation(to string, order *models.Order) error
}
