package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront-api/models"
)

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) GetByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save persists the cart and its lines. The preloaded Product on each line
// is read-only and must not be written back to the catalog.
func (r *GormCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Omit("Items.Product").
		Save(cart).Error
}

func (r *GormCartRepository) RemoveItem(ctx context.Context, cartID, productID uint) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{}).Error
}

func (r *GormCartRepository) Clear(ctx context.Context, userID string) error {
	var cart models.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cart.CartID).
		Delete(&models.CartItem{}).Error
}
