package services

import (
	"context"
	"time"

	"storefront-api/models"
)

type CartService struct {
	carts    CartRepository
	products ProductRepository
}

func NewCartService(carts CartRepository, products ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// AddItem merges the quantity into an existing line for the same product, or
// appends a new line. The merged quantity must fit the product's stock.
func (s *CartService) AddItem(ctx context.Context, userID string, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID}
	}

	merged := quantity
	idx := -1
	for i, item := range cart.Items {
		if item.ProductID == productID {
			merged += item.Quantity
			idx = i
			break
		}
	}
	if merged > product.Stock {
		return nil, ErrInsufficientStock
	}

	if idx >= 0 {
		cart.Items[idx].Quantity = merged
		cart.Items[idx].AddedAt = time.Now()
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem is idempotent: removing a product that is not in the cart
// succeeds and returns the cart unchanged.
func (s *CartService) RemoveItem(ctx context.Context, userID string, productID uint) (*models.Cart, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}

	kept := cart.Items[:0]
	removed := false
	for _, item := range cart.Items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return cart, nil
	}

	if err := s.carts.RemoveItem(ctx, cart.CartID, productID); err != nil {
		return nil, err
	}
	cart.Items = kept
	return cart, nil
}

// GetCart never fails on absence: a user without a cart gets an empty one.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}
