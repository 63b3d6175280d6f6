package services

import "errors"

var (
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrProductNotFound    = errors.New("product not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidShipping    = errors.New("shipping info is missing required fields")
	ErrUnsupportedPayment = errors.New("unsupported payment method")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
