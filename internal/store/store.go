// Package store wraps all database access behind small per-aggregate
// interfaces so handlers stay unit-testable against in-memory fakes.
package store

import (
	"context"
	"errors"
	"time"

	"storefront/internal/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Users interface {
	Create(ctx context.Context, u *models.User) error
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id uint) (*models.User, error)
	// IsApproved re-reads the approval flag; found is false when the row is gone.
	IsApproved(ctx context.Context, id uint) (approved bool, found bool, err error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u *models.User) error
	TouchActivity(ctx context.Context, id uint) error
	// Approve flips is_approved for a pending admin. Only role=admin rows are
	// eligible; anything else is ErrNotFound.
	Approve(ctx context.Context, id uint) (*models.User, error)
	// Reject permanently deletes a role=admin row.
	Reject(ctx context.Context, id uint) (*models.User, error)
}

type ProductFilter struct {
	Category string
	Search   string
	Sort     string
	Limit    int
	Offset   int
}

type Products interface {
	List(ctx context.Context, f ProductFilter) ([]models.Product, error)
	ByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id uint) error
}

type CheckoutItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderSummary is the back-office order listing row, joined with the buyer.
type OrderSummary struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	OrderNumber string    `json:"order_number"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
}

type Orders interface {
	// Create inserts the order and its items in one transaction, pricing each
	// line from the stored product price and decrementing stock.
	Create(ctx context.Context, userID uint, items []CheckoutItem, shippingAddress, paymentMethod string) (*models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
	ListAll(ctx context.Context) ([]OrderSummary, error)
}

type Wishlist interface {
	List(ctx context.Context, userID uint) ([]models.Product, error)
	Add(ctx context.Context, userID, productID uint) error
	Remove(ctx context.Context, userID, productID uint) error
}
