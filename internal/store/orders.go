package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/models"
)

type gormOrders struct {
	db *gorm.DB
}

func NewOrders(db *gorm.DB) Orders {
	return &gormOrders{db: db}
}

func (s *gormOrders) Create(ctx context.Context, userID uint, items []CheckoutItem, shippingAddress, paymentMethod string) (*models.Order, error) {
	order := &models.Order{
		UserID:          userID,
		OrderNumber:     newOrderNumber(),
		Status:          "pending",
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
	}
	// Lock product rows in a fixed order so concurrent checkouts with
	// overlapping products cannot deadlock each other.
	sortCheckoutItems(items)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total float64
		for _, it := range items {
			var p models.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&p, "id = ?", it.ProductID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
			if p.StockQuantity < it.Quantity {
				return ErrInsufficientStock
			}
			if err := tx.Model(&models.Product{}).Where("id = ?", p.ID).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", it.Quantity)).Error; err != nil {
				return err
			}
			total += p.Price * float64(it.Quantity)
			order.Items = append(order.Items, models.OrderItem{
				ProductID: p.ID,
				Quantity:  it.Quantity,
				Price:     p.Price,
			})
		}
		order.TotalAmount = total
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *gormOrders) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormOrders) ListAll(ctx context.Context) ([]OrderSummary, error) {
	var out []OrderSummary
	err := s.db.WithContext(ctx).Table("orders").
		Select("orders.id, orders.user_id, orders.order_number, orders.total_amount, orders.status, orders.created_at, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = orders.user_id").
		Order("orders.created_at desc").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func sortCheckoutItems(items []CheckoutItem) {
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
}

// newOrderNumber yields e.g. ORD-20260831-7F3A2B1C.
func newOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
