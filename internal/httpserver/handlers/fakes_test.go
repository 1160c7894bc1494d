package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"storefront/internal/models"
	"storefront/internal/store"
)

// In-memory store implementations shared by the handler tests.

type fakeUsers struct {
	mu        sync.Mutex
	seq       uint
	rows      map[uint]*models.User
	createErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{rows: make(map[uint]*models.User)}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, row := range f.rows {
		if row.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}
	f.seq++
	u.ID = f.seq
	u.CreatedAt = time.Now()
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Email == email {
			cp := *row
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) ByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeUsers) IsApproved(_ context.Context, id uint) (bool, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return false, false, nil
	}
	return row.IsApproved, true, nil
}

func (f *fakeUsers) List(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeUsers) Update(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[u.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

func (f *fakeUsers) TouchActivity(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[id]; ok {
		row.LastActivity = time.Now()
	}
	return nil
}

func (f *fakeUsers) Approve(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Role != models.RoleAdmin {
		return nil, store.ErrNotFound
	}
	row.IsApproved = true
	cp := *row
	return &cp, nil
}

func (f *fakeUsers) Reject(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Role != models.RoleAdmin {
		return nil, store.ErrNotFound
	}
	delete(f.rows, id)
	cp := *row
	return &cp, nil
}

type fakeProducts struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]*models.Product
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{rows: make(map[uint]*models.Product)}
}

func (f *fakeProducts) List(_ context.Context, flt store.ProductFilter) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Product
	for _, row := range f.rows {
		if flt.Category != "" && flt.Category != "all" && row.Category != flt.Category {
			continue
		}
		if flt.Search != "" &&
			!strings.Contains(strings.ToLower(row.Name), strings.ToLower(flt.Search)) &&
			!strings.Contains(strings.ToLower(row.Description), strings.ToLower(flt.Search)) {
			continue
		}
		out = append(out, *row)
	}
	switch flt.Sort {
	case "price-low":
		sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-high":
		sort.Slice(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	if flt.Offset > 0 {
		if flt.Offset >= len(out) {
			return nil, nil
		}
		out = out[flt.Offset:]
	}
	if flt.Limit > 0 && len(out) > flt.Limit {
		out = out[:flt.Limit]
	}
	return out, nil
}

func (f *fakeProducts) ByID(_ context.Context, id uint) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeProducts) Create(_ context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	p.ID = f.seq
	p.CreatedAt = time.Now()
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProducts) Update(_ context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[p.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeOrders struct {
	mu       sync.Mutex
	seq      uint
	products *fakeProducts
	users    *fakeUsers
	rows     []models.Order
}

func newFakeOrders(products *fakeProducts, users *fakeUsers) *fakeOrders {
	return &fakeOrders{products: products, users: users}
}

func (f *fakeOrders) Create(ctx context.Context, userID uint, items []store.CheckoutItem, shippingAddress, paymentMethod string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	order := models.Order{
		ID:              f.seq,
		UserID:          userID,
		OrderNumber:     fmt.Sprintf("ORD-TEST-%d", f.seq),
		Status:          "pending",
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
		CreatedAt:       time.Now(),
	}
	f.products.mu.Lock()
	defer f.products.mu.Unlock()
	for _, it := range items {
		p, ok := f.products.rows[it.ProductID]
		if !ok {
			return nil, store.ErrNotFound
		}
		if p.StockQuantity < it.Quantity {
			return nil, store.ErrInsufficientStock
		}
		p.StockQuantity -= it.Quantity
		order.TotalAmount += p.Price * float64(it.Quantity)
		order.Items = append(order.Items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: p.ID,
			Quantity:  it.Quantity,
			Price:     p.Price,
		})
	}
	f.rows = append(f.rows, order)
	cp := order
	return &cp, nil
}

func (f *fakeOrders) ListByUser(_ context.Context, userID uint) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.rows {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) ListAll(ctx context.Context) ([]store.OrderSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.OrderSummary, 0, len(f.rows))
	for _, o := range f.rows {
		s := store.OrderSummary{
			ID:          o.ID,
			UserID:      o.UserID,
			OrderNumber: o.OrderNumber,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		}
		if u, err := f.users.ByID(ctx, o.UserID); err == nil {
			s.UserName = u.Name
			s.UserEmail = u.Email
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeWishlist struct {
	mu       sync.Mutex
	products *fakeProducts
	rows     map[uint]map[uint]struct{}
}

func newFakeWishlist(products *fakeProducts) *fakeWishlist {
	return &fakeWishlist{products: products, rows: make(map[uint]map[uint]struct{})}
}

func (f *fakeWishlist) List(ctx context.Context, userID uint) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Product
	for pid := range f.rows[userID] {
		if p, err := f.products.ByID(ctx, pid); err == nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeWishlist) Add(_ context.Context, userID, productID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rows[userID] == nil {
		f.rows[userID] = make(map[uint]struct{})
	}
	f.rows[userID][productID] = struct{}{}
	return nil
}

func (f *fakeWishlist) Remove(_ context.Context, userID, productID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[userID][productID]; !ok {
		return store.ErrNotFound
	}
	delete(f.rows[userID], productID)
	return nil
}
