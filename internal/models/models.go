package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	Phone        string    `gorm:"size:20" json:"phone"`
	Age          int       `json:"age"`
	Gender       string    `gorm:"size:10" json:"gender"`
	Role         string    `gorm:"size:20;not null;default:customer" json:"role"`
	IsApproved   bool      `gorm:"not null;default:false" json:"is_approved"`
	AddressLine1 string    `gorm:"size:255" json:"address_line1,omitempty"`
	AddressLine2 string    `gorm:"size:255" json:"address_line2,omitempty"`
	City         string    `gorm:"size:100" json:"city,omitempty"`
	State        string    `gorm:"size:100" json:"state,omitempty"`
	ZipCode      string    `gorm:"size:20" json:"zip_code,omitempty"`
	Country      string    `gorm:"size:100" json:"country,omitempty"`
	LastActivity time.Time `json:"last_activity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Product struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category      string    `gorm:"size:100;index" json:"category"`
	Subcategory   string    `gorm:"size:100" json:"subcategory"`
	ImageURL      string    `gorm:"size:500" json:"image_url"`
	StockQuantity int       `gorm:"not null;default:0" json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint        `gorm:"index;not null" json:"user_id"`
	OrderNumber     string      `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	TotalAmount     float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status          string      `gorm:"size:50;not null;default:pending" json:"status"`
	PaymentMethod   string      `gorm:"size:50" json:"payment_method"`
	ShippingAddress string      `gorm:"type:text" json:"shipping_address"`
	Items           []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (WishlistItem) TableName() string { return "wishlist" }
