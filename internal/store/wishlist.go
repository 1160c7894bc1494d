package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/models"
)

type gormWishlist struct {
	db *gorm.DB
}

func NewWishlist(db *gorm.DB) Wishlist {
	return &gormWishlist{db: db}
}

func (s *gormWishlist) List(ctx context.Context, userID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Table("products").
		Joins("JOIN wishlist ON wishlist.product_id = products.id").
		Where("wishlist.user_id = ?", userID).
		Order("wishlist.created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *gormWishlist) Add(ctx context.Context, userID, productID uint) error {
	// Re-adding the same product is a no-op.
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.WishlistItem{UserID: userID, ProductID: productID}).Error
}

func (s *gormWishlist) Remove(ctx context.Context, userID, productID uint) error {
	res := s.db.WithContext(ctx).
		Delete(&models.WishlistItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
