package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/models"
)

type gormProducts struct {
	db *gorm.DB
}

func NewProducts(db *gorm.DB) Products {
	return &gormProducts{db: db}
}

func (s *gormProducts) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Model(&models.Product{})
	if f.Category != "" && f.Category != "all" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		pat := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pat, pat)
	}
	switch f.Sort {
	case "oldest":
		q = q.Order("created_at asc")
	case "price-low":
		q = q.Order("price asc")
	case "price-high":
		q = q.Order("price desc")
	case "name":
		q = q.Order("name asc")
	default:
		q = q.Order("created_at desc")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *gormProducts) ByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *gormProducts) Create(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *gormProducts) Update(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *gormProducts) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
