package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"storefront/internal/models"
)

type gormUsers struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) Users {
	return &gormUsers{db: db}
}

func (s *gormUsers) Create(ctx context.Context, u *models.User) error {
	err := s.db.WithContext(ctx).Create(u).Error
	if err != nil {
		// 23505 is the postgres unique-violation SQLSTATE; the email column
		// carries the only unique index on users.
		if strings.Contains(err.Error(), "23505") || errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *gormUsers) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *gormUsers) ByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *gormUsers) IsApproved(ctx context.Context, id uint) (bool, bool, error) {
	var u models.User
	err := s.db.WithContext(ctx).Select("id", "is_approved").First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return u.IsApproved, true, nil
}

func (s *gormUsers) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormUsers) Update(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Save(u).Error
}

func (s *gormUsers) TouchActivity(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("last_activity", time.Now()).Error
}

func (s *gormUsers) Approve(ctx context.Context, id uint) (*models.User, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND role = ?", id, models.RoleAdmin).
		Update("is_approved", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.ByID(ctx, id)
}

func (s *gormUsers) Reject(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role != models.RoleAdmin {
		return nil, ErrNotFound
	}
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ? AND role = ?", id, models.RoleAdmin)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return u, nil
}
