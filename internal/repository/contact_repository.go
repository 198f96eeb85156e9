package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Leganyst/scheduling-core/internal/model"
)

type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]model.Contact, error)
}

type GormContactRepository struct {
	db *gorm.DB
}

func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) Create(ctx context.Context, c *model.Contact) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (r *GormContactRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Contact{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check contact %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *GormContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	var items []model.Contact
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return items, nil
}
