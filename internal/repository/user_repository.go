package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Leganyst/scheduling-core/internal/model"
)

type UserRepository interface {
	FindByName(ctx context.Context, name string) (*model.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Создать пользователя или вернуть существующего с таким именем.
	Upsert(ctx context.Context, name string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var u model.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check user %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *GormUserRepository) Upsert(ctx context.Context, name string) (*model.User, error) {
	u, err := r.FindByName(ctx, name)
	if err == nil {
		return u, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	u = &model.User{Name: strings.TrimSpace(name)}
	if u.Name == "" {
		return nil, fmt.Errorf("upsert user: empty name")
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// Параллельная вставка того же имени.
		if IsUniqueViolation(err) {
			return r.FindByName(ctx, name)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *GormUserRepository) List(ctx context.Context) ([]model.User, error) {
	var items []model.User
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return items, nil
}
