package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/scheduling-core/internal/model"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	// Взять строку клиента с блокировкой FOR UPDATE (внутри транзакции).
	LockByID(ctx context.Context, id int64) (*model.Customer, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	// Список клиентов; name — подстрока имени без учёта регистра.
	List(ctx context.Context, name string, limit, offset int) ([]model.Customer, int64, error)
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) WithTx(tx *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: tx}
}

func (r *GormCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	updates := map[string]any{
		"name":        c.Name,
		"address":     c.Address,
		"postal_code": c.PostalCode,
		"phone":       c.Phone,
		"division":    c.Division,
		"country":     c.Country,
		"updated_by":  c.UpdatedBy,
	}
	res := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", c.ID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update customer %d: %w", c.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) LockByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	// На sqlite FOR UPDATE не поддерживается и диалект его опускает.
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check customer %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete customer %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCustomerRepository) List(ctx context.Context, name string, limit, offset int) ([]model.Customer, int64, error) {
	var (
		items []model.Customer
		total int64
	)

	q := r.db.WithContext(ctx).Model(&model.Customer{})
	if name = strings.TrimSpace(name); name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}

	return items, total, nil
}
