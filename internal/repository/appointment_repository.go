package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/scheduling-core/internal/model"
)

// AppointmentFilter — условия выборки встреч. Нулевые значения не ограничивают выборку.
type AppointmentFilter struct {
	CustomerID int64
	UserID     int64
	ContactID  int64
	Type       string
	// Встречи, пересекающиеся с [From, To).
	From time.Time
	To   time.Time
}

type AppointmentRepository interface {
	// Создать встречу; ID назначает БД.
	Create(ctx context.Context, a *model.Appointment) error
	// Обновить изменяемые поля встречи.
	Update(ctx context.Context, a *model.Appointment) error
	GetByID(ctx context.Context, id int64) (*model.Appointment, error)
	Delete(ctx context.Context, id int64) error
	// Удалить все встречи клиента, вернуть количество удалённых.
	DeleteByCustomer(ctx context.Context, customerID int64) (int64, error)
	// Все встречи клиента.
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Appointment, error)
	// Встречи клиента, пересекающиеся с [from, to).
	ListOverlapping(ctx context.Context, customerID int64, from, to time.Time) ([]model.Appointment, error)
	// Встречи пользователя, начинающиеся строго между from и to.
	ListByUserStartingBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.Appointment, error)
	// Список с фильтром и пагинацией.
	List(ctx context.Context, f AppointmentFilter, limit, offset int) ([]model.Appointment, int64, error)
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

// WithTx возвращает репозиторий, работающий внутри транзакции tx.
func (r *GormAppointmentRepository) WithTx(tx *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: tx}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *GormAppointmentRepository) Update(ctx context.Context, a *model.Appointment) error {
	updates := map[string]any{
		"title":       a.Title,
		"description": a.Description,
		"location":    a.Location,
		"type":        a.Type,
		"start_at":    a.StartAt,
		"end_at":      a.EndAt,
		"customer_id": a.CustomerID,
		"user_id":     a.UserID,
		"contact_id":  a.ContactID,
		"updated_by":  a.UpdatedBy,
	}
	res := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("id = ?", a.ID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update appointment %d: %w", a.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id int64) (*model.Appointment, error) {
	var a model.Appointment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAppointmentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormAppointmentRepository) DeleteByCustomer(ctx context.Context, customerID int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Appointment{}, "customer_id = ?", customerID)
	if res.Error != nil {
		return 0, fmt.Errorf("delete appointments of customer %d: %w", customerID, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *GormAppointmentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Appointment, error) {
	var items []model.Appointment
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments of customer %d: %w", customerID, err)
	}
	return items, nil
}

func (r *GormAppointmentRepository) ListOverlapping(ctx context.Context, customerID int64, from, to time.Time) ([]model.Appointment, error) {
	var items []model.Appointment
	// Полуоткрытые интервалы: касание концами пересечением не считается.
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Where("start_at < ? AND end_at > ?", to.UTC(), from.UTC()).
		Order("start_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list overlapping appointments of customer %d: %w", customerID, err)
	}
	return items, nil
}

func (r *GormAppointmentRepository) ListByUserStartingBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.Appointment, error) {
	var items []model.Appointment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("start_at > ? AND start_at < ?", from.UTC(), to.UTC()).
		Order("start_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list upcoming appointments of user %d: %w", userID, err)
	}
	return items, nil
}

func (r *GormAppointmentRepository) List(
	ctx context.Context,
	f AppointmentFilter,
	limit, offset int,
) ([]model.Appointment, int64, error) {
	var (
		items []model.Appointment
		total int64
	)

	q := r.db.WithContext(ctx).Model(&model.Appointment{})
	if f.CustomerID != 0 {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.ContactID != 0 {
		q = q.Where("contact_id = ?", f.ContactID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if !f.From.IsZero() {
		q = q.Where("end_at > ?", f.From.UTC())
	}
	if !f.To.IsZero() {
		q = q.Where("start_at < ?", f.To.UTC())
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("start_at ASC").Order("id ASC").Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}

	return items, total, nil
}
