package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/scheduling-core/internal/model"
)

type EventRepository interface {
	// Записать событие аудита; details сериализуется в JSON.
	Record(ctx context.Context, eventType model.EventType, actor string, appointmentID, customerID *int64, details any) (*model.Event, error)
	ListByAppointment(ctx context.Context, appointmentID int64) ([]model.Event, error)
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) WithTx(tx *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: tx}
}

func (r *GormEventRepository) Record(
	ctx context.Context,
	eventType model.EventType,
	actor string,
	appointmentID, customerID *int64,
	details any,
) (*model.Event, error) {
	ev := &model.Event{
		EventType:     eventType,
		Actor:         actor,
		AppointmentID: appointmentID,
		CustomerID:    customerID,
	}
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return nil, fmt.Errorf("marshal event details: %w", err)
		}
		ev.Details = datatypes.JSON(raw)
	}
	if err := r.db.WithContext(ctx).Create(ev).Error; err != nil {
		return nil, fmt.Errorf("record event %s: %w", eventType, err)
	}
	return ev, nil
}

func (r *GormEventRepository) ListByAppointment(ctx context.Context, appointmentID int64) ([]model.Event, error) {
	var items []model.Event
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list events of appointment %d: %w", appointmentID, err)
	}
	return items, nil
}
