package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Тип события аудита.
type EventType string

const (
	EventTypeAppointmentCreated EventType = "appointment_created"
	EventTypeAppointmentUpdated EventType = "appointment_updated"
	EventTypeAppointmentDeleted EventType = "appointment_deleted"
	EventTypeCustomerCreated    EventType = "customer_created"
	EventTypeCustomerUpdated    EventType = "customer_updated"
	EventTypeCustomerDeleted    EventType = "customer_deleted"
)

// events — события аудита
type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	EventType EventType `gorm:"type:varchar(64);not null;index"`

	CreatedAt time.Time `gorm:"not null;index"`
	Actor     string    `gorm:"type:varchar(50)"`

	// Без внешних ключей: аудит переживает удаление встречи и клиента.
	AppointmentID *int64 `gorm:"index"`
	CustomerID    *int64 `gorm:"index"`

	Details datatypes.JSON
}

func (e *Event) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
