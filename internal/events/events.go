// Package events публикует события жизненного цикла встреч.
package events

import (
	"context"
	"time"
)

type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
	KindDeleted Kind = "deleted"
)

// AppointmentEvent — тело сообщения. Время — в UTC.
type AppointmentEvent struct {
	EventID       string    `json:"event_id"`
	Kind          Kind      `json:"kind"`
	OccurredAt    time.Time `json:"occurred_at"`
	Actor         string    `json:"actor,omitempty"`
	AppointmentID int64     `json:"appointment_id"`
	CustomerID    int64     `json:"customer_id"`
	UserID        int64     `json:"user_id,omitempty"`
	ContactID     int64     `json:"contact_id,omitempty"`
	Title         string    `json:"title,omitempty"`
	Type          string    `json:"type,omitempty"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
}

type Publisher interface {
	Publish(ctx context.Context, ev AppointmentEvent) error
	Close() error
}

// Nop — публикация отключена.
type Nop struct{}

func (Nop) Publish(context.Context, AppointmentEvent) error { return nil }
func (Nop) Close() error                                   { return nil }
