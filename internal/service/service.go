package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Leganyst/scheduling-core/internal/events"
	"github.com/Leganyst/scheduling-core/internal/lock"
	"github.com/Leganyst/scheduling-core/internal/model"
	"github.com/Leganyst/scheduling-core/internal/scheduling"
)

// Deps — общие зависимости сервисов.
type Deps struct {
	DB        *gorm.DB
	Validator *scheduling.Validator
	// Блокировка по клиенту; по умолчанию in-process.
	Locker lock.Locker
	// По умолчанию события не публикуются.
	Publisher events.Publisher
	Logger    *zap.Logger
	// Окно «ближайших» встреч в обе стороны от текущего момента.
	UpcomingWindow time.Duration
	Now            func() time.Time
}

// Общая для всех сервисов процесса, если Locker не задан явно.
var defaultLocker = lock.NewLocal()

func (d Deps) withDefaults() Deps {
	if d.Locker == nil {
		d.Locker = defaultLocker
	}
	if d.Publisher == nil {
		d.Publisher = events.Nop{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.UpcomingWindow <= 0 {
		d.UpcomingWindow = 15 * time.Minute
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// holdCustomer берёт блокировку клиента. Возвращённый контекст ограничен TTL
// блокировки; сбой или отмена ожидания остаются в цепочке ошибки.
func holdCustomer(ctx context.Context, l lock.Locker, customerID int64) (context.Context, func(), error) {
	held, unlock, err := lock.Hold(ctx, l, lock.CustomerKey(customerID))
	if err != nil {
		return ctx, nil, fmt.Errorf("%w: lock customer %d: %w", scheduling.ErrValidationUnavailable, customerID, err)
	}
	return held, unlock, nil
}

// publishAppointment отправляет событие после коммита. Ошибка публикации
// не откатывает уже сохранённые данные, поэтому только логируется.
// Отмена запроса или истечение блокировки публикацию не прерывают.
func publishAppointment(ctx context.Context, p events.Publisher, log *zap.Logger, kind events.Kind, a *model.Appointment, actor string) {
	ctx = context.WithoutCancel(ctx)
	ev := events.AppointmentEvent{
		Kind:          kind,
		Actor:         actor,
		AppointmentID: a.ID,
		CustomerID:    a.CustomerID,
		UserID:        a.UserID,
		ContactID:     a.ContactID,
		Title:         a.Title,
		Type:          a.Type,
		Start:         a.StartAt.UTC(),
		End:           a.EndAt.UTC(),
	}
	if err := p.Publish(ctx, ev); err != nil {
		log.Warn("publish appointment event failed",
			zap.String("kind", string(kind)),
			zap.Int64("appointment_id", a.ID),
			zap.Error(err),
		)
	}
}

// finishSpan помечает спан ошибкой; отказы валидации ошибкой не считаются.
func finishSpan(span trace.Span, err error) {
	defer span.End()
	if err == nil {
		return
	}
	if r, ok := scheduling.AsRejection(err); ok {
		span.SetAttributes(rejectionAttr(r))
		return
	}
	var se Error
	if errors.As(err, &se) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
