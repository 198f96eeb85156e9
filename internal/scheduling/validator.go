package scheduling

import (
	"context"
	"fmt"
	"time"
)

// Candidate — предлагаемая встреча, ещё не сохранённая.
type Candidate struct {
	CustomerID  int64
	UserID      int64
	ContactID   int64
	Title       string
	Description string
	Location    string
	Type        string

	// Настенное время, как его ввёл пользователь. Используются только дата и часы,
	// интерпретируются они в Zone (nil — локальная зона валидатора).
	StartLocal time.Time
	EndLocal   time.Time
	Zone       *time.Location

	// При обновлении — ID редактируемой встречи, чтобы она не конфликтовала сама с собой.
	ExcludeAppointmentID *int64
}

// Appointment — уже сохранённая встреча, с которой сравнивается кандидат.
type Appointment struct {
	ID         int64
	CustomerID int64
	Start      time.Time
	End        time.Time
}

// ValidAppointment — принятый кандидат с нормализованными границами.
type ValidAppointment struct {
	CustomerID  int64
	UserID      int64
	ContactID   int64
	Title       string
	Description string
	Location    string
	Type        string

	// Start/End — в UTC, для хранения.
	Start time.Time
	End   time.Time
	// ReferenceStart/ReferenceEnd — те же моменты в бизнес-зоне календаря.
	ReferenceStart time.Time
	ReferenceEnd   time.Time
}

// Range возвращает интервал встречи в UTC.
func (va ValidAppointment) Range() TimeRange {
	return TimeRange{Start: va.Start, End: va.End}
}

// CustomerExistsFunc — проверка существования клиента.
type CustomerExistsFunc func(customerID int64) bool

// Directory — справочник клиентов.
type Directory interface {
	CustomerExists(ctx context.Context, customerID int64) (bool, error)
}

// AppointmentSource отдаёт актуальные встречи клиента для проверки пересечений.
type AppointmentSource interface {
	ListForCustomer(ctx context.Context, customerID int64) ([]Appointment, error)
}

// Validator решает, можно ли сохранить кандидата. Состояние неизменяемо,
// поэтому один экземпляр безопасно использовать из нескольких горутин.
type Validator struct {
	calendar  Calendar
	localZone *time.Location
}

type Option func(*Validator)

// WithLocalZone задаёт зону, в которой интерпретируется ввод без явной зоны.
func WithLocalZone(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.localZone = loc
		}
	}
}

func NewValidator(cal Calendar, opts ...Option) *Validator {
	if cal.Location == nil {
		cal.Location = time.UTC
	}
	v := &Validator{calendar: cal, localZone: time.Local}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Calendar() Calendar { return v.calendar }

// Validate проверяет кандидата против снимка existing. Проверки идут по порядку,
// возвращается первая сработавшая причина:
//  1. клиент существует;
//  2. начало строго раньше конца;
//  3. оба конца — будни в бизнес-зоне;
//  4. оба конца — в рабочих часах бизнес-зоны;
//  5. нет пересечений с другими встречами того же клиента.
//
// Отказ возвращается как *Rejection.
func (v *Validator) Validate(c Candidate, existing []Appointment, customerExists CustomerExistsFunc) (ValidAppointment, error) {
	if customerExists == nil || !customerExists(c.CustomerID) {
		return ValidAppointment{}, v.reject(ReasonCustomerNotFound)
	}
	valid, err := v.checkCalendar(c)
	if err != nil {
		return ValidAppointment{}, err
	}
	if err := v.checkOverlap(valid, existing, c.ExcludeAppointmentID); err != nil {
		return ValidAppointment{}, err
	}
	return valid, nil
}

// ValidateWith — то же, что Validate, но данные берутся у коллабораторов.
// Клиент проверяется один раз; встречи запрашиваются только если кандидат прошёл
// календарные проверки. Ошибки коллабораторов оборачиваются в ErrValidationUnavailable.
func (v *Validator) ValidateWith(ctx context.Context, c Candidate, dir Directory, src AppointmentSource) (ValidAppointment, error) {
	exists, err := dir.CustomerExists(ctx, c.CustomerID)
	if err != nil {
		return ValidAppointment{}, fmt.Errorf("%w: customer lookup: %w", ErrValidationUnavailable, err)
	}
	if !exists {
		return ValidAppointment{}, v.reject(ReasonCustomerNotFound)
	}

	valid, err := v.checkCalendar(c)
	if err != nil {
		return ValidAppointment{}, err
	}

	existing, err := src.ListForCustomer(ctx, c.CustomerID)
	if err != nil {
		return ValidAppointment{}, fmt.Errorf("%w: list appointments: %w", ErrValidationUnavailable, err)
	}
	if err := v.checkOverlap(valid, existing, c.ExcludeAppointmentID); err != nil {
		return ValidAppointment{}, err
	}
	return valid, nil
}

// Normalize переводит настенное время кандидата в UTC и в бизнес-зону.
// Два преобразования независимы и опираются на один и тот же момент.
func (v *Validator) Normalize(c Candidate) (utc, reference TimeRange) {
	zone := c.Zone
	if zone == nil {
		zone = v.localZone
	}
	start := AtZone(c.StartLocal, zone)
	end := AtZone(c.EndLocal, zone)

	utc = TimeRange{Start: start, End: end}.In(time.UTC)
	return utc, utc.In(v.calendar.Location)
}

func (v *Validator) checkCalendar(c Candidate) (ValidAppointment, error) {
	// Порядок сравнивается по введённому настенному времени, до перевода зон.
	if !AtZone(c.StartLocal, time.UTC).Before(AtZone(c.EndLocal, time.UTC)) {
		return ValidAppointment{}, v.reject(ReasonEndNotAfterStart)
	}

	utc, ref := v.Normalize(c)
	// Настенное время в «дыре» перевода часов сдвигается вперёд и может оказаться позже конца.
	if !utc.Start.Before(utc.End) {
		return ValidAppointment{}, v.reject(ReasonEndNotAfterStart)
	}

	if !v.calendar.IsWorkday(ref.Start) || !v.calendar.IsWorkday(ref.End) {
		return ValidAppointment{}, v.reject(ReasonOutsideBusinessDays)
	}
	if !v.calendar.WithinHours(ref.Start) || !v.calendar.WithinHours(ref.End) {
		return ValidAppointment{}, v.reject(ReasonOutsideBusinessHours)
	}

	return ValidAppointment{
		CustomerID:     c.CustomerID,
		UserID:         c.UserID,
		ContactID:      c.ContactID,
		Title:          c.Title,
		Description:    c.Description,
		Location:       c.Location,
		Type:           c.Type,
		Start:          utc.Start,
		End:            utc.End,
		ReferenceStart: ref.Start,
		ReferenceEnd:   ref.End,
	}, nil
}

func (v *Validator) checkOverlap(valid ValidAppointment, existing []Appointment, exclude *int64) error {
	conflict, found := FirstConflict(valid.Range(), valid.CustomerID, existing, exclude)
	if !found {
		return nil
	}
	r := v.reject(ReasonOverlapsExisting)
	r.ConflictID = conflict.ID
	return r
}

func (v *Validator) reject(reason Reason) *Rejection {
	r := &Rejection{Reason: reason}
	switch reason {
	case ReasonCustomerNotFound:
		r.Message = "The customer ID does not exist."
	case ReasonEndNotAfterStart:
		r.Message = "The appointment's start time must be before its end time."
	case ReasonOutsideBusinessDays:
		r.Message = "The day is outside of business days: Monday - Friday."
	case ReasonOutsideBusinessHours:
		r.Message = v.calendar.hoursMessage()
	case ReasonOverlapsExisting:
		r.Message = "The appointment's time overlaps with an existing appointment."
	}
	return r
}
