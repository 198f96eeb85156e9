package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Leganyst/scheduling-core/internal/events"
	"github.com/Leganyst/scheduling-core/internal/lock"
	"github.com/Leganyst/scheduling-core/internal/model"
	"github.com/Leganyst/scheduling-core/internal/pagination"
	"github.com/Leganyst/scheduling-core/internal/repository"
	"github.com/Leganyst/scheduling-core/internal/scheduling"
	"github.com/Leganyst/scheduling-core/internal/telemetry"
)

// AppointmentInput — данные встречи от клиента API.
// Start/End — настенное время в зоне Zone (nil — локальная зона валидатора).
type AppointmentInput struct {
	CustomerID  int64
	UserID      int64
	ContactID   int64
	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time
	Zone        *time.Location
	Actor       string
}

func (in AppointmentInput) validate() error {
	required := []struct {
		name, value string
	}{
		{"title", in.Title},
		{"description", in.Description},
		{"location", in.Location},
		{"type", in.Type},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}
	if in.Start.IsZero() || in.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if in.UserID <= 0 {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if in.ContactID <= 0 {
		return fmt.Errorf("%w: contact_id is required", ErrInvalidInput)
	}
	return nil
}

func (in AppointmentInput) candidate(exclude *int64) scheduling.Candidate {
	return scheduling.Candidate{
		CustomerID:           in.CustomerID,
		UserID:               in.UserID,
		ContactID:            in.ContactID,
		Title:                strings.TrimSpace(in.Title),
		Description:          strings.TrimSpace(in.Description),
		Location:             strings.TrimSpace(in.Location),
		Type:                 strings.TrimSpace(in.Type),
		StartLocal:           in.Start,
		EndLocal:             in.End,
		Zone:                 in.Zone,
		ExcludeAppointmentID: exclude,
	}
}

// Upcoming — ближайшая встреча и её представление для пользователя.
type Upcoming struct {
	Appointment model.Appointment
	Display     string
}

type AppointmentService struct {
	db           *gorm.DB
	appointments *repository.GormAppointmentRepository
	customers    *repository.GormCustomerRepository
	audit        *repository.GormEventRepository

	validator *scheduling.Validator
	locker    lock.Locker
	publisher events.Publisher
	log       *zap.Logger

	upcomingWindow time.Duration
	now            func() time.Time
}

func NewAppointmentService(d Deps) *AppointmentService {
	d = d.withDefaults()
	return &AppointmentService{
		db:             d.DB,
		appointments:   repository.NewGormAppointmentRepository(d.DB),
		customers:      repository.NewGormCustomerRepository(d.DB),
		audit:          repository.NewGormEventRepository(d.DB),
		validator:      d.Validator,
		locker:         d.Locker,
		publisher:      d.Publisher,
		log:            d.Logger.Named("appointments"),
		upcomingWindow: d.UpcomingWindow,
		now:            d.Now,
	}
}

// Validate — пробная проверка без записи и без блокировок.
// Отказ возвращается как *scheduling.Rejection.
func (s *AppointmentService) Validate(ctx context.Context, in AppointmentInput, exclude *int64) (valid scheduling.ValidAppointment, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "AppointmentService.Validate",
		trace.WithAttributes(attribute.Int64("customer.id", in.CustomerID)))
	defer func() { finishSpan(span, err) }()

	if err := in.validate(); err != nil {
		return scheduling.ValidAppointment{}, err
	}
	return s.check(ctx, s.db, in, exclude, false)
}

func (s *AppointmentService) Create(ctx context.Context, in AppointmentInput) (created *model.Appointment, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "AppointmentService.Create",
		trace.WithAttributes(attribute.Int64("customer.id", in.CustomerID)))
	defer func() { finishSpan(span, err) }()

	if err := in.validate(); err != nil {
		return nil, err
	}

	ctx, unlock, err := holdCustomer(ctx, s.locker, in.CustomerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		valid, err := s.check(ctx, tx, in, nil, true)
		if err != nil {
			return err
		}

		a := &model.Appointment{CreatedBy: in.Actor}
		applyValid(a, valid, in.Actor)
		if err := s.appointments.WithTx(tx).Create(ctx, a); err != nil {
			return writeError(err)
		}
		if _, err := s.audit.WithTx(tx).Record(ctx, model.EventTypeAppointmentCreated, in.Actor, &a.ID, &a.CustomerID, auditDetails(a)); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		s.logFailure("create appointment", in.CustomerID, 0, err)
		return nil, err
	}

	s.log.Info("appointment created",
		zap.Int64("appointment_id", created.ID),
		zap.Int64("customer_id", created.CustomerID),
		zap.Time("start", created.StartAt),
		zap.Duration("duration", scheduling.TimeRange{Start: created.StartAt, End: created.EndAt}.Duration()),
	)
	publishAppointment(ctx, s.publisher, s.log, events.KindCreated, created, in.Actor)
	return created, nil
}

func (s *AppointmentService) Update(ctx context.Context, id int64, in AppointmentInput) (updated *model.Appointment, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "AppointmentService.Update",
		trace.WithAttributes(
			attribute.Int64("appointment.id", id),
			attribute.Int64("customer.id", in.CustomerID),
		))
	defer func() { finishSpan(span, err) }()

	if err := in.validate(); err != nil {
		return nil, err
	}

	ctx, unlock, err := holdCustomer(ctx, s.locker, in.CustomerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.appointments.WithTx(tx)

		before, err := repo.GetByID(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrAppointmentNotFound
			}
			return err
		}

		// Редактируемая встреча не должна конфликтовать сама с собой.
		valid, err := s.check(ctx, tx, in, &id, true)
		if err != nil {
			return err
		}

		a := *before
		applyValid(&a, valid, in.Actor)
		if err := repo.Update(ctx, &a); err != nil {
			return writeError(err)
		}
		if updated, err = repo.GetByID(ctx, id); err != nil {
			return err
		}

		details := map[string]any{
			"before": auditDetails(before),
			"after":  auditDetails(updated),
		}
		_, err = s.audit.WithTx(tx).Record(ctx, model.EventTypeAppointmentUpdated, in.Actor, &id, &updated.CustomerID, details)
		return err
	})
	if err != nil {
		s.logFailure("update appointment", in.CustomerID, id, err)
		return nil, err
	}

	s.log.Info("appointment updated",
		zap.Int64("appointment_id", id),
		zap.Int64("customer_id", updated.CustomerID),
	)
	publishAppointment(ctx, s.publisher, s.log, events.KindUpdated, updated, in.Actor)
	return updated, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id int64, actor string) (err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "AppointmentService.Delete",
		trace.WithAttributes(attribute.Int64("appointment.id", id)))
	defer func() { finishSpan(span, err) }()

	var deleted *model.Appointment
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.appointments.WithTx(tx)

		a, err := repo.GetByID(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrAppointmentNotFound
			}
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		if _, err := s.audit.WithTx(tx).Record(ctx, model.EventTypeAppointmentDeleted, actor, &id, &a.CustomerID, auditDetails(a)); err != nil {
			return err
		}
		deleted = a
		return nil
	})
	if err != nil {
		s.logFailure("delete appointment", 0, id, err)
		return err
	}

	s.log.Info("appointment deleted", zap.Int64("appointment_id", id), zap.Int64("customer_id", deleted.CustomerID))
	publishAppointment(ctx, s.publisher, s.log, events.KindDeleted, deleted, actor)
	return nil
}

func (s *AppointmentService) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AppointmentService) List(
	ctx context.Context,
	f repository.AppointmentFilter,
	req pagination.Request,
) (pagination.Page[model.Appointment], error) {
	if !f.From.IsZero() && !f.To.IsZero() {
		if _, err := scheduling.NewTimeRange(f.From, f.To); err != nil {
			return pagination.Page[model.Appointment]{}, fmt.Errorf("%w: to must be after from", ErrInvalidInput)
		}
	}
	items, total, err := s.appointments.List(ctx, f, req.Limit(), req.Offset())
	if err != nil {
		return pagination.Page[model.Appointment]{}, err
	}
	return pagination.NewPage(items, req, total), nil
}

// Upcoming возвращает встречи пользователя, начинающиеся в пределах окна
// вокруг текущего момента. Display форматируется в зоне loc (nil — бизнес-зона).
func (s *AppointmentService) Upcoming(ctx context.Context, userID int64, loc *time.Location) ([]Upcoming, error) {
	users := repository.NewGormUserRepository(s.db)
	ok, err := users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	if loc == nil {
		loc = s.validator.Calendar().Location
	}

	now := s.now()
	items, err := s.appointments.ListByUserStartingBetween(ctx, userID, now.Add(-s.upcomingWindow), now.Add(s.upcomingWindow))
	if err != nil {
		return nil, err
	}

	out := make([]Upcoming, 0, len(items))
	for _, a := range items {
		tr := scheduling.TimeRange{Start: a.StartAt, End: a.EndAt}
		out = append(out, Upcoming{Appointment: a, Display: scheduling.FormatForUser(tr, loc, a.ID)})
	}
	return out, nil
}

// check прогоняет валидатор и проверяет ссылки на пользователя и контакт.
// В режиме записи (locking) строка клиента блокируется до конца транзакции.
func (s *AppointmentService) check(
	ctx context.Context,
	db *gorm.DB,
	in AppointmentInput,
	exclude *int64,
	locking bool,
) (scheduling.ValidAppointment, error) {
	c := in.candidate(exclude)
	window, _ := s.validator.Normalize(c)

	customers := s.customers.WithTx(db)
	var dir scheduling.Directory = repository.NewCustomerDirectory(customers)
	if locking {
		dir = repository.NewLockingCustomerDirectory(customers)
	}
	src := repository.NewAppointmentSource(s.appointments.WithTx(db)).Within(window)

	valid, err := s.validator.ValidateWith(ctx, c, dir, src)
	if err != nil {
		return scheduling.ValidAppointment{}, err
	}

	if err := checkReferences(ctx, repository.NewGormUserRepository(db), repository.NewGormContactRepository(db), in.UserID, in.ContactID); err != nil {
		return scheduling.ValidAppointment{}, err
	}
	return valid, nil
}

func (s *AppointmentService) logFailure(op string, customerID, appointmentID int64, err error) {
	fields := []zap.Field{
		zap.Int64("customer_id", customerID),
		zap.Int64("appointment_id", appointmentID),
	}
	if r, ok := scheduling.AsRejection(err); ok {
		s.log.Info(op+" rejected", append(fields,
			zap.String("reason", string(r.Reason)),
			zap.Int64("conflict_id", r.ConflictID),
		)...)
		return
	}
	s.log.Error(op+" failed", append(fields, zap.Error(err))...)
}

// writeError переводит нарушение внешнего ключа (ссылку удалили параллельно,
// в обход блокировки клиента) в not-found той сущности, на которую ссылались.
func writeError(err error) error {
	if !repository.IsForeignKeyViolation(err) {
		return err
	}
	switch c := repository.ConstraintName(err); {
	case strings.Contains(c, "contact"):
		return ErrContactNotFound
	case strings.Contains(c, "user"):
		return ErrUserNotFound
	default:
		return ErrCustomerNotFound
	}
}

func checkReferences(ctx context.Context, users repository.UserRepository, contacts repository.ContactRepository, userID, contactID int64) error {
	ok, err := users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	ok, err = contacts.Exists(ctx, contactID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrContactNotFound
	}
	return nil
}

func applyValid(a *model.Appointment, v scheduling.ValidAppointment, actor string) {
	a.Title = v.Title
	a.Description = v.Description
	a.Location = v.Location
	a.Type = v.Type
	a.StartAt = v.Start
	a.EndAt = v.End
	a.CustomerID = v.CustomerID
	a.UserID = v.UserID
	a.ContactID = v.ContactID
	a.UpdatedBy = actor
}

func auditDetails(a *model.Appointment) map[string]any {
	return map[string]any{
		"title":       a.Title,
		"type":        a.Type,
		"customer_id": a.CustomerID,
		"user_id":     a.UserID,
		"contact_id":  a.ContactID,
		"start":       a.StartAt.UTC().Format(time.RFC3339),
		"end":         a.EndAt.UTC().Format(time.RFC3339),
	}
}

func rejectionAttr(r *scheduling.Rejection) attribute.KeyValue {
	return attribute.String("scheduling.rejection", string(r.Reason))
}
