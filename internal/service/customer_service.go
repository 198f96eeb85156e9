package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Leganyst/scheduling-core/internal/events"
	"github.com/Leganyst/scheduling-core/internal/lock"
	"github.com/Leganyst/scheduling-core/internal/model"
	"github.com/Leganyst/scheduling-core/internal/pagination"
	"github.com/Leganyst/scheduling-core/internal/repository"
	"github.com/Leganyst/scheduling-core/internal/telemetry"
)

type CustomerInput struct {
	Name       string
	Address    string
	PostalCode string
	Phone      string
	Division   string
	Country    string
	Actor      string
}

func (in CustomerInput) apply(c *model.Customer) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Address = strings.TrimSpace(in.Address)
	c.PostalCode = strings.TrimSpace(in.PostalCode)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Division = strings.TrimSpace(in.Division)
	c.Country = strings.TrimSpace(in.Country)
	c.UpdatedBy = in.Actor
	return nil
}

type CustomerService struct {
	db           *gorm.DB
	customers    *repository.GormCustomerRepository
	appointments *repository.GormAppointmentRepository
	audit        *repository.GormEventRepository

	locker    lock.Locker
	publisher events.Publisher
	log       *zap.Logger
}

func NewCustomerService(d Deps) *CustomerService {
	d = d.withDefaults()
	return &CustomerService{
		db:           d.DB,
		customers:    repository.NewGormCustomerRepository(d.DB),
		appointments: repository.NewGormAppointmentRepository(d.DB),
		audit:        repository.NewGormEventRepository(d.DB),
		locker:       d.Locker,
		publisher:    d.Publisher,
		log:          d.Logger.Named("customers"),
	}
}

func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (*model.Customer, error) {
	c := &model.Customer{CreatedBy: in.Actor}
	if err := in.apply(c); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.customers.WithTx(tx).Create(ctx, c); err != nil {
			return err
		}
		_, err := s.audit.WithTx(tx).Record(ctx, model.EventTypeCustomerCreated, in.Actor, nil, &c.ID, map[string]any{"name": c.Name})
		return err
	})
	if err != nil {
		s.log.Error("create customer failed", zap.Error(err))
		return nil, err
	}

	s.log.Info("customer created", zap.Int64("customer_id", c.ID))
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, in CustomerInput) (*model.Customer, error) {
	var updated *model.Customer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.customers.WithTx(tx)

		c, err := repo.LockByID(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrCustomerNotFound
			}
			return err
		}
		if err := in.apply(c); err != nil {
			return err
		}
		if err := repo.Update(ctx, c); err != nil {
			return err
		}
		if updated, err = repo.GetByID(ctx, id); err != nil {
			return err
		}
		_, err = s.audit.WithTx(tx).Record(ctx, model.EventTypeCustomerUpdated, in.Actor, nil, &id, map[string]any{"name": c.Name})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("customer updated", zap.Int64("customer_id", id))
	return updated, nil
}

// Delete удаляет клиента вместе со всеми его встречами и возвращает,
// сколько встреч было удалено.
func (s *CustomerService) Delete(ctx context.Context, id int64, actor string) (n int64, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "CustomerService.Delete",
		trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer func() { finishSpan(span, err) }()

	ctx, unlock, err := holdCustomer(ctx, s.locker, id)
	if err != nil {
		return 0, err
	}
	defer unlock()

	var removed []model.Appointment
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customers := s.customers.WithTx(tx)
		appointments := s.appointments.WithTx(tx)
		audit := s.audit.WithTx(tx)

		c, err := customers.LockByID(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrCustomerNotFound
			}
			return err
		}

		if removed, err = appointments.ListByCustomer(ctx, id); err != nil {
			return err
		}
		if n, err = appointments.DeleteByCustomer(ctx, id); err != nil {
			return err
		}
		for i := range removed {
			a := &removed[i]
			if _, err := audit.Record(ctx, model.EventTypeAppointmentDeleted, actor, &a.ID, &id, auditDetails(a)); err != nil {
				return err
			}
		}

		if err := customers.Delete(ctx, id); err != nil {
			// Встречу вставили в обход блокировки клиента (другой узел без общего Redis).
			if repository.IsForeignKeyViolation(err) {
				return fmt.Errorf("%w: customer %d: %w", ErrConcurrentChange, id, err)
			}
			return err
		}
		_, err = audit.Record(ctx, model.EventTypeCustomerDeleted, actor, nil, &id, map[string]any{
			"name":                 c.Name,
			"deleted_appointments": n,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrCustomerNotFound) {
			s.log.Error("delete customer failed", zap.Int64("customer_id", id), zap.Error(err))
		}
		return 0, err
	}

	s.log.Info("customer deleted", zap.Int64("customer_id", id), zap.Int64("deleted_appointments", n))
	for i := range removed {
		publishAppointment(ctx, s.publisher, s.log, events.KindDeleted, &removed[i], actor)
	}
	return n, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) List(ctx context.Context, name string, req pagination.Request) (pagination.Page[model.Customer], error) {
	items, total, err := s.customers.List(ctx, name, req.Limit(), req.Offset())
	if err != nil {
		return pagination.Page[model.Customer]{}, err
	}
	return pagination.NewPage(items, req, total), nil
}
