package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Leganyst/scheduling-core/internal/events"
	"github.com/Leganyst/scheduling-core/internal/lock"
	"github.com/Leganyst/scheduling-core/internal/model"
	"github.com/Leganyst/scheduling-core/internal/pagination"
	"github.com/Leganyst/scheduling-core/internal/repository"
	"github.com/Leganyst/scheduling-core/internal/scheduling"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.AppointmentEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.AppointmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) kinds() []events.Kind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Kind, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Kind)
	}
	return out
}

type env struct {
	db           *gorm.DB
	appointments *AppointmentService
	customers    *CustomerService
	directory    *DirectoryService
	publisher    *recordingPublisher
	locker       *lock.Local
	ny           *time.Location

	customerID int64
	userID     int64
	contactID  int64
}

// Понедельник 2024-03-11 12:50 UTC = 08:50 по Нью-Йорку.
var testNow = time.Date(2024, 3, 11, 12, 50, 0, 0, time.UTC)

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	cal, err := scheduling.DefaultCalendar()
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	pub := &recordingPublisher{}
	locker := lock.NewLocal()
	deps := Deps{
		DB:             db,
		Validator:      scheduling.NewValidator(cal, scheduling.WithLocalZone(cal.Location)),
		Locker:         locker,
		Publisher:      pub,
		UpcomingWindow: 15 * time.Minute,
		Now:            func() time.Time { return testNow },
	}

	e := &env{
		db:           db,
		appointments: NewAppointmentService(deps),
		customers:    NewCustomerService(deps),
		directory:    NewDirectoryService(deps),
		publisher:    pub,
		locker:       locker,
		ny:           cal.Location,
	}

	ctx := context.Background()
	c, err := e.customers.Create(ctx, CustomerInput{Name: "Daddy Warbucks", Phone: "555-1212", Actor: "test"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	u, err := e.directory.RegisterUser(ctx, "test")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	contact, err := e.directory.CreateContact(ctx, ContactInput{Name: "Anika Costa", Email: "acoasta@company.com"})
	if err != nil {
		t.Fatalf("create contact: %v", err)
	}

	e.customerID, e.userID, e.contactID = c.ID, u.ID, contact.ID
	return e
}

func (e *env) input(startHour, startMin, endHour, endMin int) AppointmentInput {
	return AppointmentInput{
		CustomerID:  e.customerID,
		UserID:      e.userID,
		ContactID:   e.contactID,
		Title:       "Planning",
		Description: "Quarterly planning",
		Location:    "Phoenix, Arizona",
		Type:        "Planning Session",
		Start:       time.Date(2024, 3, 11, startHour, startMin, 0, 0, time.UTC),
		End:         time.Date(2024, 3, 11, endHour, endMin, 0, 0, time.UTC),
		Zone:        e.ny,
		Actor:       "test",
	}
}

func (e *env) count(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&model.Appointment{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func expectRejection(t *testing.T, err error, want scheduling.Reason) {
	t.Helper()
	if !scheduling.IsRejected(err, want) {
		t.Fatalf("expected rejection %s, got %v", want, err)
	}
}

func TestAppointmentService_CreateStoresUTCAndPublishes(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a, err := e.appointments.Create(ctx, e.input(9, 0, 10, 0))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == 0 {
		t.Fatalf("expected id")
	}

	stored, err := e.appointments.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if want := time.Date(2024, 3, 11, 13, 0, 0, 0, time.UTC); !stored.StartAt.Equal(want) {
		t.Fatalf("expected start %v, got %v", want, stored.StartAt)
	}
	if stored.CreatedBy != "test" || stored.UpdatedBy != "test" {
		t.Fatalf("unexpected audit fields: %+v", stored)
	}

	if kinds := e.publisher.kinds(); len(kinds) != 1 || kinds[0] != events.KindCreated {
		t.Fatalf("expected one created event, got %v", kinds)
	}

	audit, err := repository.NewGormEventRepository(e.db).ListByAppointment(ctx, a.ID)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if len(audit) != 1 || audit[0].EventType != model.EventTypeAppointmentCreated {
		t.Fatalf("unexpected audit trail: %+v", audit)
	}
}

func TestAppointmentService_CreateRejections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.appointments.Create(ctx, e.input(9, 0, 10, 0)); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	_, err := e.appointments.Create(ctx, e.input(9, 30, 9, 45))
	expectRejection(t, err, scheduling.ReasonOverlapsExisting)

	_, err = e.appointments.Create(ctx, e.input(7, 0, 8, 30))
	expectRejection(t, err, scheduling.ReasonOutsideBusinessHours)

	_, err = e.appointments.Create(ctx, e.input(11, 0, 10, 0))
	expectRejection(t, err, scheduling.ReasonEndNotAfterStart)

	weekend := e.input(9, 0, 10, 0)
	weekend.Start = time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
	weekend.End = time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC)
	_, err = e.appointments.Create(ctx, weekend)
	expectRejection(t, err, scheduling.ReasonOutsideBusinessDays)

	missing := e.input(12, 0, 13, 0)
	missing.CustomerID = 404
	_, err = e.appointments.Create(ctx, missing)
	expectRejection(t, err, scheduling.ReasonCustomerNotFound)

	if n := e.count(t); n != 1 {
		t.Fatalf("rejected candidates must not be stored, have %d rows", n)
	}
	if kinds := e.publisher.kinds(); len(kinds) != 1 {
		t.Fatalf("rejections must not publish, got %v", kinds)
	}

	// Касание концами допустимо.
	if _, err := e.appointments.Create(ctx, e.input(10, 0, 11, 0)); err != nil {
		t.Fatalf("expected touching appointment accepted, got %v", err)
	}
}

func TestAppointmentService_CreateInputErrors(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	noTitle := e.input(9, 0, 10, 0)
	noTitle.Title = "  "
	if _, err := e.appointments.Create(ctx, noTitle); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	badUser := e.input(9, 0, 10, 0)
	badUser.UserID = 404
	if _, err := e.appointments.Create(ctx, badUser); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	badContact := e.input(9, 0, 10, 0)
	badContact.ContactID = 404
	if _, err := e.appointments.Create(ctx, badContact); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}

	if n := e.count(t); n != 0 {
		t.Fatalf("expected nothing stored, have %d rows", n)
	}
}

func TestAppointmentService_Update(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a, err := e.appointments.Create(ctx, e.input(9, 0, 10, 0))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := e.appointments.Create(ctx, e.input(11, 0, 12, 0))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Тот же интервал, исключая саму встречу.
	same := e.input(9, 0, 10, 0)
	same.Title = "Renamed"
	same.Actor = "admin"
	updated, err := e.appointments.Update(ctx, a.ID, same)
	if err != nil {
		t.Fatalf("update in place: %v", err)
	}
	if updated.Title != "Renamed" || updated.UpdatedBy != "admin" || updated.CreatedBy != "test" {
		t.Fatalf("unexpected updated row: %+v", updated)
	}

	_, err = e.appointments.Update(ctx, a.ID, e.input(10, 30, 11, 30))
	expectRejection(t, err, scheduling.ReasonOverlapsExisting)
	if r, _ := scheduling.AsRejection(err); r.ConflictID != b.ID {
		t.Fatalf("expected conflict with %d, got %d", b.ID, r.ConflictID)
	}

	if _, err := e.appointments.Update(ctx, 999, e.input(14, 0, 15, 0)); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}

	kinds := e.publisher.kinds()
	if len(kinds) != 3 || kinds[2] != events.KindUpdated {
		t.Fatalf("unexpected events: %v", kinds)
	}
}

func TestAppointmentService_ValidateIsDryRun(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	valid, err := e.appointments.Validate(ctx, e.input(9, 0, 10, 0), nil)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if valid.ReferenceStart.Hour() != 9 || !valid.Start.Equal(time.Date(2024, 3, 11, 13, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected normalized times: %+v", valid)
	}
	if n := e.count(t); n != 0 {
		t.Fatalf("validate must not store, have %d rows", n)
	}
	if len(e.publisher.kinds()) != 0 {
		t.Fatalf("validate must not publish")
	}
}

func TestAppointmentService_Delete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a, err := e.appointments.Create(ctx, e.input(9, 0, 10, 0))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := e.appointments.Delete(ctx, a.ID, "test"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := e.appointments.Delete(ctx, a.ID, "test"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
	if _, err := e.appointments.Get(ctx, a.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}

	// Освободившийся интервал снова доступен.
	if _, err := e.appointments.Create(ctx, e.input(9, 0, 10, 0)); err != nil {
		t.Fatalf("recreate: %v", err)
	}
}

func TestAppointmentService_ConcurrentCreatesDoNotDoubleBook(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		overlaps int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.appointments.Create(ctx, e.input(9, 0, 10, 0))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case scheduling.IsRejected(err, scheduling.ReasonOverlapsExisting):
				overlaps++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if accepted != 1 || overlaps != workers-1 {
		t.Fatalf("expected 1 accepted and %d overlaps, got %d and %d", workers-1, accepted, overlaps)
	}
	if n := e.count(t); n != 1 {
		t.Fatalf("expected one stored appointment, have %d", n)
	}
}

func TestAppointmentService_PublishFailureDoesNotFailCreate(t *testing.T) {
	e := newEnv(t)
	e.publisher.err = errors.New("broker down")

	if _, err := e.appointments.Create(context.Background(), e.input(9, 0, 10, 0)); err != nil {
		t.Fatalf("create must succeed when publishing fails, got %v", err)
	}
	if n := e.count(t); n != 1 {
		t.Fatalf("expected stored appointment, have %d", n)
	}
}

func TestAppointmentService_Upcoming(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	soon, err := e.appointments.Create(ctx, e.input(9, 0, 10, 0)) // 13:00Z, через 10 минут
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := e.appointments.Create(ctx, e.input(11, 0, 12, 0)); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := e.appointments.Upcoming(ctx, e.userID, nil)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(got) != 1 || got[0].Appointment.ID != soon.ID {
		t.Fatalf("expected only the appointment starting soon, got %+v", got)
	}
	want := "Monday, 03/11/2024, 09:00–10:00 (ID: " + itoa(soon.ID) + ")"
	if got[0].Display != want {
		t.Fatalf("expected %q, got %q", want, got[0].Display)
	}

	if _, err := e.appointments.Upcoming(ctx, 404, nil); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAppointmentService_List(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for h := 9; h < 14; h++ {
		if _, err := e.appointments.Create(ctx, e.input(h, 0, h+1, 0)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := e.appointments.List(ctx, repository.AppointmentFilter{CustomerID: e.customerID}, pagination.Request{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 5 || len(page.Items) != 2 || !page.HasNext || !page.HasPrev {
		t.Fatalf("unexpected page: %+v", page)
	}

	bad := repository.AppointmentFilter{From: testNow, To: testNow.Add(-time.Hour)}
	if _, err := e.appointments.List(ctx, bad, pagination.Request{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCustomerService_DeleteCascades(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for _, in := range []AppointmentInput{e.input(9, 0, 10, 0), e.input(11, 0, 12, 0)} {
		if _, err := e.appointments.Create(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	n, err := e.customers.Delete(ctx, e.customerID, "test")
	if err != nil {
		t.Fatalf("delete customer: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted appointments, got %d", n)
	}
	if c := e.count(t); c != 0 {
		t.Fatalf("expected appointments removed, have %d", c)
	}
	if _, err := e.customers.Get(ctx, e.customerID); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	kinds := e.publisher.kinds()
	if len(kinds) != 4 || kinds[2] != events.KindDeleted || kinds[3] != events.KindDeleted {
		t.Fatalf("expected two deleted events after two created, got %v", kinds)
	}

	if _, err := e.customers.Delete(ctx, e.customerID, "test"); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound on second delete, got %v", err)
	}

	// Клиента больше нет — новые встречи для него отклоняются.
	_, err = e.appointments.Create(ctx, e.input(9, 0, 10, 0))
	expectRejection(t, err, scheduling.ReasonCustomerNotFound)
}

func TestCustomerService_CreateUpdateList(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.customers.Create(ctx, CustomerInput{Name: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	c, err := e.customers.Create(ctx, CustomerInput{Name: "Lady McAnderson", Country: "UK", Actor: "test"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := e.customers.Update(ctx, c.ID, CustomerInput{Name: "Lady McAnderson", Phone: "555-0000", Actor: "admin"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != "555-0000" || updated.UpdatedBy != "admin" || updated.CreatedBy != "test" {
		t.Fatalf("unexpected customer: %+v", updated)
	}
	if _, err := e.customers.Update(ctx, 404, CustomerInput{Name: "x"}); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	page, err := e.customers.List(ctx, "", pagination.Request{PageSize: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 || len(page.Items) != 1 || !page.HasNext {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestAppointmentService_LockWaitHonoursDeadline(t *testing.T) {
	e := newEnv(t)

	// Другой запрос держит блокировку клиента.
	unlock, err := e.locker.Lock(context.Background(), lock.CustomerKey(e.customerID))
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = e.appointments.Create(ctx, e.input(9, 0, 10, 0))
	if !errors.Is(err, scheduling.ErrValidationUnavailable) {
		t.Fatalf("expected ErrValidationUnavailable, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("deadline must stay in the error chain, got %v", err)
	}

	canceled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	if _, err := e.customers.Delete(canceled, e.customerID, "test"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
	if n := e.count(t); n != 0 {
		t.Fatalf("nothing must be stored, have %d", n)
	}
}

func TestWriteError_ForeignKeyRaces(t *testing.T) {
	fk := func(constraint string) error {
		return fmt.Errorf("create appointment: %w", &pgconn.PgError{Code: "23503", ConstraintName: constraint})
	}
	cases := []struct {
		err  error
		want error
	}{
		{fk("fk_appointments_contact"), ErrContactNotFound},
		{fk("fk_appointments_user"), ErrUserNotFound},
		{fk("fk_customers_appointments"), ErrCustomerNotFound},
	}
	for _, tc := range cases {
		if got := writeError(tc.err); !errors.Is(got, tc.want) {
			t.Fatalf("writeError(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}

	other := errors.New("disk full")
	if got := writeError(other); got != other {
		t.Fatalf("unrelated error must pass through, got %v", got)
	}
}

func TestDirectoryService(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	again, err := e.directory.RegisterUser(ctx, " test ")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if again.ID != e.userID {
		t.Fatalf("expected existing user %d, got %d", e.userID, again.ID)
	}
	if _, err := e.directory.RegisterUser(ctx, "admin"); err != nil {
		t.Fatalf("register admin: %v", err)
	}
	if _, err := e.directory.RegisterUser(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	users, err := e.directory.ListUsers(ctx, pagination.Request{PageSize: 1})
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if users.Total != 2 || len(users.Items) != 1 || users.Items[0].Name != "admin" || !users.HasNext {
		t.Fatalf("unexpected users page: %+v", users)
	}

	for _, in := range []ContactInput{
		{Name: ""},
		{Name: "Li Lee", Email: "not-an-email"},
		{Name: "Li Lee", Email: "Li Lee <llee@company.com>"},
	} {
		if _, err := e.directory.CreateContact(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("CreateContact(%+v): expected ErrInvalidInput, got %v", in, err)
		}
	}
	li, err := e.directory.CreateContact(ctx, ContactInput{Name: " Li Lee ", Email: "llee@company.com"})
	if err != nil {
		t.Fatalf("create contact: %v", err)
	}
	if li.Name != "Li Lee" {
		t.Fatalf("expected trimmed name, got %q", li.Name)
	}

	contacts, err := e.directory.ListContacts(ctx, pagination.Request{Page: 2, PageSize: 1})
	if err != nil {
		t.Fatalf("list contacts: %v", err)
	}
	if contacts.Total != 2 || len(contacts.Items) != 1 || contacts.Items[0].ID != li.ID || contacts.HasNext {
		t.Fatalf("unexpected contacts page: %+v", contacts)
	}

	// Новые записи справочников сразу годятся для встречи.
	in := e.input(9, 0, 10, 0)
	in.ContactID = li.ID
	if _, err := e.appointments.Create(ctx, in); err != nil {
		t.Fatalf("create with new contact: %v", err)
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
