package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load zone %s: %v", name, err)
	}
	return loc
}

// civil — настенное время без зоны (зона UTC игнорируется валидатором).
func civil(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	cal, err := DefaultCalendar()
	if err != nil {
		t.Fatalf("default calendar: %v", err)
	}
	return NewValidator(cal, WithLocalZone(mustZone(t, ReferenceZoneName)))
}

func candidate(customerID int64, start, end time.Time) Candidate {
	return Candidate{
		CustomerID:  customerID,
		UserID:      1,
		ContactID:   1,
		Title:       "Intro call",
		Description: "Discuss onboarding",
		Location:    "Remote",
		Type:        "Planning Session",
		StartLocal:  start,
		EndLocal:    end,
	}
}

func anyCustomer(int64) bool { return true }

func expectReason(t *testing.T, err error, want Reason) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected rejection %s, got nil", want)
	}
	r, ok := AsRejection(err)
	if !ok {
		t.Fatalf("expected *Rejection, got %T: %v", err, err)
	}
	if r.Reason != want {
		t.Fatalf("expected reason %s, got %s", want, r.Reason)
	}
	if r.Message == "" {
		t.Fatalf("expected user-facing message for %s", want)
	}
}

// existing 09:00–10:00 EDT 2024-03-11 у клиента 5.
func mondayMorning(id int64) Appointment {
	return Appointment{
		ID:         id,
		CustomerID: 5,
		Start:      time.Date(2024, 3, 11, 13, 0, 0, 0, time.UTC),
		End:        time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC),
	}
}

func TestValidate_Scenario1_AcceptedOnMonday(t *testing.T) {
	v := newTestValidator(t)

	got, err := v.Validate(candidate(5, civil(2024, 3, 11, 9, 0), civil(2024, 3, 11, 10, 0)), nil, anyCustomer)
	if err != nil {
		t.Fatalf("expected accepted, got %v", err)
	}

	wantStart := time.Date(2024, 3, 11, 13, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC)
	if !got.Start.Equal(wantStart) || !got.End.Equal(wantEnd) {
		t.Fatalf("expected UTC %v–%v, got %v–%v", wantStart, wantEnd, got.Start, got.End)
	}
	if got.Start.Location() != time.UTC {
		t.Fatalf("expected start in UTC, got %v", got.Start.Location())
	}
	if got.ReferenceStart.Hour() != 9 || got.ReferenceStart.Location().String() != ReferenceZoneName {
		t.Fatalf("unexpected reference start %v", got.ReferenceStart)
	}
	if got.Title != "Intro call" || got.CustomerID != 5 {
		t.Fatalf("candidate fields not carried over: %+v", got)
	}
}

func TestValidate_Scenario2_Saturday(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.Validate(candidate(5, civil(2024, 3, 16, 9, 0), civil(2024, 3, 16, 10, 0)), nil, anyCustomer)
	expectReason(t, err, ReasonOutsideBusinessDays)
}

func TestValidate_Scenario3_StartsBeforeOpening(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.Validate(candidate(5, civil(2024, 3, 11, 7, 0), civil(2024, 3, 11, 8, 30)), nil, anyCustomer)
	expectReason(t, err, ReasonOutsideBusinessHours)
}

func TestValidate_Scenario4_ContainedOverlap(t *testing.T) {
	v := newTestValidator(t)
	existing := []Appointment{mondayMorning(7)}

	_, err := v.Validate(candidate(5, civil(2024, 3, 11, 9, 30), civil(2024, 3, 11, 9, 45)), existing, anyCustomer)
	expectReason(t, err, ReasonOverlapsExisting)

	r, _ := AsRejection(err)
	if r.ConflictID != 7 {
		t.Fatalf("expected conflict with 7, got %d", r.ConflictID)
	}
}

func TestValidate_Scenario5_TouchingEndpoints(t *testing.T) {
	v := newTestValidator(t)
	existing := []Appointment{mondayMorning(7)}

	if _, err := v.Validate(candidate(5, civil(2024, 3, 11, 10, 0), civil(2024, 3, 11, 11, 0)), existing, anyCustomer); err != nil {
		t.Fatalf("expected accepted, got %v", err)
	}
	if _, err := v.Validate(candidate(5, civil(2024, 3, 11, 8, 0), civil(2024, 3, 11, 9, 0)), existing, anyCustomer); err != nil {
		t.Fatalf("expected accepted, got %v", err)
	}
}

func TestValidate_Scenario6_UpdateExcludesItself(t *testing.T) {
	v := newTestValidator(t)
	existing := []Appointment{mondayMorning(42)}

	c := candidate(5, civil(2024, 3, 11, 9, 0), civil(2024, 3, 11, 10, 0))
	_, err := v.Validate(c, existing, anyCustomer)
	expectReason(t, err, ReasonOverlapsExisting)

	id := int64(42)
	c.ExcludeAppointmentID = &id
	if _, err := v.Validate(c, existing, anyCustomer); err != nil {
		t.Fatalf("expected accepted with exclude, got %v", err)
	}
}

func TestValidate_CustomerNotFoundComesFirst(t *testing.T) {
	v := newTestValidator(t)

	// Время тоже некорректно, но первой срабатывает проверка клиента.
	c := candidate(99, civil(2024, 3, 16, 10, 0), civil(2024, 3, 16, 9, 0))
	_, err := v.Validate(c, nil, func(id int64) bool { return id == 5 })
	expectReason(t, err, ReasonCustomerNotFound)

	_, err = v.Validate(c, nil, nil)
	expectReason(t, err, ReasonCustomerNotFound)
}

func TestValidate_EndNotAfterStart(t *testing.T) {
	v := newTestValidator(t)

	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"equal", civil(2024, 3, 11, 9, 0), civil(2024, 3, 11, 9, 0)},
		{"reversed", civil(2024, 3, 11, 11, 0), civil(2024, 3, 11, 9, 0)},
		{"reversed across days", civil(2024, 3, 12, 9, 0), civil(2024, 3, 11, 9, 0)},
		{"weekend and reversed", civil(2024, 3, 16, 11, 0), civil(2024, 3, 16, 10, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(candidate(5, tc.start, tc.end), nil, anyCustomer)
			expectReason(t, err, ReasonEndNotAfterStart)
		})
	}

	// В Каире 2024-04-26 00:00 часы переводятся на 01:00: начало 00:50 попадает
	// в несуществующий час и сдвигается, конец 01:10 остаётся как есть.
	gap := candidate(5, civil(2024, 4, 26, 0, 50), civil(2024, 4, 26, 1, 10))
	gap.Zone = mustZone(t, "Africa/Cairo")
	valid, err := v.Validate(gap, nil, anyCustomer)
	if err == nil {
		t.Fatalf("expected rejection, got accepted %v – %v", valid.Start, valid.End)
	}
	expectReason(t, err, ReasonEndNotAfterStart)

	// Тот же интервал, но длиннее «дыры», принимается и остаётся упорядоченным.
	gap.EndLocal = civil(2024, 4, 26, 2, 30)
	valid, err = v.Validate(gap, nil, anyCustomer)
	if err != nil {
		t.Fatalf("expected accepted, got %v", err)
	}
	if !valid.Start.Before(valid.End) {
		t.Fatalf("stored range must be ordered: %v – %v", valid.Start, valid.End)
	}
}

func TestValidate_WeekendAlwaysRejected(t *testing.T) {
	v := newTestValidator(t)

	for _, day := range []int{16, 17} { // суббота и воскресенье
		for hour := 8; hour < 21; hour++ {
			c := candidate(5, civil(2024, 3, day, hour, 0), civil(2024, 3, day, hour+1, 0))
			_, err := v.Validate(c, nil, anyCustomer)
			expectReason(t, err, ReasonOutsideBusinessDays)
		}
	}

	// Начало в пятницу, конец в субботу.
	_, err := v.Validate(candidate(5, civil(2024, 3, 15, 21, 0), civil(2024, 3, 16, 9, 0)), nil, anyCustomer)
	expectReason(t, err, ReasonOutsideBusinessDays)
}

func TestValidate_BusinessHoursBoundaries(t *testing.T) {
	v := newTestValidator(t)

	rejected := []struct {
		name       string
		start, end time.Time
	}{
		{"early morning", civil(2024, 3, 11, 5, 0), civil(2024, 3, 11, 6, 0)},
		{"one minute before open", civil(2024, 3, 11, 7, 59), civil(2024, 3, 11, 9, 0)},
		{"ends after close", civil(2024, 3, 11, 21, 0), civil(2024, 3, 11, 22, 1)},
		{"late evening", civil(2024, 3, 11, 22, 30), civil(2024, 3, 11, 23, 0)},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(candidate(5, tc.start, tc.end), nil, anyCustomer)
			expectReason(t, err, ReasonOutsideBusinessHours)
		})
	}

	// Границы рабочего дня включительны.
	if _, err := v.Validate(candidate(5, civil(2024, 3, 11, 8, 0), civil(2024, 3, 11, 22, 0)), nil, anyCustomer); err != nil {
		t.Fatalf("expected 08:00–22:00 accepted, got %v", err)
	}
}

func TestValidate_ConvertsCallerZoneWithDST(t *testing.T) {
	v := newTestValidator(t)
	berlin := mustZone(t, "Europe/Berlin")

	// 5 марта: Берлин UTC+1, Нью-Йорк UTC-5 → разница 6 часов, 13:30 = 07:30 ET.
	early := candidate(5, civil(2024, 3, 5, 13, 30), civil(2024, 3, 5, 14, 30))
	early.Zone = berlin
	_, err := v.Validate(early, nil, anyCustomer)
	expectReason(t, err, ReasonOutsideBusinessHours)

	// 11 марта: в США уже летнее время (UTC-4), в Европе ещё нет → разница 5 часов, 13:30 = 08:30 ET.
	after := candidate(5, civil(2024, 3, 11, 13, 30), civil(2024, 3, 11, 14, 30))
	after.Zone = berlin
	got, err := v.Validate(after, nil, anyCustomer)
	if err != nil {
		t.Fatalf("expected accepted after US DST switch, got %v", err)
	}
	if want := time.Date(2024, 3, 11, 12, 30, 0, 0, time.UTC); !got.Start.Equal(want) {
		t.Fatalf("expected UTC start %v, got %v", want, got.Start)
	}
	if got.ReferenceStart.Hour() != 8 || got.ReferenceStart.Minute() != 30 {
		t.Fatalf("expected 08:30 ET, got %v", got.ReferenceStart)
	}
}

func TestValidate_IgnoresOtherCustomers(t *testing.T) {
	v := newTestValidator(t)
	other := mondayMorning(3)
	other.CustomerID = 6

	if _, err := v.Validate(candidate(5, civil(2024, 3, 11, 9, 0), civil(2024, 3, 11, 10, 0)), []Appointment{other}, anyCustomer); err != nil {
		t.Fatalf("expected accepted, got %v", err)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	v := newTestValidator(t)
	existing := []Appointment{mondayMorning(7)}

	for _, c := range []Candidate{
		candidate(5, civil(2024, 3, 11, 10, 0), civil(2024, 3, 11, 11, 0)),
		candidate(5, civil(2024, 3, 11, 9, 15), civil(2024, 3, 11, 10, 15)),
	} {
		first, err1 := v.Validate(c, existing, anyCustomer)
		second, err2 := v.Validate(c, existing, anyCustomer)

		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("results differ: %v vs %v", err1, err2)
		}
		if err1 != nil {
			r1, _ := AsRejection(err1)
			r2, _ := AsRejection(err2)
			if r1.Reason != r2.Reason || r1.ConflictID != r2.ConflictID {
				t.Fatalf("rejections differ: %+v vs %+v", r1, r2)
			}
			continue
		}
		if first != second {
			t.Fatalf("accepted values differ: %+v vs %+v", first, second)
		}
	}
}

type stubDirectory struct {
	exists bool
	err    error
	calls  int
}

func (d *stubDirectory) CustomerExists(context.Context, int64) (bool, error) {
	d.calls++
	return d.exists, d.err
}

type stubSource struct {
	items []Appointment
	err   error
	calls int
}

func (s *stubSource) ListForCustomer(context.Context, int64) ([]Appointment, error) {
	s.calls++
	return s.items, s.err
}

func TestValidateWith_CollaboratorFailures(t *testing.T) {
	v := newTestValidator(t)
	c := candidate(5, civil(2024, 3, 11, 9, 0), civil(2024, 3, 11, 10, 0))
	ctx := context.Background()

	_, err := v.ValidateWith(ctx, c, &stubDirectory{err: errors.New("connection refused")}, &stubSource{})
	if !errors.Is(err, ErrValidationUnavailable) {
		t.Fatalf("expected ErrValidationUnavailable, got %v", err)
	}

	_, err = v.ValidateWith(ctx, c, &stubDirectory{exists: true}, &stubSource{err: errors.New("timeout")})
	if !errors.Is(err, ErrValidationUnavailable) {
		t.Fatalf("expected ErrValidationUnavailable, got %v", err)
	}
	if _, ok := AsRejection(err); ok {
		t.Fatalf("system failure must not look like a rejection")
	}

	// Причина сбоя остаётся в цепочке: отмену запроса видно выше по стеку.
	_, err = v.ValidateWith(ctx, c, &stubDirectory{err: context.Canceled}, &stubSource{})
	if !errors.Is(err, ErrValidationUnavailable) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected both ErrValidationUnavailable and context.Canceled, got %v", err)
	}
	_, err = v.ValidateWith(ctx, c, &stubDirectory{exists: true}, &stubSource{err: context.DeadlineExceeded})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded in chain, got %v", err)
	}
}

func TestValidateWith_UsesCollaborators(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	dir := &stubDirectory{exists: true}
	src := &stubSource{items: []Appointment{mondayMorning(7)}}

	_, err := v.ValidateWith(ctx, candidate(5, civil(2024, 3, 11, 9, 30), civil(2024, 3, 11, 9, 45)), dir, src)
	expectReason(t, err, ReasonOverlapsExisting)
	if dir.calls != 1 || src.calls != 1 {
		t.Fatalf("expected one call each, got dir=%d src=%d", dir.calls, src.calls)
	}

	// Календарный отказ не требует списка встреч.
	src.calls = 0
	_, err = v.ValidateWith(ctx, candidate(5, civil(2024, 3, 16, 9, 0), civil(2024, 3, 16, 10, 0)), dir, src)
	expectReason(t, err, ReasonOutsideBusinessDays)
	if src.calls != 0 {
		t.Fatalf("expected source not to be called, got %d calls", src.calls)
	}

	_, err = v.ValidateWith(ctx, candidate(5, civil(2024, 3, 11, 9, 0), civil(2024, 3, 11, 10, 0)), &stubDirectory{}, src)
	expectReason(t, err, ReasonCustomerNotFound)
}
