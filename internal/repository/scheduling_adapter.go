package repository

import (
	"context"

	"github.com/Leganyst/scheduling-core/internal/model"
	"github.com/Leganyst/scheduling-core/internal/scheduling"
)

// CustomerDirectory отвечает валидатору на вопрос «есть ли такой клиент».
type CustomerDirectory struct {
	customers CustomerRepository
}

func NewCustomerDirectory(customers CustomerRepository) CustomerDirectory {
	return CustomerDirectory{customers: customers}
}

func (d CustomerDirectory) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	return d.customers.Exists(ctx, customerID)
}

// AppointmentSource отдаёт валидатору встречи клиента. Если задано окно,
// выбираются только пересекающиеся с ним (индексный запрос), иначе — все.
type AppointmentSource struct {
	appointments AppointmentRepository
	window       *scheduling.TimeRange
}

func NewAppointmentSource(appointments AppointmentRepository) AppointmentSource {
	return AppointmentSource{appointments: appointments}
}

// Within сужает выборку до встреч, пересекающих tr.
func (s AppointmentSource) Within(tr scheduling.TimeRange) AppointmentSource {
	s.window = &tr
	return s
}

func (s AppointmentSource) ListForCustomer(ctx context.Context, customerID int64) ([]scheduling.Appointment, error) {
	var (
		items []model.Appointment
		err   error
	)
	if s.window != nil {
		items, err = s.appointments.ListOverlapping(ctx, customerID, s.window.Start, s.window.End)
	} else {
		items, err = s.appointments.ListByCustomer(ctx, customerID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]scheduling.Appointment, 0, len(items))
	for _, a := range items {
		out = append(out, ToScheduling(a))
	}
	return out, nil
}

func ToScheduling(a model.Appointment) scheduling.Appointment {
	return scheduling.Appointment{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Start:      a.StartAt.UTC(),
		End:        a.EndAt.UTC(),
	}
}

// LockingCustomerDirectory проверяет клиента, одновременно блокируя его строку.
// Используется внутри транзакции записи: параллельная запись того же клиента
// ждёт до коммита.
type LockingCustomerDirectory struct {
	customers CustomerRepository
}

func NewLockingCustomerDirectory(customers CustomerRepository) LockingCustomerDirectory {
	return LockingCustomerDirectory{customers: customers}
}

func (d LockingCustomerDirectory) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	_, err := d.customers.LockByID(ctx, customerID)
	if IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
