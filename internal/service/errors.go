package service

// Error — ошибки сервисного слоя; транспорт переводит их в коды gRPC.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrAppointmentNotFound Error = "appointment not found"
	ErrCustomerNotFound    Error = "customer not found"
	ErrUserNotFound        Error = "user not found"
	ErrContactNotFound     Error = "contact not found"
	ErrInvalidInput        Error = "invalid input"
	// Данные изменились параллельно; запрос можно повторить.
	ErrConcurrentChange Error = "concurrent change, retry"
)
