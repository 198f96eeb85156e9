package scheduling

import (
	"errors"
	"fmt"
)

// Reason — машиночитаемая причина отказа в записи.
type Reason string

const (
	ReasonCustomerNotFound     Reason = "CUSTOMER_NOT_FOUND"
	ReasonEndNotAfterStart     Reason = "END_NOT_AFTER_START"
	ReasonOutsideBusinessDays  Reason = "OUTSIDE_BUSINESS_DAYS"
	ReasonOutsideBusinessHours Reason = "OUTSIDE_BUSINESS_HOURS"
	ReasonOverlapsExisting     Reason = "OVERLAPS_EXISTING_APPOINTMENT"
)

// ErrValidationUnavailable возвращается, когда справочник клиентов или хранилище встреч
// не ответили. Это системная ошибка, а не отказ: вызывающий может повторить запрос.
var ErrValidationUnavailable = errors.New("validation unavailable")

// Rejection — ожидаемый бизнес-отказ. Сообщение можно показывать пользователю как есть.
type Rejection struct {
	Reason  Reason
	Message string
	// ID встречи, с которой пересёкся кандидат (только для ReasonOverlapsExisting).
	ConflictID int64
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("appointment rejected: %s", r.Reason)
}

// AsRejection достаёт отказ из цепочки ошибок.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// IsRejected сообщает, является ли err отказом с указанной причиной.
func IsRejected(err error, reason Reason) bool {
	r, ok := AsRejection(err)
	return ok && r.Reason == reason
}
