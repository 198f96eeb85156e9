package grpcserver

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/scheduling-core/internal/scheduling"
	"github.com/Leganyst/scheduling-core/internal/service"
)

// ErrorDomain — домен в ErrorInfo для отказов валидации.
const ErrorDomain = "scheduling"

// toStatus переводит ошибку сервиса в статус gRPC. Отказ валидации несёт
// ErrorInfo с кодом причины, чтобы клиент мог различать отказы без разбора текста.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	if r, ok := scheduling.AsRejection(err); ok {
		return rejectionStatus(r).Err()
	}

	// Отмена и дедлайн клиента важнее обёртки ErrValidationUnavailable.
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, scheduling.ErrValidationUnavailable):
		return status.Error(codes.Unavailable, "validation temporarily unavailable, retry later")
	case errors.Is(err, service.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrAppointmentNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrContactNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrConcurrentChange):
		return status.Error(codes.Aborted, service.ErrConcurrentChange.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func rejectionStatus(r *scheduling.Rejection) *status.Status {
	st := status.New(rejectionCode(r.Reason), r.Message)

	info := &errdetails.ErrorInfo{
		Reason: string(r.Reason),
		Domain: ErrorDomain,
	}
	if r.ConflictID != 0 {
		info.Metadata = map[string]string{
			"conflict_appointment_id": strconv.FormatInt(r.ConflictID, 10),
		}
	}

	withDetails, err := st.WithDetails(info)
	if err != nil {
		return st
	}
	return withDetails
}

func rejectionCode(reason scheduling.Reason) codes.Code {
	switch reason {
	case scheduling.ReasonCustomerNotFound:
		return codes.NotFound
	case scheduling.ReasonEndNotAfterStart:
		return codes.InvalidArgument
	case scheduling.ReasonOutsideBusinessDays, scheduling.ReasonOutsideBusinessHours:
		return codes.FailedPrecondition
	case scheduling.ReasonOverlapsExisting:
		return codes.AlreadyExists
	default:
		return codes.FailedPrecondition
	}
}

// RejectionFromStatus достаёт причину отказа из ошибки gRPC на стороне клиента.
func RejectionFromStatus(err error) (scheduling.Reason, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return "", false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return scheduling.Reason(info.GetReason()), true
		}
	}
	return "", false
}
