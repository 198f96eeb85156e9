package grpcserver

import (
	"fmt"
	"strings"
	"time"

	schedulingv1 "github.com/Leganyst/scheduling-core/internal/api/schedulingv1"
	"github.com/Leganyst/scheduling-core/internal/model"
	"github.com/Leganyst/scheduling-core/internal/pagination"
	"github.com/Leganyst/scheduling-core/internal/scheduling"
	"github.com/Leganyst/scheduling-core/internal/service"
)

// Настенное время принимается с секундами или без них.
var civilLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseCivil(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", service.ErrInvalidInput, field)
	}
	for _, layout := range civilLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s must look like 2006-01-02T15:04", service.ErrInvalidInput, field)
}

func parseInstant(field, s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC 3339", service.ErrInvalidInput, field)
	}
	return t.UTC(), nil
}

// parseZone: пустая строка — nil, зона по умолчанию решается ниже по стеку.
func parseZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	loc, err := scheduling.LoadZone(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown time zone %q", service.ErrInvalidInput, name)
	}
	return loc, nil
}

func appointmentInput(in schedulingv1.AppointmentInput, actor string) (service.AppointmentInput, error) {
	start, err := parseCivil("start", in.Start)
	if err != nil {
		return service.AppointmentInput{}, err
	}
	end, err := parseCivil("end", in.End)
	if err != nil {
		return service.AppointmentInput{}, err
	}
	zone, err := parseZone(in.TimeZone)
	if err != nil {
		return service.AppointmentInput{}, err
	}
	return service.AppointmentInput{
		CustomerID:  in.CustomerID,
		UserID:      in.UserID,
		ContactID:   in.ContactID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Type:        in.Type,
		Start:       start,
		End:         end,
		Zone:        zone,
		Actor:       actor,
	}, nil
}

func formatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}

func toAppointment(a *model.Appointment, ref *time.Location) schedulingv1.Appointment {
	return schedulingv1.Appointment{
		ID:             a.ID,
		CustomerID:     a.CustomerID,
		UserID:         a.UserID,
		ContactID:      a.ContactID,
		Title:          a.Title,
		Description:    a.Description,
		Location:       a.Location,
		Type:           a.Type,
		StartUTC:       formatTime(a.StartAt, time.UTC),
		EndUTC:         formatTime(a.EndAt, time.UTC),
		StartReference: formatTime(a.StartAt, ref),
		EndReference:   formatTime(a.EndAt, ref),
		CreatedAt:      formatTime(a.CreatedAt, time.UTC),
		CreatedBy:      a.CreatedBy,
		UpdatedAt:      formatTime(a.UpdatedAt, time.UTC),
		UpdatedBy:      a.UpdatedBy,
	}
}

func toCustomer(c *model.Customer) schedulingv1.Customer {
	return schedulingv1.Customer{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		PostalCode: c.PostalCode,
		Phone:      c.Phone,
		Division:   c.Division,
		Country:    c.Country,
		CreatedAt:  formatTime(c.CreatedAt, time.UTC),
		CreatedBy:  c.CreatedBy,
		UpdatedAt:  formatTime(c.UpdatedAt, time.UTC),
		UpdatedBy:  c.UpdatedBy,
	}
}

func customerInput(c schedulingv1.Customer, actor string) service.CustomerInput {
	return service.CustomerInput{
		Name:       c.Name,
		Address:    c.Address,
		PostalCode: c.PostalCode,
		Phone:      c.Phone,
		Division:   c.Division,
		Country:    c.Country,
		Actor:      actor,
	}
}

func toUser(u model.User) schedulingv1.User {
	return schedulingv1.User{ID: u.ID, Name: u.Name}
}

func toContact(c model.Contact) schedulingv1.Contact {
	return schedulingv1.Contact{ID: c.ID, Name: c.Name, Email: c.Email}
}

func pageRequest(page, size int32) pagination.Request {
	return pagination.Request{Page: int(page), PageSize: int(size)}
}
