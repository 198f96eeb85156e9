package scheduling

import (
	"errors"
	"time"
)

var ErrInvalidTimeRange = errors.New("invalid time range")

// TimeRange представляет временной интервал [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange создаёт интервал и делает простую валидацию.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{Start: start, End: end}, nil
}

func (tr TimeRange) Duration() time.Duration {
	return tr.End.Sub(tr.Start)
}

// In переводит обе границы в зону loc.
func (tr TimeRange) In(loc *time.Location) TimeRange {
	return TimeRange{Start: tr.Start.In(loc), End: tr.End.In(loc)}
}

// Overlaps — пересечение полуоткрытых интервалов: касание концами конфликтом не считается.
// Одно условие покрывает полное вложение и частичное перекрытие с любой стороны.
func Overlaps(a, b TimeRange) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// FirstConflict ищет первую встречу клиента customerID, пересекающуюся с tr.
// Встреча с ID == *exclude пропускается (редактирование самой себя).
func FirstConflict(tr TimeRange, customerID int64, existing []Appointment, exclude *int64) (Appointment, bool) {
	for _, a := range existing {
		if a.CustomerID != customerID {
			continue
		}
		if exclude != nil && a.ID == *exclude {
			continue
		}
		if Overlaps(tr, TimeRange{Start: a.Start, End: a.End}) {
			return a, true
		}
	}
	return Appointment{}, false
}
