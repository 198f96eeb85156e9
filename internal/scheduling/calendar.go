package scheduling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	// Таблица зон вшита в бинарник: контейнеры часто идут без /usr/share/zoneinfo.
	_ "time/tzdata"
)

// ReferenceZoneName — бизнес-часовой пояс, в котором проверяются рабочие дни и часы.
const ReferenceZoneName = "America/New_York"

var ErrInvalidClock = errors.New("invalid clock value")

// Clock — время суток (часы и минуты).
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock разбирает строку вида "HH:MM".
func ParseClock(s string) (Clock, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	c := Clock{Hour: hour, Minute: minute}
	if hour < 0 || minute < 0 || minute > 59 || c.sinceMidnight() > 24*time.Hour {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return c, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) sinceMidnight() time.Duration {
	return time.Duration(c.Hour)*time.Hour + time.Duration(c.Minute)*time.Minute
}

// Calendar — рабочий календарь: зона, рабочие часы [Open, Close] включительно, будни пн–пт.
type Calendar struct {
	Location *time.Location
	Open     Clock
	Close    Clock
}

// DefaultCalendar — 08:00–22:00 по America/New_York, понедельник–пятница.
func DefaultCalendar() (Calendar, error) {
	loc, err := time.LoadLocation(ReferenceZoneName)
	if err != nil {
		return Calendar{}, fmt.Errorf("load reference zone: %w", err)
	}
	return Calendar{
		Location: loc,
		Open:     Clock{Hour: 8},
		Close:    Clock{Hour: 22},
	}, nil
}

// NewCalendar собирает календарь из имени зоны и границ рабочего дня.
func NewCalendar(zone string, open, close Clock) (Calendar, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return Calendar{}, err
	}
	if close.sinceMidnight() <= open.sinceMidnight() {
		return Calendar{}, fmt.Errorf("%w: close %s must be after open %s", ErrInvalidClock, close, open)
	}
	return Calendar{Location: loc, Open: open, Close: close}, nil
}

// IsWorkday — будний день (понедельник–пятница).
func (c Calendar) IsWorkday(t time.Time) bool {
	switch t.In(c.Location).Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// WithinHours проверяет, что время суток t в зоне календаря лежит в [Open, Close].
func (c Calendar) WithinHours(t time.Time) bool {
	tod := timeOfDay(t.In(c.Location))
	return tod >= c.Open.sinceMidnight() && tod <= c.Close.sinceMidnight()
}

func (c Calendar) hoursMessage() string {
	return fmt.Sprintf("Time is out of business hours: %s - %s %s.", c.Open, c.Close, c.Location)
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// LoadZone загружает зону по имени IANA. Пустое имя и "Local" — зона машины.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", name, err)
	}
	return loc, nil
}

// AtZone интерпретирует настенное время t в зоне loc; собственная зона t игнорируется.
// Смещение берётся на конкретную дату, поэтому переход на летнее время учитывается.
func AtZone(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
