package scheduling

import (
	"fmt"
	"time"
)

// FormatForUser форматирует интервал в человекочитаемую строку,
// например "Monday, 03/11/2024, 09:00–10:00 (ID: 42)".
// Если loc != nil, время переводится в указанный часовой пояс.
// Если id > 0, в конце добавляется идентификатор встречи.
func FormatForUser(tr TimeRange, loc *time.Location, id int64) string {
	start := tr.Start
	end := tr.End

	if loc != nil {
		start = start.In(loc)
		end = end.In(loc)
	}

	base := fmt.Sprintf("%s, %s, %s–%s",
		start.Weekday(),
		start.Format("01/02/2006"),
		start.Format("15:04"),
		end.Format("15:04"),
	)

	if id > 0 {
		return fmt.Sprintf("%s (ID: %d)", base, id)
	}
	return base
}
