package holiday

import "context"

// HolidayRepository is the holiday calendar contract. The calendar is re-read
// per request; the engine never caches it.
type HolidayRepository interface {
	ListHolidays(ctx context.Context) ([]Holiday, error)
}
