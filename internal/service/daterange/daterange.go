package daterange

import (
	"time"

	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/report"
	"github.com/teamtrack-hq/attendance-backend-go/internal/pkg/validator"
)

// Resolve turns a date selector into an inclusive UTC day-boundary window.
// now is passed in so callers with a fixed clock get deterministic windows.
func Resolve(sel report.DateSelector, now time.Time) (report.DateRange, error) {
	now = now.UTC()

	switch sel.Kind {
	case report.SelectorExplicitDate:
		d := sel.Date.UTC()
		return report.DateRange{
			Start: startOfDay(d),
			End:   endOfDay(d),
		}, nil

	case report.SelectorLastNDays:
		if sel.Days <= 0 {
			return report.DateRange{}, validator.ValidationErrors{{
				Field:   "days",
				Message: "days must be greater than zero",
			}}
		}
		// N calendar days inclusive of today.
		return report.DateRange{
			Start: startOfDay(now.AddDate(0, 0, -(sel.Days - 1))),
			End:   endOfDay(now),
		}, nil

	case report.SelectorMonthYear:
		if sel.Month < 1 || sel.Month > 12 {
			return report.DateRange{}, validator.ValidationErrors{{
				Field:   "month",
				Message: "month must be between 1 and 12",
			}}
		}
		if sel.Year < 1 {
			return report.DateRange{}, validator.ValidationErrors{{
				Field:   "year",
				Message: "year must be a positive number",
			}}
		}
		first := time.Date(sel.Year, time.Month(sel.Month), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		return report.DateRange{
			Start: first,
			End:   endOfDay(last),
		}, nil

	case report.SelectorDefault:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		return report.DateRange{
			Start: first,
			End:   endOfDay(last),
		}, nil

	default:
		return report.DateRange{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "no valid date selector supplied",
		}}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, time.UTC)
}
