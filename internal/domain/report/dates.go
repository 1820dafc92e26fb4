package report

import (
	"strconv"
	"time"

	"github.com/teamtrack-hq/attendance-backend-go/internal/pkg/validator"
)

// SelectorKind tags which variant of DateSelector is populated. The tag is
// explicit so a numeric string can never be mistaken for a lookback count.
type SelectorKind string

const (
	SelectorDefault      SelectorKind = "default"
	SelectorExplicitDate SelectorKind = "date"
	SelectorLastNDays    SelectorKind = "last_n_days"
	SelectorMonthYear    SelectorKind = "month_year"
)

// DateSelector is a tagged variant: exactly one payload is meaningful,
// chosen by Kind.
type DateSelector struct {
	Kind  SelectorKind
	Date  time.Time
	Days  int
	Month int
	Year  int
}

func ExplicitDate(date time.Time) DateSelector {
	return DateSelector{Kind: SelectorExplicitDate, Date: date}
}

func LastNDays(n int) DateSelector {
	return DateSelector{Kind: SelectorLastNDays, Days: n}
}

func MonthYear(month, year int) DateSelector {
	return DateSelector{Kind: SelectorMonthYear, Month: month, Year: year}
}

func DefaultSelector() DateSelector {
	return DateSelector{Kind: SelectorDefault}
}

// SelectorFromParams builds a DateSelector from raw query parameters with the
// priority date > days > month/year > default. An all-digit date value is
// rejected instead of being guessed as a lookback count; callers must use the
// days parameter for lookbacks.
func SelectorFromParams(dateStr, daysStr, monthStr, yearStr string) (DateSelector, error) {
	var errs validator.ValidationErrors

	if dateStr != "" {
		if validator.IsNumeric(dateStr) {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "ambiguous numeric date; use YYYY-MM-DD, or the days parameter for a lookback",
			})
			return DateSelector{}, errs
		}
		date, ok := validator.IsValidDate(dateStr)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
			return DateSelector{}, errs
		}
		return ExplicitDate(date), nil
	}

	if daysStr != "" {
		if !validator.IsNumeric(daysStr) {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "days must be a positive number",
			})
			return DateSelector{}, errs
		}
		n, _ := strconv.Atoi(daysStr)
		if n == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "days must be greater than zero",
			})
			return DateSelector{}, errs
		}
		return LastNDays(n), nil
	}

	if monthStr != "" || yearStr != "" {
		if monthStr == "" || yearStr == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month and year must be provided together",
			})
			return DateSelector{}, errs
		}
		if !validator.IsNumeric(monthStr) || !validator.IsNumeric(yearStr) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month and year must be numeric",
			})
			return DateSelector{}, errs
		}
		month, _ := strconv.Atoi(monthStr)
		year, _ := strconv.Atoi(yearStr)
		return MonthYear(month, year), nil
	}

	return DefaultSelector(), nil
}

// DateRange is an inclusive UTC day-boundary window, Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
