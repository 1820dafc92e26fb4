package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/report"
)

// ErrInvalidTimePair marks a check-in/check-out pairing that still exceeds the
// work-hours ceiling after midnight correction. Callers report it per record
// instead of truncating silently.
var ErrInvalidTimePair = errors.New("check-out time does not pair with check-in within the allowed ceiling")

// Classify derives the status of a single attendance row. It is total and
// deterministic: every input maps to exactly one status and nothing is read
// outside the arguments. Rule order: holiday overrides everything, then a
// missing check-in means absent, then an OUTSIDE geofence on either end means
// offsite-present.
func Classify(rec attendance.Attendance, holidaySet map[string]struct{}) report.Status {
	if _, ok := holidaySet[rec.Date.UTC().Format("2006-01-02")]; ok {
		return report.StatusHoliday
	}
	if rec.CheckInTime == nil {
		return report.StatusAbsent
	}
	if isOutside(rec.CheckInGeofenceStatus) || isOutside(rec.CheckOutGeofenceStatus) {
		return report.StatusOffsitePresent
	}
	return report.StatusPresent
}

func isOutside(status *string) bool {
	return status != nil && strings.EqualFold(*status, attendance.GeofenceOutside)
}

// WorkDuration computes the worked duration for one row. Either endpoint
// missing yields the zero sentinel. A negative difference (overnight shift
// stored against a single date) gets one 24h correction; if the result still
// exceeds the ceiling the pairing is invalid.
func WorkDuration(checkIn, checkOut *time.Time, ceiling time.Duration) (time.Duration, error) {
	if checkIn == nil || checkOut == nil {
		return 0, nil
	}

	d := checkOut.Sub(*checkIn)
	if d < 0 {
		d += 24 * time.Hour
	}
	if d < 0 || d > ceiling {
		return 0, ErrInvalidTimePair
	}
	return d, nil
}

// FormatHours renders a duration as "H Hrs" or "H Hrs M Mins".
func FormatHours(d time.Duration) string {
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%d Hrs", hours)
	}
	return fmt.Sprintf("%d Hrs %d Mins", hours, mins)
}
