package attendance

import (
	"time"
)

const (
	GeofenceInside  = "INSIDE"
	GeofenceOutside = "OUTSIDE"
)

// Attendance is one raw check-in/check-out row as the store returns it.
// Date is the calendar day the row belongs to, independent of the clock
// times of the check-in/out themselves.
type Attendance struct {
	AttendanceID           string
	UserID                 string
	ProjectID              *string
	Date                   time.Time
	CheckInTime            *time.Time
	CheckOutTime           *time.Time
	CheckInGeofenceStatus  *string
	CheckOutGeofenceStatus *string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
