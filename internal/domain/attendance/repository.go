package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the attendance store contract consumed by the
// aggregation engine. The engine only reads committed rows; the check-in/out
// write path lives in a separate service.
type AttendanceRepository interface {
	// QueryRange returns rows for the given user ids whose attendance date
	// falls inside [start, end] (inclusive), optionally narrowed to one
	// project. No rows is an empty slice, not an error. Ordering is
	// deterministic for identical input; callers re-sort as needed.
	QueryRange(ctx context.Context, userIDs []string, start, end time.Time, projectID *string) ([]Attendance, error)
}
