package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/teamtrack-hq/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// QueryRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) QueryRange(ctx context.Context, userIDs []string, start, end time.Time, projectID *string) ([]attendance.Attendance, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, user_id, project_id, attendance_date,
			   check_in_time, check_out_time,
			   check_in_geofence_status, check_out_geofence_status,
			   created_at, updated_at
		FROM attendances
		WHERE user_id = ANY($1)
		  AND attendance_date >= $2
		  AND attendance_date <= $3
	`
	args := []interface{}{userIDs, start, end}

	if projectID != nil {
		query += ` AND project_id = $4`
		args = append(args, *projectID)
	}
	query += ` ORDER BY attendance_date, user_id, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	var out []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.AttendanceID, &a.UserID, &a.ProjectID, &a.Date,
			&a.CheckInTime, &a.CheckOutTime,
			&a.CheckInGeofenceStatus, &a.CheckOutGeofenceStatus,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return out, nil
}
