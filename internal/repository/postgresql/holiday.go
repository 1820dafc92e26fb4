package postgresql

import (
	"context"
	"fmt"

	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/holiday"
	"github.com/teamtrack-hq/attendance-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListHolidays implements holiday.HolidayRepository.
func (r *holidayRepository) ListHolidays(ctx context.Context) ([]holiday.Holiday, error) {
	query := `
		SELECT holiday_date, name, description
		FROM holidays
		ORDER BY holiday_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var out []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.Date, &h.Name, &h.Description); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}

	return out, nil
}
