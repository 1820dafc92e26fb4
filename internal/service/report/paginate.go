package report

import (
	"math"

	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/report"
)

// paginate slices the ordered employee-id list for one page and builds the
// page metadata. A page beyond the last yields an empty slice with the totals
// unchanged; that is a valid terminal state, not an error.
func paginate(ids []string, page, limit int) ([]string, report.Pagination) {
	total := len(ids)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return ids[start:end], report.Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalRecords:    total,
		Limit:           limit,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
