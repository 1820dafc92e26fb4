package response

import (
	"errors"
	"net/http"

	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/employee"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/project"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/report"
	"github.com/teamtrack-hq/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, report.ErrNoAttendanceRecords):
		NotFound(w, "No attendance records found")
	case errors.Is(err, report.ErrSubtreeTooLarge):
		BadRequest(w, "Reporting subtree exceeds the supported size", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
