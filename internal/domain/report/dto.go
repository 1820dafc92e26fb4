package report

import (
	"strings"

	"github.com/teamtrack-hq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE REPORT DTOs
// ========================================

type Status string

const (
	StatusPresent        Status = "PRESENT"
	StatusAbsent         Status = "ABSENT"
	StatusOffsitePresent Status = "OFFSITE_PRESENT"
	StatusHoliday        Status = "HOLIDAY"
)

type Scope string

const (
	ScopeSelf Scope = "self"
	ScopeTeam Scope = "team"
)

type TeamAttendanceFilter struct {
	RootEmployeeID string       `json:"-"`
	Selector       DateSelector `json:"-"`
	ProjectID      *string      `json:"project_id,omitempty"`

	// Pagination over the employee list, never over raw rows.
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *TeamAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.RootEmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "root_employee_id",
			Message: "root employee id is required",
		})
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 10 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.ProjectID != nil && validator.IsEmpty(*f.ProjectID) {
		f.ProjectID = nil
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyAttendanceFilter struct {
	UserID    string       `json:"-"`
	Selector  DateSelector `json:"-"`
	ProjectID *string      `json:"project_id,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user id is required",
		})
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 10 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.ProjectID != nil && validator.IsEmpty(*f.ProjectID) {
		f.ProjectID = nil
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OverviewFilter struct {
	EmployeeID string `json:"-"`
	Days       int    `json:"days"`
	Scope      Scope  `json:"scope"`
}

func (f *OverviewFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee id is required",
		})
	}

	if f.Days == 0 {
		f.Days = 7 // Default lookback
	}
	if f.Days < 0 || f.Days > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be between 1 and 90",
		})
	}

	scope := Scope(strings.ToLower(string(f.Scope)))
	if scope == "" {
		scope = ScopeSelf
	}
	if !validator.IsInSlice(string(scope), []string{string(ScopeSelf), string(ScopeTeam)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "scope",
			Message: "scope must be one of: self, team",
		})
	}
	f.Scope = scope

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

// ClassifiedAttendance is one raw row after status classification and
// duration computation.
type ClassifiedAttendance struct {
	AttendanceID           string  `json:"attendance_id"`
	ProjectID              *string `json:"project_id,omitempty"`
	ProjectName            string  `json:"project_name,omitempty"`
	Date                   string  `json:"date"`
	CheckInTime            *string `json:"check_in_time"`
	CheckOutTime           *string `json:"check_out_time"`
	CheckInGeofenceStatus  *string `json:"check_in_geofence_status,omitempty"`
	CheckOutGeofenceStatus *string `json:"check_out_geofence_status,omitempty"`
	Status                 Status  `json:"status"`
	TotalHours             string  `json:"total_hours"`
	InvalidDuration        bool    `json:"invalid_duration,omitempty"`
}

type Statistics struct {
	Total             int     `json:"total"`
	Present           int     `json:"present"`
	Absent            int     `json:"absent"`
	OffsitePresent    int     `json:"offsite_present"`
	TotalWorkingHours float64 `json:"total_working_hours"`
}

type EmployeeDetails struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

type EmployeeAttendanceSummary struct {
	EmployeeDetails EmployeeDetails                   `json:"employee_details"`
	Statistics      Statistics                        `json:"statistics"`
	Attendance      map[string][]ClassifiedAttendance `json:"attendance"`
}

type Pagination struct {
	CurrentPage     int  `json:"current_page"`
	TotalPages      int  `json:"total_pages"`
	TotalRecords    int  `json:"total_records"`
	Limit           int  `json:"limit"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type TeamAttendanceReport struct {
	TotalEmployees int                         `json:"total_employees"`
	Employees      []EmployeeAttendanceSummary `json:"employees"`
	// OmittedEmployeeIDs lists subtree members on this page whose directory
	// record could not be found; they are excluded rather than failing the page.
	OmittedEmployeeIDs []string          `json:"omitted_employee_ids,omitempty"`
	DateRange          DateRangeResponse `json:"date_range"`
	Pagination         Pagination        `json:"pagination"`
}

type MyAttendanceDetail struct {
	Statistics Statistics                        `json:"statistics"`
	Attendance map[string][]ClassifiedAttendance `json:"attendance"`
	DateRange  DateRangeResponse                 `json:"date_range"`
	Pagination Pagination                        `json:"pagination"`
}

type OverviewResponse struct {
	PresentCount      int     `json:"present_count"`
	AttendancePercent float64 `json:"attendance_percent"`
	AvgWorkHours      string  `json:"avg_work_hours"`
	LeaveCount        int     `json:"leave_count"`
	TotalEmployees    *int    `json:"total_employees,omitempty"`
}
