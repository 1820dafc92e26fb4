package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/report"
	"github.com/teamtrack-hq/attendance-backend-go/internal/handler/http/response"
	"github.com/teamtrack-hq/attendance-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	// Team attendance report
	GetTeamAttendance(w http.ResponseWriter, r *http.Request)

	// Team attendance report as CSV download
	ExportTeamAttendance(w http.ResponseWriter, r *http.Request)

	// Requester's own attendance detail
	GetMyAttendance(w http.ResponseWriter, r *http.Request)

	// Presence overview over a lookback window
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetTeamAttendance handles GET /reports/team-attendance
func (h *reportHandlerImpl) GetTeamAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDFromContext(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	filter, err := teamFilterFromQuery(r, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.ComputeTeamAttendance(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportTeamAttendance handles GET /reports/team-attendance/export. It walks
// every page of the report and streams one CSV row per attendance record.
func (h *reportHandlerImpl) ExportTeamAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDFromContext(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	filter, err := teamFilterFromQuery(r, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter.Page = 1
	filter.Limit = 100

	var employees []report.EmployeeAttendanceSummary
	for {
		page, err := h.reportService.ComputeTeamAttendance(ctx, filter)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		employees = append(employees, page.Employees...)
		if !page.Pagination.HasNextPage {
			break
		}
		filter.Page++
	}

	rows := 0
	for _, emp := range employees {
		for _, recs := range emp.Attendance {
			rows += len(recs)
		}
	}
	if rows == 0 {
		response.HandleError(w, report.ErrNoAttendanceRecords)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="team-attendance.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Name", "Email", "Designation", "Date", "Status", "Check In", "Check Out", "Project", "Total Hours"})
	for _, emp := range employees {
		days := make([]string, 0, len(emp.Attendance))
		for day := range emp.Attendance {
			days = append(days, day)
		}
		sort.Strings(days)

		for _, day := range days {
			for _, rec := range emp.Attendance[day] {
				_ = cw.Write([]string{
					emp.EmployeeDetails.Name,
					emp.EmployeeDetails.Email,
					emp.EmployeeDetails.Designation,
					rec.Date,
					string(rec.Status),
					strOrEmpty(rec.CheckInTime),
					strOrEmpty(rec.CheckOutTime),
					rec.ProjectName,
					rec.TotalHours,
				})
			}
		}
	}
	cw.Flush()
}

// GetMyAttendance handles GET /reports/my-attendance
func (h *reportHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDFromContext(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	q := r.URL.Query()
	selector, err := report.SelectorFromParams(q.Get("date"), q.Get("days"), q.Get("month"), q.Get("year"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	page, limit, err := pageParams(q.Get("page"), q.Get("limit"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetMyAttendance(ctx, report.MyAttendanceFilter{
		UserID:    userID,
		Selector:  selector,
		ProjectID: projectParam(q.Get("project_id")),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOverview handles GET /reports/overview
func (h *reportHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDFromContext(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	q := r.URL.Query()
	days := 0
	if daysStr := q.Get("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			response.BadRequest(w, "invalid days parameter", nil)
			return
		}
	}

	result, err := h.reportService.ComputeOverview(ctx, report.OverviewFilter{
		EmployeeID: userID,
		Days:       days,
		Scope:      report.Scope(q.Get("scope")),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func teamFilterFromQuery(r *http.Request, userID string) (report.TeamAttendanceFilter, error) {
	q := r.URL.Query()

	selector, err := report.SelectorFromParams(q.Get("date"), q.Get("days"), q.Get("month"), q.Get("year"))
	if err != nil {
		return report.TeamAttendanceFilter{}, err
	}

	page, limit, err := pageParams(q.Get("page"), q.Get("limit"))
	if err != nil {
		return report.TeamAttendanceFilter{}, err
	}

	return report.TeamAttendanceFilter{
		RootEmployeeID: userID,
		Selector:       selector,
		ProjectID:      projectParam(q.Get("project_id")),
		Page:           page,
		Limit:          limit,
	}, nil
}

func pageParams(pageStr, limitStr string) (int, int, error) {
	page, limit := 0, 0
	var err error

	if pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil {
			return 0, 0, validator.ValidationErrors{{Field: "page", Message: "page must be a number"}}
		}
	}
	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			return 0, 0, validator.ValidationErrors{{Field: "limit", Message: "limit must be a number"}}
		}
	}
	return page, limit, nil
}

// projectParam treats "all" the same as no filter.
func projectParam(raw string) *string {
	if raw == "" || raw == "all" {
		return nil
	}
	return &raw
}

func userIDFromContext(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("missing user identity in token")
	}
	return userID, nil
}

// strOrEmpty dereferences an optional string, returning "" when nil.
func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
