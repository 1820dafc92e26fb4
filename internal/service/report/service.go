package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/employee"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/holiday"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/project"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/report"
	"github.com/teamtrack-hq/attendance-backend-go/internal/service/daterange"
	"github.com/teamtrack-hq/attendance-backend-go/internal/service/hierarchy"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	projectRepo    project.ProjectRepository
	resolver       *hierarchy.Resolver

	workHoursCeiling time.Duration
	now              func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	projectRepo project.ProjectRepository,
	resolver *hierarchy.Resolver,
	workHoursCeiling time.Duration,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:     employeeRepo,
		attendanceRepo:   attendanceRepo,
		holidayRepo:      holidayRepo,
		projectRepo:      projectRepo,
		resolver:         resolver,
		workHoursCeiling: workHoursCeiling,
		now:              time.Now,
	}
}

func (s *ReportServiceImpl) ComputeTeamAttendance(ctx context.Context, filter report.TeamAttendanceFilter) (report.TeamAttendanceReport, error) {
	if err := filter.Validate(); err != nil {
		return report.TeamAttendanceReport{}, err
	}

	if filter.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, *filter.ProjectID); err != nil {
			if errors.Is(err, project.ErrProjectNotFound) {
				return report.TeamAttendanceReport{}, project.ErrProjectNotFound
			}
			return report.TeamAttendanceReport{}, fmt.Errorf("failed to validate project filter: %w", err)
		}
	}

	dateRange, err := daterange.Resolve(filter.Selector, s.now())
	if err != nil {
		return report.TeamAttendanceReport{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, filter.RootEmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.TeamAttendanceReport{}, employee.ErrEmployeeNotFound
		}
		return report.TeamAttendanceReport{}, fmt.Errorf("failed to get requesting employee: %w", err)
	}

	subtree, err := s.resolver.Resolve(ctx, filter.RootEmployeeID)
	if err != nil {
		return report.TeamAttendanceReport{}, err
	}

	pageIDs, pagination := paginate(subtree.IDs, filter.Page, filter.Limit)
	rangeResp := report.DateRangeResponse{
		StartDate: dateRange.Start.Format(time.RFC3339),
		EndDate:   dateRange.End.Format(time.RFC3339),
	}

	if subtree.TotalCount == 0 {
		return report.TeamAttendanceReport{
			TotalEmployees: 0,
			Employees:      []report.EmployeeAttendanceSummary{},
			DateRange:      rangeResp,
			Pagination:     pagination,
		}, nil
	}

	holidaySet, err := s.holidaySet(ctx)
	if err != nil {
		return report.TeamAttendanceReport{}, err
	}

	// One batched fetch for the whole subtree; per-employee shaping happens
	// in memory below.
	records, err := s.attendanceRepo.QueryRange(ctx, subtree.IDs, dateRange.Start, dateRange.End, filter.ProjectID)
	if err != nil {
		return report.TeamAttendanceReport{}, fmt.Errorf("failed to query attendance: %w", err)
	}

	projectNames, err := s.projectNames(ctx, records)
	if err != nil {
		return report.TeamAttendanceReport{}, err
	}

	byEmployee := make(map[string][]attendance.Attendance)
	for _, rec := range records {
		if !dateRange.Contains(rec.Date) {
			continue
		}
		byEmployee[rec.UserID] = append(byEmployee[rec.UserID], rec)
	}

	var details map[string]employee.Employee
	if len(pageIDs) > 0 {
		rows, err := s.employeeRepo.GetDetails(ctx, pageIDs)
		if err != nil {
			return report.TeamAttendanceReport{}, fmt.Errorf("failed to get employee details: %w", err)
		}
		details = make(map[string]employee.Employee, len(rows))
		for _, e := range rows {
			details[e.ID] = e
		}
	}

	var omitted []string
	employees := make([]report.EmployeeAttendanceSummary, 0, len(pageIDs))
	for _, id := range pageIDs {
		emp, ok := details[id]
		if !ok {
			slog.WarnContext(ctx, "employee missing from directory, omitting from page",
				"employee_id", id)
			omitted = append(omitted, id)
			continue
		}

		grouped, stats := s.shapeRecords(ctx, byEmployee[id], holidaySet, projectNames)
		employees = append(employees, report.EmployeeAttendanceSummary{
			EmployeeDetails: report.EmployeeDetails{
				UserID:      emp.ID,
				Name:        emp.Name,
				Email:       emp.Email,
				Designation: emp.Designation,
			},
			Statistics: stats,
			Attendance: grouped,
		})
	}

	return report.TeamAttendanceReport{
		TotalEmployees:     subtree.TotalCount,
		Employees:          employees,
		OmittedEmployeeIDs: omitted,
		DateRange:          rangeResp,
		Pagination:         pagination,
	}, nil
}

func (s *ReportServiceImpl) GetMyAttendance(ctx context.Context, filter report.MyAttendanceFilter) (report.MyAttendanceDetail, error) {
	if err := filter.Validate(); err != nil {
		return report.MyAttendanceDetail{}, err
	}

	if filter.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, *filter.ProjectID); err != nil {
			if errors.Is(err, project.ErrProjectNotFound) {
				return report.MyAttendanceDetail{}, project.ErrProjectNotFound
			}
			return report.MyAttendanceDetail{}, fmt.Errorf("failed to validate project filter: %w", err)
		}
	}

	dateRange, err := daterange.Resolve(filter.Selector, s.now())
	if err != nil {
		return report.MyAttendanceDetail{}, err
	}

	holidaySet, err := s.holidaySet(ctx)
	if err != nil {
		return report.MyAttendanceDetail{}, err
	}

	records, err := s.attendanceRepo.QueryRange(ctx, []string{filter.UserID}, dateRange.Start, dateRange.End, filter.ProjectID)
	if err != nil {
		return report.MyAttendanceDetail{}, fmt.Errorf("failed to query attendance: %w", err)
	}

	// Newest first for the detail listing.
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].AttendanceID < records[j].AttendanceID
	})

	// Statistics cover the whole window; only the attendance listing pages.
	_, stats := s.shapeRecords(ctx, records, holidaySet, nil)

	pageRecords, pagination := paginateRecords(records, filter.Page, filter.Limit)

	names, err := s.projectNames(ctx, pageRecords)
	if err != nil {
		return report.MyAttendanceDetail{}, err
	}
	grouped, _ := s.shapeRecords(ctx, pageRecords, holidaySet, names)

	return report.MyAttendanceDetail{
		Statistics: stats,
		Attendance: grouped,
		DateRange: report.DateRangeResponse{
			StartDate: dateRange.Start.Format(time.RFC3339),
			EndDate:   dateRange.End.Format(time.RFC3339),
		},
		Pagination: pagination,
	}, nil
}

func (s *ReportServiceImpl) ComputeOverview(ctx context.Context, filter report.OverviewFilter) (report.OverviewResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.OverviewResponse{}, err
	}

	dateRange, err := daterange.Resolve(report.LastNDays(filter.Days), s.now())
	if err != nil {
		return report.OverviewResponse{}, err
	}

	ids := []string{filter.EmployeeID}
	var totalEmployees *int
	if filter.Scope == report.ScopeTeam {
		subtree, err := s.resolver.Resolve(ctx, filter.EmployeeID)
		if err != nil {
			return report.OverviewResponse{}, err
		}
		ids = subtree.IDs
		totalEmployees = &subtree.TotalCount
	}

	holidaySet, err := s.holidaySet(ctx)
	if err != nil {
		return report.OverviewResponse{}, err
	}
	workingDays := countWorkingDays(dateRange, holidaySet)

	resp := report.OverviewResponse{
		AvgWorkHours:   "0hr 0min",
		TotalEmployees: totalEmployees,
	}
	if len(ids) == 0 || workingDays == 0 {
		return resp, nil
	}

	records, err := s.attendanceRepo.QueryRange(ctx, ids, dateRange.Start, dateRange.End, nil)
	if err != nil {
		return report.OverviewResponse{}, fmt.Errorf("failed to query attendance: %w", err)
	}

	present := 0
	var totalWorked time.Duration
	for _, rec := range records {
		if !dateRange.Contains(rec.Date) {
			continue
		}
		switch Classify(rec, holidaySet) {
		case report.StatusPresent, report.StatusOffsitePresent:
			present++
		default:
			continue
		}
		d, err := WorkDuration(rec.CheckInTime, rec.CheckOutTime, s.workHoursCeiling)
		if err != nil {
			slog.WarnContext(ctx, "invalid check-in/check-out pairing",
				"attendance_id", rec.AttendanceID, "error", err)
			continue
		}
		totalWorked += d
	}

	expected := len(ids) * workingDays
	leave := expected - present
	if leave < 0 {
		leave = 0
	}

	avg := totalWorked / time.Duration(workingDays)
	resp.PresentCount = present
	resp.AttendancePercent = round2(float64(present) / float64(expected) * 100)
	resp.AvgWorkHours = fmt.Sprintf("%dhr %dmin", int(avg.Hours()), int(avg.Minutes())%60)
	resp.LeaveCount = leave
	return resp, nil
}

// shapeRecords classifies and groups one employee's rows by calendar day and
// accumulates their statistics.
func (s *ReportServiceImpl) shapeRecords(ctx context.Context, records []attendance.Attendance, holidaySet map[string]struct{}, names map[string]string) (map[string][]report.ClassifiedAttendance, report.Statistics) {
	grouped := make(map[string][]report.ClassifiedAttendance)
	var stats report.Statistics
	var totalWorked time.Duration

	for _, rec := range records {
		status := Classify(rec, holidaySet)

		d, err := WorkDuration(rec.CheckInTime, rec.CheckOutTime, s.workHoursCeiling)
		invalid := err != nil
		if invalid {
			slog.WarnContext(ctx, "invalid check-in/check-out pairing",
				"attendance_id", rec.AttendanceID, "error", err)
		}

		day := rec.Date.UTC().Format("2006-01-02")
		row := report.ClassifiedAttendance{
			AttendanceID:           rec.AttendanceID,
			ProjectID:              rec.ProjectID,
			Date:                   day,
			CheckInTime:            formatTimePtr(rec.CheckInTime),
			CheckOutTime:           formatTimePtr(rec.CheckOutTime),
			CheckInGeofenceStatus:  rec.CheckInGeofenceStatus,
			CheckOutGeofenceStatus: rec.CheckOutGeofenceStatus,
			Status:                 status,
			TotalHours:             FormatHours(d),
			InvalidDuration:        invalid,
		}
		if rec.ProjectID != nil {
			if name, ok := names[*rec.ProjectID]; ok {
				row.ProjectName = name
			}
		}
		grouped[day] = append(grouped[day], row)

		stats.Total++
		switch status {
		case report.StatusPresent:
			stats.Present++
		case report.StatusAbsent:
			stats.Absent++
		case report.StatusOffsitePresent:
			// Offsite check-ins are still presence; the separate counter only
			// breaks out how many of them happened outside the geofence.
			stats.Present++
			stats.OffsitePresent++
		}
		totalWorked += d
	}

	stats.TotalWorkingHours = round2(totalWorked.Hours())
	return grouped, stats
}

func (s *ReportServiceImpl) holidaySet(ctx context.Context) (map[string]struct{}, error) {
	holidays, err := s.holidayRepo.ListHolidays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holiday.DateSet(holidays), nil
}

func (s *ReportServiceImpl) projectNames(ctx context.Context, records []attendance.Attendance) (map[string]string, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, rec := range records {
		if rec.ProjectID == nil {
			continue
		}
		if _, ok := seen[*rec.ProjectID]; ok {
			continue
		}
		seen[*rec.ProjectID] = struct{}{}
		ids = append(ids, *rec.ProjectID)
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	names, err := s.projectRepo.GetNamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get project names: %w", err)
	}
	return names, nil
}

// countWorkingDays counts the non-Sunday, non-holiday calendar days inside the
// window.
func countWorkingDays(r report.DateRange, holidaySet map[string]struct{}) int {
	count := 0
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		if _, ok := holidaySet[d.Format("2006-01-02")]; ok {
			continue
		}
		count++
	}
	return count
}

func paginateRecords(records []attendance.Attendance, page, limit int) ([]attendance.Attendance, report.Pagination) {
	total := len(records)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return records[start:end], report.Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalRecords:    total,
		Limit:           limit,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
