package report

import "context"

// ReportService is the attendance aggregation engine. All operations are pure
// functions of their inputs plus the injected collaborators' current state;
// nothing is persisted.
type ReportService interface {
	// ComputeTeamAttendance resolves the requester's reporting subtree,
	// fetches attendance for the whole subtree once, and returns per-employee
	// summaries for the requested page. TotalEmployees always reflects the
	// full subtree, not the page.
	ComputeTeamAttendance(ctx context.Context, filter TeamAttendanceFilter) (TeamAttendanceReport, error)

	// GetMyAttendance returns the date-grouped detail for a single employee.
	// An empty window yields zeroed statistics, not an error.
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (MyAttendanceDetail, error)

	// ComputeOverview summarizes presence over a lookback window for either
	// the employee alone or their whole subtree.
	ComputeOverview(ctx context.Context, filter OverviewFilter) (OverviewResponse, error)
}
