package employee

import "context"

// EmployeeRepository is the org directory contract. GetDirectReports walks one
// level of the reporting tree; GetDetails batches directory lookups for a page
// of employee ids.
type EmployeeRepository interface {
	// GetDirectReports returns the employees whose ParentID equals managerID.
	// An employee with no reports yields an empty slice, not an error.
	GetDirectReports(ctx context.Context, managerID string) ([]Employee, error)

	// GetDetails returns directory details for the given ids. Ids with no
	// directory record are simply missing from the result.
	GetDetails(ctx context.Context, ids []string) ([]Employee, error)

	// GetByID returns a single employee record.
	GetByID(ctx context.Context, id string) (Employee, error)
}
