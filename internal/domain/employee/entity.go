package employee

type Employee struct {
	ID          string
	Name        string
	Email       string
	Designation string

	// ParentID is the reporting edge: the id of the employee this one reports to.
	// The org tree is owned by the directory service; it is read-only here.
	ParentID *string
}
