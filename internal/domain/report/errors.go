package report

import "errors"

// Report domain errors
var (
	ErrNoAttendanceRecords = errors.New("no attendance records found for the specified period")
	ErrSubtreeTooLarge     = errors.New("reporting subtree exceeds the configured size limit")
)
