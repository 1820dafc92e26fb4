package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorFromParams_Priority(t *testing.T) {
	sel, err := SelectorFromParams("2025-01-28", "7", "1", "2025")
	require.NoError(t, err)
	assert.Equal(t, SelectorExplicitDate, sel.Kind)
	assert.Equal(t, "2025-01-28", sel.Date.Format("2006-01-02"))

	sel, err = SelectorFromParams("", "14", "1", "2025")
	require.NoError(t, err)
	assert.Equal(t, SelectorLastNDays, sel.Kind)
	assert.Equal(t, 14, sel.Days)

	sel, err = SelectorFromParams("", "", "2", "2025")
	require.NoError(t, err)
	assert.Equal(t, SelectorMonthYear, sel.Kind)
	assert.Equal(t, 2, sel.Month)
	assert.Equal(t, 2025, sel.Year)

	sel, err = SelectorFromParams("", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, SelectorDefault, sel.Kind)
}

func TestSelectorFromParams_AmbiguousNumericDate(t *testing.T) {
	// A compact all-digit date like 20250128 is indistinguishable from a
	// lookback count, so it must be rejected rather than guessed.
	_, err := SelectorFromParams("20250128", "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestSelectorFromParams_Invalid(t *testing.T) {
	_, err := SelectorFromParams("not-a-date", "", "", "")
	assert.Error(t, err)

	_, err = SelectorFromParams("", "abc", "", "")
	assert.Error(t, err)

	_, err = SelectorFromParams("", "0", "", "")
	assert.Error(t, err)

	_, err = SelectorFromParams("", "", "2", "")
	assert.Error(t, err)
}

func TestTeamAttendanceFilter_Validate_Defaults(t *testing.T) {
	f := TeamAttendanceFilter{RootEmployeeID: "mgr-1"}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
}

func TestTeamAttendanceFilter_Validate_LimitCap(t *testing.T) {
	f := TeamAttendanceFilter{RootEmployeeID: "mgr-1", Limit: 101}
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestTeamAttendanceFilter_Validate_MissingRoot(t *testing.T) {
	f := TeamAttendanceFilter{}
	assert.Error(t, f.Validate())
}

func TestOverviewFilter_Validate(t *testing.T) {
	f := OverviewFilter{EmployeeID: "u-1"}
	require.NoError(t, f.Validate())
	assert.Equal(t, 7, f.Days)
	assert.Equal(t, ScopeSelf, f.Scope)

	f = OverviewFilter{EmployeeID: "u-1", Days: 30, Scope: "TEAM"}
	require.NoError(t, f.Validate())
	assert.Equal(t, ScopeTeam, f.Scope)

	f = OverviewFilter{EmployeeID: "u-1", Scope: "department"}
	assert.Error(t, f.Validate())

	f = OverviewFilter{EmployeeID: "u-1", Days: 365}
	assert.Error(t, f.Validate())
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC),
	}
	assert.True(t, r.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
}
