package hierarchy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/employee"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/report"
)

// fakeDirectory serves a reporting tree from an in-memory adjacency map.
type fakeDirectory struct {
	reports map[string][]string
	err     error
}

func (f *fakeDirectory) GetDirectReports(_ context.Context, managerID string) ([]employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []employee.Employee
	for _, id := range f.reports[managerID] {
		out = append(out, employee.Employee{ID: id})
	}
	return out, nil
}

func (f *fakeDirectory) GetDetails(_ context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range ids {
		out = append(out, employee.Employee{ID: id})
	}
	return out, nil
}

func (f *fakeDirectory) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id}, nil
}

func TestResolve_NoReports(t *testing.T) {
	r := NewResolver(&fakeDirectory{reports: map[string][]string{}}, 0)

	subtree, err := r.Resolve(context.Background(), "lonely")
	require.NoError(t, err)
	assert.Empty(t, subtree.IDs)
	assert.Equal(t, 0, subtree.TotalCount)
}

func TestResolve_TwoLevels(t *testing.T) {
	// root -> a, b, c; a -> a1; b -> b1. Subtree size 5.
	dir := &fakeDirectory{reports: map[string][]string{
		"root": {"a", "b", "c"},
		"a":    {"a1"},
		"b":    {"b1"},
	}}
	r := NewResolver(dir, 0)

	subtree, err := r.Resolve(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, 5, subtree.TotalCount)
	assert.Equal(t, []string{"a", "b", "c", "a1", "b1"}, subtree.IDs)
}

func TestResolve_DeduplicatesSharedReports(t *testing.T) {
	// x appears under both a and b but must be counted once.
	dir := &fakeDirectory{reports: map[string][]string{
		"root": {"a", "b"},
		"a":    {"x"},
		"b":    {"x"},
	}}
	r := NewResolver(dir, 0)

	subtree, err := r.Resolve(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "x"}, subtree.IDs)
}

func TestResolve_TerminatesOnCycle(t *testing.T) {
	dir := &fakeDirectory{reports: map[string][]string{
		"root": {"a"},
		"a":    {"b"},
		"b":    {"a", "root"},
	}}
	r := NewResolver(dir, 0)

	subtree, err := r.Resolve(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, subtree.IDs)
	assert.Equal(t, 2, subtree.TotalCount)
}

func TestResolve_DeterministicAcrossRuns(t *testing.T) {
	dir := &fakeDirectory{reports: map[string][]string{
		"root": {"a", "b", "c", "d"},
		"a":    {"a1", "a2"},
		"b":    {"b1"},
		"c":    {"c1", "c2", "c3"},
	}}
	r := NewResolver(dir, 0)

	first, err := r.Resolve(context.Background(), "root")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := r.Resolve(context.Background(), "root")
		require.NoError(t, err)
		assert.Equal(t, first.IDs, again.IDs)
	}
}

func TestResolve_DirectoryFailureAborts(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("directory unavailable")}
	r := NewResolver(dir, 0)

	_, err := r.Resolve(context.Background(), "root")
	assert.Error(t, err)
}

func TestResolve_SubtreeSizeLimit(t *testing.T) {
	dir := &fakeDirectory{reports: map[string][]string{
		"root": {"a", "b", "c", "d", "e"},
	}}
	r := NewResolver(dir, 3)

	_, err := r.Resolve(context.Background(), "root")
	assert.ErrorIs(t, err, report.ErrSubtreeTooLarge)
}
