package hierarchy

import (
	"context"
	"fmt"

	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/employee"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

// Subtree is the flattened set of a manager's direct and indirect reports.
// IDs are in traversal order (level by level, parents before children) and
// each id appears at most once regardless of the shape of the underlying data.
type Subtree struct {
	IDs        []string
	TotalCount int
}

const defaultLevelConcurrency = 8

type Resolver struct {
	directory      employee.EmployeeRepository
	maxSubtreeSize int
}

func NewResolver(directory employee.EmployeeRepository, maxSubtreeSize int) *Resolver {
	return &Resolver{
		directory:      directory,
		maxSubtreeSize: maxSubtreeSize,
	}
}

// Resolve walks the reporting tree breadth-first from rootID. The per-level
// direct-report queries run concurrently; results are merged in parent order
// so the output is deterministic. The visited set guarantees termination even
// when the stored edges contain a cycle (malformed data, not a supported
// shape). A root with no reports yields an empty subtree, not an error.
func (r *Resolver) Resolve(ctx context.Context, rootID string) (Subtree, error) {
	visited := map[string]struct{}{rootID: {}}
	var ids []string

	frontier := []string{rootID}
	for len(frontier) > 0 {
		children := make([][]employee.Employee, len(frontier))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(defaultLevelConcurrency)
		for i, parentID := range frontier {
			i, parentID := i, parentID
			g.Go(func() error {
				reports, err := r.directory.GetDirectReports(gctx, parentID)
				if err != nil {
					return fmt.Errorf("failed to get direct reports of %s: %w", parentID, err)
				}
				children[i] = reports
				return nil
			})
		}
		// Fail closed: a partial level must never produce a silently
		// incomplete subtree.
		if err := g.Wait(); err != nil {
			return Subtree{}, err
		}

		var next []string
		for _, reports := range children {
			for _, e := range reports {
				if _, seen := visited[e.ID]; seen {
					continue
				}
				visited[e.ID] = struct{}{}
				ids = append(ids, e.ID)
				next = append(next, e.ID)

				if r.maxSubtreeSize > 0 && len(ids) > r.maxSubtreeSize {
					return Subtree{}, report.ErrSubtreeTooLarge
				}
			}
		}
		frontier = next
	}

	return Subtree{IDs: ids, TotalCount: len(ids)}, nil
}
