package project

import "context"

type ProjectRepository interface {
	// GetByID returns ErrProjectNotFound when the project does not exist.
	GetByID(ctx context.Context, id string) (Project, error)

	// GetNamesByIDs maps project ids to display names for report shaping.
	// Unknown ids are absent from the map.
	GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}
