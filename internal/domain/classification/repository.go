package classification

import "context"

// ListFilter controls lifecycle visibility. Default views show only active
// rows; trashed rows appear only when explicitly requested.
type ListFilter struct {
	Kind        Kind
	ShowTrashed bool
}

type Repository interface {
	Create(ctx context.Context, l *Level) error
	Save(ctx context.Context, l *Level) error
	GetByID(ctx context.Context, id uint64) (*Level, error)
	GetByLevelID(ctx context.Context, levelID string) (*Level, error)
	// GetAssignableByLevelID resolves a promotion/correction target:
	// the level must exist, match kind, and be active.
	GetAssignableByLevelID(ctx context.Context, levelID string, kind Kind) (*Level, error)
	List(ctx context.Context, f ListFilter) ([]Level, error)
	// ListAssignable returns active levels of kind with rank strictly above
	// minRank, ordered by rank. minRank < 0 means no floor.
	ListAssignable(ctx context.Context, kind Kind, minRank int) ([]Level, error)
	// HardDelete removes the row permanently. Callers must have written the
	// purge audit entry first; the row is unloadable afterwards.
	HardDelete(ctx context.Context, l *Level) error
}
