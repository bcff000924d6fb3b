package ledger

import (
	"context"

	"personnel-records-service/internal/domain/classification"
)

// Repository is append-only. No Update or Delete by design: ledger entries
// are immutable once written.
type Repository interface {
	Create(ctx context.Context, c *ClassificationChange) error
	GetByChangeID(ctx context.Context, changeID string) (*ClassificationChange, error)
	// ListByAssignment returns the full history for one assignment+kind,
	// effective date descending, insertion order descending on ties.
	ListByAssignment(ctx context.Context, assignmentID uint64, kind classification.Kind) ([]ClassificationChange, error)
}
