package assignment

import (
	"context"

	"personnel-records-service/internal/domain/classification"
)

type Repository interface {
	Create(ctx context.Context, a *Assignment) error
	Save(ctx context.Context, a *Assignment) error
	GetByAssignmentID(ctx context.Context, assignmentID string) (*Assignment, error)
	// GetByAssignmentIDForUpdate row-locks the assignment inside the current
	// transaction so concurrent ledger writes serialize.
	GetByAssignmentIDForUpdate(ctx context.Context, assignmentID string) (*Assignment, error)
	// CountByLevel counts assignments whose projection of either kind points
	// at the given classification level. Used as the InUse guard.
	CountByLevel(ctx context.Context, levelID uint64, kind classification.Kind) (int64, error)
}
