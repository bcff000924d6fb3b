package uow

import (
	"context"

	"personnel-records-service/internal/domain/assignment"
	"personnel-records-service/internal/domain/classification"
	"personnel-records-service/internal/domain/ledger"
)

type Repos struct {
	Assignments     assignment.Repository
	Classifications classification.Repository
	Changes         ledger.Repository
}

// UnitOfWork binds all three repositories to one transaction so a ledger
// insert and its projection update commit or fail together.
type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the assignment row first, then pass it in
	WithinAssignmentTx(ctx context.Context, assignmentID string, fn func(r Repos, a *assignment.Assignment) error) error
}
