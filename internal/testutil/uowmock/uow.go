package uowmock

import (
	"context"
	"errors"

	"personnel-records-service/internal/domain/assignment"
	"personnel-records-service/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn           func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinAssignmentTxFn func(ctx context.Context, assignmentID string, fn func(r uow.Repos, a *assignment.Assignment) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW that runs callbacks immediately against the
// given repos, with no transaction semantics. The locked assignment is
// resolved through repos.Assignments.GetByAssignmentIDForUpdate.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinAssignmentTxFn: func(ctx context.Context, assignmentID string, fn func(r uow.Repos, a *assignment.Assignment) error) error {
			a, err := repos.Assignments.GetByAssignmentIDForUpdate(ctx, assignmentID)
			if err != nil {
				return err
			}
			return fn(repos, a)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinAssignmentTx(ctx context.Context, assignmentID string, fn func(r uow.Repos, a *assignment.Assignment) error) error {
	if m.WithinAssignmentTxFn != nil {
		return m.WithinAssignmentTxFn(ctx, assignmentID, fn)
	}
	return errUnimplemented
}
