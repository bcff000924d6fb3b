package assignmentmock

import (
	"context"
	"errors"

	domain "personnel-records-service/internal/domain/assignment"
	"personnel-records-service/internal/domain/classification"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("assignmentmock: method not implemented")

// Repo is a function-backed mock that satisfies assignment.Repository.
// Fill in the function fields you need in a test.
type Repo struct {
	CreateFn                     func(ctx context.Context, a *domain.Assignment) error
	SaveFn                       func(ctx context.Context, a *domain.Assignment) error
	GetByAssignmentIDFn          func(ctx context.Context, assignmentID string) (*domain.Assignment, error)
	GetByAssignmentIDForUpdateFn func(ctx context.Context, assignmentID string) (*domain.Assignment, error)
	CountByLevelFn               func(ctx context.Context, levelID uint64, kind classification.Kind) (int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Assignment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Assignment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAssignmentID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	if m.GetByAssignmentIDFn != nil {
		return m.GetByAssignmentIDFn(ctx, assignmentID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByAssignmentIDForUpdate(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	if m.GetByAssignmentIDForUpdateFn != nil {
		return m.GetByAssignmentIDForUpdateFn(ctx, assignmentID)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountByLevel(ctx context.Context, levelID uint64, kind classification.Kind) (int64, error) {
	if m.CountByLevelFn != nil {
		return m.CountByLevelFn(ctx, levelID, kind)
	}
	return 0, nil
}
