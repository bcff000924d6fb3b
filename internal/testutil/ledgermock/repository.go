package ledgermock

import (
	"context"
	"errors"

	"personnel-records-service/internal/domain/classification"
	domain "personnel-records-service/internal/domain/ledger"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("ledgermock: method not implemented")

// Repo is a function-backed mock that satisfies ledger.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, c *domain.ClassificationChange) error
	GetByChangeIDFn    func(ctx context.Context, changeID string) (*domain.ClassificationChange, error)
	ListByAssignmentFn func(ctx context.Context, assignmentID uint64, kind classification.Kind) ([]domain.ClassificationChange, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.ClassificationChange) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByChangeID(ctx context.Context, changeID string) (*domain.ClassificationChange, error) {
	if m.GetByChangeIDFn != nil {
		return m.GetByChangeIDFn(ctx, changeID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByAssignment(ctx context.Context, assignmentID uint64, kind classification.Kind) ([]domain.ClassificationChange, error) {
	if m.ListByAssignmentFn != nil {
		return m.ListByAssignmentFn(ctx, assignmentID, kind)
	}
	return nil, nil
}
