package classificationmock

import (
	"context"
	"errors"

	domain "personnel-records-service/internal/domain/classification"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("classificationmock: method not implemented")

// Repo is a function-backed mock that satisfies classification.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Level) error
	SaveFn                   func(ctx context.Context, l *domain.Level) error
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Level, error)
	GetByLevelIDFn           func(ctx context.Context, levelID string) (*domain.Level, error)
	GetAssignableByLevelIDFn func(ctx context.Context, levelID string, kind domain.Kind) (*domain.Level, error)
	ListFn                   func(ctx context.Context, f domain.ListFilter) ([]domain.Level, error)
	ListAssignableFn         func(ctx context.Context, kind domain.Kind, minRank int) ([]domain.Level, error)
	HardDeleteFn             func(ctx context.Context, l *domain.Level) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Level) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Level) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Level, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLevelID(ctx context.Context, levelID string) (*domain.Level, error) {
	if m.GetByLevelIDFn != nil {
		return m.GetByLevelIDFn(ctx, levelID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetAssignableByLevelID(ctx context.Context, levelID string, kind domain.Kind) (*domain.Level, error) {
	if m.GetAssignableByLevelIDFn != nil {
		return m.GetAssignableByLevelIDFn(ctx, levelID, kind)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Level, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) ListAssignable(ctx context.Context, kind domain.Kind, minRank int) ([]domain.Level, error) {
	if m.ListAssignableFn != nil {
		return m.ListAssignableFn(ctx, kind, minRank)
	}
	return nil, nil
}

func (m *Repo) HardDelete(ctx context.Context, l *domain.Level) error {
	if m.HardDeleteFn != nil {
		return m.HardDeleteFn(ctx, l)
	}
	return nil
}
