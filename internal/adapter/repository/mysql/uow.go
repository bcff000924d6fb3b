package mysql

import (
	"context"

	"personnel-records-service/internal/domain/assignment"
	"personnel-records-service/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinAssignmentTx(ctx context.Context, assignmentID string, fn func(r uow.Repos, a *assignment.Assignment) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the assignment row up-front to prevent races
		a, err := r.Assignments.GetByAssignmentIDForUpdate(ctx, assignmentID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Assignments:     &AssignmentRepository{db: tx},
		Classifications: &ClassificationRepository{db: tx},
		Changes:         &LedgerRepository{db: tx},
	}
}
