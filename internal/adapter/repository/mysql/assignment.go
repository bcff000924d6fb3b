package mysql

import (
	"context"
	"errors"

	domain "personnel-records-service/internal/domain/assignment"
	"personnel-records-service/internal/domain/classification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository struct{ db *gorm.DB }

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AssignmentRepository) Save(ctx context.Context, a *domain.Assignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AssignmentRepository) GetByAssignmentID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	var out domain.Assignment
	res := r.db.WithContext(ctx).Where("assignment_id = ?", assignmentID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

// GetByAssignmentIDForUpdate locks the row so concurrent ledger writes on
// the same assignment serialize. Only meaningful inside a transaction.
func (r *AssignmentRepository) GetByAssignmentIDForUpdate(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	var out domain.Assignment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("assignment_id = ?", assignmentID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *AssignmentRepository) CountByLevel(ctx context.Context, levelID uint64, kind classification.Kind) (int64, error) {
	col := "staff_grade_id"
	if kind == classification.KindAcademicRank {
		col = "academic_rank_id"
	}
	var n int64
	res := r.db.WithContext(ctx).
		Model(&domain.Assignment{}).
		Where(col+" = ?", levelID).
		Count(&n)
	return n, res.Error
}
