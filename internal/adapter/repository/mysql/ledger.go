package mysql

import (
	"context"
	"errors"

	"personnel-records-service/internal/domain/classification"
	domain "personnel-records-service/internal/domain/ledger"

	"gorm.io/gorm"
)

// LedgerRepository is insert-only; there are deliberately no update or
// delete paths for classification_changes rows.
type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Create(ctx context.Context, c *domain.ClassificationChange) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *LedgerRepository) GetByChangeID(ctx context.Context, changeID string) (*domain.ClassificationChange, error) {
	var out domain.ClassificationChange
	res := r.db.WithContext(ctx).Where("change_id = ?", changeID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LedgerRepository) ListByAssignment(ctx context.Context, assignmentID uint64, kind classification.Kind) ([]domain.ClassificationChange, error) {
	var out []domain.ClassificationChange
	res := r.db.WithContext(ctx).
		Where("assignment_id = ? AND kind = ?", assignmentID, kind).
		Order("effective_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}
