package mysql

import (
	"context"
	"errors"

	domain "personnel-records-service/internal/domain/classification"

	"gorm.io/gorm"
)

type ClassificationRepository struct{ db *gorm.DB }

func NewClassificationRepository(db *gorm.DB) *ClassificationRepository {
	return &ClassificationRepository{db: db}
}

func (r *ClassificationRepository) Create(ctx context.Context, l *domain.Level) error {
	err := r.db.WithContext(ctx).Create(l).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateName
	}
	return err
}

func (r *ClassificationRepository) Save(ctx context.Context, l *domain.Level) error {
	err := r.db.WithContext(ctx).Save(l).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateName
	}
	return err
}

func (r *ClassificationRepository) GetByID(ctx context.Context, id uint64) (*domain.Level, error) {
	var out domain.Level
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ClassificationRepository) GetByLevelID(ctx context.Context, levelID string) (*domain.Level, error) {
	var out domain.Level
	res := r.db.WithContext(ctx).Where("level_id = ?", levelID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ClassificationRepository) GetAssignableByLevelID(ctx context.Context, levelID string, kind domain.Kind) (*domain.Level, error) {
	var out domain.Level
	res := r.db.WithContext(ctx).
		Where("level_id = ? AND kind = ? AND active = ? AND state = ?",
			levelID, kind, true, domain.StateActive).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ClassificationRepository) List(ctx context.Context, f domain.ListFilter) ([]domain.Level, error) {
	q := r.db.WithContext(ctx).Where("kind = ?", f.Kind)
	if !f.ShowTrashed {
		q = q.Where("state = ?", domain.StateActive)
	}
	var out []domain.Level
	res := q.Order("sort_order ASC, `rank` ASC, name ASC").Find(&out)
	return out, res.Error
}

func (r *ClassificationRepository) ListAssignable(ctx context.Context, kind domain.Kind, minRank int) ([]domain.Level, error) {
	q := r.db.WithContext(ctx).
		Where("kind = ? AND active = ? AND state = ?", kind, true, domain.StateActive)
	if minRank >= 0 {
		q = q.Where("`rank` > ?", minRank)
	}
	var out []domain.Level
	res := q.Order("`rank` ASC, sort_order ASC").Find(&out)
	return out, res.Error
}

// HardDelete removes the row for good. Callers (the lifecycle usecase) have
// already written the purge audit entry.
func (r *ClassificationRepository) HardDelete(ctx context.Context, l *domain.Level) error {
	return r.db.WithContext(ctx).Unscoped().Delete(l).Error
}
