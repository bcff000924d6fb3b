package mysql

import (
	"context"

	domain "personnel-records-service/internal/domain/audit"

	"gorm.io/gorm"
)

// AuditRepository appends audit_entries. Append-only: no update or delete
// is exposed anywhere for this table.
type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Append(ctx context.Context, e *domain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}
