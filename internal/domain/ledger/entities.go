package ledger

import (
	"errors"
	"time"

	"personnel-records-service/internal/domain/classification"
)

var (
	ErrNotFound                  = errors.New("classification change not found")
	ErrValidation                = errors.New("validation failed")
	ErrInvalidPromotionDirection = errors.New("promotion target level must be higher than current level")
	ErrReasonTooShort            = errors.New("correction reason must be at least 10 characters")
	ErrBadEffectiveDate          = errors.New("effective date is malformed")
)

// MinReasonLen applies to corrections only; promotions may omit the reason.
const MinReasonLen = 10

type ChangeKind string

const (
	ChangePromotion  ChangeKind = "promotion"
	ChangeCorrection ChangeKind = "correction"
)

// ClassificationChange is one immutable ledger entry. Rows are insert-only:
// the repository exposes no update or delete, and the full career history of
// an assignment+kind is the ordered set of its entries.
type ClassificationChange struct {
	ID            uint64              `gorm:"primaryKey;column:id" json:"-"`
	ChangeID      string              `gorm:"column:change_id;type:char(32);not null;uniqueIndex:ux_changes_change_id" json:"change_id"`
	AssignmentID  uint64              `gorm:"column:assignment_id;not null;index:idx_changes_assignment_kind,priority:1" json:"-"`
	Kind          classification.Kind `gorm:"column:kind;type:enum('academic_rank','staff_grade');not null;index:idx_changes_assignment_kind,priority:2" json:"kind"`
	ChangeKind    ChangeKind          `gorm:"column:change_kind;type:enum('promotion','correction');not null" json:"change_kind"`
	FromLevelID   *uint64             `gorm:"column:from_level_id" json:"-"`
	ToLevelID     uint64              `gorm:"column:to_level_id;not null" json:"-"`
	EffectiveDate time.Time           `gorm:"column:effective_date;type:date;not null" json:"effective_date"`
	Reason        string              `gorm:"column:reason;type:text" json:"reason,omitempty"`
	PerformedBy   string              `gorm:"column:performed_by;type:char(32);not null" json:"performed_by"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ClassificationChange) TableName() string { return "classification_changes" }
