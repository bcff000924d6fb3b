package classification

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("classification level not found")
	ErrValidation        = errors.New("validation failed")
	ErrInUse             = errors.New("classification level is still assigned")
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	ErrDuplicateName     = errors.New("classification name already exists for kind")
)

// Kind selects the classification track. Ledger and lifecycle logic is
// written once and parameterized by Kind; there are no per-kind tables.
type Kind string

const (
	KindAcademicRank Kind = "academic_rank"
	KindStaffGrade   Kind = "staff_grade"
)

func (k Kind) Valid() bool {
	return k == KindAcademicRank || k == KindStaffGrade
}

// State is the lifecycle of a lookup entity. StatePurged is terminal and
// never stored: purging removes the row after its audit entry is written.
type State string

const (
	StateActive  State = "active"
	StateTrashed State = "trashed"
	StatePurged  State = "purged"
)

// CanTransitionTo encodes the full transition table:
// active→trashed, trashed→active, trashed→purged.
func (s State) CanTransitionTo(to State) bool {
	switch s {
	case StateActive:
		return to == StateTrashed
	case StateTrashed:
		return to == StateActive || to == StatePurged
	}
	return false
}

// Level is one rung of a classification track (an academic rank or a staff
// grade). Rank is the sole ordering key for promotion validity.
type Level struct {
	ID        uint64     `gorm:"primaryKey;column:id" json:"-"`
	LevelID   string     `gorm:"column:level_id;type:char(32);not null;uniqueIndex:ux_levels_level_id" json:"level_id"`
	Kind      Kind       `gorm:"column:kind;type:enum('academic_rank','staff_grade');not null;uniqueIndex:ux_levels_kind_name,priority:1" json:"kind"`
	Name      string     `gorm:"column:name;size:120;not null;uniqueIndex:ux_levels_kind_name,priority:2" json:"name"`
	Code      string     `gorm:"column:code;size:16" json:"code,omitempty"`
	Rank      int        `gorm:"column:rank;not null" json:"rank"`
	Active    bool       `gorm:"column:active;default:true" json:"active"`
	SortOrder int        `gorm:"column:sort_order;default:0" json:"sort_order"`
	State     State      `gorm:"column:state;type:enum('active','trashed');default:'active';index" json:"state"`
	TrashedAt *time.Time `gorm:"column:trashed_at" json:"-"`
	TrashedBy string     `gorm:"column:trashed_by;type:char(32)" json:"-"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Level) TableName() string { return "classification_levels" }

// Assignable reports whether the level may be the target of a ledger entry.
func (l *Level) Assignable() bool {
	return l.Active && l.State == StateActive
}
