package audit

import (
	"context"
	"time"
)

// Action is the lifecycle step an audit entry describes.
type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"
	ActionDeleted  Action = "deleted"
	ActionRestored Action = "restored"
	ActionPurged   Action = "purged"
)

// Values is a field→value map persisted as JSON. The raw typed values are
// stored as-is; normalization applies only to change detection, never to
// what gets written.
type Values map[string]any

// Entry is an immutable, append-only compliance record.
//
// Invariants:
//   - Entries are never updated or deleted.
//   - Entries are never read back for business decisions.
//   - Writes are best-effort; critical flows must not block on them.
type Entry struct {
	ID          string    `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	Module      string    `gorm:"column:module;size:64;not null" json:"module"`
	EntityType  string    `gorm:"column:entity_type;size:64;not null;index:idx_audit_entity,priority:1" json:"entity_type"`
	EntityID    string    `gorm:"column:entity_id;size:64;not null;index:idx_audit_entity,priority:2" json:"entity_id"`
	Action      Action    `gorm:"column:action;type:enum('created','updated','deleted','restored','purged');not null" json:"action"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	OldValues   Values    `gorm:"column:old_values;serializer:json" json:"old_values,omitempty"`
	NewValues   Values    `gorm:"column:new_values;serializer:json" json:"new_values,omitempty"`
	PerformedBy string    `gorm:"column:performed_by;type:char(32)" json:"performed_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "audit_entries" }

// Repository MUST be append-only; no Update/Delete methods are provided.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
}
