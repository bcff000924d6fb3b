package mysql

import (
	"testing"
	"time"

	classDomain "personnel-records-service/internal/domain/classification"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type levelSQLite struct {
	ID        uint64     `gorm:"primaryKey;column:id"`
	LevelID   string     `gorm:"size:32;column:level_id"`
	Kind      string     `gorm:"type:text;column:kind;uniqueIndex:ux_levels_kind_name"` // ← no enum
	Name      string     `gorm:"column:name;uniqueIndex:ux_levels_kind_name"`
	Code      string     `gorm:"column:code"`
	Rank      int        `gorm:"column:rank"`
	Active    bool       `gorm:"column:active"`
	SortOrder int        `gorm:"column:sort_order"`
	State     string     `gorm:"type:text;column:state"`
	TrashedAt *time.Time `gorm:"column:trashed_at"`
	TrashedBy string     `gorm:"column:trashed_by"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (levelSQLite) TableName() string { return "classification_levels" }

type assignmentSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	AssignmentID   string    `gorm:"size:32;column:assignment_id"`
	EmployeeID     string    `gorm:"size:32;column:employee_id"`
	OrgUnitID      string    `gorm:"size:32;column:org_unit_id"`
	Title          string    `gorm:"column:title"`
	AcademicRankID *uint64   `gorm:"column:academic_rank_id"`
	StaffGradeID   *uint64   `gorm:"column:staff_grade_id"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (assignmentSQLite) TableName() string { return "assignments" }

type changeSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	ChangeID      string    `gorm:"size:32;column:change_id"`
	AssignmentID  uint64    `gorm:"column:assignment_id"`
	Kind          string    `gorm:"type:text;column:kind"`
	ChangeKind    string    `gorm:"type:text;column:change_kind"`
	FromLevelID   *uint64   `gorm:"column:from_level_id"`
	ToLevelID     uint64    `gorm:"column:to_level_id"`
	EffectiveDate time.Time `gorm:"column:effective_date"`
	Reason        string    `gorm:"column:reason"`
	PerformedBy   string    `gorm:"size:32;column:performed_by"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (changeSQLite) TableName() string { return "classification_changes" }

type auditSQLite struct {
	ID          string    `gorm:"primaryKey;size:36;column:id"`
	Module      string    `gorm:"column:module"`
	EntityType  string    `gorm:"column:entity_type"`
	EntityID    string    `gorm:"column:entity_id"`
	Action      string    `gorm:"type:text;column:action"`
	Description string    `gorm:"column:description"`
	OldValues   string    `gorm:"column:old_values"`
	NewValues   string    `gorm:"column:new_values"`
	PerformedBy string    `gorm:"size:32;column:performed_by"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (auditSQLite) TableName() string { return "audit_entries" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&levelSQLite{}, &assignmentSQLite{}, &changeSQLite{}, &auditSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLevel(levelID string, kind classDomain.Kind, name string, rank int) *classDomain.Level {
	return &classDomain.Level{
		LevelID: levelID,
		Kind:    kind,
		Name:    name,
		Rank:    rank,
		Active:  true,
		State:   classDomain.StateActive,
	}
}
