package assignment

import (
	"errors"
	"time"

	"personnel-records-service/internal/domain/classification"
)

var ErrNotFound = errors.New("assignment not found")

// Assignment designates an employee to an organizational role. The two
// current-classification columns are projections of the ledger: they always
// equal the latest ledger entry's target for their kind and are written only
// inside ledger transactions.
type Assignment struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	AssignmentID   string    `gorm:"column:assignment_id;type:char(32);not null;uniqueIndex:ux_assignments_assignment_id" json:"assignment_id"`
	EmployeeID     string    `gorm:"column:employee_id;type:char(32);not null;index" json:"employee_id"`
	OrgUnitID      string    `gorm:"column:org_unit_id;type:char(32);not null;index" json:"org_unit_id"`
	Title          string    `gorm:"column:title;size:160" json:"title"`
	AcademicRankID *uint64   `gorm:"column:academic_rank_id;index" json:"-"`
	StaffGradeID   *uint64   `gorm:"column:staff_grade_id;index" json:"-"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Assignment) TableName() string { return "assignments" }

// CurrentLevelRef returns the projection column for kind.
func (a *Assignment) CurrentLevelRef(kind classification.Kind) *uint64 {
	if kind == classification.KindAcademicRank {
		return a.AcademicRankID
	}
	return a.StaffGradeID
}

// SetCurrentLevelRef updates the projection column for kind.
func (a *Assignment) SetCurrentLevelRef(kind classification.Kind, levelID uint64) {
	if kind == classification.KindAcademicRank {
		a.AcademicRankID = &levelID
		return
	}
	a.StaffGradeID = &levelID
}
