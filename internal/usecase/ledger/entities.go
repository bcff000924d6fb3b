package ledger

import (
	"time"

	"personnel-records-service/internal/domain/classification"
)

type PromoteInput struct {
	AssignmentID  string
	ToLevelID     string
	Kind          classification.Kind
	EffectiveDate time.Time // date-only; stored .UTC()
	Reason        string    // optional for promotions
	PerformedBy   string    // 32-char hex actor id
}

type CorrectInput struct {
	AssignmentID  string
	ToLevelID     string
	Kind          classification.Kind
	EffectiveDate time.Time
	Reason        string // mandatory, >= 10 chars after trimming
	PerformedBy   string
}

type ChangeDTO struct {
	ChangeID      string              `json:"change_id"`
	AssignmentID  string              `json:"assignment_id"`
	Kind          classification.Kind `json:"kind"`
	ChangeKind    string              `json:"change_kind"`
	FromLevelID   string              `json:"from_level_id,omitempty"`
	FromLevelName string              `json:"from_level_name,omitempty"`
	ToLevelID     string              `json:"to_level_id"`
	ToLevelName   string              `json:"to_level_name"`
	EffectiveDate string              `json:"effective_date"`
	Reason        string              `json:"reason,omitempty"`
	PerformedBy   string              `json:"performed_by"`
	CreatedAt     time.Time           `json:"created_at"`
}

type LevelDTO struct {
	LevelID   string              `json:"level_id"`
	Kind      classification.Kind `json:"kind"`
	Name      string              `json:"name"`
	Code      string              `json:"code,omitempty"`
	Rank      int                 `json:"rank"`
	SortOrder int                 `json:"sort_order"`
}

// SummaryDTO backs the promotion/correction form: the current level plus the
// two selectable target sets.
type SummaryDTO struct {
	AssignmentID           string              `json:"assignment_id"`
	Kind                   classification.Kind `json:"kind"`
	Current                *LevelDTO           `json:"current,omitempty"`
	AvailableForPromotion  []LevelDTO          `json:"available_for_promotion"`
	AvailableForCorrection []LevelDTO          `json:"available_for_correction"`
}
