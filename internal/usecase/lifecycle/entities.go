package lifecycle

import (
	"time"

	"personnel-records-service/internal/domain/classification"
)

type CreateLevelInput struct {
	Kind        classification.Kind
	Name        string
	Code        string
	Rank        int
	SortOrder   int
	PerformedBy string
}

// UpdateLevelInput carries the editable fields. Pointer fields distinguish
// "not sent" from a real value so the diff engine only sees touched fields.
type UpdateLevelInput struct {
	LevelID     string
	Name        *string
	Code        *string
	Rank        *int
	Active      *bool
	SortOrder   *int
	PerformedBy string
}

type LevelDTO struct {
	LevelID   string               `json:"level_id"`
	Kind      classification.Kind  `json:"kind"`
	Name      string               `json:"name"`
	Code      string               `json:"code,omitempty"`
	Rank      int                  `json:"rank"`
	Active    bool                 `json:"active"`
	SortOrder int                  `json:"sort_order"`
	State     classification.State `json:"state"`
	CreatedAt time.Time            `json:"created_at"`
}
