package audit

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	domain "personnel-records-service/internal/domain/audit"
)

var ErrInvalidEntry = errors.New("audit: invalid entry")

// Recorder persists compliance records for lifecycle actions.
//
// Callers must treat every Log* method as best-effort: a failed audit write
// is reported through the returned error (and logged by MustLog) but never
// rolls back the business change it describes. This is the deliberate
// opposite of the ledger, where entry and projection commit atomically.
type Recorder struct {
	repo  domain.Repository
	clock func() time.Time
}

func NewRecorder(repo domain.Repository) *Recorder {
	return &Recorder{repo: repo, clock: time.Now}
}

func (r *Recorder) append(ctx context.Context, e domain.Entry) error {
	if r.repo == nil {
		return errors.New("audit: repository not configured")
	}
	if e.Module == "" || e.EntityType == "" || e.EntityID == "" || e.Action == "" {
		return ErrInvalidEntry
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.clock().UTC()
	}
	return r.repo.Append(ctx, &e)
}

func (r *Recorder) LogCreated(ctx context.Context, module, entityType, entityID, description, performedBy string, newValues domain.Values) error {
	return r.append(ctx, domain.Entry{
		Module:      module,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      domain.ActionCreated,
		Description: description,
		NewValues:   newValues,
		PerformedBy: performedBy,
	})
}

// LogUpdated expects oldValues/newValues already filtered to changed fields
// via DiffFields; it does not re-filter. Callers skip the call entirely when
// the diff is empty, so representation-only updates leave no audit entries.
func (r *Recorder) LogUpdated(ctx context.Context, module, entityType, entityID, description, performedBy string, oldValues, newValues domain.Values) error {
	return r.append(ctx, domain.Entry{
		Module:      module,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      domain.ActionUpdated,
		Description: description,
		OldValues:   oldValues,
		NewValues:   newValues,
		PerformedBy: performedBy,
	})
}

func (r *Recorder) LogDeleted(ctx context.Context, module, entityType, entityID, description, performedBy string, oldValues domain.Values) error {
	return r.append(ctx, domain.Entry{
		Module:      module,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      domain.ActionDeleted,
		Description: description,
		OldValues:   oldValues,
		PerformedBy: performedBy,
	})
}

func (r *Recorder) LogRestored(ctx context.Context, module, entityType, entityID, description, performedBy string) error {
	return r.append(ctx, domain.Entry{
		Module:      module,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      domain.ActionRestored,
		Description: description,
		PerformedBy: performedBy,
	})
}

// LogPurged must run while the entity row still exists: after the hard
// delete there is nothing left to describe.
func (r *Recorder) LogPurged(ctx context.Context, module, entityType, entityID, description, performedBy string, oldValues domain.Values) error {
	return r.append(ctx, domain.Entry{
		Module:      module,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      domain.ActionPurged,
		Description: description,
		OldValues:   oldValues,
		PerformedBy: performedBy,
	})
}

// MustLog swallows an audit error after logging it, for call sites where the
// business result is already committed.
func MustLog(err error) {
	if err != nil {
		log.Printf("audit write failed (business state unaffected): %v", err)
	}
}
