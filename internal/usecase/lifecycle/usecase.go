package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainAudit "personnel-records-service/internal/domain/audit"
	"personnel-records-service/internal/domain/authz"
	"personnel-records-service/internal/domain/classification"
	"personnel-records-service/internal/domain/uow"
	auditUC "personnel-records-service/internal/usecase/audit"
	"personnel-records-service/pkg/id"
)

const auditModule = "classification_levels"

// Usecase owns the lookup-entity lifecycle: create/update plus the
// active→trashed→purged transitions, with InUse guards and audit hooks.
type Usecase struct {
	uow       uow.UnitOfWork
	classRepo classification.Repository
	checker   authz.Checker
	auditor   *auditUC.Recorder
}

func NewUsecase(tx uow.UnitOfWork, classifications classification.Repository, checker authz.Checker, auditor *auditUC.Recorder) *Usecase {
	return &Usecase{uow: tx, classRepo: classifications, checker: checker, auditor: auditor}
}

func (u *Usecase) Create(ctx context.Context, in CreateLevelInput) (*LevelDTO, error) {
	if err := u.authorize(ctx, in.PerformedBy, authz.CapManageClassifications); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if !in.Kind.Valid() || name == "" {
		return nil, fmt.Errorf("%w: kind and name are required", classification.ErrValidation)
	}

	l := &classification.Level{
		LevelID:   id.NewID32(),
		Kind:      in.Kind,
		Name:      name,
		Code:      strings.TrimSpace(in.Code),
		Rank:      in.Rank,
		Active:    true,
		SortOrder: in.SortOrder,
		State:     classification.StateActive,
	}
	if err := u.classRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	auditUC.MustLog(u.auditor.LogCreated(ctx, auditModule, "classification_level", l.LevelID,
		fmt.Sprintf("%s %q created", kindLabel(l.Kind), l.Name), in.PerformedBy, snapshot(l)))

	dto := toDTO(l)
	return &dto, nil
}

// Update applies the touched fields, then diffs the before/after snapshot
// through the normalizer. When nothing real changed, no audit entry is written
// at all.
func (u *Usecase) Update(ctx context.Context, in UpdateLevelInput) (*LevelDTO, error) {
	if err := u.authorize(ctx, in.PerformedBy, authz.CapManageClassifications); err != nil {
		return nil, err
	}
	l, err := u.classRepo.GetByLevelID(ctx, in.LevelID)
	if err != nil {
		return nil, err
	}

	before := snapshot(l)
	if in.Name != nil {
		l.Name = strings.TrimSpace(*in.Name)
	}
	if in.Code != nil {
		l.Code = strings.TrimSpace(*in.Code)
	}
	if in.Rank != nil {
		l.Rank = *in.Rank
	}
	if in.Active != nil {
		l.Active = *in.Active
	}
	if in.SortOrder != nil {
		l.SortOrder = *in.SortOrder
	}
	if err := u.classRepo.Save(ctx, l); err != nil {
		return nil, err
	}

	oldVals, newVals := auditUC.DiffFields(before, snapshot(l))
	if len(newVals) > 0 {
		auditUC.MustLog(u.auditor.LogUpdated(ctx, auditModule, "classification_level", l.LevelID,
			auditUC.DescribeChanges(oldVals, newVals), in.PerformedBy,
			domainAudit.Values(oldVals), domainAudit.Values(newVals)))
	}

	dto := toDTO(l)
	return &dto, nil
}

// Trash soft-deletes: active→trashed, guarded by the assignment reference
// count. Trashed rows stay loadable but drop out of default listings.
func (u *Usecase) Trash(ctx context.Context, levelID, performedBy string) error {
	if err := u.authorize(ctx, performedBy, authz.CapDeleteClassification); err != nil {
		return err
	}
	var trashed *classification.Level

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Classifications.GetByLevelID(ctx, levelID)
		if err != nil {
			return err
		}
		if !l.State.CanTransitionTo(classification.StateTrashed) {
			return classification.ErrInvalidTransition
		}
		n, err := r.Assignments.CountByLevel(ctx, l.ID, l.Kind)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: referenced by %d assignment(s)", classification.ErrInUse, n)
		}

		now := time.Now().UTC()
		l.State = classification.StateTrashed
		l.TrashedAt = &now
		l.TrashedBy = performedBy
		if err := r.Classifications.Save(ctx, l); err != nil {
			return err
		}
		trashed = l
		return nil
	})
	if err != nil {
		return err
	}

	auditUC.MustLog(u.auditor.LogDeleted(ctx, auditModule, "classification_level", trashed.LevelID,
		fmt.Sprintf("%s %q moved to trash; hidden from normal views, not destroyed", kindLabel(trashed.Kind), trashed.Name),
		performedBy, snapshot(trashed)))
	return nil
}

// Restore is unguarded: trashed→active.
func (u *Usecase) Restore(ctx context.Context, levelID, performedBy string) error {
	if err := u.authorize(ctx, performedBy, authz.CapDeleteClassification); err != nil {
		return err
	}
	l, err := u.classRepo.GetByLevelID(ctx, levelID)
	if err != nil {
		return err
	}
	if !l.State.CanTransitionTo(classification.StateActive) {
		return classification.ErrInvalidTransition
	}
	l.State = classification.StateActive
	l.TrashedAt = nil
	l.TrashedBy = ""
	if err := u.classRepo.Save(ctx, l); err != nil {
		return err
	}

	auditUC.MustLog(u.auditor.LogRestored(ctx, auditModule, "classification_level", l.LevelID,
		fmt.Sprintf("%s %q restored from trash", kindLabel(l.Kind), l.Name), performedBy))
	return nil
}

// Purge removes the row permanently. Only trashed rows may be purged, and
// the audit entry is written first: after the delete there is no row left
// to describe.
func (u *Usecase) Purge(ctx context.Context, levelID, performedBy string) error {
	if err := u.authorize(ctx, performedBy, authz.CapPurgeClassification); err != nil {
		return err
	}
	l, err := u.classRepo.GetByLevelID(ctx, levelID)
	if err != nil {
		return err
	}
	if !l.State.CanTransitionTo(classification.StatePurged) {
		return classification.ErrInvalidTransition
	}

	auditUC.MustLog(u.auditor.LogPurged(ctx, auditModule, "classification_level", l.LevelID,
		fmt.Sprintf("%s %q permanently deleted", kindLabel(l.Kind), l.Name), performedBy, snapshot(l)))

	return u.classRepo.HardDelete(ctx, l)
}

// List shows active levels by default; trashed rows only on request.
// Purged rows cannot appear: they no longer exist.
func (u *Usecase) List(ctx context.Context, kind classification.Kind, showTrashed bool) ([]LevelDTO, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown classification kind %q", classification.ErrValidation, kind)
	}
	levels, err := u.classRepo.List(ctx, classification.ListFilter{Kind: kind, ShowTrashed: showTrashed})
	if err != nil {
		return nil, err
	}
	out := make([]LevelDTO, 0, len(levels))
	for i := range levels {
		out = append(out, toDTO(&levels[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, levelID string) (*LevelDTO, error) {
	l, err := u.classRepo.GetByLevelID(ctx, levelID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(l)
	return &dto, nil
}

func (u *Usecase) authorize(ctx context.Context, performerID string, cap authz.Capability) error {
	if u.checker == nil || performerID == "" {
		return authz.ErrUnauthorized
	}
	ok, err := u.checker.Can(ctx, performerID, cap)
	if err != nil {
		return err
	}
	if !ok {
		return authz.ErrUnauthorized
	}
	return nil
}

// snapshot lists the audited fields of a level. Static field table on
// purpose: the diff engine compares exactly these, nothing stringly-typed.
func snapshot(l *classification.Level) map[string]any {
	return map[string]any{
		"name":       l.Name,
		"code":       l.Code,
		"rank":       l.Rank,
		"active":     l.Active,
		"sort_order": l.SortOrder,
	}
}

func kindLabel(k classification.Kind) string {
	if k == classification.KindAcademicRank {
		return "Academic rank"
	}
	return "Staff grade"
}

func toDTO(l *classification.Level) LevelDTO {
	return LevelDTO{
		LevelID:   l.LevelID,
		Kind:      l.Kind,
		Name:      l.Name,
		Code:      l.Code,
		Rank:      l.Rank,
		Active:    l.Active,
		SortOrder: l.SortOrder,
		State:     l.State,
		CreatedAt: l.CreatedAt,
	}
}
