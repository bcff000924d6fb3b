package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainAssignment "personnel-records-service/internal/domain/assignment"
	domainAudit "personnel-records-service/internal/domain/audit"
	"personnel-records-service/internal/domain/authz"
	"personnel-records-service/internal/domain/classification"
	domainLedger "personnel-records-service/internal/domain/ledger"
	"personnel-records-service/internal/domain/uow"
	auditUC "personnel-records-service/internal/usecase/audit"
	"personnel-records-service/pkg/id"
)

const auditModule = "classification_ledger"

// Usecase owns promotion/correction semantics: every write inserts an
// immutable ledger entry and moves the assignment's current-classification
// projection inside one transaction.
type Usecase struct {
	uow        uow.UnitOfWork
	assignRepo domainAssignment.Repository
	classRepo  classification.Repository
	changeRepo domainLedger.Repository
	checker    authz.Checker
	auditor    *auditUC.Recorder
}

func NewUsecase(
	tx uow.UnitOfWork,
	assignments domainAssignment.Repository,
	classifications classification.Repository,
	changes domainLedger.Repository,
	checker authz.Checker,
	auditor *auditUC.Recorder,
) *Usecase {
	return &Usecase{
		uow:        tx,
		assignRepo: assignments,
		classRepo:  classifications,
		changeRepo: changes,
		checker:    checker,
		auditor:    auditor,
	}
}

func (u *Usecase) Promote(ctx context.Context, in PromoteInput) (*ChangeDTO, error) {
	if err := u.authorize(ctx, in.PerformedBy, authz.CapPromote); err != nil {
		return nil, err
	}
	if err := validateCommon(in.Kind, in.EffectiveDate, in.PerformedBy); err != nil {
		return nil, err
	}
	return u.apply(ctx, applyInput{
		assignmentID:  in.AssignmentID,
		toLevelID:     in.ToLevelID,
		kind:          in.Kind,
		changeKind:    domainLedger.ChangePromotion,
		effectiveDate: in.EffectiveDate,
		reason:        strings.TrimSpace(in.Reason),
		performedBy:   in.PerformedBy,
	})
}

func (u *Usecase) Correct(ctx context.Context, in CorrectInput) (*ChangeDTO, error) {
	if err := u.authorize(ctx, in.PerformedBy, authz.CapCorrect); err != nil {
		return nil, err
	}
	if err := validateCommon(in.Kind, in.EffectiveDate, in.PerformedBy); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(in.Reason)
	if len(reason) < domainLedger.MinReasonLen {
		return nil, domainLedger.ErrReasonTooShort
	}
	return u.apply(ctx, applyInput{
		assignmentID:  in.AssignmentID,
		toLevelID:     in.ToLevelID,
		kind:          in.Kind,
		changeKind:    domainLedger.ChangeCorrection,
		effectiveDate: in.EffectiveDate,
		reason:        reason,
		performedBy:   in.PerformedBy,
	})
}

type applyInput struct {
	assignmentID  string
	toLevelID     string
	kind          classification.Kind
	changeKind    domainLedger.ChangeKind
	effectiveDate time.Time
	reason        string
	performedBy   string
}

// apply runs the shared promote/correct path. Read of current state,
// direction check, ledger insert and projection update all happen under one
// row-locked transaction; a failure anywhere leaves both untouched.
func (u *Usecase) apply(ctx context.Context, in applyInput) (*ChangeDTO, error) {
	var dto *ChangeDTO
	var fromLevel, toLevel *classification.Level

	err := u.uow.WithinAssignmentTx(ctx, in.assignmentID, func(r uow.Repos, a *domainAssignment.Assignment) error {
		target, err := r.Classifications.GetAssignableByLevelID(ctx, in.toLevelID, in.kind)
		if err != nil {
			return err
		}
		toLevel = target

		var fromID *uint64
		if cur := a.CurrentLevelRef(in.kind); cur != nil {
			current, err := r.Classifications.GetByID(ctx, *cur)
			if err != nil {
				return err
			}
			fromLevel = current
			fromID = &current.ID
			// promotions move strictly upward; corrections may go anywhere
			if in.changeKind == domainLedger.ChangePromotion && target.Rank <= current.Rank {
				return domainLedger.ErrInvalidPromotionDirection
			}
		}

		change := &domainLedger.ClassificationChange{
			ChangeID:      id.NewID32(),
			AssignmentID:  a.ID,
			Kind:          in.kind,
			ChangeKind:    in.changeKind,
			FromLevelID:   fromID,
			ToLevelID:     target.ID,
			EffectiveDate: in.effectiveDate.UTC(),
			Reason:        in.reason,
			PerformedBy:   in.performedBy,
		}
		if err := r.Changes.Create(ctx, change); err != nil {
			return err
		}

		a.SetCurrentLevelRef(in.kind, target.ID)
		if err := r.Assignments.Save(ctx, a); err != nil {
			return err
		}

		dto = toChangeDTO(change, in.assignmentID, fromLevel, target)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.recordProjectionChange(ctx, in, fromLevel, toLevel)
	return dto, nil
}

// recordProjectionChange writes the compliance entry after the transaction
// committed. Best-effort only: the promotion stands even if this fails.
func (u *Usecase) recordProjectionChange(ctx context.Context, in applyInput, from, to *classification.Level) {
	if u.auditor == nil {
		return
	}
	field := projectionField(in.kind)
	before := map[string]any{field: nil}
	if from != nil {
		before[field] = from.Name
	}
	after := map[string]any{field: to.Name}

	oldVals, newVals := auditUC.DiffFields(before, after)
	if len(newVals) == 0 {
		return
	}
	desc := fmt.Sprintf("%s via %s: %s", auditUC.HumanizeField(field), in.changeKind,
		auditUC.FormatDisplay(before[field])+" > "+auditUC.FormatDisplay(after[field]))
	auditUC.MustLog(u.auditor.LogUpdated(ctx, auditModule, "assignment", in.assignmentID,
		desc, in.performedBy, domainAudit.Values(oldVals), domainAudit.Values(newVals)))
}

// History returns all entries for one assignment+kind, most recent first.
// Always read through to the store, never cached.
func (u *Usecase) History(ctx context.Context, assignmentID string, kind classification.Kind) ([]ChangeDTO, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown classification kind %q", domainLedger.ErrValidation, kind)
	}
	a, err := u.assignRepo.GetByAssignmentID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	changes, err := u.changeRepo.ListByAssignment(ctx, a.ID, kind)
	if err != nil {
		return nil, err
	}

	out := make([]ChangeDTO, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		var from, to *classification.Level
		if c.FromLevelID != nil {
			if from, err = u.classRepo.GetByID(ctx, *c.FromLevelID); err != nil {
				return nil, err
			}
		}
		if to, err = u.classRepo.GetByID(ctx, c.ToLevelID); err != nil {
			return nil, err
		}
		out = append(out, *toChangeDTO(c, assignmentID, from, to))
	}
	return out, nil
}

// CurrentLevelSummary answers the promotion form: current level, the levels
// strictly above it (or all, when none is set), and every active level for
// corrections.
func (u *Usecase) CurrentLevelSummary(ctx context.Context, assignmentID string, kind classification.Kind) (*SummaryDTO, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown classification kind %q", domainLedger.ErrValidation, kind)
	}
	a, err := u.assignRepo.GetByAssignmentID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	out := &SummaryDTO{AssignmentID: assignmentID, Kind: kind}
	minRank := -1
	if cur := a.CurrentLevelRef(kind); cur != nil {
		current, err := u.classRepo.GetByID(ctx, *cur)
		if err != nil {
			return nil, err
		}
		dto := toLevelDTO(current)
		out.Current = &dto
		minRank = current.Rank
	}

	promotable, err := u.classRepo.ListAssignable(ctx, kind, minRank)
	if err != nil {
		return nil, err
	}
	correctable, err := u.classRepo.ListAssignable(ctx, kind, -1)
	if err != nil {
		return nil, err
	}

	out.AvailableForPromotion = toLevelDTOs(promotable)
	out.AvailableForCorrection = toLevelDTOs(correctable)
	return out, nil
}

func (u *Usecase) authorize(ctx context.Context, performerID string, cap authz.Capability) error {
	if u.checker == nil {
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

func validateCommon(kind classification.Kind, effectiveDate time.Time, performedBy string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown classification kind %q", domainLedger.ErrValidation, kind)
	}
	if effectiveDate.IsZero() {
		return domainLedger.ErrBadEffectiveDate
	}
	if performedBy == "" {
		return authz.ErrUnauthorized
	}
	return nil
}

func projectionField(kind classification.Kind) string {
	if kind == classification.KindAcademicRank {
		return "academic_rank_id"
	}
	return "staff_grade_id"
}

func toChangeDTO(c *domainLedger.ClassificationChange, assignmentID string, from, to *classification.Level) *ChangeDTO {
	dto := &ChangeDTO{
		ChangeID:      c.ChangeID,
		AssignmentID:  assignmentID,
		Kind:          c.Kind,
		ChangeKind:    string(c.ChangeKind),
		ToLevelID:     to.LevelID,
		ToLevelName:   to.Name,
		EffectiveDate: c.EffectiveDate.Format("2006-01-02"),
		Reason:        c.Reason,
		PerformedBy:   c.PerformedBy,
		CreatedAt:     c.CreatedAt,
	}
	if from != nil {
		dto.FromLevelID = from.LevelID
		dto.FromLevelName = from.Name
	}
	return dto
}

func toLevelDTO(l *classification.Level) LevelDTO {
	return LevelDTO{LevelID: l.LevelID, Kind: l.Kind, Name: l.Name, Code: l.Code, Rank: l.Rank, SortOrder: l.SortOrder}
}

func toLevelDTOs(levels []classification.Level) []LevelDTO {
	out := make([]LevelDTO, 0, len(levels))
	for i := range levels {
		out = append(out, toLevelDTO(&levels[i]))
	}
	return out
}
