package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"personnel-records-service/internal/domain/assignment"
	domainAudit "personnel-records-service/internal/domain/audit"
	"personnel-records-service/internal/domain/authz"
	"personnel-records-service/internal/domain/classification"
	domainLedger "personnel-records-service/internal/domain/ledger"
	"personnel-records-service/internal/domain/uow"
	"personnel-records-service/internal/testutil/assignmentmock"
	"personnel-records-service/internal/testutil/auditmock"
	"personnel-records-service/internal/testutil/classificationmock"
	"personnel-records-service/internal/testutil/ledgermock"
	"personnel-records-service/internal/testutil/uowmock"
	auditUC "personnel-records-service/internal/usecase/audit"
)

const (
	testAssignmentID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testActorID      = "cccccccccccccccccccccccccccccccc"
)

type denyAll struct{}

func (denyAll) Can(context.Context, string, authz.Capability) (bool, error) { return false, nil }

// fixture wires the usecase against in-memory mocks: one assignment, a
// configurable set of levels, and an appendable ledger.
type fixture struct {
	assignment *assignment.Assignment
	levels     map[uint64]*classification.Level // by numeric id
	byLevelID  map[string]*classification.Level // by public id
	created    []*domainLedger.ClassificationChange
	saved      []*assignment.Assignment
	audits     *auditmock.MemoryRepo
	uc         *Usecase
}

func newFixture(t *testing.T, checker authz.Checker) *fixture {
	t.Helper()
	f := &fixture{
		assignment: &assignment.Assignment{ID: 77, AssignmentID: testAssignmentID},
		levels:     map[uint64]*classification.Level{},
		byLevelID:  map[string]*classification.Level{},
		audits:     auditmock.NewMemoryRepo(),
	}

	assignments := &assignmentmock.Repo{
		GetByAssignmentIDFn: func(ctx context.Context, id string) (*assignment.Assignment, error) {
			if id != testAssignmentID {
				return nil, assignment.ErrNotFound
			}
			return f.assignment, nil
		},
		GetByAssignmentIDForUpdateFn: func(ctx context.Context, id string) (*assignment.Assignment, error) {
			if id != testAssignmentID {
				return nil, assignment.ErrNotFound
			}
			return f.assignment, nil
		},
		SaveFn: func(ctx context.Context, a *assignment.Assignment) error {
			f.saved = append(f.saved, a)
			return nil
		},
	}
	classifications := &classificationmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*classification.Level, error) {
			if l, ok := f.levels[id]; ok {
				return l, nil
			}
			return nil, classification.ErrNotFound
		},
		GetAssignableByLevelIDFn: func(ctx context.Context, levelID string, kind classification.Kind) (*classification.Level, error) {
			l, ok := f.byLevelID[levelID]
			if !ok || l.Kind != kind || !l.Assignable() {
				return nil, classification.ErrNotFound
			}
			return l, nil
		},
		ListAssignableFn: func(ctx context.Context, kind classification.Kind, minRank int) ([]classification.Level, error) {
			var out []classification.Level
			for _, l := range f.levels {
				if l.Kind == kind && l.Assignable() && l.Rank > minRank {
					out = append(out, *l)
				}
			}
			return out, nil
		},
	}
	changes := &ledgermock.Repo{
		CreateFn: func(ctx context.Context, c *domainLedger.ClassificationChange) error {
			c.CreatedAt = time.Now().UTC()
			f.created = append(f.created, c)
			return nil
		},
		ListByAssignmentFn: func(ctx context.Context, assignmentID uint64, kind classification.Kind) ([]domainLedger.ClassificationChange, error) {
			var out []domainLedger.ClassificationChange
			for i := len(f.created) - 1; i >= 0; i-- {
				c := f.created[i]
				if c.AssignmentID == assignmentID && c.Kind == kind {
					out = append(out, *c)
				}
			}
			return out, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Assignments: assignments, Classifications: classifications, Changes: changes})

	f.uc = NewUsecase(tx, assignments, classifications, changes, checker, auditUC.NewRecorder(f.audits))
	return f
}

func (f *fixture) addLevel(id uint64, levelID string, kind classification.Kind, name string, rank int) *classification.Level {
	l := &classification.Level{ID: id, LevelID: levelID, Kind: kind, Name: name, Rank: rank, Active: true, State: classification.StateActive}
	f.levels[id] = l
	f.byLevelID[levelID] = l
	return l
}

func promoteInput(toLevelID string, kind classification.Kind) PromoteInput {
	return PromoteInput{
		AssignmentID:  testAssignmentID,
		ToLevelID:     toLevelID,
		Kind:          kind,
		EffectiveDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		PerformedBy:   testActorID,
	}
}

func TestPromote_FirstAssignmentHasNoFrom(t *testing.T) {
	f := newFixture(t, authz.AllowAll{})
	f.addLevel(1, "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank, "Lecturer", 10)

	dto, err := f.uc.Promote(context.Background(), promoteInput("l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank))
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if dto.FromLevelID != "" || dto.ToLevelName != "Lecturer" || dto.ChangeKind != "promotion" {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if len(f.created) != 1 || f.created[0].FromLevelID != nil {
		t.Fatalf("expected one ledger entry with nil from, got %+v", f.created)
	}
	if f.assignment.AcademicRankID == nil || *f.assignment.AcademicRankID != 1 {
		t.Fatalf("projection not updated: %+v", f.assignment)
	}
	if got := f.audits.Entries(); len(got) != 1 || got[0].Action != domainAudit.ActionUpdated {
		t.Fatalf("expected one updated audit entry, got %+v", got)
	}
}

func TestPromote_DownwardFailsAndLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, authz.AllowAll{})
	f.addLevel(1, "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank, "Lecturer", 10)
	f.addLevel(2, "l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2", classification.KindAcademicRank, "Assistant", 8)
	cur := uint64(1)
	f.assignment.AcademicRankID = &cur

	_, err := f.uc.Promote(context.Background(), promoteInput("l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2", classification.KindAcademicRank))
	if !errors.Is(err, domainLedger.ErrInvalidPromotionDirection) {
		t.Fatalf("want ErrInvalidPromotionDirection, got %v", err)
	}
	if len(f.created) != 0 || len(f.saved) != 0 {
		t.Fatalf("failed promotion must write nothing: created=%d saved=%d", len(f.created), len(f.saved))
	}
	if *f.assignment.AcademicRankID != 1 {
		t.Fatalf("projection must be unchanged, got %+v", f.assignment)
	}
	if got := f.audits.Entries(); len(got) != 0 {
		t.Fatalf("failed promotion must not be audited, got %+v", got)
	}
}

func TestPromote_EqualRankFails(t *testing.T) {
	f := newFixture(t, authz.AllowAll{})
	f.addLevel(1, "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindStaffGrade, "Grade 5", 5)
	f.addLevel(2, "l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2", classification.KindStaffGrade, "Grade 5b", 5)
	cur := uint64(1)
	f.assignment.StaffGradeID = &cur

	_, err := f.uc.Promote(context.Background(), promoteInput("l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2", classification.KindStaffGrade))
	if !errors.Is(err, domainLedger.ErrInvalidPromotionDirection) {
		t.Fatalf("want ErrInvalidPromotionDirection, got %v", err)
	}
}

func TestPromote_TargetMustResolveActiveAndKindMatched(t *testing.T) {
	f := newFixture(t, authz.AllowAll{})
	inactive := f.addLevel(1, "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank, "Lecturer", 10)
	inactive.Active = false
	f.addLevel(2, "l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2", classification.KindStaffGrade, "Grade 5", 5)

	if _, err := f.uc.Promote(context.Background(), promoteInput("l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank)); !errors.Is(err, classification.ErrNotFound) {
		t.Fatalf("inactive target: want ErrNotFound, got %v", err)
	}
	// staff grade level requested under the academic rank kind
	if _, err := f.uc.Promote(context.Background(), promoteInput("l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2", classification.KindAcademicRank)); !errors.Is(err, classification.ErrNotFound) {
		t.Fatalf("kind mismatch: want ErrNotFound, got %v", err)
	}
}

func TestPromote_Unauthorized(t *testing.T) {
	f := newFixture(t, denyAll{})
	f.addLevel(1, "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank, "Lecturer", 10)

	_, err := f.uc.Promote(context.Background(), promoteInput("l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank))
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if len(f.created) != 0 {
		t.Fatalf("unauthorized call must write nothing")
	}
}

func TestCorrect_DownwardSucceedsWithReason(t *testing.T) {
	f := newFixture(t, authz.AllowAll{})
	f.addLevel(1, "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindStaffGrade, "Grade 5", 5)
	f.addLevel(2, "l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2", classification.KindStaffGrade, "Grade 3", 3)
	cur := uint64(1)
	f.assignment.StaffGradeID = &cur

	dto, err := f.uc.Correct(context.Background(), CorrectInput{
		AssignmentID:  testAssignmentID,
		ToLevelID:     "l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2",
		Kind:          classification.KindStaffGrade,
		EffectiveDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Reason:        "Fixed data entry error from 2020",
		PerformedBy:   testActorID,
	})
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if dto.ChangeKind != "correction" || dto.FromLevelName != "Grade 5" || dto.ToLevelName != "Grade 3" {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if *f.assignment.StaffGradeID != 2 {
		t.Fatalf("projection should follow a downward correction: %+v", f.assignment)
	}
}

func TestCorrect_ReasonTooShortFailsBeforeAnyWrite(t *testing.T) {
	f := newFixture(t, authz.AllowAll{})
	f.addLevel(1, "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindStaffGrade, "Grade 3", 3)

	for _, reason := range []string{"", "too short", "         padded    "} {
		_, err := f.uc.Correct(context.Background(), CorrectInput{
			AssignmentID:  testAssignmentID,
			ToLevelID:     "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1",
			Kind:          classification.KindStaffGrade,
			EffectiveDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Reason:        reason,
			PerformedBy:   testActorID,
		})
		if !errors.Is(err, domainLedger.ErrReasonTooShort) {
			t.Fatalf("reason %q: want ErrReasonTooShort, got %v", reason, err)
		}
	}
	if len(f.created) != 0 || len(f.saved) != 0 {
		t.Fatalf("short reason must fail before any write")
	}
}

func TestPromote_AuditFailureDoesNotFailPromotion(t *testing.T) {
	f := newFixture(t, authz.AllowAll{})
	f.addLevel(1, "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank, "Lecturer", 10)
	f.audits.FailWith = errors.New("audit store down")

	dto, err := f.uc.Promote(context.Background(), promoteInput("l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank))
	if err != nil {
		t.Fatalf("audit failure must not fail the promotion: %v", err)
	}
	if dto == nil || len(f.created) != 1 {
		t.Fatalf("promotion must still commit")
	}
}

func TestHistory_MostRecentFirstWithNames(t *testing.T) {
	f := newFixture(t, authz.AllowAll{})
	f.addLevel(1, "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank, "Lecturer", 10)
	f.addLevel(2, "l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2", classification.KindAcademicRank, "Senior Lecturer", 20)

	ctx := context.Background()
	if _, err := f.uc.Promote(ctx, promoteInput("l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank)); err != nil {
		t.Fatalf("seed promote: %v", err)
	}
	if _, err := f.uc.Promote(ctx, promoteInput("l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2", classification.KindAcademicRank)); err != nil {
		t.Fatalf("seed promote: %v", err)
	}

	hist, err := f.uc.History(ctx, testAssignmentID, classification.KindAcademicRank)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(hist))
	}
	if hist[0].ToLevelName != "Senior Lecturer" || hist[0].FromLevelName != "Lecturer" {
		t.Fatalf("most recent should be first with resolved names: %+v", hist[0])
	}
	if hist[1].FromLevelID != "" {
		t.Fatalf("oldest entry must show the empty starting point: %+v", hist[1])
	}
}

func TestCurrentLevelSummary(t *testing.T) {
	f := newFixture(t, authz.AllowAll{})
	f.addLevel(1, "l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1l1", classification.KindAcademicRank, "Lecturer", 10)
	f.addLevel(2, "l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2l2", classification.KindAcademicRank, "Senior Lecturer", 20)
	f.addLevel(3, "l3l3l3l3l3l3l3l3l3l3l3l3l3l3l3l3", classification.KindAcademicRank, "Professor", 30)

	ctx := context.Background()

	// no current level: everything is promotable
	sum, err := f.uc.CurrentLevelSummary(ctx, testAssignmentID, classification.KindAcademicRank)
	if err != nil {
		t.Fatalf("CurrentLevelSummary: %v", err)
	}
	if sum.Current != nil || len(sum.AvailableForPromotion) != 3 || len(sum.AvailableForCorrection) != 3 {
		t.Fatalf("unexpected summary without current: %+v", sum)
	}

	// current = Senior Lecturer: promotion offers only Professor, correction offers all
	cur := uint64(2)
	f.assignment.AcademicRankID = &cur
	sum, err = f.uc.CurrentLevelSummary(ctx, testAssignmentID, classification.KindAcademicRank)
	if err != nil {
		t.Fatalf("CurrentLevelSummary: %v", err)
	}
	if sum.Current == nil || sum.Current.Name != "Senior Lecturer" {
		t.Fatalf("current not resolved: %+v", sum)
	}
	if len(sum.AvailableForPromotion) != 1 || sum.AvailableForPromotion[0].Name != "Professor" {
		t.Fatalf("promotion set must be strictly above current: %+v", sum.AvailableForPromotion)
	}
	if len(sum.AvailableForCorrection) != 3 {
		t.Fatalf("correction set must be unfiltered: %+v", sum.AvailableForCorrection)
	}
}

func TestHistory_UnknownAssignment(t *testing.T) {
	f := newFixture(t, authz.AllowAll{})
	_, err := f.uc.History(context.Background(), "ffffffffffffffffffffffffffffffff", classification.KindAcademicRank)
	if !errors.Is(err, assignment.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
