package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"personnel-records-service/internal/domain/classification"
	"personnel-records-service/internal/usecase/ledger"
)

type LedgerHandler struct {
	uc    *ledger.Usecase
	debug bool
}

func NewLedgerHandler(uc *ledger.Usecase, debug bool) *LedgerHandler {
	return &LedgerHandler{uc: uc, debug: debug}
}

type changeReq struct {
	ToLevelID string `json:"to_level_id"    validate:"required,hex32"`
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	EffectiveDate string `json:"effective_date" validate:"required,datetime=2006-01-02"`
	Reason        string `json:"reason"`
}

type pathScope struct {
	AssignmentID string `validate:"required,hex32"`
	Kind         string `validate:"required,classkind"`
	PerformedBy  string
}

// bindScope validates the path params shared by every ledger route and, for
// mutating routes, the actor header.
func bindScope(c echo.Context, needActor bool) (*pathScope, bool) {
	s := &pathScope{
		AssignmentID: c.Param("assignment_id"),
		Kind:         c.Param("kind"),
		PerformedBy:  actorID(c),
	}
	if err := c.Validate(s); err != nil {
		_ = c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
		return nil, false
	}
	if needActor && s.PerformedBy == "" {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + actorHeader})
		return nil, false
	}
	return s, true
}

func (h *LedgerHandler) Promote(c echo.Context) error {
	scope, ok := bindScope(c, true)
	if !ok {
		return nil
	}
	var req changeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	effective, _ := time.Parse("2006-01-02", req.EffectiveDate)

	dto, err := h.uc.Promote(c.Request().Context(), ledger.PromoteInput{
		AssignmentID:  scope.AssignmentID,
		ToLevelID:     req.ToLevelID,
		Kind:          classification.Kind(scope.Kind),
		EffectiveDate: effective,
		Reason:        req.Reason,
		PerformedBy:   scope.PerformedBy,
	})
	if err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LedgerHandler) Correct(c echo.Context) error {
	scope, ok := bindScope(c, true)
	if !ok {
		return nil
	}
	var req changeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	effective, _ := time.Parse("2006-01-02", req.EffectiveDate)

	dto, err := h.uc.Correct(c.Request().Context(), ledger.CorrectInput{
		AssignmentID:  scope.AssignmentID,
		ToLevelID:     req.ToLevelID,
		Kind:          classification.Kind(scope.Kind),
		EffectiveDate: effective,
		Reason:        req.Reason,
		PerformedBy:   scope.PerformedBy,
	})
	if err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LedgerHandler) History(c echo.Context) error {
	scope, ok := bindScope(c, false)
	if !ok {
		return nil
	}
	changes, err := h.uc.History(c.Request().Context(), scope.AssignmentID, classification.Kind(scope.Kind))
	if err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.JSON(http.StatusOK, changes)
}

func (h *LedgerHandler) Summary(c echo.Context) error {
	scope, ok := bindScope(c, false)
	if !ok {
		return nil
	}
	dto, err := h.uc.CurrentLevelSummary(c.Request().Context(), scope.AssignmentID, classification.Kind(scope.Kind))
	if err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.JSON(http.StatusOK, dto)
}
