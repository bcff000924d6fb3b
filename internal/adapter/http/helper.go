package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"personnel-records-service/internal/domain/assignment"
	"personnel-records-service/internal/domain/authz"
	"personnel-records-service/internal/domain/classification"
	"personnel-records-service/internal/domain/ledger"
)

// Actor identity rides on the same header the idempotency layer keys on.
const actorHeader = "Ax-Actor-Id"

func actorID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(actorHeader))
}

// writeDomainError maps usecase/domain errors to HTTP codes. Unknown errors
// become an opaque 500 unless debug is on.
func writeDomainError(c echo.Context, err error, debug bool) error {
	switch {
	case errors.Is(err, authz.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not allowed"})
	case errors.Is(err, assignment.ErrNotFound),
		errors.Is(err, classification.ErrNotFound),
		errors.Is(err, ledger.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, classification.ErrInUse),
		errors.Is(err, classification.ErrInvalidTransition),
		errors.Is(err, classification.ErrDuplicateName):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ledger.ErrValidation),
		errors.Is(err, ledger.ErrReasonTooShort),
		errors.Is(err, ledger.ErrBadEffectiveDate),
		errors.Is(err, ledger.ErrInvalidPromotionDirection),
		errors.Is(err, classification.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	log.Printf("unexpected error on %s %s: %v", c.Request().Method, c.Path(), err)
	if debug {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
