package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"personnel-records-service/internal/domain/classification"
	"personnel-records-service/internal/usecase/lifecycle"
)

type LevelHandler struct {
	uc    *lifecycle.Usecase
	debug bool
}

func NewLevelHandler(uc *lifecycle.Usecase, debug bool) *LevelHandler {
	return &LevelHandler{uc: uc, debug: debug}
}

type createLevelReq struct {
	Kind      string `json:"kind"       validate:"required,classkind"`
	Name      string `json:"name"       validate:"required,max=190"`
	Code      string `json:"code"       validate:"max=64"`
	Rank      int    `json:"rank"       validate:"gte=0"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

type updateLevelReq struct {
	Name      *string `json:"name"       validate:"omitempty,max=190"`
	Code      *string `json:"code"       validate:"omitempty,max=64"`
	Rank      *int    `json:"rank"       validate:"omitempty,gte=0"`
	Active    *bool   `json:"active"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
}

func (h *LevelHandler) Create(c echo.Context) error {
	actor := actorID(c)
	if actor == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + actorHeader})
	}
	var req createLevelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), lifecycle.CreateLevelInput{
		Kind:        classification.Kind(req.Kind),
		Name:        req.Name,
		Code:        req.Code,
		Rank:        req.Rank,
		SortOrder:   req.SortOrder,
		PerformedBy: actor,
	})
	if err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LevelHandler) Update(c echo.Context) error {
	actor := actorID(c)
	if actor == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + actorHeader})
	}
	var req updateLevelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Update(c.Request().Context(), lifecycle.UpdateLevelInput{
		LevelID:     c.Param("level_id"),
		Name:        req.Name,
		Code:        req.Code,
		Rank:        req.Rank,
		Active:      req.Active,
		SortOrder:   req.SortOrder,
		PerformedBy: actor,
	})
	if err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LevelHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("level_id"))
	if err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.JSON(http.StatusOK, dto)
}

// List serves active levels; `?show_trashed=true` widens to trashed ones.
func (h *LevelHandler) List(c echo.Context) error {
	kind := classification.Kind(c.QueryParam("kind"))
	showTrashed := c.QueryParam("show_trashed") == "true"

	levels, err := h.uc.List(c.Request().Context(), kind, showTrashed)
	if err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.JSON(http.StatusOK, levels)
}

func (h *LevelHandler) Trash(c echo.Context) error {
	actor := actorID(c)
	if actor == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + actorHeader})
	}
	if err := h.uc.Trash(c.Request().Context(), c.Param("level_id"), actor); err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LevelHandler) Restore(c echo.Context) error {
	actor := actorID(c)
	if actor == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + actorHeader})
	}
	if err := h.uc.Restore(c.Request().Context(), c.Param("level_id"), actor); err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LevelHandler) Purge(c echo.Context) error {
	actor := actorID(c)
	if actor == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + actorHeader})
	}
	if err := h.uc.Purge(c.Request().Context(), c.Param("level_id"), actor); err != nil {
		return writeDomainError(c, err, h.debug)
	}
	return c.NoContent(http.StatusNoContent)
}
