package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

type MachineHandler struct{ repo bde.MachineRepository }

func NewMachineHandler(repo bde.MachineRepository) *MachineHandler {
	return &MachineHandler{repo: repo}
}

type createMachineReq struct {
	Code        string  `json:"code" validate:"required,min=1,max=50"`
	Name        string  `json:"name" validate:"required,max=120"`
	Description *string `json:"description" validate:"omitempty,max=250"`
	Location    *string `json:"location" validate:"omitempty,max=120"`
	Active      *bool   `json:"active"`
}

func (h *MachineHandler) List(c echo.Context) error {
	machines, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, machines)
}

func (h *MachineHandler) Create(c echo.Context) error {
	var req createMachineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	m := &bde.Machine{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Active:      req.Active == nil || *req.Active,
	}
	if err := h.repo.Create(c.Request().Context(), m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "machine with this code already exists"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MachineHandler) Get(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	m, err := h.repo.Get(c.Request().Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "machine")
	} else if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MachineHandler) Update(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	ctx := c.Request().Context()
	m, err := h.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "machine")
	} else if err != nil {
		return err
	}
	var patch bde.MachineUpdate
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.repo.Update(ctx, m, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MachineHandler) Delete(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	ctx := c.Request().Context()
	m, err := h.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "machine")
	} else if err != nil {
		return err
	}
	if err := h.repo.Delete(ctx, m); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
