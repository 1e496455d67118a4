package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

type EmployeeHandler struct{ repo bde.EmployeeRepository }

func NewEmployeeHandler(repo bde.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

type createEmployeeReq struct {
	PersonnelNumber string  `json:"personnel_number" validate:"required,min=1,max=50"`
	FirstName       string  `json:"first_name" validate:"required,max=120"`
	LastName        string  `json:"last_name" validate:"required,max=120"`
	Department      *string `json:"department" validate:"omitempty,max=120"`
	Role            *string `json:"role" validate:"omitempty,max=120"`
	Active          *bool   `json:"active"`
}

func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	e := &bde.Employee{
		PersonnelNumber: req.PersonnelNumber,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Department:      req.Department,
		Role:            req.Role,
		Active:          req.Active == nil || *req.Active,
	}
	if err := h.repo.Create(c.Request().Context(), e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "employee with this personnel number already exists"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	e, err := h.repo.Get(c.Request().Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "employee")
	} else if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	ctx := c.Request().Context()
	e, err := h.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "employee")
	} else if err != nil {
		return err
	}
	var patch bde.EmployeeUpdate
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.repo.Update(ctx, e, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	ctx := c.Request().Context()
	e, err := h.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "employee")
	} else if err != nil {
		return err
	}
	if err := h.repo.Delete(ctx, e); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
