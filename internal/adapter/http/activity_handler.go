package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

type ActivityHandler struct {
	repo       bde.ActivityRecordRepository
	employees  bde.EmployeeRepository
	operations bde.OperationRepository
}

func NewActivityHandler(repo bde.ActivityRecordRepository, employees bde.EmployeeRepository, operations bde.OperationRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo, employees: employees, operations: operations}
}

type createActivityReq struct {
	StartTime      time.Time  `json:"start_time" validate:"required"`
	EndTime        *time.Time `json:"end_time"`
	EmployeeID     uint       `json:"employee_id" validate:"required"`
	OperationID    uint       `json:"operation_id" validate:"required"`
	QuantityGood   *int       `json:"quantity_good" validate:"omitempty,gte=0"`
	QuantityReject *int       `json:"quantity_reject" validate:"omitempty,gte=0"`
	Status         string     `json:"status" validate:"omitempty,max=50"`
	Comment        *string    `json:"comment" validate:"omitempty,max=250"`
}

func (h *ActivityHandler) List(c echo.Context) error {
	records, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

func (h *ActivityHandler) Create(c echo.Context) error {
	var req createActivityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	ctx := c.Request().Context()
	if _, err := h.employees.Get(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "employee not found"})
		}
		return err
	}
	if _, err := h.operations.Get(ctx, req.OperationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "operation not found"})
		}
		return err
	}
	if req.Status == "" {
		req.Status = "completed"
	}
	a := &bde.ActivityRecord{
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		EmployeeID:     req.EmployeeID,
		OperationID:    req.OperationID,
		QuantityGood:   intValue(req.QuantityGood),
		QuantityReject: intValue(req.QuantityReject),
		Status:         req.Status,
		Comment:        req.Comment,
	}
	if err := h.repo.Create(ctx, a); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *ActivityHandler) Get(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	a, err := h.repo.Get(c.Request().Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "activity record")
	} else if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ActivityHandler) Update(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	ctx := c.Request().Context()
	a, err := h.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "activity record")
	} else if err != nil {
		return err
	}
	var patch bde.ActivityRecordUpdate
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if patch.EmployeeID.Set {
		if _, err := h.employees.Get(ctx, patch.EmployeeID.Val); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "employee not found"})
			}
			return err
		}
	}
	if patch.OperationID.Set {
		if _, err := h.operations.Get(ctx, patch.OperationID.Val); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "operation not found"})
			}
			return err
		}
	}
	out, err := h.repo.Update(ctx, a, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ActivityHandler) Delete(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	ctx := c.Request().Context()
	a, err := h.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "activity record")
	} else if err != nil {
		return err
	}
	if err := h.repo.Delete(ctx, a); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
