package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

// OperationHandler needs the work-order and machine repositories as well,
// to check that referenced parents exist before an operation is written.
type OperationHandler struct {
	repo       bde.OperationRepository
	workOrders bde.WorkOrderRepository
	machines   bde.MachineRepository
}

func NewOperationHandler(repo bde.OperationRepository, workOrders bde.WorkOrderRepository, machines bde.MachineRepository) *OperationHandler {
	return &OperationHandler{repo: repo, workOrders: workOrders, machines: machines}
}

type createOperationReq struct {
	Code                string   `json:"code" validate:"required,min=1,max=50"`
	Description         *string  `json:"description" validate:"omitempty,max=250"`
	WorkOrderID         uint     `json:"work_order_id" validate:"required"`
	MachineID           *uint    `json:"machine_id"`
	StandardTimeMinutes *float64 `json:"standard_time_minutes" validate:"omitempty,gte=0"`
	IsActive            *bool    `json:"is_active"`
}

func (h *OperationHandler) List(c echo.Context) error {
	operations, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, operations)
}

func (h *OperationHandler) Create(c echo.Context) error {
	var req createOperationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	ctx := c.Request().Context()
	if _, err := h.workOrders.Get(ctx, req.WorkOrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "work order not found"})
		}
		return err
	}
	if req.MachineID != nil {
		if _, err := h.machines.Get(ctx, *req.MachineID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "machine not found"})
			}
			return err
		}
	}
	o := &bde.Operation{
		Code:                req.Code,
		Description:         req.Description,
		WorkOrderID:         req.WorkOrderID,
		MachineID:           req.MachineID,
		StandardTimeMinutes: req.StandardTimeMinutes,
		IsActive:            req.IsActive == nil || *req.IsActive,
	}
	if err := h.repo.Create(ctx, o); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "operation with this code already exists"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OperationHandler) Get(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	o, err := h.repo.Get(c.Request().Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "operation")
	} else if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OperationHandler) Update(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	ctx := c.Request().Context()
	o, err := h.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "operation")
	} else if err != nil {
		return err
	}
	var patch bde.OperationUpdate
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if patch.WorkOrderID.Set {
		if _, err := h.workOrders.Get(ctx, patch.WorkOrderID.Val); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "work order not found"})
			}
			return err
		}
	}
	if patch.MachineID.Set && patch.MachineID.Val != nil {
		if _, err := h.machines.Get(ctx, *patch.MachineID.Val); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "machine not found"})
			}
			return err
		}
	}
	out, err := h.repo.Update(ctx, o, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OperationHandler) Delete(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	ctx := c.Request().Context()
	o, err := h.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "operation")
	} else if err != nil {
		return err
	}
	if err := h.repo.Delete(ctx, o); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
