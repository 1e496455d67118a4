package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

type WorkOrderHandler struct{ repo bde.WorkOrderRepository }

func NewWorkOrderHandler(repo bde.WorkOrderRepository) *WorkOrderHandler {
	return &WorkOrderHandler{repo: repo}
}

type createWorkOrderReq struct {
	OrderNumber string     `json:"order_number" validate:"required,min=1,max=50"`
	Customer    *string    `json:"customer" validate:"omitempty,max=120"`
	Article     *string    `json:"article" validate:"omitempty,max=120"`
	Quantity    *int       `json:"quantity" validate:"omitempty,gte=0"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status" validate:"omitempty,max=50"`
}

func (h *WorkOrderHandler) List(c echo.Context) error {
	workOrders, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workOrders)
}

func (h *WorkOrderHandler) Create(c echo.Context) error {
	var req createWorkOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	if req.Status == "" {
		req.Status = "open"
	}
	w := &bde.WorkOrder{
		OrderNumber: req.OrderNumber,
		Customer:    req.Customer,
		Article:     req.Article,
		Quantity:    req.Quantity,
		DueDate:     req.DueDate,
		Status:      req.Status,
	}
	if err := h.repo.Create(c.Request().Context(), w); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "work order with this number already exists"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *WorkOrderHandler) Get(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	w, err := h.repo.Get(c.Request().Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "work order")
	} else if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WorkOrderHandler) Update(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	ctx := c.Request().Context()
	w, err := h.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "work order")
	} else if err != nil {
		return err
	}
	var patch bde.WorkOrderUpdate
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.repo.Update(ctx, w, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WorkOrderHandler) Delete(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return badID(c)
	}
	ctx := c.Request().Context()
	w, err := h.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "work order")
	} else if err != nil {
		return err
	}
	if err := h.repo.Delete(ctx, w); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
