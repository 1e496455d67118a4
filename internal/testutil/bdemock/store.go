// Package bdemock provides function-backed mocks for the bde repositories.
// Only set the funcs your test needs; everything else answers not-found.
package bdemock

import (
	"context"

	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

type EmployeeRepo struct {
	ListFn                 func(ctx context.Context) ([]bde.Employee, error)
	GetFn                  func(ctx context.Context, id uint) (*bde.Employee, error)
	GetByPersonnelNumberFn func(ctx context.Context, personnelNumber string) (*bde.Employee, error)
	CreateFn               func(ctx context.Context, e *bde.Employee) error
	UpdateFn               func(ctx context.Context, e *bde.Employee, patch bde.EmployeeUpdate) (*bde.Employee, error)
	DeleteFn               func(ctx context.Context, e *bde.Employee) error
}

func (m *EmployeeRepo) List(ctx context.Context) ([]bde.Employee, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *EmployeeRepo) Get(ctx context.Context, id uint) (*bde.Employee, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *EmployeeRepo) GetByPersonnelNumber(ctx context.Context, personnelNumber string) (*bde.Employee, error) {
	if m.GetByPersonnelNumberFn != nil {
		return m.GetByPersonnelNumberFn(ctx, personnelNumber)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *EmployeeRepo) Create(ctx context.Context, e *bde.Employee) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}
func (m *EmployeeRepo) Update(ctx context.Context, e *bde.Employee, patch bde.EmployeeUpdate) (*bde.Employee, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, e, patch)
	}
	return e, nil
}
func (m *EmployeeRepo) Delete(ctx context.Context, e *bde.Employee) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, e)
	}
	return nil
}

type MachineRepo struct {
	ListFn      func(ctx context.Context) ([]bde.Machine, error)
	GetFn       func(ctx context.Context, id uint) (*bde.Machine, error)
	GetByCodeFn func(ctx context.Context, code string) (*bde.Machine, error)
	CreateFn    func(ctx context.Context, m *bde.Machine) error
	UpdateFn    func(ctx context.Context, m *bde.Machine, patch bde.MachineUpdate) (*bde.Machine, error)
	DeleteFn    func(ctx context.Context, m *bde.Machine) error
}

func (m *MachineRepo) List(ctx context.Context) ([]bde.Machine, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *MachineRepo) Get(ctx context.Context, id uint) (*bde.Machine, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *MachineRepo) GetByCode(ctx context.Context, code string) (*bde.Machine, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *MachineRepo) Create(ctx context.Context, mc *bde.Machine) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mc)
	}
	return nil
}
func (m *MachineRepo) Update(ctx context.Context, mc *bde.Machine, patch bde.MachineUpdate) (*bde.Machine, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, mc, patch)
	}
	return mc, nil
}
func (m *MachineRepo) Delete(ctx context.Context, mc *bde.Machine) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, mc)
	}
	return nil
}

type WorkOrderRepo struct {
	ListFn             func(ctx context.Context) ([]bde.WorkOrder, error)
	GetFn              func(ctx context.Context, id uint) (*bde.WorkOrder, error)
	GetByOrderNumberFn func(ctx context.Context, orderNumber string) (*bde.WorkOrder, error)
	CreateFn           func(ctx context.Context, w *bde.WorkOrder) error
	UpdateFn           func(ctx context.Context, w *bde.WorkOrder, patch bde.WorkOrderUpdate) (*bde.WorkOrder, error)
	DeleteFn           func(ctx context.Context, w *bde.WorkOrder) error
}

func (m *WorkOrderRepo) List(ctx context.Context) ([]bde.WorkOrder, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *WorkOrderRepo) Get(ctx context.Context, id uint) (*bde.WorkOrder, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *WorkOrderRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*bde.WorkOrder, error) {
	if m.GetByOrderNumberFn != nil {
		return m.GetByOrderNumberFn(ctx, orderNumber)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *WorkOrderRepo) Create(ctx context.Context, w *bde.WorkOrder) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}
func (m *WorkOrderRepo) Update(ctx context.Context, w *bde.WorkOrder, patch bde.WorkOrderUpdate) (*bde.WorkOrder, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, w, patch)
	}
	return w, nil
}
func (m *WorkOrderRepo) Delete(ctx context.Context, w *bde.WorkOrder) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, w)
	}
	return nil
}

type OperationRepo struct {
	ListFn      func(ctx context.Context) ([]bde.Operation, error)
	GetFn       func(ctx context.Context, id uint) (*bde.Operation, error)
	GetByCodeFn func(ctx context.Context, code string) (*bde.Operation, error)
	CreateFn    func(ctx context.Context, o *bde.Operation) error
	UpdateFn    func(ctx context.Context, o *bde.Operation, patch bde.OperationUpdate) (*bde.Operation, error)
	DeleteFn    func(ctx context.Context, o *bde.Operation) error
}

func (m *OperationRepo) List(ctx context.Context) ([]bde.Operation, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *OperationRepo) Get(ctx context.Context, id uint) (*bde.Operation, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *OperationRepo) GetByCode(ctx context.Context, code string) (*bde.Operation, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *OperationRepo) Create(ctx context.Context, o *bde.Operation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}
func (m *OperationRepo) Update(ctx context.Context, o *bde.Operation, patch bde.OperationUpdate) (*bde.Operation, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, o, patch)
	}
	return o, nil
}
func (m *OperationRepo) Delete(ctx context.Context, o *bde.Operation) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, o)
	}
	return nil
}

type ActivityRepo struct {
	ListFn   func(ctx context.Context) ([]bde.ActivityRecord, error)
	GetFn    func(ctx context.Context, id uint) (*bde.ActivityRecord, error)
	CreateFn func(ctx context.Context, a *bde.ActivityRecord) error
	UpdateFn func(ctx context.Context, a *bde.ActivityRecord, patch bde.ActivityRecordUpdate) (*bde.ActivityRecord, error)
	DeleteFn func(ctx context.Context, a *bde.ActivityRecord) error
}

func (m *ActivityRepo) List(ctx context.Context) ([]bde.ActivityRecord, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *ActivityRepo) Get(ctx context.Context, id uint) (*bde.ActivityRecord, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *ActivityRepo) Create(ctx context.Context, a *bde.ActivityRecord) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
func (m *ActivityRepo) Update(ctx context.Context, a *bde.ActivityRecord, patch bde.ActivityRecordUpdate) (*bde.ActivityRecord, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, a, patch)
	}
	return a, nil
}
func (m *ActivityRepo) Delete(ctx context.Context, a *bde.ActivityRecord) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, a)
	}
	return nil
}

// NewStore wires the mocks into a bde.Store for callers that take the bundle.
func NewStore(e *EmployeeRepo, m *MachineRepo, w *WorkOrderRepo, o *OperationRepo, a *ActivityRepo) bde.Store {
	if e == nil {
		e = &EmployeeRepo{}
	}
	if m == nil {
		m = &MachineRepo{}
	}
	if w == nil {
		w = &WorkOrderRepo{}
	}
	if o == nil {
		o = &OperationRepo{}
	}
	if a == nil {
		a = &ActivityRepo{}
	}
	return bde.Store{Employees: e, Machines: m, WorkOrders: w, Operations: o, Activities: a}
}
