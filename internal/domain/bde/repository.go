package bde

import "context"

// Repositories return gorm.ErrRecordNotFound for missing rows and
// gorm.ErrDuplicatedKey for natural-key collisions. List is ordered the way
// the CSV export expects it.

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id uint) (*Employee, error)
	GetByPersonnelNumber(ctx context.Context, personnelNumber string) (*Employee, error)
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee, patch EmployeeUpdate) (*Employee, error)
	Delete(ctx context.Context, e *Employee) error
}

type MachineRepository interface {
	List(ctx context.Context) ([]Machine, error)
	Get(ctx context.Context, id uint) (*Machine, error)
	GetByCode(ctx context.Context, code string) (*Machine, error)
	Create(ctx context.Context, m *Machine) error
	Update(ctx context.Context, m *Machine, patch MachineUpdate) (*Machine, error)
	Delete(ctx context.Context, m *Machine) error
}

type WorkOrderRepository interface {
	List(ctx context.Context) ([]WorkOrder, error)
	Get(ctx context.Context, id uint) (*WorkOrder, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*WorkOrder, error)
	Create(ctx context.Context, w *WorkOrder) error
	Update(ctx context.Context, w *WorkOrder, patch WorkOrderUpdate) (*WorkOrder, error)
	Delete(ctx context.Context, w *WorkOrder) error
}

type OperationRepository interface {
	List(ctx context.Context) ([]Operation, error)
	Get(ctx context.Context, id uint) (*Operation, error)
	GetByCode(ctx context.Context, code string) (*Operation, error)
	Create(ctx context.Context, o *Operation) error
	Update(ctx context.Context, o *Operation, patch OperationUpdate) (*Operation, error)
	Delete(ctx context.Context, o *Operation) error
}

type ActivityRecordRepository interface {
	List(ctx context.Context) ([]ActivityRecord, error)
	Get(ctx context.Context, id uint) (*ActivityRecord, error)
	Create(ctx context.Context, a *ActivityRecord) error
	Update(ctx context.Context, a *ActivityRecord, patch ActivityRecordUpdate) (*ActivityRecord, error)
	Delete(ctx context.Context, a *ActivityRecord) error
}

// Store bundles the per-entity repositories so callers receive one handle.
type Store struct {
	Employees  EmployeeRepository
	Machines   MachineRepository
	WorkOrders WorkOrderRepository
	Operations OperationRepository
	Activities ActivityRecordRepository
}
