package bde

import "time"

// Employee master data. PersonnelNumber is the natural key used by CSV
// reconciliation; the numeric ID never leaves the store.
type Employee struct {
	ID              uint    `gorm:"primaryKey;column:id" json:"id"`
	PersonnelNumber string  `gorm:"size:50;uniqueIndex;not null" json:"personnel_number"`
	FirstName       string  `gorm:"size:120;not null" json:"first_name"`
	LastName        string  `gorm:"size:120;not null" json:"last_name"`
	Department      *string `gorm:"size:120" json:"department"`
	Role            *string `gorm:"size:120" json:"role"`
	Active          bool    `gorm:"not null" json:"active"`
}

func (Employee) TableName() string { return "employees" }

// Machine master data, keyed by code.
type Machine struct {
	ID          uint    `gorm:"primaryKey;column:id" json:"id"`
	Code        string  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name        string  `gorm:"size:120;not null" json:"name"`
	Description *string `gorm:"size:250" json:"description"`
	Location    *string `gorm:"size:120" json:"location"`
	Active      bool    `gorm:"not null" json:"active"`
}

func (Machine) TableName() string { return "machines" }

// WorkOrder is a production order, keyed by order number.
type WorkOrder struct {
	ID          uint       `gorm:"primaryKey;column:id" json:"id"`
	OrderNumber string     `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	Customer    *string    `gorm:"size:120" json:"customer"`
	Article     *string    `gorm:"size:120" json:"article"`
	Quantity    *int       `json:"quantity"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`
	Status      string     `gorm:"size:50" json:"status"`
}

func (WorkOrder) TableName() string { return "work_orders" }

// Operation belongs to exactly one work order and optionally runs on a
// machine. Codes are unique across all operations, not per work order.
type Operation struct {
	ID                  uint     `gorm:"primaryKey;column:id" json:"id"`
	Code                string   `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description         *string  `gorm:"size:250" json:"description"`
	WorkOrderID         uint     `gorm:"not null;index" json:"work_order_id"`
	MachineID           *uint    `gorm:"index" json:"machine_id"`
	StandardTimeMinutes *float64 `json:"standard_time_minutes"`
	IsActive            bool     `gorm:"not null" json:"is_active"`
}

func (Operation) TableName() string { return "operations" }

// ActivityRecord is captured production data. It has no natural key; CSV
// rows address existing records through the id column.
type ActivityRecord struct {
	ID             uint       `gorm:"primaryKey;column:id" json:"id"`
	StartTime      time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	EmployeeID     uint       `gorm:"not null;index" json:"employee_id"`
	OperationID    uint       `gorm:"not null;index" json:"operation_id"`
	QuantityGood   int        `gorm:"not null" json:"quantity_good"`
	QuantityReject int        `gorm:"not null" json:"quantity_reject"`
	Status         string     `gorm:"size:50" json:"status"`
	Comment        *string    `gorm:"size:250" json:"comment"`
}

func (ActivityRecord) TableName() string { return "activity_records" }
