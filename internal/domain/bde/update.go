package bde

import (
	"encoding/json"
	"time"
)

// Optional is a presence-aware field for partial updates: a field left out
// of a payload stays Set=false and is never written to the store, while an
// explicit null arrives as Set=true with a nil value. This mirrors the
// "only supplied fields change" update contract.
type Optional[T any] struct {
	Val T
	Set bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{Val: v, Set: true} }

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	return json.Unmarshal(b, &o.Val)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) { return json.Marshal(o.Val) }

// Update payloads deliberately have no field for the natural key: a key is
// immutable once the record exists.

type EmployeeUpdate struct {
	FirstName  Optional[string]  `json:"first_name"`
	LastName   Optional[string]  `json:"last_name"`
	Department Optional[*string] `json:"department"`
	Role       Optional[*string] `json:"role"`
	Active     Optional[bool]    `json:"active"`
}

func (u EmployeeUpdate) Changes() map[string]any {
	ch := map[string]any{}
	putIf(ch, "first_name", u.FirstName)
	putIf(ch, "last_name", u.LastName)
	putIf(ch, "department", u.Department)
	putIf(ch, "role", u.Role)
	putIf(ch, "active", u.Active)
	return ch
}

type MachineUpdate struct {
	Name        Optional[string]  `json:"name"`
	Description Optional[*string] `json:"description"`
	Location    Optional[*string] `json:"location"`
	Active      Optional[bool]    `json:"active"`
}

func (u MachineUpdate) Changes() map[string]any {
	ch := map[string]any{}
	putIf(ch, "name", u.Name)
	putIf(ch, "description", u.Description)
	putIf(ch, "location", u.Location)
	putIf(ch, "active", u.Active)
	return ch
}

type WorkOrderUpdate struct {
	Customer Optional[*string]    `json:"customer"`
	Article  Optional[*string]    `json:"article"`
	Quantity Optional[*int]       `json:"quantity"`
	DueDate  Optional[*time.Time] `json:"due_date"`
	Status   Optional[string]     `json:"status"`
}

func (u WorkOrderUpdate) Changes() map[string]any {
	ch := map[string]any{}
	putIf(ch, "customer", u.Customer)
	putIf(ch, "article", u.Article)
	putIf(ch, "quantity", u.Quantity)
	putIf(ch, "due_date", u.DueDate)
	putIf(ch, "status", u.Status)
	return ch
}

type OperationUpdate struct {
	Description         Optional[*string]  `json:"description"`
	WorkOrderID         Optional[uint]     `json:"work_order_id"`
	MachineID           Optional[*uint]    `json:"machine_id"`
	StandardTimeMinutes Optional[*float64] `json:"standard_time_minutes"`
	IsActive            Optional[bool]     `json:"is_active"`
}

func (u OperationUpdate) Changes() map[string]any {
	ch := map[string]any{}
	putIf(ch, "description", u.Description)
	putIf(ch, "work_order_id", u.WorkOrderID)
	putIf(ch, "machine_id", u.MachineID)
	putIf(ch, "standard_time_minutes", u.StandardTimeMinutes)
	putIf(ch, "is_active", u.IsActive)
	return ch
}

type ActivityRecordUpdate struct {
	StartTime      Optional[time.Time]  `json:"start_time"`
	EndTime        Optional[*time.Time] `json:"end_time"`
	EmployeeID     Optional[uint]       `json:"employee_id"`
	OperationID    Optional[uint]       `json:"operation_id"`
	QuantityGood   Optional[int]        `json:"quantity_good"`
	QuantityReject Optional[int]        `json:"quantity_reject"`
	Status         Optional[string]     `json:"status"`
	Comment        Optional[*string]    `json:"comment"`
}

func (u ActivityRecordUpdate) Changes() map[string]any {
	ch := map[string]any{}
	putIf(ch, "start_time", u.StartTime)
	putIf(ch, "end_time", u.EndTime)
	putIf(ch, "employee_id", u.EmployeeID)
	putIf(ch, "operation_id", u.OperationID)
	putIf(ch, "quantity_good", u.QuantityGood)
	putIf(ch, "quantity_reject", u.QuantityReject)
	putIf(ch, "status", u.Status)
	putIf(ch, "comment", u.Comment)
	return ch
}

func putIf[T any](ch map[string]any, col string, o Optional[T]) {
	if o.Set {
		ch[col] = o.Val
	}
}
