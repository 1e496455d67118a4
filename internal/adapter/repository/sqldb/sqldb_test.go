package sqldb

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&bde.Employee{},
		&bde.Machine{},
		&bde.WorkOrder{},
		&bde.Operation{},
		&bde.ActivityRecord{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func str(s string) *string { return &s }

// seedChain creates employee → machine → work order → operation → activity
// and returns the store.
func seedChain(t *testing.T, db *gorm.DB) (bde.Store, *bde.Employee, *bde.Machine, *bde.WorkOrder, *bde.Operation, *bde.ActivityRecord) {
	t.Helper()
	ctx := context.Background()
	store := NewStore(db)

	e := &bde.Employee{PersonnelNumber: "1000", FirstName: "Max", LastName: "Mustermann", Active: true}
	if err := store.Employees.Create(ctx, e); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	m := &bde.Machine{Code: "M-01", Name: "CNC Drehmaschine", Active: true}
	if err := store.Machines.Create(ctx, m); err != nil {
		t.Fatalf("create machine: %v", err)
	}
	w := &bde.WorkOrder{OrderNumber: "WO-2024-001", Customer: str("Automotive AG"), Status: "open"}
	if err := store.WorkOrders.Create(ctx, w); err != nil {
		t.Fatalf("create work order: %v", err)
	}
	o := &bde.Operation{Code: "OP-10", WorkOrderID: w.ID, MachineID: &m.ID, IsActive: true}
	if err := store.Operations.Create(ctx, o); err != nil {
		t.Fatalf("create operation: %v", err)
	}
	a := &bde.ActivityRecord{
		StartTime:   time.Date(2024, 2, 15, 6, 30, 0, 0, time.UTC),
		EmployeeID:  e.ID,
		OperationID: o.ID,
		Status:      "completed",
	}
	if err := store.Activities.Create(ctx, a); err != nil {
		t.Fatalf("create activity: %v", err)
	}
	return store, e, m, w, o, a
}

func countRows[T any](t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	var model T
	if err := db.Model(&model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
