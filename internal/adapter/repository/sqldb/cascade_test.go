package sqldb

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

func TestDeleteWorkOrder_CascadesToOperationsAndActivities(t *testing.T) {
	db := openTestDB(t)
	store, _, _, w, _, _ := seedChain(t, db)
	ctx := context.Background()

	if err := store.WorkOrders.Delete(ctx, w); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if n := countRows[bde.Operation](t, db); n != 0 {
		t.Errorf("operations = %d, want 0", n)
	}
	if n := countRows[bde.ActivityRecord](t, db); n != 0 {
		t.Errorf("activity records = %d, want 0", n)
	}
	// unrelated rows survive
	if n := countRows[bde.Employee](t, db); n != 1 {
		t.Errorf("employees = %d, want 1", n)
	}
	if n := countRows[bde.Machine](t, db); n != 1 {
		t.Errorf("machines = %d, want 1", n)
	}
}

func TestDeleteMachine_CascadesToOperationsAndActivities(t *testing.T) {
	db := openTestDB(t)
	store, _, m, _, _, _ := seedChain(t, db)
	ctx := context.Background()

	if err := store.Machines.Delete(ctx, m); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n := countRows[bde.Operation](t, db); n != 0 {
		t.Errorf("operations = %d, want 0", n)
	}
	if n := countRows[bde.ActivityRecord](t, db); n != 0 {
		t.Errorf("activity records = %d, want 0", n)
	}
	if n := countRows[bde.WorkOrder](t, db); n != 1 {
		t.Errorf("work orders = %d, want 1", n)
	}
}

func TestDeleteEmployee_CascadesToActivities(t *testing.T) {
	db := openTestDB(t)
	store, e, _, _, o, _ := seedChain(t, db)
	ctx := context.Background()

	if err := store.Employees.Delete(ctx, e); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n := countRows[bde.ActivityRecord](t, db); n != 0 {
		t.Errorf("activity records = %d, want 0", n)
	}
	// the operation is owned by the work order, not the employee
	if _, err := store.Operations.Get(ctx, o.ID); err != nil {
		t.Errorf("operation should survive employee delete: %v", err)
	}
}

func TestDeleteOperation_CascadesToActivities(t *testing.T) {
	db := openTestDB(t)
	store, _, _, _, o, a := seedChain(t, db)
	ctx := context.Background()

	if err := store.Operations.Delete(ctx, o); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Activities.Get(ctx, a.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected activity to be deleted, got %v", err)
	}
}

func TestDeleteMachine_LeavesForeignOperationsAlone(t *testing.T) {
	db := openTestDB(t)
	store, _, m, w, _, _ := seedChain(t, db)
	ctx := context.Background()

	// second operation on the same work order but no machine
	free := &bde.Operation{Code: "OP-20", WorkOrderID: w.ID, IsActive: true}
	if err := store.Operations.Create(ctx, free); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Machines.Delete(ctx, m); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Operations.Get(ctx, free.ID); err != nil {
		t.Errorf("machine-less operation should survive: %v", err)
	}
}
