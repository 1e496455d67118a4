package sqldb

import (
	"context"
	"testing"
	"time"

	"bde-backend/internal/domain/bde"
)

func TestActivityList_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	store, e, _, _, o, first := seedChain(t, db)
	ctx := context.Background()

	later := &bde.ActivityRecord{
		StartTime:   first.StartTime.Add(8 * time.Hour),
		EmployeeID:  e.ID,
		OperationID: o.ID,
		Status:      "completed",
	}
	if err := store.Activities.Create(ctx, later); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := store.Activities.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != later.ID {
		t.Errorf("list[0].ID = %d, want the newer record %d", list[0].ID, later.ID)
	}
}

func TestActivityUpdate_EndTimeAndQuantities(t *testing.T) {
	db := openTestDB(t)
	store, _, _, _, _, a := seedChain(t, db)
	ctx := context.Background()

	end := a.StartTime.Add(8 * time.Hour)
	got, err := store.Activities.Update(ctx, a, bde.ActivityRecordUpdate{
		EndTime:      bde.Some(&end),
		QuantityGood: bde.Some(120),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.EndTime == nil || !got.EndTime.Equal(end) {
		t.Errorf("end_time = %v, want %v", got.EndTime, end)
	}
	if got.QuantityGood != 120 || got.QuantityReject != 0 {
		t.Errorf("quantities = %d/%d, want 120/0", got.QuantityGood, got.QuantityReject)
	}
}
