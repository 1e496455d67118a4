package sqldb

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

func TestEmployeeCreateAndGetByPersonnelNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	e := &bde.Employee{PersonnelNumber: "1000", FirstName: "Max", LastName: "Mustermann", Active: true}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByPersonnelNumber(ctx, "1000")
	if err != nil {
		t.Fatalf("GetByPersonnelNumber: %v", err)
	}
	if got.ID != e.ID || got.FirstName != "Max" {
		t.Errorf("unexpected employee: %+v", got)
	}
}

func TestEmployeeDuplicatePersonnelNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &bde.Employee{PersonnelNumber: "1000", FirstName: "Max", LastName: "M", Active: true}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, &bde.Employee{PersonnelNumber: "1000", FirstName: "Moritz", LastName: "M", Active: true})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}

	// The failed insert must not have been applied.
	if n := countRows[bde.Employee](t, db); n != 1 {
		t.Fatalf("employees = %d, want 1", n)
	}
}

func TestEmployeeUpdate_PartialFields(t *testing.T) {
	db := openTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	e := &bde.Employee{PersonnelNumber: "1000", FirstName: "Max", LastName: "Mustermann", Role: str("Facharbeiter"), Active: true}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Update(ctx, e, bde.EmployeeUpdate{Role: bde.Some(str("Teamleiter"))})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Role == nil || *got.Role != "Teamleiter" {
		t.Errorf("role = %v, want Teamleiter", got.Role)
	}
	// untouched fields survive, key and id unchanged
	if got.FirstName != "Max" || got.PersonnelNumber != "1000" || got.ID != e.ID {
		t.Errorf("unexpected employee after update: %+v", got)
	}

	// explicit null clears the column
	got, err = repo.Update(ctx, got, bde.EmployeeUpdate{Role: bde.Some[*string](nil)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Role != nil {
		t.Errorf("role = %v, want nil", got.Role)
	}
}

func TestEmployeeUpdate_NoChanges(t *testing.T) {
	db := openTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	e := &bde.Employee{PersonnelNumber: "1000", FirstName: "Max", LastName: "Mustermann", Active: true}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.Update(ctx, e, bde.EmployeeUpdate{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ID != e.ID {
		t.Errorf("id changed: %d != %d", got.ID, e.ID)
	}
}

func TestEmployeeList_OrderedByPersonnelNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	for _, pn := range []string{"3000", "1000", "2000"} {
		if err := repo.Create(ctx, &bde.Employee{PersonnelNumber: pn, FirstName: "A", LastName: "B", Active: true}); err != nil {
			t.Fatalf("Create %s: %v", pn, err)
		}
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"1000", "2000", "3000"}
	for i, pn := range want {
		if list[i].PersonnelNumber != pn {
			t.Fatalf("list[%d] = %s, want %s", i, list[i].PersonnelNumber, pn)
		}
	}
}

func TestEmployeeGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewEmployeeRepository(db)

	_, err := repo.Get(context.Background(), 999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
