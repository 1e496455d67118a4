package bde

import (
	"encoding/json"
	"testing"
)

func TestOptionalUnmarshal_PresenceTracking(t *testing.T) {
	var u EmployeeUpdate
	// role present as explicit null, department absent
	if err := json.Unmarshal([]byte(`{"first_name":"Max","role":null}`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !u.FirstName.Set || u.FirstName.Val != "Max" {
		t.Errorf("first_name = %+v, want set to Max", u.FirstName)
	}
	if u.Department.Set {
		t.Errorf("department should be unset, got %+v", u.Department)
	}
	if !u.Role.Set || u.Role.Val != nil {
		t.Errorf("role should be set to nil, got %+v", u.Role)
	}
}

func TestChanges_OnlySetFields(t *testing.T) {
	u := EmployeeUpdate{
		LastName: Some("Mustermann"),
		Role:     Some[*string](nil),
	}
	ch := u.Changes()
	if len(ch) != 2 {
		t.Fatalf("changes = %v, want 2 entries", ch)
	}
	if ch["last_name"] != "Mustermann" {
		t.Errorf("last_name = %v", ch["last_name"])
	}
	if v, ok := ch["role"]; !ok || v.(*string) != nil {
		t.Errorf("role = %v, want explicit nil", v)
	}
	if _, ok := ch["first_name"]; ok {
		t.Errorf("first_name must not appear in changes")
	}
}

func TestChanges_Empty(t *testing.T) {
	if ch := (MachineUpdate{}).Changes(); len(ch) != 0 {
		t.Fatalf("changes = %v, want empty", ch)
	}
}
