// Package sqldb implements the bde repositories on gorm. Cascade deletes
// are enforced here, at the store boundary: deleting a parent removes its
// dependents inside one transaction instead of relying on database-level
// FK pragmas (sqlite ships with them off).
package sqldb

import (
	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

func NewStore(db *gorm.DB) bde.Store {
	return bde.Store{
		Employees:  NewEmployeeRepository(db),
		Machines:   NewMachineRepository(db),
		WorkOrders: NewWorkOrderRepository(db),
		Operations: NewOperationRepository(db),
		Activities: NewActivityRecordRepository(db),
	}
}
