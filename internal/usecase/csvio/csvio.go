// Package csvio implements bulk CSV exchange for the BDE entities: export
// of ordered snapshots and import with upsert-by-natural-key reconciliation.
package csvio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"bde-backend/internal/domain/bde"
)

// Summary is the result of one import file.
type Summary struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// ErrUnknownEntity is returned for entity names outside the registry.
var ErrUnknownEntity = errors.New("unknown entity")

// ImportError marks client-caused import failures: missing or malformed
// fields and unresolved natural-key references.
type ImportError struct{ msg string }

func (e *ImportError) Error() string { return e.msg }

func importErrorf(format string, args ...any) error {
	return &ImportError{msg: fmt.Sprintf(format, args...)}
}

// IsImportError reports whether err is a row-level import failure, as
// opposed to a store error.
func IsImportError(err error) bool {
	var ie *ImportError
	return errors.As(err, &ie)
}

// Exchanger runs imports and exports against one store handle. It holds no
// other state; every call receives its own context.
type Exchanger struct{ store bde.Store }

func NewExchanger(store bde.Store) *Exchanger { return &Exchanger{store: store} }

// Entity names accepted by Import and Export.
const (
	EntityEmployees       = "employees"
	EntityMachines        = "machines"
	EntityWorkOrders      = "work_orders"
	EntityOperations      = "operations"
	EntityActivityRecords = "activity_records"
)

func (x *Exchanger) Import(ctx context.Context, entity string, src io.Reader) (Summary, error) {
	switch entity {
	case EntityEmployees:
		return x.importEmployees(ctx, src)
	case EntityMachines:
		return x.importMachines(ctx, src)
	case EntityWorkOrders:
		return x.importWorkOrders(ctx, src)
	case EntityOperations:
		return x.importOperations(ctx, src)
	case EntityActivityRecords:
		return x.importActivityRecords(ctx, src)
	default:
		return Summary{}, ErrUnknownEntity
	}
}

func (x *Exchanger) Export(ctx context.Context, entity string) (string, error) {
	switch entity {
	case EntityEmployees:
		return x.exportEmployees(ctx)
	case EntityMachines:
		return x.exportMachines(ctx)
	case EntityWorkOrders:
		return x.exportWorkOrders(ctx)
	case EntityOperations:
		return x.exportOperations(ctx)
	case EntityActivityRecords:
		return x.exportActivityRecords(ctx)
	default:
		return "", ErrUnknownEntity
	}
}
