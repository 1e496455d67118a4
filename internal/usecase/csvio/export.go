package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Column orders are fixed per entity and match what the importers accept,
// so an export can be fed straight back in.

func (x *Exchanger) exportEmployees(ctx context.Context) (string, error) {
	employees, err := x.store.Employees.List(ctx)
	if err != nil {
		return "", err
	}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			e.PersonnelNumber,
			e.FirstName,
			e.LastName,
			formatString(e.Department),
			formatString(e.Role),
			formatBool(e.Active),
		})
	}
	return writeCSV(
		[]string{"personnel_number", "first_name", "last_name", "department", "role", "active"},
		rows,
	)
}

func (x *Exchanger) exportMachines(ctx context.Context) (string, error) {
	machines, err := x.store.Machines.List(ctx)
	if err != nil {
		return "", err
	}
	rows := make([][]string, 0, len(machines))
	for _, m := range machines {
		rows = append(rows, []string{
			m.Code,
			m.Name,
			formatString(m.Description),
			formatString(m.Location),
			formatBool(m.Active),
		})
	}
	return writeCSV([]string{"code", "name", "description", "location", "active"}, rows)
}

func (x *Exchanger) exportWorkOrders(ctx context.Context) (string, error) {
	workOrders, err := x.store.WorkOrders.List(ctx)
	if err != nil {
		return "", err
	}
	rows := make([][]string, 0, len(workOrders))
	for _, w := range workOrders {
		rows = append(rows, []string{
			w.OrderNumber,
			formatString(w.Customer),
			formatString(w.Article),
			formatInt(w.Quantity),
			formatDate(w.DueDate),
			w.Status,
		})
	}
	return writeCSV(
		[]string{"order_number", "customer", "article", "quantity", "due_date", "status"},
		rows,
	)
}

// exportOperations denormalizes the work-order and machine references into
// their natural-key text form; the internal ids never appear in the file.
func (x *Exchanger) exportOperations(ctx context.Context) (string, error) {
	operations, err := x.store.Operations.List(ctx)
	if err != nil {
		return "", err
	}
	rows := make([][]string, 0, len(operations))
	for _, o := range operations {
		orderNumber, err := x.workOrderNumber(ctx, o.WorkOrderID)
		if err != nil {
			return "", err
		}
		machineCode := ""
		if o.MachineID != nil {
			machineCode, err = x.machineCode(ctx, *o.MachineID)
			if err != nil {
				return "", err
			}
		}
		rows = append(rows, []string{
			o.Code,
			formatString(o.Description),
			orderNumber,
			machineCode,
			formatFloat(o.StandardTimeMinutes),
			formatBool(o.IsActive),
		})
	}
	return writeCSV(
		[]string{"code", "description", "order_number", "machine_code", "standard_time_minutes", "is_active"},
		rows,
	)
}

func (x *Exchanger) exportActivityRecords(ctx context.Context) (string, error) {
	records, err := x.store.Activities.List(ctx)
	if err != nil {
		return "", err
	}
	rows := make([][]string, 0, len(records))
	for _, a := range records {
		employee, err := x.store.Employees.Get(ctx, a.EmployeeID)
		if err != nil {
			return "", err
		}
		operation, err := x.store.Operations.Get(ctx, a.OperationID)
		if err != nil {
			return "", err
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(a.ID), 10),
			formatDateTime(&a.StartTime),
			formatDateTime(a.EndTime),
			employee.PersonnelNumber,
			operation.Code,
			strconv.Itoa(a.QuantityGood),
			strconv.Itoa(a.QuantityReject),
			a.Status,
			formatString(a.Comment),
		})
	}
	return writeCSV(
		[]string{"id", "start_time", "end_time", "personnel_number", "operation_code", "quantity_good", "quantity_reject", "status", "comment"},
		rows,
	)
}

func (x *Exchanger) workOrderNumber(ctx context.Context, id uint) (string, error) {
	w, err := x.store.WorkOrders.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return w.OrderNumber, nil
}

func (x *Exchanger) machineCode(ctx context.Context, id uint) (string, error) {
	m, err := x.store.Machines.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return m.Code, nil
}

func writeCSV(header []string, rows [][]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func formatInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formatFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func formatDate(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format(dateLayout)
}

func formatDateTime(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format(dateTimeLayout)
}
