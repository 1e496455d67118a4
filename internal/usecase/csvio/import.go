package csvio

import (
	"context"
	"errors"
	"io"
	"strings"

	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

// Each importer works row by row: the matched record is updated (never its
// natural key) or a new one is created, and the write is committed before
// the next row is read. A failing row therefore aborts the file but leaves
// everything before it applied; counts are only reported on full success.

func (x *Exchanger) importEmployees(ctx context.Context, src io.Reader) (Summary, error) {
	rows, err := readRows(src)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, row := range rows {
		personnelNumber := strings.TrimSpace(row["personnel_number"])
		if personnelNumber == "" {
			return Summary{}, importErrorf("missing personnel_number in employee import")
		}
		active := parseBool(row["active"], true)

		existing, err := x.store.Employees.GetByPersonnelNumber(ctx, personnelNumber)
		switch {
		case err == nil:
			patch := bde.EmployeeUpdate{
				FirstName:  bde.Some(strings.TrimSpace(row["first_name"])),
				LastName:   bde.Some(strings.TrimSpace(row["last_name"])),
				Department: bde.Some(optString(row["department"])),
				Role:       bde.Some(optString(row["role"])),
				Active:     bde.Some(active),
			}
			if _, err := x.store.Employees.Update(ctx, existing, patch); err != nil {
				return Summary{}, err
			}
			sum.Updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			e := &bde.Employee{
				PersonnelNumber: personnelNumber,
				FirstName:       strings.TrimSpace(row["first_name"]),
				LastName:        strings.TrimSpace(row["last_name"]),
				Department:      optString(row["department"]),
				Role:            optString(row["role"]),
				Active:          active,
			}
			if err := x.store.Employees.Create(ctx, e); err != nil {
				return Summary{}, err
			}
			sum.Inserted++
		default:
			return Summary{}, err
		}
	}
	return sum, nil
}

func (x *Exchanger) importMachines(ctx context.Context, src io.Reader) (Summary, error) {
	rows, err := readRows(src)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, row := range rows {
		code := strings.TrimSpace(row["code"])
		if code == "" {
			return Summary{}, importErrorf("missing code in machine import")
		}
		active := parseBool(row["active"], true)

		existing, err := x.store.Machines.GetByCode(ctx, code)
		switch {
		case err == nil:
			patch := bde.MachineUpdate{
				Name:        bde.Some(strings.TrimSpace(row["name"])),
				Description: bde.Some(optString(row["description"])),
				Location:    bde.Some(optString(row["location"])),
				Active:      bde.Some(active),
			}
			if _, err := x.store.Machines.Update(ctx, existing, patch); err != nil {
				return Summary{}, err
			}
			sum.Updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			m := &bde.Machine{
				Code:        code,
				Name:        strings.TrimSpace(row["name"]),
				Description: optString(row["description"]),
				Location:    optString(row["location"]),
				Active:      active,
			}
			if err := x.store.Machines.Create(ctx, m); err != nil {
				return Summary{}, err
			}
			sum.Inserted++
		default:
			return Summary{}, err
		}
	}
	return sum, nil
}

func (x *Exchanger) importWorkOrders(ctx context.Context, src io.Reader) (Summary, error) {
	rows, err := readRows(src)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, row := range rows {
		orderNumber := strings.TrimSpace(row["order_number"])
		if orderNumber == "" {
			return Summary{}, importErrorf("missing order_number in work order import")
		}
		quantity, err := parseInt(row["quantity"])
		if err != nil {
			return Summary{}, err
		}
		dueDate, err := parseDate(row["due_date"])
		if err != nil {
			return Summary{}, err
		}
		status := strings.TrimSpace(row["status"])
		if status == "" {
			status = "open"
		}

		existing, err := x.store.WorkOrders.GetByOrderNumber(ctx, orderNumber)
		switch {
		case err == nil:
			patch := bde.WorkOrderUpdate{
				Customer: bde.Some(optString(row["customer"])),
				Article:  bde.Some(optString(row["article"])),
				Quantity: bde.Some(quantity),
				DueDate:  bde.Some(dueDate),
				Status:   bde.Some(status),
			}
			if _, err := x.store.WorkOrders.Update(ctx, existing, patch); err != nil {
				return Summary{}, err
			}
			sum.Updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			w := &bde.WorkOrder{
				OrderNumber: orderNumber,
				Customer:    optString(row["customer"]),
				Article:     optString(row["article"]),
				Quantity:    quantity,
				DueDate:     dueDate,
				Status:      status,
			}
			if err := x.store.WorkOrders.Create(ctx, w); err != nil {
				return Summary{}, err
			}
			sum.Inserted++
		default:
			return Summary{}, err
		}
	}
	return sum, nil
}

func (x *Exchanger) importOperations(ctx context.Context, src io.Reader) (Summary, error) {
	rows, err := readRows(src)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, row := range rows {
		code := strings.TrimSpace(row["code"])
		if code == "" {
			return Summary{}, importErrorf("missing code in operation import")
		}
		orderNumber := strings.TrimSpace(row["order_number"])
		if orderNumber == "" {
			return Summary{}, importErrorf("missing order_number for operation %s", code)
		}
		workOrder, err := x.store.WorkOrders.GetByOrderNumber(ctx, orderNumber)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Summary{}, importErrorf("work order %q not found for operation %s", orderNumber, code)
		} else if err != nil {
			return Summary{}, err
		}

		var machineID *uint
		if machineCode := strings.TrimSpace(row["machine_code"]); machineCode != "" {
			machine, err := x.store.Machines.GetByCode(ctx, machineCode)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Summary{}, importErrorf("machine %q not found for operation %s", machineCode, code)
			} else if err != nil {
				return Summary{}, err
			}
			machineID = &machine.ID
		}

		standardTime, err := parseFloat(row["standard_time_minutes"])
		if err != nil {
			return Summary{}, err
		}
		isActive := parseBool(row["is_active"], true)

		existing, err := x.store.Operations.GetByCode(ctx, code)
		switch {
		case err == nil:
			patch := bde.OperationUpdate{
				Description:         bde.Some(optString(row["description"])),
				WorkOrderID:         bde.Some(workOrder.ID),
				MachineID:           bde.Some(machineID),
				StandardTimeMinutes: bde.Some(standardTime),
				IsActive:            bde.Some(isActive),
			}
			if _, err := x.store.Operations.Update(ctx, existing, patch); err != nil {
				return Summary{}, err
			}
			sum.Updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			o := &bde.Operation{
				Code:                code,
				Description:         optString(row["description"]),
				WorkOrderID:         workOrder.ID,
				MachineID:           machineID,
				StandardTimeMinutes: standardTime,
				IsActive:            isActive,
			}
			if err := x.store.Operations.Create(ctx, o); err != nil {
				return Summary{}, err
			}
			sum.Inserted++
		default:
			return Summary{}, err
		}
	}
	return sum, nil
}

func (x *Exchanger) importActivityRecords(ctx context.Context, src io.Reader) (Summary, error) {
	rows, err := readRows(src)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, row := range rows {
		startTime, err := parseDateTime(row["start_time"])
		if err != nil {
			return Summary{}, err
		}
		if startTime == nil {
			return Summary{}, importErrorf("missing start_time in activity import")
		}
		endTime, err := parseDateTime(row["end_time"])
		if err != nil {
			return Summary{}, err
		}

		personnelNumber := strings.TrimSpace(row["personnel_number"])
		if personnelNumber == "" {
			return Summary{}, importErrorf("missing personnel_number in activity import")
		}
		employee, err := x.store.Employees.GetByPersonnelNumber(ctx, personnelNumber)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Summary{}, importErrorf("employee %q not found", personnelNumber)
		} else if err != nil {
			return Summary{}, err
		}

		operationCode := strings.TrimSpace(row["operation_code"])
		if operationCode == "" {
			return Summary{}, importErrorf("missing operation_code in activity import")
		}
		operation, err := x.store.Operations.GetByCode(ctx, operationCode)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Summary{}, importErrorf("operation %q not found", operationCode)
		} else if err != nil {
			return Summary{}, err
		}

		quantityGood, err := parseInt(row["quantity_good"])
		if err != nil {
			return Summary{}, err
		}
		quantityReject, err := parseInt(row["quantity_reject"])
		if err != nil {
			return Summary{}, err
		}
		status := strings.TrimSpace(row["status"])
		if status == "" {
			status = "completed"
		}

		recordID, err := parseInt(row["id"])
		if err != nil {
			return Summary{}, err
		}
		if recordID != nil && *recordID != 0 {
			existing, err := x.store.Activities.Get(ctx, uint(*recordID))
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Summary{}, importErrorf("activity record with id %d not found", *recordID)
			} else if err != nil {
				return Summary{}, err
			}
			patch := bde.ActivityRecordUpdate{
				StartTime:      bde.Some(*startTime),
				EndTime:        bde.Some(endTime),
				EmployeeID:     bde.Some(employee.ID),
				OperationID:    bde.Some(operation.ID),
				QuantityGood:   bde.Some(intOrZero(quantityGood)),
				QuantityReject: bde.Some(intOrZero(quantityReject)),
				Status:         bde.Some(status),
				Comment:        bde.Some(optString(row["comment"])),
			}
			if _, err := x.store.Activities.Update(ctx, existing, patch); err != nil {
				return Summary{}, err
			}
			sum.Updated++
		} else {
			a := &bde.ActivityRecord{
				StartTime:      *startTime,
				EndTime:        endTime,
				EmployeeID:     employee.ID,
				OperationID:    operation.ID,
				QuantityGood:   intOrZero(quantityGood),
				QuantityReject: intOrZero(quantityReject),
				Status:         status,
				Comment:        optString(row["comment"]),
			}
			if err := x.store.Activities.Create(ctx, a); err != nil {
				return Summary{}, err
			}
			sum.Inserted++
		}
	}
	return sum, nil
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
