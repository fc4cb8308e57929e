package view

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"staffdesk/internal/model"
)

// Detail is the read-only single-employee view model.
type Detail struct {
	api      Client
	employee *model.Employee
	printer  *message.Printer
}

// NewDetail creates a detail view over the given API client.
func NewDetail(api Client) *Detail {
	return &Detail{
		api:     api,
		printer: message.NewPrinter(language.Indonesian),
	}
}

// Load fetches the record by id.
func (d *Detail) Load(ctx context.Context, id uint) error {
	employee, err := d.api.GetEmployee(ctx, id)
	if err != nil {
		return err
	}
	d.employee = employee
	return nil
}

// Employee returns the loaded record, or nil before Load.
func (d *Detail) Employee() *model.Employee {
	return d.employee
}

// FormattedSalary renders the salary as Indonesian-locale rupiah.
func (d *Detail) FormattedSalary() string {
	if d.employee == nil {
		return "-"
	}
	f, _ := d.employee.Salary.Float64()
	return d.printer.Sprintf("Rp %v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormattedHireDate renders the hire date in the Indonesian d/m/yyyy shape.
func (d *Detail) FormattedHireDate() string {
	if d.employee == nil || d.employee.HireDate.IsZero() {
		return "-"
	}
	return d.employee.HireDate.Format("2/1/2006")
}

// Delete removes the loaded record; the caller navigates back to the list.
func (d *Detail) Delete(ctx context.Context) error {
	if d.employee == nil {
		return nil
	}
	if err := d.api.DeleteEmployee(ctx, d.employee.ID); err != nil {
		return err
	}
	d.employee = nil
	return nil
}
