package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"staffdesk/internal/model"
)

// State tracks where the form is in its lifecycle.
type State int

const (
	// StatePristine is a new, untouched create form.
	StatePristine State = iota
	// StateLoading is an edit form fetching the existing record.
	StateLoading
	// StateEditing accepts user input; a failed submit returns here.
	StateEditing
	// StateSubmitting has a save request in flight.
	StateSubmitting
	// StateSuccess means the save landed; the caller navigates away.
	StateSuccess
)

// ErrInvalid is returned by Submit when client-side validation fails.
var ErrInvalid = errors.New("form has validation errors")

// Input holds the form's field values. All fields are required client-side;
// the pointer fields distinguish "never entered" from zero values.
type Input struct {
	Name       string      `validate:"required"`
	Email      string      `validate:"required,email"`
	Position   string      `validate:"required"`
	Department string      `validate:"required"`
	Salary     *float64    `validate:"required,gte=0"`
	HireDate   *model.Date `validate:"required"`
	Status     string      `validate:"required,oneof=active inactive"`
}

// Form is the dual-purpose create/edit view model. Edit mode is selected by
// constructing with an id; it pre-populates from the stored record.
type Form struct {
	api      Client
	validate *validator.Validate

	state State
	id    uint
	input Input

	fieldErrors map[string]string
	errorMsg    string
}

// NewForm creates a pristine create-mode form with status preselected.
func NewForm(api Client) *Form {
	return &Form{
		api:      api,
		validate: validator.New(),
		state:    StatePristine,
		input:    Input{Status: string(model.StatusActive)},
	}
}

// NewEditForm creates an edit-mode form for the given record id. Load must
// be called before editing.
func NewEditForm(api Client, id uint) *Form {
	f := NewForm(api)
	f.id = id
	f.state = StateLoading
	return f
}

// IsEdit reports whether the form updates an existing record.
func (f *Form) IsEdit() bool {
	return f.id != 0
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	return f.state
}

// Input returns the current field values.
func (f *Form) Input() Input {
	return f.input
}

// FieldErrors returns per-field validation messages from the last Validate.
func (f *Form) FieldErrors() map[string]string {
	return f.fieldErrors
}

// ErrorMessage returns the transient submit-failure message, if any.
func (f *Form) ErrorMessage() string {
	return f.errorMsg
}

// Load fetches the existing record in edit mode and pre-populates the
// fields, parsing the stored hire date into the picker representation.
func (f *Form) Load(ctx context.Context) error {
	if !f.IsEdit() {
		return nil
	}
	employee, err := f.api.GetEmployee(ctx, f.id)
	if err != nil {
		return err
	}
	salary, _ := employee.Salary.Float64()
	hireDate := employee.HireDate
	f.input = Input{
		Name:       employee.Name,
		Email:      employee.Email,
		Position:   employee.Position,
		Department: employee.Department,
		Salary:     &salary,
		HireDate:   &hireDate,
		Status:     string(employee.Status),
	}
	f.state = StateEditing
	return nil
}

func (f *Form) touch() {
	if f.state == StatePristine {
		f.state = StateEditing
	}
}

// SetName sets the name field.
func (f *Form) SetName(name string) {
	f.input.Name = name
	f.touch()
}

// SetEmail sets the email field.
func (f *Form) SetEmail(email string) {
	f.input.Email = email
	f.touch()
}

// SetPosition sets the position field.
func (f *Form) SetPosition(position string) {
	f.input.Position = position
	f.touch()
}

// SetDepartment sets the department field.
func (f *Form) SetDepartment(department string) {
	f.input.Department = department
	f.touch()
}

// SetSalary sets the salary field.
func (f *Form) SetSalary(salary float64) {
	f.input.Salary = &salary
	f.touch()
}

// SetHireDate parses a "YYYY-MM-DD" string into the date field.
func (f *Form) SetHireDate(s string) error {
	d, err := model.ParseDate(s)
	if err != nil {
		return err
	}
	f.input.HireDate = &d
	f.touch()
	return nil
}

// SetStatus sets the status field.
func (f *Form) SetStatus(status string) {
	f.input.Status = status
	f.touch()
}

// Validate runs client-side validation and fills FieldErrors. Returns true
// when the form can be submitted.
func (f *Form) Validate() bool {
	f.fieldErrors = make(map[string]string)
	err := f.validate.Struct(f.input)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		f.fieldErrors["form"] = err.Error()
		return false
	}
	for _, fe := range verrs {
		f.fieldErrors[fe.StructField()] = fieldMessage(fe)
	}
	return false
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		return "Please enter name"
	case "Email":
		if fe.Tag() == "email" {
			return "Invalid email format"
		}
		return "Please enter email"
	case "Position":
		return "Please enter position"
	case "Department":
		return "Please select department"
	case "Salary":
		if fe.Tag() == "gte" {
			return "Salary must be positive"
		}
		return "Please enter salary"
	case "HireDate":
		return "Please select hire date"
	case "Status":
		return "Please select status"
	default:
		return fmt.Sprintf("invalid %s", fe.StructField())
	}
}

// Submit validates and saves the form. On success the state becomes
// StateSuccess; on a failed request the form stays populated in
// StateEditing with a transient error message, ready for retry.
func (f *Form) Submit(ctx context.Context) error {
	if !f.Validate() {
		return ErrInvalid
	}
	f.state = StateSubmitting
	f.errorMsg = ""

	var err error
	if f.IsEdit() {
		_, err = f.api.UpdateEmployee(ctx, f.id, f.patch())
	} else {
		_, err = f.api.CreateEmployee(ctx, f.employee())
	}
	if err != nil {
		f.state = StateEditing
		f.errorMsg = "Failed to save employee"
		return err
	}
	f.state = StateSuccess
	return nil
}

// employee builds the create payload; the hire date re-serializes to
// "YYYY-MM-DD" through the Date type.
func (f *Form) employee() model.Employee {
	return model.Employee{
		Name:       f.input.Name,
		Email:      f.input.Email,
		Position:   f.input.Position,
		Department: f.input.Department,
		Salary:     decimal.NewFromFloat(*f.input.Salary),
		HireDate:   *f.input.HireDate,
		Status:     model.Status(f.input.Status),
	}
}

// patch builds the update payload. The form always sends every field; the
// merge-by-omission contract matters for other callers, not the form.
func (f *Form) patch() model.EmployeePatch {
	salary := decimal.NewFromFloat(*f.input.Salary)
	status := model.Status(f.input.Status)
	return model.EmployeePatch{
		Name:       &f.input.Name,
		Email:      &f.input.Email,
		Position:   &f.input.Position,
		Department: &f.input.Department,
		Salary:     &salary,
		HireDate:   f.input.HireDate,
		Status:     &status,
	}
}
