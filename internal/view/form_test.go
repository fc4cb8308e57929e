package view

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"staffdesk/internal/model"
)

func filledForm(api Client) *Form {
	form := NewForm(api)
	form.SetName("Ann")
	form.SetEmail("ann@x.com")
	form.SetPosition("Eng")
	form.SetDepartment("IT")
	form.SetSalary(5000000)
	_ = form.SetHireDate("2023-03-01")
	return form
}

func TestFormStartsPristineAndActivated(t *testing.T) {
	form := NewForm(newFakeClient())

	assert.Equal(t, StatePristine, form.State())
	assert.False(t, form.IsEdit())
	assert.Equal(t, string(model.StatusActive), form.Input().Status)
}

func TestFormInputMovesPristineToEditing(t *testing.T) {
	form := NewForm(newFakeClient())
	form.SetName("Ann")
	assert.Equal(t, StateEditing, form.State())
}

func TestFormValidationMessages(t *testing.T) {
	form := NewForm(newFakeClient())
	form.SetEmail("not-an-email")
	form.SetSalary(-1)

	assert.False(t, form.Validate())

	fieldErrors := form.FieldErrors()
	assert.Equal(t, "Please enter name", fieldErrors["Name"])
	assert.Equal(t, "Invalid email format", fieldErrors["Email"])
	assert.Equal(t, "Please enter position", fieldErrors["Position"])
	assert.Equal(t, "Please select department", fieldErrors["Department"])
	assert.Equal(t, "Salary must be positive", fieldErrors["Salary"])
	assert.Equal(t, "Please select hire date", fieldErrors["HireDate"])
}

func TestFormSubmitBlockedByValidation(t *testing.T) {
	api := newFakeClient()
	form := NewForm(api)

	err := form.Submit(context.Background())

	assert.ErrorIs(t, err, ErrInvalid)
	assert.Len(t, api.employees, 0)
}

func TestFormCreateSubmit(t *testing.T) {
	api := newFakeClient()
	form := filledForm(api)

	assert.True(t, form.Validate())
	assert.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, StateSuccess, form.State())

	assert.Len(t, api.employees, 1)
	created := api.employees[0]
	assert.Equal(t, "Ann", created.Name)
	assert.Equal(t, model.StatusActive, created.Status)
	// The date re-serializes to the fixed wire format.
	assert.Equal(t, "2023-03-01", created.HireDate.String())
	assert.True(t, decimal.NewFromInt(5000000).Equal(created.Salary))
}

func TestFormSubmitFailureStaysEditable(t *testing.T) {
	api := newFakeClient()
	api.createErr = errors.New("boom")
	form := filledForm(api)

	err := form.Submit(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StateEditing, form.State())
	assert.Equal(t, "Failed to save employee", form.ErrorMessage())
	// The form stays populated for retry.
	assert.Equal(t, "Ann", form.Input().Name)

	api.createErr = nil
	assert.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, StateSuccess, form.State())
	assert.Empty(t, form.ErrorMessage())
}

func TestEditFormLoadPopulatesFields(t *testing.T) {
	api := newFakeClient(model.Employee{
		ID:         3,
		Name:       "Citra",
		Email:      "citra@y.com",
		Position:   "Accountant",
		Department: "Finance",
		Salary:     decimal.NewFromInt(11000000),
		HireDate:   date(t, "2019-11-23"),
		Status:     model.StatusInactive,
	})

	form := NewEditForm(api, 3)
	assert.True(t, form.IsEdit())
	assert.Equal(t, StateLoading, form.State())

	assert.NoError(t, form.Load(context.Background()))
	assert.Equal(t, StateEditing, form.State())

	input := form.Input()
	assert.Equal(t, "Citra", input.Name)
	assert.Equal(t, "Finance", input.Department)
	assert.Equal(t, "inactive", input.Status)
	// The stored date string is parsed into the picker representation.
	assert.NotNil(t, input.HireDate)
	assert.Equal(t, "2019-11-23", input.HireDate.String())
	assert.NotNil(t, input.Salary)
	assert.Equal(t, float64(11000000), *input.Salary)
}

func TestEditFormSubmitUpdates(t *testing.T) {
	api := newFakeClient(model.Employee{
		ID:         3,
		Name:       "Citra",
		Email:      "citra@y.com",
		Position:   "Accountant",
		Department: "Finance",
		Salary:     decimal.NewFromInt(11000000),
		HireDate:   date(t, "2019-11-23"),
		Status:     model.StatusActive,
	})

	form := NewEditForm(api, 3)
	assert.NoError(t, form.Load(context.Background()))

	form.SetSalary(12000000)
	assert.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, StateSuccess, form.State())

	updated, err := api.GetEmployee(context.Background(), 3)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12000000).Equal(updated.Salary))
	// Untouched fields survive the round trip.
	assert.Equal(t, "Citra", updated.Name)
	assert.Equal(t, "2019-11-23", updated.HireDate.String())
}

func TestFormInvalidHireDateRejected(t *testing.T) {
	form := NewForm(newFakeClient())
	assert.Error(t, form.SetHireDate("15-01-2024"))
	assert.Nil(t, form.Input().HireDate)
}
