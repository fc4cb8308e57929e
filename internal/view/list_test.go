package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"staffdesk/internal/model"
)

// fakeClient is an in-memory Client for the view tests.
type fakeClient struct {
	employees []model.Employee
	nextID    uint

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	deleted []uint
	listed  int
}

func newFakeClient(employees ...model.Employee) *fakeClient {
	nextID := uint(1)
	for _, e := range employees {
		if e.ID >= nextID {
			nextID = e.ID + 1
		}
	}
	return &fakeClient{employees: employees, nextID: nextID}
}

func (f *fakeClient) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	f.listed++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Employee, len(f.employees))
	copy(out, f.employees)
	return out, nil
}

func (f *fakeClient) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.employees {
		if f.employees[i].ID == id {
			e := f.employees[i]
			return &e, nil
		}
	}
	return nil, errors.New("employee not found")
}

func (f *fakeClient) CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	employee.ID = f.nextID
	f.nextID++
	if employee.Status == "" {
		employee.Status = model.StatusActive
	}
	f.employees = append(f.employees, employee)
	return &employee, nil
}

func (f *fakeClient) UpdateEmployee(ctx context.Context, id uint, patch model.EmployeePatch) (*model.Employee, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.employees {
		if f.employees[i].ID != id {
			continue
		}
		e := &f.employees[i]
		if patch.Name != nil {
			e.Name = *patch.Name
		}
		if patch.Email != nil {
			e.Email = *patch.Email
		}
		if patch.Position != nil {
			e.Position = *patch.Position
		}
		if patch.Department != nil {
			e.Department = *patch.Department
		}
		if patch.Salary != nil {
			e.Salary = *patch.Salary
		}
		if patch.HireDate != nil {
			e.HireDate = *patch.HireDate
		}
		if patch.Status != nil {
			e.Status = *patch.Status
		}
		out := *e
		return &out, nil
	}
	return nil, errors.New("employee not found")
}

func (f *fakeClient) DeleteEmployee(ctx context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			break
		}
	}
	return nil
}

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	assert.NoError(t, err)
	return d
}

func sampleEmployees() []model.Employee {
	return []model.Employee{
		{ID: 1, Name: "Dewi", Email: "dewi@x.com", Department: "HR", Status: model.StatusActive},
		{ID: 2, Name: "Budi", Email: "budi@x.com", Department: "IT", Status: model.StatusActive},
		{ID: 3, Name: "Citra", Email: "citra@y.com", Department: "IT", Status: model.StatusInactive},
		{ID: 4, Name: "Agus", Email: "agus@y.com", Department: "Finance", Status: model.StatusActive},
	}
}

func TestListSearchMatchesNameAndEmailCaseInsensitive(t *testing.T) {
	list := NewList(newFakeClient(sampleEmployees()...))
	assert.NoError(t, list.Load(context.Background()))

	list.SetSearch("DEWI")
	visible := list.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "Dewi", visible[0].Name)

	// Part of an email matches even when no name contains it.
	list.SetSearch("y.com")
	visible = list.Visible()
	assert.Len(t, visible, 2)
	assert.Equal(t, "Citra", visible[0].Name)
	assert.Equal(t, "Agus", visible[1].Name)
}

func TestListDepartmentFilterPreservesOrder(t *testing.T) {
	list := NewList(newFakeClient(sampleEmployees()...))
	assert.NoError(t, list.Load(context.Background()))

	list.SetDepartmentFilter("IT")
	visible := list.Visible()
	assert.Len(t, visible, 2)
	assert.Equal(t, uint(2), visible[0].ID)
	assert.Equal(t, uint(3), visible[1].ID)
}

func TestListStatusFilter(t *testing.T) {
	list := NewList(newFakeClient(sampleEmployees()...))
	assert.NoError(t, list.Load(context.Background()))

	list.SetStatusFilter(model.StatusInactive)
	visible := list.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "Citra", visible[0].Name)
}

func TestListSortByName(t *testing.T) {
	list := NewList(newFakeClient(sampleEmployees()...))
	assert.NoError(t, list.Load(context.Background()))

	list.SetSortByName(true)
	visible := list.Visible()
	assert.Equal(t, []string{"Agus", "Budi", "Citra", "Dewi"},
		[]string{visible[0].Name, visible[1].Name, visible[2].Name, visible[3].Name})
}

func TestListPagination(t *testing.T) {
	var employees []model.Employee
	for i := uint(1); i <= 12; i++ {
		employees = append(employees, model.Employee{ID: i, Name: "emp", Email: "e@x.com"})
	}
	list := NewList(newFakeClient(employees...))
	assert.NoError(t, list.Load(context.Background()))

	assert.Equal(t, 3, list.PageCount())
	assert.Len(t, list.Rows(), PageSize)
	assert.Equal(t, uint(1), list.Rows()[0].ID)

	list.SetPage(2)
	assert.Len(t, list.Rows(), 2)
	assert.Equal(t, uint(11), list.Rows()[0].ID)

	// Out-of-range pages clamp.
	list.SetPage(99)
	assert.Equal(t, 2, list.Page())
	list.SetPage(-1)
	assert.Equal(t, 0, list.Page())
}

func TestListSearchResetsPage(t *testing.T) {
	var employees []model.Employee
	for i := uint(1); i <= 12; i++ {
		employees = append(employees, model.Employee{ID: i, Name: "emp", Email: "e@x.com"})
	}
	list := NewList(newFakeClient(employees...))
	assert.NoError(t, list.Load(context.Background()))

	list.SetPage(2)
	list.SetSearch("emp")
	assert.Equal(t, 0, list.Page())
}

func TestListDepartmentFiltersAreDistinctFirstSeen(t *testing.T) {
	list := NewList(newFakeClient(sampleEmployees()...))
	assert.NoError(t, list.Load(context.Background()))

	assert.Equal(t, []string{"HR", "IT", "Finance"}, list.DepartmentFilters())
}

func TestListDeleteRequiresConfirmation(t *testing.T) {
	api := newFakeClient(sampleEmployees()...)
	list := NewList(api)
	assert.NoError(t, list.Load(context.Background()))

	list.RequestDelete(2)
	// Nothing fires until confirmation.
	assert.Empty(t, api.deleted)

	id, pending := list.PendingDelete()
	assert.True(t, pending)
	assert.Equal(t, uint(2), id)

	list.CancelDelete()
	assert.NoError(t, list.ConfirmDelete(context.Background()))
	assert.Empty(t, api.deleted)

	list.RequestDelete(2)
	assert.NoError(t, list.ConfirmDelete(context.Background()))
	assert.Equal(t, []uint{2}, api.deleted)

	// The list re-fetched rather than removing the row optimistically.
	assert.Equal(t, 2, api.listed)
	assert.Len(t, list.Employees(), 3)
}

func TestListDeleteFailureKeepsRecords(t *testing.T) {
	api := newFakeClient(sampleEmployees()...)
	list := NewList(api)
	assert.NoError(t, list.Load(context.Background()))

	api.deleteErr = errors.New("network down")
	list.RequestDelete(2)
	assert.Error(t, list.ConfirmDelete(context.Background()))
	assert.Len(t, list.Employees(), 4)
}
