package view

import (
	"context"
	"sort"
	"strings"

	"staffdesk/internal/model"
)

// PageSize is the fixed client-side page size.
const PageSize = 5

// List is the employee list view model. It fetches the full record set once
// and applies search, column filters, sort and pagination in memory.
type List struct {
	api Client

	employees []model.Employee

	search     string
	department string
	status     model.Status
	sortByName bool

	page int

	pendingDelete uint
	hasPending    bool
}

// NewList creates a list view over the given API client.
func NewList(api Client) *List {
	return &List{api: api}
}

// Load fetches the full record set from the server, replacing the cached one.
func (l *List) Load(ctx context.Context) error {
	employees, err := l.api.ListEmployees(ctx)
	if err != nil {
		return err
	}
	l.employees = employees
	return nil
}

// Employees returns the unfiltered cached record set.
func (l *List) Employees() []model.Employee {
	return l.employees
}

// SetSearch sets the search text, matched case-insensitively against name
// and email. Resets to the first page.
func (l *List) SetSearch(text string) {
	l.search = text
	l.page = 0
}

// SetDepartmentFilter restricts rows to one department; empty clears.
func (l *List) SetDepartmentFilter(department string) {
	l.department = department
	l.page = 0
}

// SetStatusFilter restricts rows to one status; empty clears.
func (l *List) SetStatusFilter(status model.Status) {
	l.status = status
	l.page = 0
}

// SetSortByName toggles lexicographic sorting on the name column.
func (l *List) SetSortByName(on bool) {
	l.sortByName = on
}

// DepartmentFilters returns the distinct departments present in the cached
// set, in first-seen order.
func (l *List) DepartmentFilters() []string {
	seen := make(map[string]bool)
	var departments []string
	for _, e := range l.employees {
		if !seen[e.Department] {
			seen[e.Department] = true
			departments = append(departments, e.Department)
		}
	}
	return departments
}

// Visible returns the filtered (and, if enabled, sorted) record set. Filters
// preserve the order of the underlying fetch.
func (l *List) Visible() []model.Employee {
	needle := strings.ToLower(l.search)
	visible := make([]model.Employee, 0, len(l.employees))
	for _, e := range l.employees {
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.Name), needle) &&
			!strings.Contains(strings.ToLower(e.Email), needle) {
			continue
		}
		if l.department != "" && e.Department != l.department {
			continue
		}
		if l.status != "" && e.Status != l.status {
			continue
		}
		visible = append(visible, e)
	}
	if l.sortByName {
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Name < visible[j].Name
		})
	}
	return visible
}

// PageCount reports how many pages the visible set spans.
func (l *List) PageCount() int {
	n := len(l.Visible())
	if n == 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// SetPage selects the zero-based page; out-of-range values clamp.
func (l *List) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	if max := l.PageCount() - 1; page > max {
		page = max
	}
	l.page = page
}

// Page returns the zero-based current page index.
func (l *List) Page() int {
	return l.page
}

// Rows returns the window of the visible set for the current page.
func (l *List) Rows() []model.Employee {
	visible := l.Visible()
	start := l.page * PageSize
	if start >= len(visible) {
		return nil
	}
	end := start + PageSize
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}

// RequestDelete records a delete intent for the given row; the request does
// not fire until ConfirmDelete.
func (l *List) RequestDelete(id uint) {
	l.pendingDelete = id
	l.hasPending = true
}

// PendingDelete reports the row awaiting confirmation, if any.
func (l *List) PendingDelete() (uint, bool) {
	return l.pendingDelete, l.hasPending
}

// CancelDelete drops the pending delete intent.
func (l *List) CancelDelete() {
	l.pendingDelete = 0
	l.hasPending = false
}

// ConfirmDelete fires the pending delete and re-fetches the full set. There
// is no optimistic removal.
func (l *List) ConfirmDelete(ctx context.Context) error {
	if !l.hasPending {
		return nil
	}
	id := l.pendingDelete
	l.CancelDelete()
	if err := l.api.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	return l.Load(ctx)
}
