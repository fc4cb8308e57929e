// Package view holds the client application's view models: the searchable
// employee list, the read-only detail page and the create/edit form. All
// filtering, sorting and pagination happen in memory over the record set
// fetched from the server; mutations go back through the API and re-fetch.
package view

import (
	"context"

	"staffdesk/internal/model"
)

// Client is the slice of the API the views depend on.
type Client interface {
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*model.Employee, error)
	CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id uint, patch model.EmployeePatch) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id uint) error
}
