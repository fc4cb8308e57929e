package repository

import (
	"context"

	"gorm.io/gorm"

	"staffdesk/internal/model"
)

// EmployeeRepository defines employee persistence operations.
type EmployeeRepository interface {
	List(ctx context.Context) ([]model.Employee, error)
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
	UpdateFields(ctx context.Context, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// List returns all employees in store order. An empty table yields an empty
// slice, never nil, so the handler serializes a JSON array.
func (r *employeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	employees := make([]model.Employee, 0)
	if err := r.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindByID finds an employee by ID.
func (r *employeeRepository) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// Create inserts a new employee; the generated id is written back.
func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// UpdateFields applies a merge-by-omission update: only the given columns are
// touched, in a single UPDATE. Returns gorm.ErrRecordNotFound when no row
// matched the id.
func (r *employeeRepository) UpdateFields(ctx context.Context, id uint, cols map[string]interface{}) error {
	if len(cols) == 0 {
		// Nothing to merge; still report whether the row exists.
		var employee model.Employee
		return r.db.WithContext(ctx).Select("id").Where("id = ?", id).First(&employee).Error
	}
	res := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the row matching id. No existence check: deleting an absent
// id is not an error.
func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Employee{}, id).Error
}
