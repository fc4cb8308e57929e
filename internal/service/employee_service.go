package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"staffdesk/internal/cache"
	apperrors "staffdesk/internal/errors"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
)

const (
	employeeCacheTTL = 5 * time.Minute
	listCacheKey     = "employees:all"
)

// EmployeeService exposes the record store operations.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*model.Employee, error)
	CreateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id uint, patch model.EmployeePatch) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id uint) error
}

type employeeService struct {
	repo  repository.EmployeeRepository
	cache *cache.Client
}

// NewEmployeeService builds an EmployeeService with repository and cache.
func NewEmployeeService(repo repository.EmployeeRepository, cache *cache.Client) EmployeeService {
	return &employeeService{repo: repo, cache: cache}
}

func (s *employeeService) cacheKey(id uint) string {
	return fmt.Sprintf("employee:%d", id)
}

// ListEmployees returns all records in store order, read through the cache.
func (s *employeeService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	if data, _ := s.cache.Get(ctx, listCacheKey); data != nil {
		var cached []model.Employee
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		// Keep the empty set serializing as [] rather than null.
		employees = []model.Employee{}
	}

	if payload, err := json.Marshal(employees); err == nil {
		_ = s.cache.Set(ctx, listCacheKey, payload, employeeCacheTTL)
	}
	return employees, nil
}

// GetEmployee retrieves a record by id, read through the cache.
func (s *employeeService) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Employee
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(employee); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, employeeCacheTTL)
	}
	return employee, nil
}

// CreateEmployee inserts a record, defaulting status to active when omitted.
// The id is assigned by the store and written back into the returned record.
func (s *employeeService) CreateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	employee.ID = 0
	if employee.Status == "" {
		employee.Status = model.StatusActive
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, listCacheKey, s.cacheKey(employee.ID))
	return employee, nil
}

// UpdateEmployee applies a merge-by-omission update and returns the merged
// record. Absent patch fields keep their stored values.
func (s *employeeService) UpdateEmployee(ctx context.Context, id uint, patch model.EmployeePatch) (*model.Employee, error) {
	if err := s.repo.UpdateFields(ctx, id, patch.Columns()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	_ = s.cache.Delete(ctx, listCacheKey, s.cacheKey(id))

	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes a record. Deleting an id that does not exist is
// still a success; callers cannot distinguish the two cases.
func (s *employeeService) DeleteEmployee(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, listCacheKey, s.cacheKey(id))
	return nil
}
