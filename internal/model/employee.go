package model

import (
	"github.com/shopspring/decimal"
)

// Status represents the employment status of an employee.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Departments offered by the form view. The store itself accepts any text.
var Departments = []string{"HR", "IT", "Finance", "Marketing"}

// Employee represents a single employee record.
type Employee struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"size:255;not null"`
	Email      string          `json:"email" gorm:"size:255;not null"`
	Position   string          `json:"position" gorm:"size:255;not null"`
	Department string          `json:"department" gorm:"size:100;not null"`
	Salary     decimal.Decimal `json:"salary" gorm:"type:decimal(12,2);not null"`
	HireDate   Date            `json:"hire_date" gorm:"not null"`
	Status     Status          `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
}

// EmployeePatch carries a partial update. A nil field means "keep the stored
// value"; a present field overwrites, including explicit empty strings.
type EmployeePatch struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	Salary     *decimal.Decimal `json:"salary"`
	HireDate   *Date            `json:"hire_date"`
	Status     *Status          `json:"status"`
}

// Columns maps the present fields to their column values for a single
// merge-by-omission UPDATE.
func (p EmployeePatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.Position != nil {
		cols["position"] = *p.Position
	}
	if p.Department != nil {
		cols["department"] = *p.Department
	}
	if p.Salary != nil {
		cols["salary"] = *p.Salary
	}
	if p.HireDate != nil {
		cols["hire_date"] = *p.HireDate
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	return cols
}
