package view

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"staffdesk/internal/model"
)

func TestDetailLoadAndFormat(t *testing.T) {
	api := newFakeClient(model.Employee{
		ID:         1,
		Name:       "Ann",
		Email:      "ann@x.com",
		Position:   "Eng",
		Department: "IT",
		Salary:     decimal.NewFromInt(5000000),
		HireDate:   date(t, "2023-03-01"),
		Status:     model.StatusActive,
	})

	detail := NewDetail(api)
	assert.NoError(t, detail.Load(context.Background(), 1))
	assert.Equal(t, "Ann", detail.Employee().Name)

	// Indonesian locale: dot grouping, comma decimals, d/m/yyyy dates.
	assert.Equal(t, "Rp 5.000.000,00", detail.FormattedSalary())
	assert.Equal(t, "1/3/2023", detail.FormattedHireDate())
}

func TestDetailBeforeLoad(t *testing.T) {
	detail := NewDetail(newFakeClient())
	assert.Nil(t, detail.Employee())
	assert.Equal(t, "-", detail.FormattedSalary())
	assert.Equal(t, "-", detail.FormattedHireDate())
}

func TestDetailLoadMissing(t *testing.T) {
	detail := NewDetail(newFakeClient())
	assert.Error(t, detail.Load(context.Background(), 42))
}

func TestDetailDeleteClearsRecord(t *testing.T) {
	api := newFakeClient(model.Employee{ID: 1, Name: "Ann"})

	detail := NewDetail(api)
	assert.NoError(t, detail.Load(context.Background(), 1))
	assert.NoError(t, detail.Delete(context.Background()))

	assert.Nil(t, detail.Employee())
	assert.Equal(t, []uint{1}, api.deleted)
}
