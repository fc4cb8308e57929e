package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"staffdesk/internal/errors"
	"staffdesk/internal/model"
	"staffdesk/internal/service"
)

// EmployeeHandler bundles the record store HTTP handlers.
type EmployeeHandler struct {
	svc service.EmployeeService
}

// NewEmployeeHandler creates a handler layer.
func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// UpdateResponse wraps an updated employee with a confirmation message.
type UpdateResponse struct {
	Message string         `json:"message"`
	Data    model.Employee `json:"data"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} model.Employee
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	employees, err := h.svc.ListEmployees(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, employees)
}

// GetEmployee godoc
// @Summary Get employee by id
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} model.Employee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := h.svc.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, employee)
}

// CreateEmployee godoc
// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body model.Employee true "Employee payload, id ignored; status defaults to active"
// @Success 201 {object} model.Employee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var employee model.Employee
	if err := c.Bind(&employee); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_BODY",
		})
	}
	created, err := h.svc.CreateEmployee(c.Request().Context(), &employee)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateEmployee godoc
// @Summary Update employee
// @Description Partial update: absent or null fields keep their stored value.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param employee body model.EmployeePatch true "Fields to overwrite"
// @Success 200 {object} UpdateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var patch model.EmployeePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_BODY",
		})
	}
	updated, err := h.svc.UpdateEmployee(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, UpdateResponse{
		Message: "Employee updated successfully",
		Data:    *updated,
	})
}

// DeleteEmployee godoc
// @Summary Delete employee
// @Description Always reports success, whether or not a row existed.
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteEmployee(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "delete successfully"})
}

func (h *EmployeeHandler) fail(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid employee ID",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
