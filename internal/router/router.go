package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"staffdesk/internal/handler"
)

// Register wires routes and middleware.
func Register(e *echo.Echo, employeeHandler *handler.EmployeeHandler) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Backend running"})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Employee routes
	api.GET("/employees", employeeHandler.ListEmployees)
	api.GET("/employees/:id", employeeHandler.GetEmployee)
	api.POST("/employees", employeeHandler.CreateEmployee)
	api.PUT("/employees/:id", employeeHandler.UpdateEmployee)
	api.DELETE("/employees/:id", employeeHandler.DeleteEmployee)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
