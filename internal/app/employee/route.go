package employee

import (
	"emptrack/internal/middleware"

	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	v.POST("/emp_details", h.Create, middleware.Authentication, middleware.AdminOnly)
	v.GET("/emp_details", h.Find, middleware.Authentication)
	v.DELETE("/emp_details/:id", h.Delete, middleware.Authentication, middleware.AdminOnly)

	v.GET("/employees", h.FindSummary, middleware.Authentication)
	v.GET("/employees-active", h.FindActive, middleware.Authentication)
	v.GET("/employees/:emp_code", h.FindByCode, middleware.Authentication)
}
