package task

import (
	"emptrack/internal/middleware"

	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	// employees self-report tasks and clean up their own, so create and
	// delete stay open to both roles
	v.POST("/tasks", h.Create, middleware.Authentication)
	v.GET("/tasks", h.Find, middleware.Authentication)
	v.GET("/tasks/:emp_code", h.FindByEmpCode, middleware.Authentication)
	v.PUT("/tasks/:task_id", h.UpdateStatus, middleware.Authentication)
	v.PUT("/tasks/:task_id/status", h.UpdateStatus, middleware.Authentication)
	v.DELETE("/tasks/:id", h.Delete, middleware.Authentication)
}
