package report

import (
	"emptrack/internal/middleware"

	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	v.GET("/tasks", h.Find, middleware.Authentication)
	v.GET("/tasks/export", h.Export, middleware.Authentication)
}
