package project

import (
	"emptrack/internal/middleware"

	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	v.GET("/projects", h.Find, middleware.Authentication)
}
