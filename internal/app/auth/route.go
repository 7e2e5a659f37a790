package auth

import (
	"emptrack/internal/middleware"

	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	v.POST("/login", h.Login, middleware.LoginIpCheck)
	v.POST("/logout", h.Logout, middleware.Authentication)
}
