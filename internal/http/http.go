package http

import (
	"fmt"
	"net/http"

	"emptrack/internal/app/auth"
	"emptrack/internal/app/dashboard"
	"emptrack/internal/app/employee"
	"emptrack/internal/app/project"
	"emptrack/internal/app/report"
	"emptrack/internal/app/task"
	"emptrack/internal/config"
	"emptrack/internal/factory"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, f *factory.Factory) {

	e.GET("/", func(c echo.Context) error {
		message := fmt.Sprintf("Hello there, welcome to app %s version %s.", config.Get().App.App, config.Get().App.Version)
		return c.String(http.StatusOK, message)
	})

	api := e.Group("/api")

	auth.NewHandler(f).Route(api)
	employee.NewHandler(f).Route(api)
	task.NewHandler(f).Route(api)
	project.NewHandler(f).Route(api)
	dashboard.NewHandler(f).Route(api)
	report.NewHandler(f).Route(api.Group("/reports"))
}
