package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emptrack/internal/config"
	"emptrack/internal/factory"
	httpemptrack "emptrack/internal/http"
	middlewareEcho "emptrack/internal/middleware"
	db "emptrack/pkg/database"
	"emptrack/pkg/log"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	config.Init()

	log.Init()

	db.Init()

	db.Migrate()

	e := echo.New()

	f := factory.NewFactory()

	middlewareEcho.Init(e, f.DbRedis)

	httpemptrack.Init(e, f)

	ch := make(chan os.Signal, 1)

	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		err := e.Start(":" + config.Get().App.Port)
		if err != nil {
			if err != http.ErrServerClosed {
				logrus.Fatal(err)
			}
		}
	}()

	<-ch

	logrus.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	e.Shutdown(ctx)
	logrus.Println("Server gracefully stopped")
}
