package middleware

import (
	"emptrack/internal/abstraction"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

var dbRedis *redis.Client

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func Init(e *echo.Echo, redisClient *redis.Client) {
	dbRedis = redisClient

	e.Use(
		Context,
		echoMiddleware.Recover(),
		echoMiddleware.CORS(),
		echoMiddleware.Logger(),
	)
	e.Validator = &CustomValidator{validator: validator.New()}
}

// Context upgrades every request context so handlers can carry auth and
// transaction state.
func Context(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cc := &abstraction.Context{Context: c}
		return next(cc)
	}
}
