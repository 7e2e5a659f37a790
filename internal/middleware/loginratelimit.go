package middleware

import (
	"emptrack/pkg/constant"
	"emptrack/pkg/util/response"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// LoginIpCheck caps login attempts per source IP through a redis counter with
// a sliding expiry.
func LoginIpCheck(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {

		ip := c.RealIP()
		if ip == "::1" {
			ip = "localhost"
		}

		keys := fmt.Sprintf(constant.REDIS_REQUEST_LOGIN_IP_KEYS, ip)
		value := dbRedis.Incr(c.Request().Context(), keys)
		if value.Err() != nil {
			return response.ErrorResponse(value.Err()).SendError(c)
		}

		if value.Val() > constant.REDIS_REQUEST_MAX_ATTEMPTS_LOGIN {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("can't proceed request"), "too many attempts, please try again later").SendError(c)
		}

		errRedis := dbRedis.Expire(c.Request().Context(), keys, constant.REDIS_REQUEST_IP_EXPIRE*time.Minute)
		if errRedis.Err() != nil {
			return response.ErrorResponse(errRedis.Err()).SendError(c)
		}

		return next(c)
	}
}
