package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func ErrorBuilder(code int, err error, message string) *MetaError {
	if code >= http.StatusInternalServerError {
		logrus.Error(message, ", cause: ", err)
	}
	return &MetaError{
		Success: false,
		Message: message,
		Code:    code,
		Err:     err,
	}
}

// ErrorResponse keeps an already built meta error intact and downgrades
// anything else to a generic 500.
func ErrorResponse(err error) *MetaError {
	if meta, ok := err.(*MetaError); ok {
		return meta
	}
	return ErrorBuilder(http.StatusInternalServerError, err, "server_error")
}

func (m *MetaError) SendError(c echo.Context) error {
	return c.JSON(m.Code, m)
}
