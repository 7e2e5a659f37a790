package dashboard

import (
	"emptrack/internal/abstraction"
	"emptrack/internal/factory"
	"emptrack/pkg/util/response"

	"github.com/labstack/echo/v4"
)

type handler struct {
	service Service
}

func NewHandler(f *factory.Factory) *handler {
	return &handler{
		service: NewService(f),
	}
}

func (h handler) Stats(c echo.Context) (err error) {
	data, err := h.service.Stats(c.(*abstraction.Context))
	if err != nil {
		return response.ErrorResponse(err).SendError(c)
	}
	return response.SuccessResponse(data).SendSuccess(c)
}
