package apperr

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"workshop-api/internal/api"
)

// Respond 將錯誤轉為 JSON 回應；5xx 細節只寫入 log
func Respond(c echo.Context, log logrus.FieldLogger, err error) error {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		log.WithFields(logrus.Fields{
			"kind":   KindOf(err).String(),
			"method": c.Request().Method,
			"path":   c.Path(),
		}).WithError(err).Error("request failed")
		return c.JSON(status, api.InternalErrorResponse{Err: PublicMessage(err)})
	}
	return c.JSON(status, api.ErrorResponse{Error: PublicMessage(err)})
}
