package users

import (
	"net/http"

	"workshop-api/internal/api"
	"workshop-api/internal/apperr"
	"workshop-api/internal/database"
	"workshop-api/internal/middleware"
	"workshop-api/internal/model"
	"workshop-api/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var listRegistrationsByUser = store.ListRegistrationsByUser

// ListMyRegistrationsHandler 取得當前使用者的報名紀錄
// @Summary     List my registrations
// @Description 回傳當前使用者的所有報名紀錄與工作坊資訊，依工作坊日期與開始時間排序
// @Tags        users
// @Produce     json
// @Success     200 {object} api.RegistrationListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.InternalErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me/registrations [get]
func ListMyRegistrationsHandler(p database.Provider, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return apperr.Respond(c, log, apperr.New(apperr.Unauthorized, "invalid or missing token"))
		}

		ctx := c.Request().Context()
		var list []model.RegistrationDetail
		err := database.WithConn(ctx, p, func(conn database.Conn) error {
			var err error
			list, err = listRegistrationsByUser(ctx, conn, claims.ID)
			return err
		})
		if err != nil {
			return apperr.Respond(c, log.WithField("user_id", claims.ID), err)
		}

		return c.JSON(http.StatusOK, api.RegistrationListResponse{
			Registrations: toRegistrationResponses(list),
		})
	}
}
