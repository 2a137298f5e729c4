// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"workshop-api/internal/api"
	"workshop-api/internal/cache"
	"workshop-api/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	pingKey = "health:ping"
	pingTTL = 10 * time.Second
)

// PingHandler 健康檢查（需通過認證）
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.InternalErrorResponse
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(p database.Provider, c cache.Cache, log logrus.FieldLogger) echo.HandlerFunc {
	return func(ec echo.Context) error {
		ctx := ec.Request().Context()
		err := database.WithConn(ctx, p, func(conn database.Conn) error {
			return conn.Ping(ctx)
		})
		if err != nil {
			log.WithError(err).Warn("database ping failed")
			return ec.JSON(http.StatusInternalServerError, api.InternalErrorResponse{Err: "database unhealthy"})
		}
		if err := c.Heartbeat(ctx, pingKey, pingTTL); err != nil {
			log.WithError(err).Warn("cache ping failed")
			return ec.JSON(http.StatusInternalServerError, api.InternalErrorResponse{Err: "cache unhealthy"})
		}
		return ec.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
