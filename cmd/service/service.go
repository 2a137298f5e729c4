// @title        Workshop API
// @version      1.0
// @description  工作坊報名系統後端 API
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"workshop-api/internal/cache"
	"workshop-api/internal/config"
	"workshop-api/internal/database"
	"workshop-api/internal/logging"
	"workshop-api/internal/media"
	"workshop-api/internal/router"
	"workshop-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "workshop-api/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig     = config.Load
	newLogger      = logging.New
	newRedisClient = cache.NewRedisClient
	newUploader    = media.New
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc       = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("載入設定失敗: %w", err)
	}
	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}
	log := newLogger(cfg.Log.Level, cfg.Log.Format)

	rdb, err := newRedisClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	uploader, err := newUploader(context.Background(), cfg.Media)
	if err != nil {
		return fmt.Errorf("圖片上傳服務設定失敗: %w", err)
	}
	if cfg.Media.APIKey == "" {
		log.Warn("API_KEY not set; image uploads will fail")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:       database.NewProvider(cfg.Database, log),
		Cache:    rdb,
		Tokens:   service.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Uploader: uploader,
		Log:      log,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.WithFields(logrus.Fields{
		"addr":    cfg.Server.Addr,
		"db_host": cfg.Database.Host,
		"media":   cfg.Media.Provider,
	}).Info("starting workshop api")
	return startServer(e, cfg.Server.Addr)
}

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Error("service stopped")
		exitFunc(1)
	}
}
