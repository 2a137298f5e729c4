package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"workshop-api/internal/cache"
	"workshop-api/internal/config"
	"workshop-api/internal/logging"
	"workshop-api/internal/media"
)

func restoreGlobals() {
	loadConfig = config.Load
	newLogger = logging.New
	newRedisClient = cache.NewRedisClient
	newUploader = media.New
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func testConfig() config.Config {
	return config.Config{
		Server:   config.Server{Addr: ":0"},
		Database: config.Database{Host: "localhost", Port: 5432},
		Redis:    config.Redis{Addr: "127", Password: "pw", DB: 1},
		Auth:     config.Auth{JWTSecret: "secret", TokenTTL: time.Hour},
		Media:    config.Media{Provider: "cloudinary", APIKey: "k"},
		Log:      config.Log{Level: "info", Format: "text"},
	}
}

func stubDeps(t *testing.T, called map[string]bool) {
	t.Helper()
	loadConfig = func() (config.Config, error) { return testConfig(), nil }
	newLogger = func(string, string) *logrus.Logger { return logging.Discard() }
	newRedisClient = func(cfg config.Redis) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127", cfg.Addr)
		require.Equal(t, "pw", cfg.Password)
		require.Equal(t, 1, cfg.DB)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	newUploader = func(ctx context.Context, cfg config.Media) (media.Uploader, error) {
		called["uploader"] = true
		return &media.CloudinaryUploader{}, nil
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":0", addr)
		require.NotNil(t, e.Validator)
		return nil
	}
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	stubDeps(t, called)

	require.NoError(t, run())
	require.True(t, called["redis"])
	require.True(t, called["uploader"])
	require.True(t, called["start"])
	require.True(t, called["redisClose"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	stubDeps(t, called)

	loadConfig = func() (config.Config, error) { return config.Config{}, errors.New("config") }
	require.Error(t, run())

	loadConfig = func() (config.Config, error) {
		cfg := testConfig()
		cfg.Auth.JWTSecret = " "
		return cfg, nil
	}
	require.Error(t, run())

	loadConfig = func() (config.Config, error) { return testConfig(), nil }
	newRedisClient = func(config.Redis) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	newRedisClient = func(config.Redis) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	newUploader = func(context.Context, config.Media) (media.Uploader, error) { return nil, errors.New("media") }
	require.Error(t, run())

	newUploader = func(context.Context, config.Media) (media.Uploader, error) { return &media.CloudinaryUploader{}, nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubDeps(t, make(map[string]bool))
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	main()
	require.Equal(t, 0, exitCode)
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	loadConfig = func() (config.Config, error) { return config.Config{}, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}
