package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workshop-api/internal/cache"
	"workshop-api/internal/database"
	"workshop-api/internal/logging"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()
	log := logging.Discard()

	t.Run("db unreachable", func(t *testing.T) {
		p := &database.FakeProvider{Err: errors.New("refused")}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		err := PingHandler(p, &cache.FakeCache{}, log)(e.NewContext(req, rec))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("db unhealthy", func(t *testing.T) {
		p := &database.FakeProvider{Conn: &database.FakeConn{PingFn: func(context.Context) error { return errors.New("fail") }}}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		err := PingHandler(p, &cache.FakeCache{}, log)(e.NewContext(req, rec))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, 1, p.Closed())
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		p := &database.FakeProvider{Conn: &database.FakeConn{PingFn: func(context.Context) error { return nil }}}
		cch := &cache.FakeCache{HeartbeatFn: func(context.Context, string, time.Duration) error {
			return errors.New("READONLY You can't write against a read only replica")
		}}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		err := PingHandler(p, cch, log)(e.NewContext(req, rec))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("ok", func(t *testing.T) {
		cacheCalled := false
		p := &database.FakeProvider{Conn: &database.FakeConn{PingFn: func(context.Context) error { return nil }}}
		cch := &cache.FakeCache{HeartbeatFn: func(_ context.Context, key string, ttl time.Duration) error {
			cacheCalled = true
			require.Equal(t, pingKey, key)
			require.Equal(t, 10*time.Second, ttl)
			return nil
		}}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		err := PingHandler(p, cch, log)(e.NewContext(req, rec))
		require.NoError(t, err)
		require.True(t, cacheCalled)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
		require.Equal(t, p.Opened(), p.Closed())
	})
}
