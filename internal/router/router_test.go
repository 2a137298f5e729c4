package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workshop-api/internal/cache"
	"workshop-api/internal/database"
	"workshop-api/internal/logging"
	"workshop-api/internal/model"
	"workshop-api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type roleRow string

func (r roleRow) Scan(dest ...any) error {
	*dest[0].(*string) = string(r)
	return nil
}

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, Deps{
		DB:     &database.FakeProvider{},
		Cache:  &cache.FakeCache{},
		Tokens: service.NewTokenIssuer("s", time.Minute),
		Log:    logging.Discard(),
	})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/users/me/registrations",
		http.MethodPost + " /api/uploads/images",
	}
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestUploadRouteIsInstructorOnly(t *testing.T) {
	tokens := service.NewTokenIssuer("s", time.Minute)
	p := &database.FakeProvider{Conn: &database.FakeConn{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return roleRow("student") },
	}}
	e := echo.New()
	Setup(e, Deps{DB: p, Cache: &cache.FakeCache{}, Tokens: tokens, Log: logging.Discard()})

	// role claim in the token says instructor; the stored role wins
	tok, err := tokens.Issue(model.User{ID: 7, Role: model.RoleInstructor})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/images", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"Access for instructors only"}`, rec.Body.String())
	require.Equal(t, p.Opened(), p.Closed())
}

func TestRegistrationsRouteRequiresToken(t *testing.T) {
	e := echo.New()
	p := &database.FakeProvider{}
	Setup(e, Deps{DB: p, Cache: &cache.FakeCache{}, Tokens: service.NewTokenIssuer("s", time.Minute), Log: logging.Discard()})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me/registrations", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, 0, p.Opened())
}
