package middleware

import (
	"fmt"
	"strings"

	"workshop-api/internal/apperr"
	"workshop-api/internal/database"
	"workshop-api/internal/model"
	"workshop-api/internal/service"
	"workshop-api/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const ContextUserKey = "user"

var getUserRole = store.GetUserRole

// TokenVerifier 解析存取令牌
type TokenVerifier interface {
	Verify(token string) (*service.CustomClaims, error)
}

// ClaimsFrom returns the identity RequireAuth attached to the request.
func ClaimsFrom(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims != nil
}

func extractClaims(c echo.Context, tokens TokenVerifier) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, apperr.New(apperr.Unauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, apperr.New(apperr.Unauthorized, "invalid authorization header format")
	}
	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthorized, "invalid token", err)
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer token 並將 claims 放入 context
func RequireAuth(tokens TokenVerifier, log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return apperr.Respond(c, log, err)
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireRole looks up the caller's stored role and only lets the request
// through when it equals role. The token's role claim is not trusted; the
// users table is. The connection is released before next runs.
func RequireRole(p database.Provider, role string, log logrus.FieldLogger) echo.MiddlewareFunc {
	denied := forbiddenMessage(role)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return apperr.Respond(c, log, apperr.New(apperr.Unauthorized, "invalid or missing token"))
			}

			ctx := c.Request().Context()
			var stored string
			err := database.WithConn(ctx, p, func(conn database.Conn) error {
				r, err := getUserRole(ctx, conn, claims.ID)
				stored = r
				return err
			})
			if err != nil {
				return apperr.Respond(c, log.WithField("user_id", claims.ID), err)
			}
			if stored != role {
				return apperr.Respond(c, log, apperr.New(apperr.Forbidden, denied))
			}
			return next(c)
		}
	}
}

// RequireInstructor 僅限講師
func RequireInstructor(p database.Provider, log logrus.FieldLogger) echo.MiddlewareFunc {
	return RequireRole(p, model.RoleInstructor, log)
}

func forbiddenMessage(role string) string {
	return fmt.Sprintf("Access for %ss only", role)
}
