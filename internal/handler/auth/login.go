// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"workshop-api/internal/api"
	"workshop-api/internal/apperr"
	"workshop-api/internal/database"
	"workshop-api/internal/model"
	"workshop-api/internal/service"
	"workshop-api/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var (
	getUserByUsername = store.GetUserByUsername
	authenticateUser  = service.AuthenticateUser
)

// TokenIssuer 簽發存取令牌
type TokenIssuer interface {
	Issue(user model.User) (string, error)
}

// LoginHandler 使用 Username/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Username 與 Password 進行驗證，回傳存取令牌
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "使用者密碼"
// @Success     200      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     500      {object} api.InternalErrorResponse
// @Router      /auth/login [post]
func LoginHandler(p database.Provider, tokens TokenIssuer, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return apperr.Respond(c, log, apperr.Wrap(apperr.BadRequest, "invalid form data", err))
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return apperr.Respond(c, log, apperr.Wrap(apperr.BadRequest, "username and password are required", err))
		}

		ctx := c.Request().Context()
		var user *model.User
		err := database.WithConn(ctx, p, func(conn database.Conn) error {
			var err error
			user, err = getUserByUsername(ctx, conn, req.Username)
			return err
		})
		if apperr.Is(err, apperr.NotFound) {
			return apperr.Respond(c, log, apperr.New(apperr.Unauthorized, "invalid credentials"))
		}
		if err != nil {
			return apperr.Respond(c, log, err)
		}

		authUser, err := authenticateUser(*user, req.Password)
		if err != nil {
			return apperr.Respond(c, log, apperr.New(apperr.Unauthorized, "invalid credentials"))
		}

		token, err := tokens.Issue(*authUser)
		if err != nil {
			return apperr.Respond(c, log, apperr.Wrap(apperr.Internal, "issue token", err))
		}
		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token, TokenType: "Bearer"})
	}
}
