// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"workshop-api/internal/cache"
	"workshop-api/internal/database"
	"workshop-api/internal/handler"
	"workshop-api/internal/handler/auth"
	"workshop-api/internal/handler/uploads"
	"workshop-api/internal/handler/users"
	"workshop-api/internal/media"
	"workshop-api/internal/middleware"
	"workshop-api/internal/service"
)

// Deps 路由所需的外部依賴
type Deps struct {
	DB       database.Provider
	Cache    cache.Cache
	Tokens   *service.TokenIssuer
	Uploader media.Uploader
	Log      logrus.FieldLogger
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(d.Tokens, d.Log)
	requireInstructor := middleware.RequireInstructor(d.DB, d.Log)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache, d.Log), requireAuth)

	// 使用者登入
	api.POST("/auth/login", auth.LoginHandler(d.DB, d.Tokens, d.Log))

	// 當前使用者的報名紀錄
	apiUsersMe := api.Group("/users/me", requireAuth)
	apiUsersMe.GET("/registrations", users.ListMyRegistrationsHandler(d.DB, d.Log))

	// 講師專屬：圖片上傳
	apiUploads := api.Group("/uploads", requireAuth, requireInstructor)
	apiUploads.POST("/images", uploads.UploadImageHandler(d.Uploader, d.Log))
}
