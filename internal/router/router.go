// File: internal/router/router.go
package router

import (
	"time"

	"crypto-wallet/internal/cache"
	"crypto-wallet/internal/database"
	"crypto-wallet/internal/handler"
	"crypto-wallet/internal/handler/auth"
	"crypto-wallet/internal/handler/crypto"
	"crypto-wallet/internal/handler/users"
	"crypto-wallet/internal/middleware"
	"crypto-wallet/internal/service"
	"crypto-wallet/internal/worker"

	"github.com/labstack/echo/v4"
)

// Deps 路由所需的共用元件
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Limiter  *service.LoginLimiter
	Workers  worker.Pool
	Market   crypto.PriceSource
	TokenTTL time.Duration
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	requireAuth := middleware.RequireAuth(d.Cache)

	// 健康檢查
	e.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 註冊、登入、登出
	a := e.Group("/auth")
	a.POST("/register", auth.RegisterHandler(d.DB))
	a.POST("/login", auth.LoginHandler(d.DB, d.Limiter, d.Workers, d.TokenTTL))
	a.POST("/logout", auth.LogoutHandler(d.Cache), requireAuth)

	// 取得、更新、刪除當前使用者個人資料
	me := e.Group("/users/me", requireAuth)
	me.GET("", users.GetMeHandler(d.DB))
	me.PUT("", users.UpdateMeHandler(d.DB))
	me.DELETE("", users.DeleteMeHandler(d.DB, d.Cache))

	// 行情查詢
	c := e.Group("/crypto")
	c.GET("/prices", crypto.PricesHandler(d.Market))
	c.GET("/price/:symbol", crypto.PriceHandler(d.Market))
}
