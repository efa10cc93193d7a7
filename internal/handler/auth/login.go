// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"crypto-wallet/internal/api"
	"crypto-wallet/internal/database"
	"crypto-wallet/internal/handler"
	"crypto-wallet/internal/service"
	"crypto-wallet/internal/worker"

	"github.com/labstack/echo/v4"
)

// touchTimeout 非同步更新 last_login_at 的逾時
const touchTimeout = 5 * time.Second

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間；連續失敗過多會暫時鎖定
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.TokenResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, limiter *service.LoginLimiter, wp worker.Pool, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Error(c, err)
		}

		user, err := loginUser(c.Request().Context(), db, limiter, req.Email, req.Password)
		if err != nil {
			return handler.Error(c, err)
		}

		token, expiresAt, err := issueAccessToken(*user, ttl)
		if err != nil {
			return handler.Error(c, err)
		}

		// last_login_at 交給 worker 更新，佇列滿時略過，不阻塞回應
		userID := user.ID
		queued := wp.TrySubmit(func() {
			ctx, cancel := context.WithTimeout(context.Background(), touchTimeout)
			defer cancel()
			if err := touchLastLogin(ctx, db, userID, time.Now().UTC()); err != nil {
				slog.Error("update last login", "user_id", userID, "error", err)
			}
		})
		if !queued {
			slog.Warn("worker queue full, last login not recorded", "user_id", userID)
		}

		return c.JSON(http.StatusOK, api.TokenResponse{
			AccessToken: token,
			TokenType:   service.TokenType,
			ExpiresAt:   expiresAt.UTC(),
		})
	}
}
