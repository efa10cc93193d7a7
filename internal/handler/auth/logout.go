// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"crypto-wallet/internal/api"
	"crypto-wallet/internal/cache"
	"crypto-wallet/internal/handler"
	"crypto-wallet/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 使目前的 token 失效
// @Summary     Logout
// @Description 將目前的存取令牌加入黑名單直到原本的到期時間
// @Tags        auth
// @Produce     json
// @Success     204
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if err := revokeAccessToken(c.Request().Context(), cch, claims); err != nil {
			return handler.Error(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
