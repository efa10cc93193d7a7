package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"crypto-wallet/internal/cache"
	"crypto-wallet/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var (
	verifyAccessToken    = service.VerifyAccessToken
	isAccessTokenRevoked = service.IsAccessTokenRevoked
)

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := verifyAccessToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer JWT 並拒絕已登出的 token，claims 存入 context
func RequireAuth(cch cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return err
			}
			revoked, err := isAccessTokenRevoked(c.Request().Context(), cch, claims.ID)
			if err != nil {
				slog.Error("check token revocation", "error", err)
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable")
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// CurrentClaims 取出 RequireAuth 設定的 claims
func CurrentClaims(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims != nil
}
