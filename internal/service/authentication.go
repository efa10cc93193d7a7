// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"crypto-wallet/internal/cache"
	"crypto-wallet/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenType 登入回應中的 token_type
const TokenType = "bearer"

const revokedKeyPrefix = "revoked:"

var (
	timeNow         = time.Now
	newTokenID      = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容，RegisteredClaims.ID 為 token 的 jti
type CustomClaims struct {
	UserID int    `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthenticateUser 比對使用者的 bcrypt 哈希與明文密碼
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if user.PasswordHash == "" {
		return ErrAuthentication
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrAuthentication
	}
	return nil
}

// signingKey 由 SetSigningKey 設定；未設定時讀取環境變數 JWT_SECRET
var signingKey string

// SetSigningKey 設定簽署與驗證 JWT 的 HS256 金鑰
func SetSigningKey(secret string) {
	signingKey = secret
}

func jwtSecret() ([]byte, error) {
	if signingKey != "" {
		return []byte(signingKey), nil
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// IssueAccessToken 依據使用者資訊與 TTL 產生 JWT，並回傳到期時間
func IssueAccessToken(user model.User, ttl time.Duration) (string, time.Time, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", time.Time{}, err
	}

	now := timeNow()
	expiresAt := now.Add(ttl)
	claims := CustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret, err := jwtSecret()
	if err != nil {
		return nil, err
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token has no id")
	}

	return claims, nil
}

// RevokeAccessToken 將 jti 寫入黑名單直到 token 原本的到期時間
func RevokeAccessToken(ctx context.Context, c cache.Cache, claims *CustomClaims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return fmt.Errorf("RevokeAccessToken: missing claims")
	}
	ttl := claims.ExpiresAt.Time.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	if err := c.Set(ctx, revokedKeyPrefix+claims.ID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("RevokeAccessToken: %w", err)
	}
	return nil
}

// IsAccessTokenRevoked 查詢 jti 是否已登出
func IsAccessTokenRevoked(ctx context.Context, c cache.Cache, jti string) (bool, error) {
	err := c.Get(ctx, revokedKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("IsAccessTokenRevoked: %w", err)
	}
	return true, nil
}
