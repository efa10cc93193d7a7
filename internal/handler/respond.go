// File: internal/handler/respond.go
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"crypto-wallet/internal/api"
	"crypto-wallet/internal/market"
	"crypto-wallet/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorStatus 將 service / market 錯誤對應為 HTTP 狀態碼與訊息
func ErrorStatus(err error) (int, string) {
	var (
		verrs    validator.ValidationErrors
		verr     *service.ValidationError
		upstream *market.UpstreamError
	)
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest, validationMessage(verrs)
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrAuthentication):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrLoginLocked):
		return http.StatusTooManyRequests, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, market.ErrNoAssets):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, market.ErrRateLimited):
		return http.StatusTooManyRequests, err.Error()
	case errors.Is(err, market.ErrNoData), errors.Is(err, market.ErrAssetNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &upstream):
		return http.StatusBadGateway, upstream.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// validationMessage 以 json 欄位名稱組出可讀訊息
func validationMessage(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+": is required")
		case "email":
			msgs = append(msgs, fe.Field()+": invalid email format")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s: must be at least %s characters", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// Error 寫出統一的錯誤 JSON；5xx 另外記錄原始錯誤
func Error(c echo.Context, err error) error {
	status, msg := ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	}
	return c.JSON(status, api.ErrorResponse{Message: msg})
}

// BindAndValidate 綁定 JSON body 並執行 echo 的 Validator
func BindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return &service.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return verrs
		}
		return &service.ValidationError{Message: err.Error()}
	}
	return nil
}
