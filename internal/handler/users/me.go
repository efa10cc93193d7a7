// File: internal/handler/users/me.go
package users

import (
	"net/http"

	"crypto-wallet/internal/api"
	"crypto-wallet/internal/cache"
	"crypto-wallet/internal/database"
	"crypto-wallet/internal/handler"
	"crypto-wallet/internal/middleware"
	"crypto-wallet/internal/service"

	"github.com/labstack/echo/v4"
)

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
}

// GetMeHandler 取得目前登入使用者
// @Summary     Get current user
// @Description 依 token 內的使用者 ID 回傳個人資料
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return unauthorized(c)
		}
		user, err := getAccount(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UpdateMeHandler 部分更新目前使用者
// @Summary     Update current user
// @Description 只更新有提供的欄位；提供 password 時會重新雜湊。Email 不可修改
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.UpdateMeRequest true "要更新的欄位"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [put]
func UpdateMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return unauthorized(c)
		}

		var req api.UpdateMeRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Error(c, err)
		}

		user, err := updateProfile(c.Request().Context(), db, claims.UserID, service.ProfileUpdate{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			BirthDate: req.BirthDate,
			Region:    req.Region,
			City:      req.City,
			Password:  req.Password,
		})
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// DeleteMeHandler 刪除目前使用者並讓 token 失效
// @Summary     Delete current user
// @Description 刪除帳號後，目前的存取令牌會一併加入黑名單
// @Tags        users
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [delete]
func DeleteMeHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return unauthorized(c)
		}
		ctx := c.Request().Context()
		if err := deleteAccount(ctx, db, claims.UserID); err != nil {
			return handler.Error(c, err)
		}
		if err := revokeAccessToken(ctx, cch, claims); err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Account deleted successfully"})
	}
}
