// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"crypto-wallet/internal/api"
	"crypto-wallet/internal/database"
	"crypto-wallet/internal/handler"
	"crypto-wallet/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新使用者
// @Summary     Register a new user
// @Description 建立新帳號 (Email 會自動轉小寫，須年滿 18 歲)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Error(c, err)
		}

		user, err := registerUser(c.Request().Context(), db, service.RegisterInput{
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			BirthDate: req.BirthDate,
			Region:    req.Region,
			City:      req.City,
		})
		if err != nil {
			return handler.Error(c, err)
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}
