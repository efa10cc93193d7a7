package api

import (
	"time"

	"crypto-wallet/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID          int        `json:"id" example:"1"`
	Email       string     `json:"email" example:"user@example.com"`
	FirstName   string     `json:"first_name" example:"Ivan"`
	LastName    string     `json:"last_name" example:"Petrov"`
	BirthDate   string     `json:"birth_date" example:"1990-05-10"`
	Region      string     `json:"region" example:"Moscow Oblast"`
	City        string     `json:"city" example:"Moscow"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		BirthDate:   u.BirthDate.Format("2006-01-02"),
		Region:      u.Region,
		City:        u.City,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
