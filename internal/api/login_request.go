package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required" format:"email" example:"user@example.com"`
	Password string `json:"password" validate:"required" example:"StrongPass123"`
}
