package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email     string `json:"email" validate:"required" format:"email" example:"user@example.com"`
	Password  string `json:"password" validate:"required,min=8" example:"StrongPass123"`
	FirstName string `json:"first_name" validate:"required,max=100" example:"Ivan"`
	LastName  string `json:"last_name" validate:"required,max=100" example:"Petrov"`
	BirthDate string `json:"birth_date" validate:"required" example:"1990-05-10"`
	Region    string `json:"region" validate:"required,max=100" example:"Moscow Oblast"`
	City      string `json:"city" validate:"required,max=100" example:"Moscow"`
}
