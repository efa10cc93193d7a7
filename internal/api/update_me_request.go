package api

// UpdateMeRequest 省略的欄位保持不變
// swagger:model api.UpdateMeRequest
type UpdateMeRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100" example:"Ivan"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100" example:"Petrov"`
	BirthDate *string `json:"birth_date,omitempty" example:"1990-05-10"`
	Region    *string `json:"region,omitempty" validate:"omitempty,max=100" example:"Moscow Oblast"`
	City      *string `json:"city,omitempty" validate:"omitempty,max=100" example:"Moscow"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8" example:"NewStrongPass456"`
}
