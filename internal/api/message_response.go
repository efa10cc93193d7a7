package api

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Account deleted successfully"`
}

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}
