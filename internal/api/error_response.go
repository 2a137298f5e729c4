// File: internal/api/error_response.go
package api

// ErrorResponse 4xx 錯誤回應
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"User not found"`
}

// InternalErrorResponse 5xx 錯誤回應
// swagger:model api.InternalErrorResponse
type InternalErrorResponse struct {
	Err string `json:"err" example:"internal server error"`
}
