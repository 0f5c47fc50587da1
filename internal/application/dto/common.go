package dto

// ErrorResponse corpo de erro HTTP. Field indica qual campo colidiu nos 409.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MessageResponse corpo de sucesso para operações sem payload (ex.: DELETE).
type MessageResponse struct {
	Message string `json:"message"`
}
