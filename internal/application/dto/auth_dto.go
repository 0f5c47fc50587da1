package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse resposta do login: token Bearer mais o operador autenticado.
type LoginResponse struct {
	Success bool             `json:"success"`
	Token   string           `json:"token"`
	User    OperadorResponse `json:"user"`
}

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
	Email     string `json:"email"`
	Senha     string `json:"senha"`
	Tipo      string `json:"tipo"`
}

// VerifyResponse resposta de GET /api/auth/verify.
type VerifyResponse struct {
	Valid bool             `json:"valid"`
	User  OperadorResponse `json:"user"`
}

// OperadorResponse representação pública de um operador (sem hash de senha).
type OperadorResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Documento    string    `json:"documento,omitempty"`
	Email        string    `json:"email"`
	Tipo         string    `json:"tipo"`
	CriadoEm     time.Time `json:"criadoEm"`
	AtualizadoEm time.Time `json:"atualizadoEm"`
}
