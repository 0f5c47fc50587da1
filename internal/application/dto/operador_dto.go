package dto

// CreateOperadorRequest body para POST /api/operadores.
type CreateOperadorRequest struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
	Email     string `json:"email"`
	Senha     string `json:"senha"`
	Tipo      string `json:"tipo"`
}

// UpdateOperadorRequest body para PUT /api/operadores/:id. Senha tem endpoint
// próprio; campos nil não são alterados.
type UpdateOperadorRequest struct {
	Nome      *string `json:"nome"`
	Documento *string `json:"documento"`
	Email     *string `json:"email"`
	Tipo      *string `json:"tipo"`
}

// UpdateSenhaRequest body para PUT /api/operadores/:id/senha.
type UpdateSenhaRequest struct {
	NovaSenha string `json:"novaSenha"`
}
