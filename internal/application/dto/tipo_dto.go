package dto

// CreateTipoRequest body para POST /api/tipos.
type CreateTipoRequest struct {
	Descricao string `json:"descricao"`
}

// UpdateTipoRequest body para PUT /api/tipos/:id.
type UpdateTipoRequest struct {
	Descricao string `json:"descricao"`
}

// TipoResponse representação de um tipo de produto.
type TipoResponse struct {
	ID        string `json:"id"`
	Descricao string `json:"descricao"`
}
