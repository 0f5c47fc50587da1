package dto

// CreateEstoqueRequest body para POST /api/estoque. Quantidade omitida vale 0.
type CreateEstoqueRequest struct {
	Quantidade int    `json:"quantidade"`
	TipoID     string `json:"tipoId"`
}

// UpdateEstoqueRequest body para PUT /api/estoque/:id (correção administrativa,
// não passa pelo ledger de movimentos).
type UpdateEstoqueRequest struct {
	Quantidade int    `json:"quantidade"`
	TipoID     string `json:"tipoId"`
}

// ItemEstoqueResponse item de estoque com a descrição do tipo resolvida.
type ItemEstoqueResponse struct {
	ID            string `json:"id"`
	Quantidade    int    `json:"quantidade"`
	TipoID        string `json:"tipoId"`
	TipoDescricao string `json:"tipoDescricao"`
}
