package dto

import "time"

// CreateBeneficiarioRequest body para POST /api/beneficiarios.
type CreateBeneficiarioRequest struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
	Telefone  string `json:"telefone"`
	Endereco  string `json:"endereco"`
}

// UpdateBeneficiarioRequest body para PUT /api/beneficiarios/:id. Campos nil
// não são alterados.
type UpdateBeneficiarioRequest struct {
	Nome      *string `json:"nome"`
	Documento *string `json:"documento"`
	Telefone  *string `json:"telefone"`
	Endereco  *string `json:"endereco"`
}

// BeneficiarioResponse representação de um beneficiário.
type BeneficiarioResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Documento    string    `json:"documento"`
	Telefone     string    `json:"telefone"`
	Endereco     string    `json:"endereco,omitempty"`
	CriadoEm     time.Time `json:"criadoEm"`
	AtualizadoEm time.Time `json:"atualizadoEm"`
}
