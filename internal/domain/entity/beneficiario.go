package entity

import "time"

// Beneficiario representa uma pessoa atendida pelo programa de doações.
// Ciclo de vida independente; referenciado pelas doações enviadas.
type Beneficiario struct {
	ID           string
	Nome         string
	Documento    string
	Telefone     string
	Endereco     string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
