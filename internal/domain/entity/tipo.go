package entity

import "time"

// Tipo representa um tipo de produto do catálogo (ex.: "Camiseta Masculina").
// Descricao é única entre todos os tipos, ignorando caixa e espaços das bordas.
type Tipo struct {
	ID           string
	Descricao    string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
