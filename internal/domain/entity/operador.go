package entity

import "time"

// Tipos válidos para Operador.
const (
	OperadorAdmin      = "admin"
	OperadorVoluntario = "voluntario"
)

// Operador representa um usuário do sistema (funcionário ou voluntário).
type Operador struct {
	ID           string
	Nome         string
	Documento    string
	Email        string
	SenhaHash    string // hash bcrypt, nunca em claro no domínio após persistir
	Tipo         string // admin, voluntario
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
