package repository

import (
	"time"

	"github.com/sanem/doacoes-api/internal/domain/entity"
)

// Modos do diário de acesso.
const (
	AcessoLogin  = 1
	AcessoLogout = 0
)

// OperadorRepository define o porto de persistência para Operador.
type OperadorRepository interface {
	Create(op *entity.Operador) error
	GetByID(id string) (*entity.Operador, error)
	GetByEmail(email string) (*entity.Operador, error)
	List() ([]*entity.Operador, error)
	Update(op *entity.Operador) error
	UpdateSenha(id, senhaHash string) error
	Delete(id string) error
	// RegistrarAcesso grava uma linha no diário de login/logout.
	RegistrarAcesso(operadorID string, modo int, data time.Time) error
}
