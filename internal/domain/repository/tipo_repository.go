package repository

import "github.com/sanem/doacoes-api/internal/domain/entity"

// TipoRepository define o porto de persistência para Tipo.
type TipoRepository interface {
	Create(tipo *entity.Tipo) error
	GetByID(id string) (*entity.Tipo, error)
	// GetByDescricao busca pela descrição normalizada (LOWER + TRIM no SQL).
	GetByDescricao(descricao string) (*entity.Tipo, error)
	List() ([]*entity.Tipo, error)
	Update(tipo *entity.Tipo) error
	Delete(id string) error
	// HasReferences informa se o tipo ainda é referenciado por estoque ou
	// por movimentos de doação (a remoção é bloqueada nesse caso).
	HasReferences(id string) (bool, error)
}
