package repository

import "github.com/sanem/doacoes-api/internal/domain/entity"

// EstoqueRepository define o porto de persistência para ItemEstoque.
// Usado dentro de transações para garantir consistência dos movimentos.
type EstoqueRepository interface {
	Create(item *entity.ItemEstoque) error
	GetByID(id string) (*entity.ItemEstoque, error)
	GetByTipoID(tipoID string) (*entity.ItemEstoque, error)
	List() ([]*entity.ItemEstoque, error)
	// Update é a correção administrativa: grava quantidade e tipo sem passar
	// pelo ledger de movimentos.
	Update(item *entity.ItemEstoque) error
	Delete(id string) error
	// ListLowStock devolve itens com quantidade menor que limite, em ordem
	// crescente de quantidade.
	ListLowStock(limite int) ([]*entity.ItemEstoque, error)
	// ApplyDelta soma delta (positivo ou negativo) à quantidade do item num
	// único statement atômico e devolve o item atualizado. É o único caminho
	// de escrita usado pelos movimentos de doação.
	ApplyDelta(id string, delta int) (*entity.ItemEstoque, error)
}
