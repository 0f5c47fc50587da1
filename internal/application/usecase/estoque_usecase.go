package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/entity"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

// LimiteEstoqueBaixoPadrao limite usado quando o chamador não informa um.
const LimiteEstoqueBaixoPadrao = 10

// EstoqueUseCase casos de uso CRUD para itens de estoque. A quantidade é
// mutada pelos movimentos de doação; o Update daqui é correção administrativa.
type EstoqueUseCase struct {
	repo     repository.EstoqueRepository
	tipoRepo repository.TipoRepository
}

// NewEstoqueUseCase constrói o caso de uso.
func NewEstoqueUseCase(repo repository.EstoqueRepository, tipoRepo repository.TipoRepository) *EstoqueUseCase {
	return &EstoqueUseCase{repo: repo, tipoRepo: tipoRepo}
}

// Create cria um item de estoque para um tipo. No máximo um item por tipo.
func (uc *EstoqueUseCase) Create(in dto.CreateEstoqueRequest) (*dto.ItemEstoqueResponse, error) {
	if in.TipoID == "" {
		return nil, domain.ErrInvalidInput
	}
	tipo, err := uc.tipoRepo.GetByID(in.TipoID)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByTipoID(in.TipoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	item := &entity.ItemEstoque{
		ID:            uuid.New().String(),
		TipoID:        in.TipoID,
		Quantidade:    in.Quantidade,
		TipoDescricao: tipo.Descricao,
		AtualizadoEm:  time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemEstoqueResponse(item), nil
}

// GetByID obtém um item de estoque por ID.
func (uc *EstoqueUseCase) GetByID(id string) (*dto.ItemEstoqueResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemEstoqueResponse(item), nil
}

// List lista o estoque completo com as descrições dos tipos.
func (uc *EstoqueUseCase) List() ([]dto.ItemEstoqueResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toItemEstoqueResponses(list), nil
}

// Update grava quantidade e tipo de um item (correção administrativa: não gera
// movimento no ledger).
func (uc *EstoqueUseCase) Update(id string, in dto.UpdateEstoqueRequest) (*dto.ItemEstoqueResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	item.Quantidade = in.Quantidade
	if in.TipoID != "" {
		item.TipoID = in.TipoID
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete remove um item de estoque. O tipo correspondente permanece.
func (uc *EstoqueUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListLowStock lista itens com quantidade estritamente menor que limite, em
// ordem crescente. Limite não positivo cai no padrão (10).
func (uc *EstoqueUseCase) ListLowStock(limite int) ([]dto.ItemEstoqueResponse, error) {
	if limite <= 0 {
		limite = LimiteEstoqueBaixoPadrao
	}
	list, err := uc.repo.ListLowStock(limite)
	if err != nil {
		return nil, err
	}
	return toItemEstoqueResponses(list), nil
}

func toItemEstoqueResponse(i *entity.ItemEstoque) *dto.ItemEstoqueResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemEstoqueResponse{
		ID:            i.ID,
		Quantidade:    i.Quantidade,
		TipoID:        i.TipoID,
		TipoDescricao: i.TipoDescricao,
	}
}

func toItemEstoqueResponses(list []*entity.ItemEstoque) []dto.ItemEstoqueResponse {
	items := make([]dto.ItemEstoqueResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toItemEstoqueResponse(i))
	}
	return items
}
