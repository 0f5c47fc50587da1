package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/entity"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

// TipoUseCase casos de uso CRUD para tipos de produto. A regra de unicidade da
// descrição (sem distinguir caixa nem espaços das bordas) mora aqui.
type TipoUseCase struct {
	repo repository.TipoRepository
}

// NewTipoUseCase constrói o caso de uso.
func NewTipoUseCase(repo repository.TipoRepository) *TipoUseCase {
	return &TipoUseCase{repo: repo}
}

// Create cria um novo tipo. Descrição em branco é inválida; descrição já usada
// por outro tipo é duplicata.
func (uc *TipoUseCase) Create(in dto.CreateTipoRequest) (*dto.TipoResponse, error) {
	descricao := strings.TrimSpace(in.Descricao)
	if descricao == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByDescricao(descricao)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	tipo := &entity.Tipo{
		ID:           uuid.New().String(),
		Descricao:    descricao,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(tipo); err != nil {
		return nil, err
	}
	return toTipoResponse(tipo), nil
}

// GetByID obtém um tipo por ID.
func (uc *TipoUseCase) GetByID(id string) (*dto.TipoResponse, error) {
	tipo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, nil
	}
	return toTipoResponse(tipo), nil
}

// List lista todos os tipos.
func (uc *TipoUseCase) List() ([]dto.TipoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TipoResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTipoResponse(t))
	}
	return items, nil
}

// Update renomeia um tipo. Renomear para a própria descrição atual é
// permitido; colidir com a descrição de OUTRO id é duplicata.
func (uc *TipoUseCase) Update(id string, in dto.UpdateTipoRequest) (*dto.TipoResponse, error) {
	descricao := strings.TrimSpace(in.Descricao)
	if descricao == "" {
		return nil, domain.ErrInvalidInput
	}
	tipo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, nil
	}
	existing, err := uc.repo.GetByDescricao(descricao)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, domain.ErrDuplicate
	}
	tipo.Descricao = descricao
	tipo.AtualizadoEm = time.Now()
	if err := uc.repo.Update(tipo); err != nil {
		return nil, err
	}
	return toTipoResponse(tipo), nil
}

// Delete remove um tipo. Bloqueia com conflito enquanto houver estoque ou
// histórico de movimentos referenciando o tipo.
func (uc *TipoUseCase) Delete(id string) error {
	tipo, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tipo == nil {
		return domain.ErrNotFound
	}
	emUso, err := uc.repo.HasReferences(id)
	if err != nil {
		return err
	}
	if emUso {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toTipoResponse(t *entity.Tipo) *dto.TipoResponse {
	if t == nil {
		return nil
	}
	return &dto.TipoResponse{ID: t.ID, Descricao: t.Descricao}
}
