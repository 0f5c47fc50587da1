package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/entity"
	"github.com/sanem/doacoes-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// OperadorUseCase casos de uso CRUD para operadores (restrito a admin no router).
type OperadorUseCase struct {
	repo repository.OperadorRepository
}

// NewOperadorUseCase constrói o caso de uso.
func NewOperadorUseCase(repo repository.OperadorRepository) *OperadorUseCase {
	return &OperadorUseCase{repo: repo}
}

// Create cadastra um operador com a senha já em hash bcrypt.
func (uc *OperadorUseCase) Create(in dto.CreateOperadorRequest) (*dto.OperadorResponse, error) {
	if strings.TrimSpace(in.Nome) == "" || in.Email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.OperadorVoluntario
	}
	now := time.Now()
	op := &entity.Operador{
		ID:           uuid.New().String(),
		Nome:         strings.TrimSpace(in.Nome),
		Documento:    in.Documento,
		Email:        in.Email,
		SenhaHash:    string(hash),
		Tipo:         tipo,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(op); err != nil {
		return nil, err
	}
	return ToOperadorResponse(op), nil
}

// GetByID obtém um operador por ID.
func (uc *OperadorUseCase) GetByID(id string) (*dto.OperadorResponse, error) {
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}
	return ToOperadorResponse(op), nil
}

// List lista todos os operadores (sem hashes de senha).
func (uc *OperadorUseCase) List() ([]dto.OperadorResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperadorResponse, 0, len(list))
	for _, op := range list {
		items = append(items, *ToOperadorResponse(op))
	}
	return items, nil
}

// Update atualiza os dados cadastrais. Campos nil não são alterados.
func (uc *OperadorUseCase) Update(id string, in dto.UpdateOperadorRequest) (*dto.OperadorResponse, error) {
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}
	if in.Nome != nil {
		op.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.Documento != nil {
		op.Documento = *in.Documento
	}
	if in.Email != nil && *in.Email != op.Email {
		existing, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
		op.Email = *in.Email
	}
	if in.Tipo != nil {
		op.Tipo = *in.Tipo
	}
	op.AtualizadoEm = time.Now()
	if err := uc.repo.Update(op); err != nil {
		return nil, err
	}
	return ToOperadorResponse(op), nil
}

// UpdateSenha troca a senha de um operador.
func (uc *OperadorUseCase) UpdateSenha(id string, in dto.UpdateSenhaRequest) error {
	if in.NovaSenha == "" {
		return domain.ErrInvalidInput
	}
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if op == nil {
		return domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NovaSenha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdateSenha(id, string(hash))
}

// Delete remove um operador por ID.
func (uc *OperadorUseCase) Delete(id string) error {
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if op == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToOperadorResponse mapeia a entidade para a representação pública.
func ToOperadorResponse(op *entity.Operador) *dto.OperadorResponse {
	if op == nil {
		return nil
	}
	return &dto.OperadorResponse{
		ID:           op.ID,
		Nome:         op.Nome,
		Documento:    op.Documento,
		Email:        op.Email,
		Tipo:         op.Tipo,
		CriadoEm:     op.CriadoEm,
		AtualizadoEm: op.AtualizadoEm,
	}
}
