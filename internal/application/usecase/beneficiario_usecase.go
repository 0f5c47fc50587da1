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

// BeneficiarioUseCase casos de uso CRUD para beneficiários.
type BeneficiarioUseCase struct {
	repo repository.BeneficiarioRepository
}

// NewBeneficiarioUseCase constrói o caso de uso.
func NewBeneficiarioUseCase(repo repository.BeneficiarioRepository) *BeneficiarioUseCase {
	return &BeneficiarioUseCase{repo: repo}
}

// Create cadastra um novo beneficiário. Nome é obrigatório.
func (uc *BeneficiarioUseCase) Create(in dto.CreateBeneficiarioRequest) (*dto.BeneficiarioResponse, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	b := &entity.Beneficiario{
		ID:           uuid.New().String(),
		Nome:         strings.TrimSpace(in.Nome),
		Documento:    in.Documento,
		Telefone:     in.Telefone,
		Endereco:     in.Endereco,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(b); err != nil {
		return nil, err
	}
	return toBeneficiarioResponse(b), nil
}

// GetByID obtém um beneficiário por ID.
func (uc *BeneficiarioUseCase) GetByID(id string) (*dto.BeneficiarioResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return toBeneficiarioResponse(b), nil
}

// List lista todos os beneficiários.
func (uc *BeneficiarioUseCase) List() ([]dto.BeneficiarioResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BeneficiarioResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBeneficiarioResponse(b))
	}
	return items, nil
}

// Update atualiza um beneficiário. Campos nil não são alterados.
func (uc *BeneficiarioUseCase) Update(id string, in dto.UpdateBeneficiarioRequest) (*dto.BeneficiarioResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	if in.Nome != nil {
		if strings.TrimSpace(*in.Nome) == "" {
			return nil, domain.ErrInvalidInput
		}
		b.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.Documento != nil {
		b.Documento = *in.Documento
	}
	if in.Telefone != nil {
		b.Telefone = *in.Telefone
	}
	if in.Endereco != nil {
		b.Endereco = *in.Endereco
	}
	b.AtualizadoEm = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBeneficiarioResponse(b), nil
}

// Delete remove um beneficiário por ID.
func (uc *BeneficiarioUseCase) Delete(id string) error {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toBeneficiarioResponse(b *entity.Beneficiario) *dto.BeneficiarioResponse {
	if b == nil {
		return nil
	}
	return &dto.BeneficiarioResponse{
		ID:           b.ID,
		Nome:         b.Nome,
		Documento:    b.Documento,
		Telefone:     b.Telefone,
		Endereco:     b.Endereco,
		CriadoEm:     b.CriadoEm,
		AtualizadoEm: b.AtualizadoEm,
	}
}
