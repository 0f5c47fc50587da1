package repository

import "github.com/sanem/doacoes-api/internal/domain/entity"

// BeneficiarioRepository define o porto de persistência para Beneficiario.
type BeneficiarioRepository interface {
	Create(b *entity.Beneficiario) error
	GetByID(id string) (*entity.Beneficiario, error)
	List() ([]*entity.Beneficiario, error)
	Update(b *entity.Beneficiario) error
	Delete(id string) error
}
