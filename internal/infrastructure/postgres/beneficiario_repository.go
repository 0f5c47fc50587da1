package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/entity"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

var _ repository.BeneficiarioRepository = (*BeneficiarioRepo)(nil)

// BeneficiarioRepo implementação de BeneficiarioRepository sobre PostgreSQL.
type BeneficiarioRepo struct {
	q Querier
}

// NewBeneficiarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewBeneficiarioRepository(q Querier) *BeneficiarioRepo {
	return &BeneficiarioRepo{q: q}
}

// Create persiste um novo beneficiário.
func (r *BeneficiarioRepo) Create(b *entity.Beneficiario) error {
	query := `
		INSERT INTO beneficiarios (id, nome, documento, telefone, endereco, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Nome, b.Documento, b.Telefone, b.Endereco, b.CriadoEm, b.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert beneficiario: %w", err)
	}
	return nil
}

// GetByID obtém um beneficiário por ID.
func (r *BeneficiarioRepo) GetByID(id string) (*entity.Beneficiario, error) {
	query := `
		SELECT id, nome, documento, telefone, endereco, criado_em, atualizado_em
		FROM beneficiarios WHERE id = $1`
	var b entity.Beneficiario
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Nome, &b.Documento, &b.Telefone, &b.Endereco, &b.CriadoEm, &b.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beneficiario: %w", err)
	}
	return &b, nil
}

// List lista todos os beneficiários em ordem alfabética.
func (r *BeneficiarioRepo) List() ([]*entity.Beneficiario, error) {
	query := `
		SELECT id, nome, documento, telefone, endereco, criado_em, atualizado_em
		FROM beneficiarios ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list beneficiarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Beneficiario
	for rows.Next() {
		var b entity.Beneficiario
		if err := rows.Scan(&b.ID, &b.Nome, &b.Documento, &b.Telefone, &b.Endereco, &b.CriadoEm, &b.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan beneficiario: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update atualiza um beneficiário existente.
func (r *BeneficiarioRepo) Update(b *entity.Beneficiario) error {
	query := `
		UPDATE beneficiarios SET nome = $2, documento = $3, telefone = $4, endereco = $5, atualizado_em = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Nome, b.Documento, b.Telefone, b.Endereco, b.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update beneficiario: %w", err)
	}
	return nil
}

// Delete remove um beneficiário por ID. Falha com conflito se ainda existirem
// doações enviadas vinculadas.
func (r *BeneficiarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM beneficiarios WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete beneficiario: %w", err)
	}
	return nil
}
