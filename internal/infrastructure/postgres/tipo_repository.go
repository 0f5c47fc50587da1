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

var _ repository.TipoRepository = (*TipoRepo)(nil)

// TipoRepo implementação do porto TipoRepository sobre PostgreSQL (usável com pool ou tx).
type TipoRepo struct {
	q Querier
}

// NewTipoRepository constrói o adaptador de persistência para tipos. Passar pool ou tx (Querier).
func NewTipoRepository(q Querier) *TipoRepo {
	return &TipoRepo{q: q}
}

// Create persiste um novo tipo.
func (r *TipoRepo) Create(tipo *entity.Tipo) error {
	query := `
		INSERT INTO tipos (id, descricao, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		tipo.ID, tipo.Descricao, tipo.CriadoEm, tipo.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tipo: %w", err)
	}
	return nil
}

// GetByID obtém um tipo por ID.
func (r *TipoRepo) GetByID(id string) (*entity.Tipo, error) {
	query := `
		SELECT id, descricao, criado_em, atualizado_em
		FROM tipos WHERE id = $1`
	var t entity.Tipo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Descricao, &t.CriadoEm, &t.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo: %w", err)
	}
	return &t, nil
}

// GetByDescricao obtém um tipo pela descrição, ignorando caixa e espaços das bordas.
func (r *TipoRepo) GetByDescricao(descricao string) (*entity.Tipo, error) {
	query := `
		SELECT id, descricao, criado_em, atualizado_em
		FROM tipos WHERE LOWER(TRIM(descricao)) = LOWER(TRIM($1))`
	var t entity.Tipo
	err := r.q.QueryRow(context.Background(), query, descricao).Scan(
		&t.ID, &t.Descricao, &t.CriadoEm, &t.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo by descricao: %w", err)
	}
	return &t, nil
}

// List lista todos os tipos em ordem alfabética de descrição.
func (r *TipoRepo) List() ([]*entity.Tipo, error) {
	query := `
		SELECT id, descricao, criado_em, atualizado_em
		FROM tipos ORDER BY descricao`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tipos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tipo
	for rows.Next() {
		var t entity.Tipo
		if err := rows.Scan(&t.ID, &t.Descricao, &t.CriadoEm, &t.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan tipo: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update atualiza a descrição de um tipo.
func (r *TipoRepo) Update(tipo *entity.Tipo) error {
	query := `
		UPDATE tipos SET descricao = $2, atualizado_em = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, tipo.ID, tipo.Descricao, tipo.AtualizadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tipo: %w", err)
	}
	return nil
}

// Delete remove um tipo por ID.
func (r *TipoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tipos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete tipo: %w", err)
	}
	return nil
}

// HasReferences informa se o tipo é referenciado por estoque ou movimentos.
func (r *TipoRepo) HasReferences(id string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM estoque WHERE tipo_id = $1)
		    OR EXISTS (SELECT 1 FROM doacoes_recebidas WHERE tipo_id = $1)
		    OR EXISTS (SELECT 1 FROM doacoes_enviadas WHERE tipo_id = $1)`
	var emUso bool
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&emUso); err != nil {
		return false, fmt.Errorf("tipo references: %w", err)
	}
	return emUso, nil
}
