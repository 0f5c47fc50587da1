package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/entity"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

var _ repository.OperadorRepository = (*OperadorRepo)(nil)

// OperadorRepo implementação de OperadorRepository sobre PostgreSQL.
type OperadorRepo struct {
	q Querier
}

// NewOperadorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOperadorRepository(q Querier) *OperadorRepo {
	return &OperadorRepo{q: q}
}

// Create persiste um novo operador. Email é único.
func (r *OperadorRepo) Create(op *entity.Operador) error {
	query := `
		INSERT INTO operadores (id, nome, documento, email, senha_hash, tipo, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.Nome, op.Documento, op.Email, op.SenhaHash, op.Tipo, op.CriadoEm, op.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert operador: %w", err)
	}
	return nil
}

// GetByID obtém um operador por ID.
func (r *OperadorRepo) GetByID(id string) (*entity.Operador, error) {
	return r.getBy(`id = $1`, id)
}

// GetByEmail obtém um operador pelo email.
func (r *OperadorRepo) GetByEmail(email string) (*entity.Operador, error) {
	return r.getBy(`LOWER(email) = LOWER($1)`, email)
}

func (r *OperadorRepo) getBy(where string, arg any) (*entity.Operador, error) {
	query := `
		SELECT id, nome, documento, email, senha_hash, tipo, criado_em, atualizado_em
		FROM operadores WHERE ` + where
	var op entity.Operador
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&op.ID, &op.Nome, &op.Documento, &op.Email, &op.SenhaHash, &op.Tipo, &op.CriadoEm, &op.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operador: %w", err)
	}
	return &op, nil
}

// List lista todos os operadores em ordem alfabética.
func (r *OperadorRepo) List() ([]*entity.Operador, error) {
	query := `
		SELECT id, nome, documento, email, senha_hash, tipo, criado_em, atualizado_em
		FROM operadores ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list operadores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operador
	for rows.Next() {
		var op entity.Operador
		if err := rows.Scan(&op.ID, &op.Nome, &op.Documento, &op.Email, &op.SenhaHash, &op.Tipo, &op.CriadoEm, &op.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan operador: %w", err)
		}
		list = append(list, &op)
	}
	return list, rows.Err()
}

// Update atualiza os dados cadastrais de um operador (a senha tem caminho próprio).
func (r *OperadorRepo) Update(op *entity.Operador) error {
	query := `
		UPDATE operadores SET nome = $2, documento = $3, email = $4, tipo = $5, atualizado_em = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.Nome, op.Documento, op.Email, op.Tipo, op.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update operador: %w", err)
	}
	return nil
}

// UpdateSenha grava um novo hash de senha.
func (r *OperadorRepo) UpdateSenha(id, senhaHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE operadores SET senha_hash = $2, atualizado_em = now() WHERE id = $1`,
		id, senhaHash,
	)
	if err != nil {
		return fmt.Errorf("update senha: %w", err)
	}
	return nil
}

// Delete remove um operador por ID.
func (r *OperadorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM operadores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete operador: %w", err)
	}
	return nil
}

// RegistrarAcesso grava uma linha no diário de login/logout.
func (r *OperadorRepo) RegistrarAcesso(operadorID string, modo int, data time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO registro_acessos (id, operador_id, modo, data) VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), operadorID, modo, data,
	)
	if err != nil {
		return fmt.Errorf("registrar acesso: %w", err)
	}
	return nil
}
