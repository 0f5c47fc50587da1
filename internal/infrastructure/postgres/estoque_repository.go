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

var _ repository.EstoqueRepository = (*EstoqueRepo)(nil)

// EstoqueRepo implementação de EstoqueRepository sobre PostgreSQL (usável com pool ou tx).
type EstoqueRepo struct {
	q Querier
}

// NewEstoqueRepository constrói o adaptador de estoque. Passar pool ou tx (Querier).
func NewEstoqueRepository(q Querier) *EstoqueRepo {
	return &EstoqueRepo{q: q}
}

const estoqueSelect = `
	SELECT e.id, e.tipo_id, e.quantidade, COALESCE(t.descricao, ''), e.atualizado_em
	FROM estoque e
	LEFT JOIN tipos t ON t.id = e.tipo_id`

func scanItem(row pgx.Row) (*entity.ItemEstoque, error) {
	var i entity.ItemEstoque
	err := row.Scan(&i.ID, &i.TipoID, &i.Quantidade, &i.TipoDescricao, &i.AtualizadoEm)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste um novo item de estoque. A constraint única em tipo_id cobre
// a corrida entre a pré-checagem do caso de uso e o insert.
func (r *EstoqueRepo) Create(item *entity.ItemEstoque) error {
	query := `
		INSERT INTO estoque (id, tipo_id, quantidade, atualizado_em)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TipoID, item.Quantidade, item.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert estoque: %w", err)
	}
	return nil
}

// GetByID obtém um item de estoque por ID, com a descrição do tipo.
func (r *EstoqueRepo) GetByID(id string) (*entity.ItemEstoque, error) {
	item, err := scanItem(r.q.QueryRow(context.Background(), estoqueSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estoque: %w", err)
	}
	return item, nil
}

// GetByTipoID obtém o item de estoque de um tipo, se existir.
func (r *EstoqueRepo) GetByTipoID(tipoID string) (*entity.ItemEstoque, error) {
	item, err := scanItem(r.q.QueryRow(context.Background(), estoqueSelect+` WHERE e.tipo_id = $1`, tipoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estoque by tipo: %w", err)
	}
	return item, nil
}

// List lista o estoque completo ordenado pela descrição do tipo.
func (r *EstoqueRepo) List() ([]*entity.ItemEstoque, error) {
	rows, err := r.q.Query(context.Background(), estoqueSelect+` ORDER BY t.descricao`)
	if err != nil {
		return nil, fmt.Errorf("list estoque: %w", err)
	}
	defer rows.Close()
	return collectItens(rows)
}

// Update grava quantidade e tipo de um item (correção administrativa; não
// passa pelo ledger de movimentos).
func (r *EstoqueRepo) Update(item *entity.ItemEstoque) error {
	query := `
		UPDATE estoque SET quantidade = $2, tipo_id = $3, atualizado_em = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.Quantidade, item.TipoID)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	return nil
}

// Delete remove um item de estoque por ID. O tipo correspondente permanece.
// Um item referenciado por movimentos não pode ser removido.
func (r *EstoqueRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM estoque WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete estoque: %w", err)
	}
	return nil
}

// ListLowStock lista itens com quantidade menor que limite, crescente.
func (r *EstoqueRepo) ListLowStock(limite int) ([]*entity.ItemEstoque, error) {
	rows, err := r.q.Query(context.Background(),
		estoqueSelect+` WHERE e.quantidade < $1 ORDER BY e.quantidade`, limite)
	if err != nil {
		return nil, fmt.Errorf("list estoque baixo: %w", err)
	}
	defer rows.Close()
	return collectItens(rows)
}

// ApplyDelta soma delta à quantidade num único statement atômico. O incremento
// acontece inteiro no servidor, então escritores concorrentes no mesmo item não
// perdem atualizações.
func (r *EstoqueRepo) ApplyDelta(id string, delta int) (*entity.ItemEstoque, error) {
	query := `
		UPDATE estoque SET quantidade = quantidade + $2, atualizado_em = now()
		WHERE id = $1
		RETURNING id, tipo_id, quantidade, atualizado_em`
	var i entity.ItemEstoque
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(
		&i.ID, &i.TipoID, &i.Quantidade, &i.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("apply delta estoque: %w", err)
	}
	// Resolve a descrição do tipo para a visão devolvida ao chamador
	if err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(descricao, '') FROM tipos WHERE id = $1`, i.TipoID,
	).Scan(&i.TipoDescricao); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("resolve tipo descricao: %w", err)
	}
	return &i, nil
}

func collectItens(rows pgx.Rows) ([]*entity.ItemEstoque, error) {
	var list []*entity.ItemEstoque
	for rows.Next() {
		var i entity.ItemEstoque
		if err := rows.Scan(&i.ID, &i.TipoID, &i.Quantidade, &i.TipoDescricao, &i.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan estoque: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
