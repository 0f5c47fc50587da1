package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sanem/doacoes-api/internal/domain/entity"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

var _ repository.DoacaoRepository = (*DoacaoRepo)(nil)

// DoacaoRepo implementação dos dois ledgers de movimento sobre PostgreSQL
// (usável com pool ou tx).
type DoacaoRepo struct {
	q Querier
}

// NewDoacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewDoacaoRepository(q Querier) *DoacaoRepo {
	return &DoacaoRepo{q: q}
}

// CreateRecebida persiste um movimento de entrada.
func (r *DoacaoRepo) CreateRecebida(d *entity.DoacaoRecebida) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO doacoes_recebidas (id, quantidade, tipo_id, estoque_id, data)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Quantidade, d.TipoID, d.EstoqueID, d.Data,
	)
	if err != nil {
		return fmt.Errorf("create doacao recebida: %w", err)
	}
	return nil
}

// GetRecebidaByID obtém um movimento de entrada por ID.
func (r *DoacaoRepo) GetRecebidaByID(id string) (*entity.DoacaoRecebida, error) {
	query := `
		SELECT id, quantidade, tipo_id, estoque_id, data
		FROM doacoes_recebidas WHERE id = $1`
	var d entity.DoacaoRecebida
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Quantidade, &d.TipoID, &d.EstoqueID, &d.Data,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get doacao recebida: %w", err)
	}
	return &d, nil
}

// ListRecebidas lista as entradas, mais recentes primeiro.
func (r *DoacaoRepo) ListRecebidas() ([]*repository.DoacaoRecebidaDetalhe, error) {
	query := `
		SELECT d.id, d.quantidade, d.tipo_id, d.estoque_id, d.data, COALESCE(t.descricao, '')
		FROM doacoes_recebidas d
		LEFT JOIN tipos t ON t.id = d.tipo_id
		ORDER BY d.data DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list doacoes recebidas: %w", err)
	}
	defer rows.Close()
	var list []*repository.DoacaoRecebidaDetalhe
	for rows.Next() {
		var d repository.DoacaoRecebidaDetalhe
		if err := rows.Scan(&d.ID, &d.Quantidade, &d.TipoID, &d.EstoqueID, &d.Data, &d.TipoDescricao); err != nil {
			return nil, fmt.Errorf("scan doacao recebida: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// DeleteRecebida remove um movimento de entrada. Apenas a linha do ledger é
// removida; a quantidade em estoque não é recompensada (comportamento herdado).
func (r *DoacaoRepo) DeleteRecebida(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM doacoes_recebidas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doacao recebida: %w", err)
	}
	return nil
}

// CreateEnviada persiste um movimento de saída.
func (r *DoacaoRepo) CreateEnviada(d *entity.DoacaoEnviada) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO doacoes_enviadas (id, quantidade, beneficiario_id, tipo_id, estoque_id, operador_id, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	operadorID := (*string)(nil)
	if d.OperadorID != "" {
		operadorID = &d.OperadorID
	}
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Quantidade, d.BeneficiarioID, d.TipoID, d.EstoqueID, operadorID, d.Data,
	)
	if err != nil {
		return fmt.Errorf("create doacao enviada: %w", err)
	}
	return nil
}

// GetEnviadaByID obtém um movimento de saída por ID.
func (r *DoacaoRepo) GetEnviadaByID(id string) (*entity.DoacaoEnviada, error) {
	query := `
		SELECT id, quantidade, beneficiario_id, tipo_id, estoque_id, COALESCE(operador_id, ''), data
		FROM doacoes_enviadas WHERE id = $1`
	var d entity.DoacaoEnviada
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Quantidade, &d.BeneficiarioID, &d.TipoID, &d.EstoqueID, &d.OperadorID, &d.Data,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get doacao enviada: %w", err)
	}
	return &d, nil
}

const enviadasSelect = `
	SELECT d.id, d.quantidade, d.beneficiario_id, d.tipo_id, d.estoque_id,
	       COALESCE(d.operador_id::TEXT, ''), d.data,
	       COALESCE(b.nome, ''), COALESCE(t.descricao, ''), COALESCE(o.nome, 'Sistema')
	FROM doacoes_enviadas d
	LEFT JOIN beneficiarios b ON b.id = d.beneficiario_id
	LEFT JOIN tipos t         ON t.id = d.tipo_id
	LEFT JOIN operadores o    ON o.id = d.operador_id`

// ListEnviadas lista as saídas com nomes resolvidos, em ordem cronológica
// (a ordem estável que o agrupamento em distribuições espera).
func (r *DoacaoRepo) ListEnviadas() ([]*repository.DoacaoEnviadaDetalhe, error) {
	return r.listEnviadas(enviadasSelect+` ORDER BY d.data`, nil)
}

// ListEnviadasByBeneficiario lista as saídas de um beneficiário.
func (r *DoacaoRepo) ListEnviadasByBeneficiario(beneficiarioID string) ([]*repository.DoacaoEnviadaDetalhe, error) {
	return r.listEnviadas(enviadasSelect+` WHERE d.beneficiario_id = $1 ORDER BY d.data`, []any{beneficiarioID})
}

// ListEnviadasPeriodo lista as saídas com data dentro do intervalo fechado.
func (r *DoacaoRepo) ListEnviadasPeriodo(inicio, fim time.Time) ([]*repository.DoacaoEnviadaDetalhe, error) {
	return r.listEnviadas(enviadasSelect+` WHERE d.data BETWEEN $1 AND $2 ORDER BY d.data`, []any{inicio, fim})
}

func (r *DoacaoRepo) listEnviadas(query string, args []any) ([]*repository.DoacaoEnviadaDetalhe, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list doacoes enviadas: %w", err)
	}
	defer rows.Close()
	var list []*repository.DoacaoEnviadaDetalhe
	for rows.Next() {
		var d repository.DoacaoEnviadaDetalhe
		if err := rows.Scan(
			&d.ID, &d.Quantidade, &d.BeneficiarioID, &d.TipoID, &d.EstoqueID,
			&d.OperadorID, &d.Data, &d.BeneficiarioNome, &d.TipoDescricao, &d.OperadorNome,
		); err != nil {
			return nil, fmt.Errorf("scan doacao enviada: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// DeleteEnviada remove um movimento de saída (sem recompensar o estoque).
func (r *DoacaoRepo) DeleteEnviada(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM doacoes_enviadas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doacao enviada: %w", err)
	}
	return nil
}
