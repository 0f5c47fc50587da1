package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas de agregação somente leitura para relatórios.
type RelatorioRepo struct {
	pool *pgxpool.Pool
}

// NewRelatorioRepository constrói o adaptador de relatórios.
func NewRelatorioRepository(pool *pgxpool.Pool) *RelatorioRepo {
	return &RelatorioRepo{pool: pool}
}

// Dashboard devolve os totais do painel: peças em estoque, tipos,
// beneficiários, itens abaixo do limite padrão e movimento do mês corrente.
func (r *RelatorioRepo) Dashboard(ctx context.Context, agora time.Time) (*repository.DashboardResult, error) {
	inicioMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())

	const query = `
	SELECT
	    COALESCE((SELECT SUM(quantidade) FROM estoque), 0),
	    (SELECT COUNT(*) FROM tipos),
	    (SELECT COUNT(*) FROM beneficiarios),
	    (SELECT COUNT(*) FROM estoque WHERE quantidade < 10),
	    COALESCE((SELECT SUM(quantidade) FROM doacoes_recebidas WHERE data >= $1), 0),
	    COALESCE((SELECT SUM(quantidade) FROM doacoes_enviadas  WHERE data >= $1), 0)`

	var res repository.DashboardResult
	err := r.pool.QueryRow(ctx, query, inicioMes).Scan(
		&res.TotalPecasEstoque,
		&res.TotalTipos,
		&res.TotalBeneficiarios,
		&res.EstoqueBaixo,
		&res.RecebidasMes,
		&res.EnviadasMes,
	)
	if err != nil {
		return nil, fmt.Errorf("relatorio.Dashboard: %w", err)
	}
	return &res, nil
}

// MovimentosPorTipo agrega recebidas e enviadas por tipo dentro do período.
// FULL JOIN das duas agregações para que tipos com movimento em apenas um dos
// ledgers também apareçam.
func (r *RelatorioRepo) MovimentosPorTipo(ctx context.Context, inicio, fim time.Time) ([]*repository.MovimentoPorTipoResult, error) {
	const query = `
	WITH rec AS (
	    SELECT tipo_id, SUM(quantidade) AS total
	    FROM doacoes_recebidas WHERE data BETWEEN $1 AND $2 GROUP BY tipo_id
	), env AS (
	    SELECT tipo_id, SUM(quantidade) AS total
	    FROM doacoes_enviadas WHERE data BETWEEN $1 AND $2 GROUP BY tipo_id
	)
	SELECT
	    t.id,
	    t.descricao,
	    COALESCE(rec.total, 0),
	    COALESCE(env.total, 0)
	FROM tipos t
	LEFT JOIN rec ON rec.tipo_id = t.id
	LEFT JOIN env ON env.tipo_id = t.id
	WHERE rec.total IS NOT NULL OR env.total IS NOT NULL
	ORDER BY t.descricao`

	rows, err := r.pool.Query(ctx, query, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("relatorio.MovimentosPorTipo: %w", err)
	}
	defer rows.Close()

	var results []*repository.MovimentoPorTipoResult
	for rows.Next() {
		var row repository.MovimentoPorTipoResult
		if err := rows.Scan(&row.TipoID, &row.TipoDescricao, &row.Recebidas, &row.Enviadas); err != nil {
			return nil, fmt.Errorf("relatorio.MovimentosPorTipo scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// MovimentosMensais devolve a série dos últimos N meses (incluindo o corrente),
// meses sem movimento com zeros.
func (r *RelatorioRepo) MovimentosMensais(ctx context.Context, meses int, agora time.Time) ([]*repository.MovimentoMensalResult, error) {
	if meses <= 0 {
		meses = 12
	}
	inicio := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location()).AddDate(0, -(meses - 1), 0)

	const query = `
	WITH rec AS (
	    SELECT to_char(date_trunc('month', data), 'YYYY-MM') AS mes, SUM(quantidade) AS total
	    FROM doacoes_recebidas WHERE data >= $1 GROUP BY 1
	), env AS (
	    SELECT to_char(date_trunc('month', data), 'YYYY-MM') AS mes, SUM(quantidade) AS total
	    FROM doacoes_enviadas WHERE data >= $1 GROUP BY 1
	)
	SELECT COALESCE(rec.mes, env.mes), COALESCE(rec.total, 0), COALESCE(env.total, 0)
	FROM rec
	FULL OUTER JOIN env ON env.mes = rec.mes`

	rows, err := r.pool.Query(ctx, query, inicio)
	if err != nil {
		return nil, fmt.Errorf("relatorio.MovimentosMensais: %w", err)
	}
	defer rows.Close()

	porMes := make(map[string]*repository.MovimentoMensalResult)
	for rows.Next() {
		var row repository.MovimentoMensalResult
		if err := rows.Scan(&row.Mes, &row.Recebidas, &row.Enviadas); err != nil {
			return nil, fmt.Errorf("relatorio.MovimentosMensais scan: %w", err)
		}
		porMes[row.Mes] = &row
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Série completa, meses sem movimento entram zerados
	results := make([]*repository.MovimentoMensalResult, 0, meses)
	for i := 0; i < meses; i++ {
		mes := inicio.AddDate(0, i, 0).Format("2006-01")
		if row, ok := porMes[mes]; ok {
			results = append(results, row)
			continue
		}
		results = append(results, &repository.MovimentoMensalResult{Mes: mes})
	}
	return results, nil
}
