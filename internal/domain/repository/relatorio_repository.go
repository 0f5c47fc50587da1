package repository

import (
	"context"
	"time"
)

// DashboardResult totais exibidos no painel inicial.
type DashboardResult struct {
	TotalPecasEstoque  int
	TotalTipos         int
	TotalBeneficiarios int
	EstoqueBaixo       int // itens com quantidade < 10
	RecebidasMes       int // peças recebidas no mês corrente
	EnviadasMes        int // peças enviadas no mês corrente
}

// MovimentoPorTipoResult totais de um tipo dentro de um período.
type MovimentoPorTipoResult struct {
	TipoID        string
	TipoDescricao string
	Recebidas     int
	Enviadas      int
}

// MovimentoMensalResult totais de um mês (série histórica).
type MovimentoMensalResult struct {
	Mes       string // "2006-01"
	Recebidas int
	Enviadas  int
}

// RelatorioRepository consultas de agregação somente leitura para relatórios.
type RelatorioRepository interface {
	Dashboard(ctx context.Context, agora time.Time) (*DashboardResult, error)
	MovimentosPorTipo(ctx context.Context, inicio, fim time.Time) ([]*MovimentoPorTipoResult, error)
	MovimentosMensais(ctx context.Context, meses int, agora time.Time) ([]*MovimentoMensalResult, error)
}
