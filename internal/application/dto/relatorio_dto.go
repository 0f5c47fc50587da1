package dto

// DashboardResponse totais do painel inicial.
type DashboardResponse struct {
	TotalPecasEstoque  int `json:"totalPecasEstoque"`
	TotalTipos         int `json:"totalTipos"`
	TotalBeneficiarios int `json:"totalBeneficiarios"`
	EstoqueBaixo       int `json:"estoqueBaixo"`
	RecebidasMes       int `json:"recebidasMes"`
	EnviadasMes        int `json:"enviadasMes"`
}

// MovimentoPorTipo linha do relatório por período.
type MovimentoPorTipo struct {
	TipoID        string `json:"tipoId"`
	TipoDescricao string `json:"tipoDescricao"`
	Recebidas     int    `json:"recebidas"`
	Enviadas      int    `json:"enviadas"`
}

// RelatorioPeriodoResponse totais entre duas datas, com detalhe por tipo.
type RelatorioPeriodoResponse struct {
	Inicio         string             `json:"inicio"`
	Fim            string             `json:"fim"`
	TotalRecebidas int                `json:"totalRecebidas"`
	TotalEnviadas  int                `json:"totalEnviadas"`
	PorTipo        []MovimentoPorTipo `json:"porTipo"`
}

// MovimentoMensal um mês da série histórica.
type MovimentoMensal struct {
	Mes       string `json:"mes"` // "2006-01"
	Recebidas int    `json:"recebidas"`
	Enviadas  int    `json:"enviadas"`
}
