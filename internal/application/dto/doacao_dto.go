package dto

import "time"

// RegistrarRecebidaRequest body para POST /api/doacoes/recebidas.
type RegistrarRecebidaRequest struct {
	Quantidade int    `json:"quantidade"`
	TipoID     string `json:"tipoId"`
	EstoqueID  string `json:"estoqueId"`
}

// RegistrarEnviadaRequest body para POST /api/doacoes/enviadas.
type RegistrarEnviadaRequest struct {
	Quantidade     int    `json:"quantidade"`
	BeneficiarioID string `json:"beneficiarioId"`
	TipoID         string `json:"tipoId"`
	EstoqueID      string `json:"estoqueId"`
}

// DoacaoRecebidaResponse linha de listagem de recebidas.
type DoacaoRecebidaResponse struct {
	ID            string    `json:"id"`
	Quantidade    int       `json:"quantidade"`
	TipoID        string    `json:"tipoId"`
	TipoDescricao string    `json:"tipoDescricao"`
	EstoqueID     string    `json:"estoqueId"`
	Data          time.Time `json:"data"`
}

// DoacaoEnviadaResponse linha de listagem de enviadas com nomes resolvidos.
type DoacaoEnviadaResponse struct {
	ID               string    `json:"id"`
	Quantidade       int       `json:"quantidade"`
	BeneficiarioID   string    `json:"beneficiarioId"`
	BeneficiarioNome string    `json:"beneficiarioNome"`
	TipoID           string    `json:"tipoId"`
	TipoDescricao    string    `json:"tipoDescricao"`
	EstoqueID        string    `json:"estoqueId"`
	OperadorNome     string    `json:"operadorNome"`
	Data             time.Time `json:"data"`
}

// LinhaDistribuicao um produto entregue dentro de uma distribuição. As linhas
// não são somadas: cada doação enviada contribui a sua própria linha, mesmo
// quando o mesmo produto aparece duas vezes no dia.
type LinhaDistribuicao struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

// DistribuicaoResponse visão derivada: todas as enviadas de um beneficiário num
// mesmo dia de calendário, com a data mais antiga do grupo como data de exibição.
type DistribuicaoResponse struct {
	ID               string              `json:"id"` // beneficiarioId_AAAA-MM-DD
	BeneficiarioID   string              `json:"beneficiarioId"`
	BeneficiarioNome string              `json:"beneficiarioNome"`
	Data             time.Time           `json:"data"`
	Responsavel      string              `json:"responsavel"`
	Produtos         []LinhaDistribuicao `json:"produtos"`
}
