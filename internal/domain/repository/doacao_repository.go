package repository

import (
	"time"

	"github.com/sanem/doacoes-api/internal/domain/entity"
)

// DoacaoEnviadaDetalhe é a linha de listagem de enviadas com os nomes já
// resolvidos (JOIN com beneficiários, tipos e operadores).
type DoacaoEnviadaDetalhe struct {
	entity.DoacaoEnviada
	BeneficiarioNome string
	TipoDescricao    string
	OperadorNome     string
}

// DoacaoRecebidaDetalhe é a linha de listagem de recebidas com a descrição do
// tipo resolvida.
type DoacaoRecebidaDetalhe struct {
	entity.DoacaoRecebida
	TipoDescricao string
}

// DoacaoRepository define o porto de persistência para os dois ledgers de
// movimento (recebidas e enviadas).
type DoacaoRepository interface {
	CreateRecebida(d *entity.DoacaoRecebida) error
	GetRecebidaByID(id string) (*entity.DoacaoRecebida, error)
	ListRecebidas() ([]*DoacaoRecebidaDetalhe, error)
	DeleteRecebida(id string) error

	CreateEnviada(d *entity.DoacaoEnviada) error
	GetEnviadaByID(id string) (*entity.DoacaoEnviada, error)
	ListEnviadas() ([]*DoacaoEnviadaDetalhe, error)
	ListEnviadasByBeneficiario(beneficiarioID string) ([]*DoacaoEnviadaDetalhe, error)
	// ListEnviadasPeriodo lista enviadas com data dentro do intervalo fechado.
	ListEnviadasPeriodo(inicio, fim time.Time) ([]*DoacaoEnviadaDetalhe, error)
	DeleteEnviada(id string) error
}
