package doacao

import (
	"context"

	"github.com/sanem/doacoes-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação: repositórios de doação e
// estoque passados a fn operam sobre a mesma tx, de forma que o registro no
// ledger e o ajuste de estoque confirmam ou desfazem juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(doacaoRepo repository.DoacaoRepository, estoqueRepo repository.EstoqueRepository) error) error
}
