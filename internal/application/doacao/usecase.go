package doacao

import (
	"context"
	"sort"
	"time"

	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/entity"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

// UseCase casos de uso dos ledgers de movimento. Cada registro grava a doação
// e ajusta o estoque na mesma transação via TxRunner.
type UseCase struct {
	doacaoRepo       repository.DoacaoRepository
	estoqueRepo      repository.EstoqueRepository
	tipoRepo         repository.TipoRepository
	beneficiarioRepo repository.BeneficiarioRepository
	tx               TxRunner
}

// NewUseCase constrói o caso de uso de doações.
func NewUseCase(
	doacaoRepo repository.DoacaoRepository,
	estoqueRepo repository.EstoqueRepository,
	tipoRepo repository.TipoRepository,
	beneficiarioRepo repository.BeneficiarioRepository,
	tx TxRunner,
) *UseCase {
	return &UseCase{
		doacaoRepo:       doacaoRepo,
		estoqueRepo:      estoqueRepo,
		tipoRepo:         tipoRepo,
		beneficiarioRepo: beneficiarioRepo,
		tx:               tx,
	}
}

// RegistrarRecebida grava uma doação recebida e soma a quantidade ao item de
// estoque, tudo numa única transação. Devolve o item já atualizado.
func (uc *UseCase) RegistrarRecebida(ctx context.Context, req dto.RegistrarRecebidaRequest) (*dto.ItemEstoqueResponse, error) {
	if req.Quantidade <= 0 || req.TipoID == "" || req.EstoqueID == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.estoqueRepo.GetByID(req.EstoqueID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.TipoID != req.TipoID {
		return nil, domain.ErrInvalidInput
	}

	var atualizado *entity.ItemEstoque
	err = uc.tx.Run(ctx, func(doacaoRepo repository.DoacaoRepository, estoqueRepo repository.EstoqueRepository) error {
		d := &entity.DoacaoRecebida{
			Quantidade: req.Quantidade,
			TipoID:     req.TipoID,
			EstoqueID:  req.EstoqueID,
			Data:       time.Now(),
		}
		if err := doacaoRepo.CreateRecebida(d); err != nil {
			return err
		}
		atualizado, err = estoqueRepo.ApplyDelta(req.EstoqueID, req.Quantidade)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(atualizado), nil
}

// RegistrarEnviada grava uma doação enviada e subtrai a quantidade do item de
// estoque numa única transação. O saldo pode ficar negativo: a entrega real já
// aconteceu e o registro não deve ser bloqueado por divergência de estoque.
func (uc *UseCase) RegistrarEnviada(ctx context.Context, req dto.RegistrarEnviadaRequest, operadorID string) (*dto.ItemEstoqueResponse, error) {
	if req.Quantidade <= 0 || req.TipoID == "" || req.EstoqueID == "" || req.BeneficiarioID == "" {
		return nil, domain.ErrInvalidInput
	}
	ben, err := uc.beneficiarioRepo.GetByID(req.BeneficiarioID)
	if err != nil {
		return nil, err
	}
	if ben == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.estoqueRepo.GetByID(req.EstoqueID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.TipoID != req.TipoID {
		return nil, domain.ErrInvalidInput
	}

	var atualizado *entity.ItemEstoque
	err = uc.tx.Run(ctx, func(doacaoRepo repository.DoacaoRepository, estoqueRepo repository.EstoqueRepository) error {
		d := &entity.DoacaoEnviada{
			Quantidade:     req.Quantidade,
			BeneficiarioID: req.BeneficiarioID,
			TipoID:         req.TipoID,
			EstoqueID:      req.EstoqueID,
			OperadorID:     operadorID,
			Data:           time.Now(),
		}
		if err := doacaoRepo.CreateEnviada(d); err != nil {
			return err
		}
		atualizado, err = estoqueRepo.ApplyDelta(req.EstoqueID, -req.Quantidade)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(atualizado), nil
}

// ListarRecebidas lista o ledger de recebidas em ordem cronológica.
func (uc *UseCase) ListarRecebidas() ([]*dto.DoacaoRecebidaResponse, error) {
	rows, err := uc.doacaoRepo.ListRecebidas()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DoacaoRecebidaResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.DoacaoRecebidaResponse{
			ID:            r.ID,
			Quantidade:    r.Quantidade,
			TipoID:        r.TipoID,
			TipoDescricao: r.TipoDescricao,
			EstoqueID:     r.EstoqueID,
			Data:          r.Data,
		})
	}
	return out, nil
}

// ListarEnviadas lista o ledger de enviadas em ordem cronológica.
func (uc *UseCase) ListarEnviadas() ([]*dto.DoacaoEnviadaResponse, error) {
	rows, err := uc.doacaoRepo.ListEnviadas()
	if err != nil {
		return nil, err
	}
	return toEnviadaResponses(rows), nil
}

// ListarEnviadasPorBeneficiario lista as enviadas de um beneficiário.
func (uc *UseCase) ListarEnviadasPorBeneficiario(beneficiarioID string) ([]*dto.DoacaoEnviadaResponse, error) {
	rows, err := uc.doacaoRepo.ListEnviadasByBeneficiario(beneficiarioID)
	if err != nil {
		return nil, err
	}
	return toEnviadaResponses(rows), nil
}

// RemoverRecebida apaga uma linha do ledger de recebidas. O estoque não é
// recompensado: a remoção corrige um lançamento, não desfaz uma entrada.
func (uc *UseCase) RemoverRecebida(id string) error {
	d, err := uc.doacaoRepo.GetRecebidaByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.doacaoRepo.DeleteRecebida(id)
}

// RemoverEnviada apaga uma linha do ledger de enviadas, sem recompensar estoque.
func (uc *UseCase) RemoverEnviada(id string) error {
	d, err := uc.doacaoRepo.GetEnviadaByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.doacaoRepo.DeleteEnviada(id)
}

// ListarDistribuicoes agrupa as enviadas por beneficiário e dia de calendário.
// Cada movimento vira uma linha própria, mesmo repetindo o produto no dia.
func (uc *UseCase) ListarDistribuicoes() ([]*dto.DistribuicaoResponse, error) {
	rows, err := uc.doacaoRepo.ListEnviadas()
	if err != nil {
		return nil, err
	}
	return AgruparDistribuicoes(rows), nil
}

// ListarDistribuicoesPorBeneficiario agrupa apenas as enviadas do beneficiário.
func (uc *UseCase) ListarDistribuicoesPorBeneficiario(beneficiarioID string) ([]*dto.DistribuicaoResponse, error) {
	rows, err := uc.doacaoRepo.ListEnviadasByBeneficiario(beneficiarioID)
	if err != nil {
		return nil, err
	}
	return AgruparDistribuicoes(rows), nil
}

// AgruparDistribuicoes deriva distribuições a partir das linhas de enviadas:
// chave (beneficiarioId, dia AAAA-MM-DD), data de exibição é a mais antiga do
// grupo, e o responsável vem do primeiro movimento. Resultado em ordem
// decrescente de data.
func AgruparDistribuicoes(rows []*repository.DoacaoEnviadaDetalhe) []*dto.DistribuicaoResponse {
	grupos := make(map[string]*dto.DistribuicaoResponse)
	ordem := make([]string, 0)
	for _, r := range rows {
		dia := r.Data.Format("2006-01-02")
		chave := r.BeneficiarioID + "_" + dia
		g, ok := grupos[chave]
		if !ok {
			g = &dto.DistribuicaoResponse{
				ID:               chave,
				BeneficiarioID:   r.BeneficiarioID,
				BeneficiarioNome: r.BeneficiarioNome,
				Data:             r.Data,
				Responsavel:      r.OperadorNome,
			}
			grupos[chave] = g
			ordem = append(ordem, chave)
		}
		if r.Data.Before(g.Data) {
			g.Data = r.Data
		}
		g.Produtos = append(g.Produtos, dto.LinhaDistribuicao{
			Nome:       r.TipoDescricao,
			Quantidade: r.Quantidade,
		})
	}
	out := make([]*dto.DistribuicaoResponse, 0, len(ordem))
	for _, chave := range ordem {
		out = append(out, grupos[chave])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data.After(out[j].Data) })
	return out
}

func toEnviadaResponses(rows []*repository.DoacaoEnviadaDetalhe) []*dto.DoacaoEnviadaResponse {
	out := make([]*dto.DoacaoEnviadaResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.DoacaoEnviadaResponse{
			ID:               r.ID,
			Quantidade:       r.Quantidade,
			BeneficiarioID:   r.BeneficiarioID,
			BeneficiarioNome: r.BeneficiarioNome,
			TipoID:           r.TipoID,
			TipoDescricao:    r.TipoDescricao,
			EstoqueID:        r.EstoqueID,
			OperadorNome:     r.OperadorNome,
			Data:             r.Data,
		})
	}
	return out
}

func toItemResponse(item *entity.ItemEstoque) *dto.ItemEstoqueResponse {
	if item == nil {
		return nil
	}
	return &dto.ItemEstoqueResponse{
		ID:            item.ID,
		Quantidade:    item.Quantidade,
		TipoID:        item.TipoID,
		TipoDescricao: item.TipoDescricao,
	}
}
