package relatorio

import (
	"context"
	"time"

	"github.com/sanem/doacoes-api/internal/application/doacao"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

// ReciboGenerator gera o comprovante de entrega em PDF de uma distribuição.
type ReciboGenerator interface {
	Gerar(d *dto.DistribuicaoResponse) ([]byte, error)
}

// UseCase casos de uso de relatórios: agregações de leitura sobre os ledgers
// e geração de comprovantes.
type UseCase struct {
	relatorioRepo repository.RelatorioRepository
	doacaoRepo    repository.DoacaoRepository
	recibos       ReciboGenerator
}

// NewUseCase constrói o caso de uso de relatórios.
func NewUseCase(relatorioRepo repository.RelatorioRepository, doacaoRepo repository.DoacaoRepository, recibos ReciboGenerator) *UseCase {
	return &UseCase{relatorioRepo: relatorioRepo, doacaoRepo: doacaoRepo, recibos: recibos}
}

// Dashboard devolve os totais do painel inicial.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	r, err := uc.relatorioRepo.Dashboard(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalPecasEstoque:  r.TotalPecasEstoque,
		TotalTipos:         r.TotalTipos,
		TotalBeneficiarios: r.TotalBeneficiarios,
		EstoqueBaixo:       r.EstoqueBaixo,
		RecebidasMes:       r.RecebidasMes,
		EnviadasMes:        r.EnviadasMes,
	}, nil
}

// Periodo devolve os totais de recebidas e enviadas entre duas datas, com o
// detalhe por tipo. Fim é tratado como dia inteiro (intervalo fechado).
func (uc *UseCase) Periodo(ctx context.Context, inicio, fim time.Time) (*dto.RelatorioPeriodoResponse, error) {
	if fim.Before(inicio) {
		return nil, domain.ErrInvalidInput
	}
	porTipo, err := uc.relatorioRepo.MovimentosPorTipo(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	resp := &dto.RelatorioPeriodoResponse{
		Inicio:  inicio.Format("2006-01-02"),
		Fim:     fim.Format("2006-01-02"),
		PorTipo: make([]dto.MovimentoPorTipo, 0, len(porTipo)),
	}
	for _, t := range porTipo {
		resp.TotalRecebidas += t.Recebidas
		resp.TotalEnviadas += t.Enviadas
		resp.PorTipo = append(resp.PorTipo, dto.MovimentoPorTipo{
			TipoID:        t.TipoID,
			TipoDescricao: t.TipoDescricao,
			Recebidas:     t.Recebidas,
			Enviadas:      t.Enviadas,
		})
	}
	return resp, nil
}

// Mensal devolve a série dos últimos 12 meses de recebidas versus enviadas.
func (uc *UseCase) Mensal(ctx context.Context) ([]dto.MovimentoMensal, error) {
	rows, err := uc.relatorioRepo.MovimentosMensais(ctx, 12, time.Now())
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimentoMensal, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovimentoMensal{Mes: r.Mes, Recebidas: r.Recebidas, Enviadas: r.Enviadas})
	}
	return out, nil
}

// PorBeneficiario devolve o histórico de distribuições de um beneficiário.
func (uc *UseCase) PorBeneficiario(beneficiarioID string) ([]*dto.DistribuicaoResponse, error) {
	rows, err := uc.doacaoRepo.ListEnviadasByBeneficiario(beneficiarioID)
	if err != nil {
		return nil, err
	}
	return doacao.AgruparDistribuicoes(rows), nil
}

// ReciboPDF gera o comprovante de entrega da distribuição identificada por
// beneficiário e dia (id no formato beneficiarioId_AAAA-MM-DD).
func (uc *UseCase) ReciboPDF(beneficiarioID, dia string) ([]byte, error) {
	if _, err := time.Parse("2006-01-02", dia); err != nil {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.doacaoRepo.ListEnviadasByBeneficiario(beneficiarioID)
	if err != nil {
		return nil, err
	}
	for _, d := range doacao.AgruparDistribuicoes(rows) {
		if d.Data.Format("2006-01-02") == dia {
			return uc.recibos.Gerar(d)
		}
	}
	return nil, domain.ErrNotFound
}
