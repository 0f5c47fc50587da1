package relatorio_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/application/relatorio"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/entity"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

// ────────────────────────── fakes ──────────────────────────

type fakeRelatorioRepo struct {
	porTipo []*repository.MovimentoPorTipoResult
	mensais []*repository.MovimentoMensalResult
}

func (f *fakeRelatorioRepo) Dashboard(ctx context.Context, agora time.Time) (*repository.DashboardResult, error) {
	return &repository.DashboardResult{TotalPecasEstoque: 420, TotalTipos: 8, TotalBeneficiarios: 3, EstoqueBaixo: 2}, nil
}

func (f *fakeRelatorioRepo) MovimentosPorTipo(ctx context.Context, inicio, fim time.Time) ([]*repository.MovimentoPorTipoResult, error) {
	return f.porTipo, nil
}

func (f *fakeRelatorioRepo) MovimentosMensais(ctx context.Context, meses int, agora time.Time) ([]*repository.MovimentoMensalResult, error) {
	return f.mensais, nil
}

type fakeDoacaoRepo struct {
	enviadas []*repository.DoacaoEnviadaDetalhe
}

func (f *fakeDoacaoRepo) CreateRecebida(d *entity.DoacaoRecebida) error { return nil }
func (f *fakeDoacaoRepo) GetRecebidaByID(id string) (*entity.DoacaoRecebida, error) {
	return nil, nil
}
func (f *fakeDoacaoRepo) ListRecebidas() ([]*repository.DoacaoRecebidaDetalhe, error) {
	return nil, nil
}
func (f *fakeDoacaoRepo) DeleteRecebida(id string) error              { return nil }
func (f *fakeDoacaoRepo) CreateEnviada(d *entity.DoacaoEnviada) error { return nil }
func (f *fakeDoacaoRepo) GetEnviadaByID(id string) (*entity.DoacaoEnviada, error) {
	return nil, nil
}
func (f *fakeDoacaoRepo) ListEnviadas() ([]*repository.DoacaoEnviadaDetalhe, error) {
	return f.enviadas, nil
}

func (f *fakeDoacaoRepo) ListEnviadasByBeneficiario(beneficiarioID string) ([]*repository.DoacaoEnviadaDetalhe, error) {
	out := make([]*repository.DoacaoEnviadaDetalhe, 0)
	for _, e := range f.enviadas {
		if e.BeneficiarioID == beneficiarioID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeDoacaoRepo) ListEnviadasPeriodo(inicio, fim time.Time) ([]*repository.DoacaoEnviadaDetalhe, error) {
	return f.enviadas, nil
}
func (f *fakeDoacaoRepo) DeleteEnviada(id string) error { return nil }

// fakeRecibos devolve a distribuição serializada de forma reconhecível em vez
// de um PDF de verdade.
type fakeRecibos struct {
	ultima *dto.DistribuicaoResponse
}

func (f *fakeRecibos) Gerar(d *dto.DistribuicaoResponse) ([]byte, error) {
	f.ultima = d
	return []byte("recibo:" + d.ID), nil
}

func enviada(id, beneficiarioID, nome, tipo string, q int, data time.Time) *repository.DoacaoEnviadaDetalhe {
	return &repository.DoacaoEnviadaDetalhe{
		DoacaoEnviada: entity.DoacaoEnviada{
			ID:             id,
			Quantidade:     q,
			BeneficiarioID: beneficiarioID,
			Data:           data,
		},
		BeneficiarioNome: nome,
		TipoDescricao:    tipo,
		OperadorNome:     "Carlos",
	}
}

// ────────────────────────── período ──────────────────────────

func TestPeriodo_SomaTotaisDoDetalhePorTipo(t *testing.T) {
	repo := &fakeRelatorioRepo{porTipo: []*repository.MovimentoPorTipoResult{
		{TipoID: "t1", TipoDescricao: "Camiseta", Recebidas: 30, Enviadas: 12},
		{TipoID: "t2", TipoDescricao: "Casaco", Recebidas: 5, Enviadas: 7},
	}}
	uc := relatorio.NewUseCase(repo, &fakeDoacaoRepo{}, &fakeRecibos{})

	inicio := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Periodo(context.Background(), inicio, fim)
	require.NoError(t, err)

	assert.Equal(t, 35, resp.TotalRecebidas)
	assert.Equal(t, 19, resp.TotalEnviadas)
	assert.Equal(t, "2026-08-01", resp.Inicio)
	assert.Equal(t, "2026-08-31", resp.Fim)
	require.Len(t, resp.PorTipo, 2)
}

func TestPeriodo_FimAntesDoInicio(t *testing.T) {
	uc := relatorio.NewUseCase(&fakeRelatorioRepo{}, &fakeDoacaoRepo{}, &fakeRecibos{})

	inicio := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Periodo(context.Background(), inicio, fim)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ────────────────────────── recibo ──────────────────────────

func TestReciboPDF_EncontraADistribuicaoDoDia(t *testing.T) {
	dia1 := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	dia2 := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	repo := &fakeDoacaoRepo{enviadas: []*repository.DoacaoEnviadaDetalhe{
		enviada("d1", "b1", "Maria Silva Santos", "Camiseta", 2, dia1),
		enviada("d2", "b1", "Maria Silva Santos", "Casaco", 1, dia2),
	}}
	recibos := &fakeRecibos{}
	uc := relatorio.NewUseCase(&fakeRelatorioRepo{}, repo, recibos)

	pdf, err := uc.ReciboPDF("b1", "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, []byte("recibo:b1_2026-08-30"), pdf)
	require.NotNil(t, recibos.ultima)
	require.Len(t, recibos.ultima.Produtos, 1)
	assert.Equal(t, "Casaco", recibos.ultima.Produtos[0].Nome)
}

func TestReciboPDF_DiaSemEntrega(t *testing.T) {
	repo := &fakeDoacaoRepo{enviadas: []*repository.DoacaoEnviadaDetalhe{
		enviada("d1", "b1", "Maria Silva Santos", "Camiseta", 2, time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)),
	}}
	uc := relatorio.NewUseCase(&fakeRelatorioRepo{}, repo, &fakeRecibos{})

	_, err := uc.ReciboPDF("b1", "2026-08-30")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReciboPDF_DiaMalFormado(t *testing.T) {
	uc := relatorio.NewUseCase(&fakeRelatorioRepo{}, &fakeDoacaoRepo{}, &fakeRecibos{})

	_, err := uc.ReciboPDF("b1", "30/08/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ────────────────────────── histórico ──────────────────────────

func TestPorBeneficiario_FiltraEAgrupa(t *testing.T) {
	dia := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	repo := &fakeDoacaoRepo{enviadas: []*repository.DoacaoEnviadaDetalhe{
		enviada("d1", "b1", "Maria Silva Santos", "Camiseta", 2, dia),
		enviada("d2", "b1", "Maria Silva Santos", "Casaco", 1, dia.Add(time.Hour)),
		enviada("d3", "b2", "João Pereira Lima", "Meias", 4, dia),
	}}
	uc := relatorio.NewUseCase(&fakeRelatorioRepo{}, repo, &fakeRecibos{})

	grupos, err := uc.PorBeneficiario("b1")
	require.NoError(t, err)
	require.Len(t, grupos, 1)
	assert.Equal(t, "b1_2026-08-30", grupos[0].ID)
	assert.Len(t, grupos[0].Produtos, 2)
}
