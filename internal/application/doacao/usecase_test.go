package doacao_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanem/doacoes-api/internal/application/doacao"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/entity"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mundo de teste: repositórios em memória mais um TxRunner que executa fn
// direto sobre eles. O rollback transacional em si é responsabilidade da
// camada postgres; aqui validamos a aritmética e as regras de negócio.
// ──────────────────────────────────────────────────────────────────────────────

type mundo struct {
	doacoes       *fakeDoacaoRepo
	estoque       *fakeEstoqueRepo
	tipos         *fakeTipoRepo
	beneficiarios *fakeBeneficiarioRepo
	uc            *doacao.UseCase
}

func novoMundo() *mundo {
	m := &mundo{
		doacoes:       &fakeDoacaoRepo{},
		estoque:       &fakeEstoqueRepo{itens: map[string]*entity.ItemEstoque{}},
		tipos:         &fakeTipoRepo{tipos: map[string]*entity.Tipo{}},
		beneficiarios: &fakeBeneficiarioRepo{bens: map[string]*entity.Beneficiario{}},
	}
	m.doacoes.mundo = m
	m.uc = doacao.NewUseCase(m.doacoes, m.estoque, m.tipos, m.beneficiarios, &fakeTxRunner{m: m})
	return m
}

func (m *mundo) addTipo(descricao string) *entity.Tipo {
	t := &entity.Tipo{ID: uuid.NewString(), Descricao: descricao}
	m.tipos.tipos[t.ID] = t
	return t
}

func (m *mundo) addEstoque(tipo *entity.Tipo, quantidade int) *entity.ItemEstoque {
	i := &entity.ItemEstoque{ID: uuid.NewString(), TipoID: tipo.ID, Quantidade: quantidade, TipoDescricao: tipo.Descricao}
	m.estoque.itens[i.ID] = i
	return i
}

func (m *mundo) addBeneficiario(nome string) *entity.Beneficiario {
	b := &entity.Beneficiario{ID: uuid.NewString(), Nome: nome}
	m.beneficiarios.bens[b.ID] = b
	return b
}

type fakeTxRunner struct{ m *mundo }

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.DoacaoRepository, repository.EstoqueRepository) error) error {
	return fn(f.m.doacoes, f.m.estoque)
}

type fakeTipoRepo struct{ tipos map[string]*entity.Tipo }

func (r *fakeTipoRepo) Create(t *entity.Tipo) error { r.tipos[t.ID] = t; return nil }
func (r *fakeTipoRepo) GetByID(id string) (*entity.Tipo, error) {
	return r.tipos[id], nil
}
func (r *fakeTipoRepo) GetByDescricao(d string) (*entity.Tipo, error) {
	for _, t := range r.tipos {
		if domain.MesmaDescricao(t.Descricao, d) {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTipoRepo) List() ([]*entity.Tipo, error)       { return nil, nil }
func (r *fakeTipoRepo) Update(t *entity.Tipo) error         { return nil }
func (r *fakeTipoRepo) Delete(id string) error              { return nil }
func (r *fakeTipoRepo) HasReferences(id string) (bool, error) { return false, nil }

type fakeBeneficiarioRepo struct{ bens map[string]*entity.Beneficiario }

func (r *fakeBeneficiarioRepo) Create(b *entity.Beneficiario) error { r.bens[b.ID] = b; return nil }
func (r *fakeBeneficiarioRepo) GetByID(id string) (*entity.Beneficiario, error) {
	return r.bens[id], nil
}
func (r *fakeBeneficiarioRepo) List() ([]*entity.Beneficiario, error) { return nil, nil }
func (r *fakeBeneficiarioRepo) Update(b *entity.Beneficiario) error   { return nil }
func (r *fakeBeneficiarioRepo) Delete(id string) error                { return nil }

type fakeEstoqueRepo struct{ itens map[string]*entity.ItemEstoque }

func (r *fakeEstoqueRepo) Create(i *entity.ItemEstoque) error { r.itens[i.ID] = i; return nil }
func (r *fakeEstoqueRepo) GetByID(id string) (*entity.ItemEstoque, error) {
	i, ok := r.itens[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}
func (r *fakeEstoqueRepo) GetByTipoID(tipoID string) (*entity.ItemEstoque, error) { return nil, nil }
func (r *fakeEstoqueRepo) List() ([]*entity.ItemEstoque, error)                   { return nil, nil }
func (r *fakeEstoqueRepo) Update(i *entity.ItemEstoque) error                     { return nil }
func (r *fakeEstoqueRepo) Delete(id string) error                                 { return nil }
func (r *fakeEstoqueRepo) ListLowStock(limite int) ([]*entity.ItemEstoque, error) { return nil, nil }
func (r *fakeEstoqueRepo) ApplyDelta(id string, delta int) (*entity.ItemEstoque, error) {
	i, ok := r.itens[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	i.Quantidade += delta
	cp := *i
	return &cp, nil
}

type fakeDoacaoRepo struct {
	mundo     *mundo
	recebidas []*entity.DoacaoRecebida
	enviadas  []*entity.DoacaoEnviada
}

func (r *fakeDoacaoRepo) CreateRecebida(d *entity.DoacaoRecebida) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	cp := *d
	r.recebidas = append(r.recebidas, &cp)
	return nil
}

func (r *fakeDoacaoRepo) GetRecebidaByID(id string) (*entity.DoacaoRecebida, error) {
	for _, d := range r.recebidas {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoacaoRepo) ListRecebidas() ([]*repository.DoacaoRecebidaDetalhe, error) {
	out := make([]*repository.DoacaoRecebidaDetalhe, 0, len(r.recebidas))
	for _, d := range r.recebidas {
		det := &repository.DoacaoRecebidaDetalhe{DoacaoRecebida: *d}
		if t := r.mundo.tipos.tipos[d.TipoID]; t != nil {
			det.TipoDescricao = t.Descricao
		}
		out = append(out, det)
	}
	return out, nil
}

func (r *fakeDoacaoRepo) DeleteRecebida(id string) error {
	for i, d := range r.recebidas {
		if d.ID == id {
			r.recebidas = append(r.recebidas[:i], r.recebidas[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeDoacaoRepo) CreateEnviada(d *entity.DoacaoEnviada) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	cp := *d
	r.enviadas = append(r.enviadas, &cp)
	return nil
}

func (r *fakeDoacaoRepo) GetEnviadaByID(id string) (*entity.DoacaoEnviada, error) {
	for _, d := range r.enviadas {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoacaoRepo) detalhe(d *entity.DoacaoEnviada) *repository.DoacaoEnviadaDetalhe {
	det := &repository.DoacaoEnviadaDetalhe{DoacaoEnviada: *d, OperadorNome: "Sistema"}
	if t := r.mundo.tipos.tipos[d.TipoID]; t != nil {
		det.TipoDescricao = t.Descricao
	}
	if b := r.mundo.beneficiarios.bens[d.BeneficiarioID]; b != nil {
		det.BeneficiarioNome = b.Nome
	}
	return det
}

func (r *fakeDoacaoRepo) ListEnviadas() ([]*repository.DoacaoEnviadaDetalhe, error) {
	out := make([]*repository.DoacaoEnviadaDetalhe, 0, len(r.enviadas))
	for _, d := range r.enviadas {
		out = append(out, r.detalhe(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data.Before(out[j].Data) })
	return out, nil
}

func (r *fakeDoacaoRepo) ListEnviadasByBeneficiario(beneficiarioID string) ([]*repository.DoacaoEnviadaDetalhe, error) {
	out := make([]*repository.DoacaoEnviadaDetalhe, 0)
	for _, d := range r.enviadas {
		if d.BeneficiarioID == beneficiarioID {
			out = append(out, r.detalhe(d))
		}
	}
	return out, nil
}

func (r *fakeDoacaoRepo) ListEnviadasPeriodo(inicio, fim time.Time) ([]*repository.DoacaoEnviadaDetalhe, error) {
	out := make([]*repository.DoacaoEnviadaDetalhe, 0)
	for _, d := range r.enviadas {
		if !d.Data.Before(inicio) && !d.Data.After(fim) {
			out = append(out, r.detalhe(d))
		}
	}
	return out, nil
}

func (r *fakeDoacaoRepo) DeleteEnviada(id string) error {
	for i, d := range r.enviadas {
		if d.ID == id {
			r.enviadas = append(r.enviadas[:i], r.enviadas[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Recebidas: a quantidade soma como inteiro, nunca como texto.
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarRecebida_SomaInteira(t *testing.T) {
	m := novoMundo()
	tipo := m.addTipo("Camiseta Masculina")
	item := m.addEstoque(tipo, 10)

	out, err := m.uc.RegistrarRecebida(context.Background(), dto.RegistrarRecebidaRequest{
		Quantidade: 5, TipoID: tipo.ID, EstoqueID: item.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, out.Quantidade, "10 peças mais 5 são 15, nunca a concatenação 105")

	recebidas, err := m.uc.ListarRecebidas()
	require.NoError(t, err)
	require.Len(t, recebidas, 1)
	assert.Equal(t, 5, recebidas[0].Quantidade)
	assert.Equal(t, "Camiseta Masculina", recebidas[0].TipoDescricao)
}

func TestRegistrarRecebida_Validacoes(t *testing.T) {
	m := novoMundo()
	tipo := m.addTipo("Meias")
	item := m.addEstoque(tipo, 2)
	outro := m.addTipo("Casaco")

	casos := []struct {
		nome string
		req  dto.RegistrarRecebidaRequest
		err  error
	}{
		{"quantidade zero", dto.RegistrarRecebidaRequest{Quantidade: 0, TipoID: tipo.ID, EstoqueID: item.ID}, domain.ErrInvalidInput},
		{"quantidade negativa", dto.RegistrarRecebidaRequest{Quantidade: -3, TipoID: tipo.ID, EstoqueID: item.ID}, domain.ErrInvalidInput},
		{"estoque inexistente", dto.RegistrarRecebidaRequest{Quantidade: 1, TipoID: tipo.ID, EstoqueID: "nao-existe"}, domain.ErrNotFound},
		{"tipo divergente do item", dto.RegistrarRecebidaRequest{Quantidade: 1, TipoID: outro.ID, EstoqueID: item.ID}, domain.ErrInvalidInput},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			_, err := m.uc.RegistrarRecebida(context.Background(), c.req)
			assert.ErrorIs(t, err, c.err)
		})
	}

	atual, err := m.estoque.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, atual.Quantidade, "nenhuma tentativa inválida pode tocar o estoque")
}

// ──────────────────────────────────────────────────────────────────────────────
// Enviadas: débito atômico, saldo pode ficar negativo.
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarEnviada_DebitaEstoque(t *testing.T) {
	m := novoMundo()
	tipo := m.addTipo("Casaco")
	item := m.addEstoque(tipo, 55)
	ben := m.addBeneficiario("Maria Silva Santos")

	out, err := m.uc.RegistrarEnviada(context.Background(), dto.RegistrarEnviadaRequest{
		Quantidade: 5, BeneficiarioID: ben.ID, TipoID: tipo.ID, EstoqueID: item.ID,
	}, "op-1")
	require.NoError(t, err)
	assert.Equal(t, 50, out.Quantidade)

	enviadas, err := m.uc.ListarEnviadas()
	require.NoError(t, err)
	require.Len(t, enviadas, 1)
	assert.Equal(t, "Maria Silva Santos", enviadas[0].BeneficiarioNome)
	assert.Equal(t, 5, enviadas[0].Quantidade)
}

func TestRegistrarEnviada_SaldoPodeFicarNegativo(t *testing.T) {
	m := novoMundo()
	tipo := m.addTipo("Tênis")
	item := m.addEstoque(tipo, 3)
	ben := m.addBeneficiario("João Pereira Lima")

	out, err := m.uc.RegistrarEnviada(context.Background(), dto.RegistrarEnviadaRequest{
		Quantidade: 5, BeneficiarioID: ben.ID, TipoID: tipo.ID, EstoqueID: item.ID,
	}, "op-1")
	require.NoError(t, err, "a entrega já aconteceu: o registro não pode ser bloqueado")
	assert.Equal(t, -2, out.Quantidade, "o saldo negativo denuncia a divergência de estoque")
}

func TestRegistrarEnviada_BeneficiarioInexistente(t *testing.T) {
	m := novoMundo()
	tipo := m.addTipo("Meias")
	item := m.addEstoque(tipo, 10)

	_, err := m.uc.RegistrarEnviada(context.Background(), dto.RegistrarEnviadaRequest{
		Quantidade: 1, BeneficiarioID: "nao-existe", TipoID: tipo.ID, EstoqueID: item.ID,
	}, "op-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo completo: catálogo novo, recebimento, entrega e distribuição derivada.
// ──────────────────────────────────────────────────────────────────────────────

func TestFluxoCompleto_RecebeEntregaEDeriva(t *testing.T) {
	m := novoMundo()
	casaco := m.addTipo("Casaco")
	item := m.addEstoque(casaco, 0)
	ben := m.addBeneficiario("Maria Silva Santos")

	recebido, err := m.uc.RegistrarRecebida(context.Background(), dto.RegistrarRecebidaRequest{
		Quantidade: 20, TipoID: casaco.ID, EstoqueID: item.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, recebido.Quantidade)

	enviado, err := m.uc.RegistrarEnviada(context.Background(), dto.RegistrarEnviadaRequest{
		Quantidade: 5, BeneficiarioID: ben.ID, TipoID: casaco.ID, EstoqueID: item.ID,
	}, "op-1")
	require.NoError(t, err)
	assert.Equal(t, 15, enviado.Quantidade)

	dists, err := m.uc.ListarDistribuicoes()
	require.NoError(t, err)
	require.Len(t, dists, 1)
	require.Len(t, dists[0].Produtos, 1)
	assert.Equal(t, "Casaco", dists[0].Produtos[0].Nome)
	assert.Equal(t, 5, dists[0].Produtos[0].Quantidade)
}

// ──────────────────────────────────────────────────────────────────────────────
// Remoções: apenas a linha do ledger sai; o estoque fica como está.
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoverRecebida_NaoRecompensaEstoque(t *testing.T) {
	m := novoMundo()
	tipo := m.addTipo("Vestido Feminino")
	item := m.addEstoque(tipo, 65)

	_, err := m.uc.RegistrarRecebida(context.Background(), dto.RegistrarRecebidaRequest{
		Quantidade: 10, TipoID: tipo.ID, EstoqueID: item.ID,
	})
	require.NoError(t, err)

	recebidas, err := m.uc.ListarRecebidas()
	require.NoError(t, err)
	require.Len(t, recebidas, 1)

	require.NoError(t, m.uc.RemoverRecebida(recebidas[0].ID))

	atual, err := m.estoque.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 75, atual.Quantidade, "remover a linha não desfaz o movimento no estoque")

	assert.ErrorIs(t, m.uc.RemoverRecebida(recebidas[0].ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Distribuições: agrupamento por beneficiário e dia, linhas não somadas.
// ──────────────────────────────────────────────────────────────────────────────

func TestListarDistribuicoes_AgrupaPorBeneficiarioEDia(t *testing.T) {
	m := novoMundo()
	camiseta := m.addTipo("Camiseta Masculina")
	casaco := m.addTipo("Casaco")
	itemCamiseta := m.addEstoque(camiseta, 100)
	itemCasaco := m.addEstoque(casaco, 50)
	maria := m.addBeneficiario("Maria Silva Santos")
	joao := m.addBeneficiario("João Pereira Lima")

	registrar := func(ben *entity.Beneficiario, tipo *entity.Tipo, item *entity.ItemEstoque, q int) {
		t.Helper()
		_, err := m.uc.RegistrarEnviada(context.Background(), dto.RegistrarEnviadaRequest{
			Quantidade: q, BeneficiarioID: ben.ID, TipoID: tipo.ID, EstoqueID: item.ID,
		}, "op-1")
		require.NoError(t, err)
	}

	// Maria recebe duas vezes no mesmo dia; João uma vez.
	registrar(maria, camiseta, itemCamiseta, 2)
	registrar(maria, casaco, itemCasaco, 1)
	registrar(joao, camiseta, itemCamiseta, 3)

	dists, err := m.uc.ListarDistribuicoes()
	require.NoError(t, err)
	require.Len(t, dists, 2, "dois beneficiários no mesmo dia formam duas distribuições")

	var deMaria *dto.DistribuicaoResponse
	for _, d := range dists {
		if d.BeneficiarioID == maria.ID {
			deMaria = d
		}
	}
	require.NotNil(t, deMaria)
	assert.Equal(t, maria.ID+"_"+deMaria.Data.Format("2006-01-02"), deMaria.ID)
	require.Len(t, deMaria.Produtos, 2, "cada movimento vira uma linha própria")
	assert.Equal(t, "Camiseta Masculina", deMaria.Produtos[0].Nome)
	assert.Equal(t, 2, deMaria.Produtos[0].Quantidade)
	assert.Equal(t, "Casaco", deMaria.Produtos[1].Nome)
}

// O mesmo produto entregue duas vezes no dia gera duas linhas, não uma linha
// com a soma.
func TestListarDistribuicoes_LinhasRepetidasNaoSomam(t *testing.T) {
	m := novoMundo()
	meias := m.addTipo("Meias")
	item := m.addEstoque(meias, 300)
	ben := m.addBeneficiario("Ana Costa Oliveira")

	for _, q := range []int{4, 6} {
		_, err := m.uc.RegistrarEnviada(context.Background(), dto.RegistrarEnviadaRequest{
			Quantidade: q, BeneficiarioID: ben.ID, TipoID: meias.ID, EstoqueID: item.ID,
		}, "op-1")
		require.NoError(t, err)
	}

	dists, err := m.uc.ListarDistribuicoes()
	require.NoError(t, err)
	require.Len(t, dists, 1)
	require.Len(t, dists[0].Produtos, 2, "duas entregas de Meias no dia são duas linhas")
	assert.Equal(t, 4, dists[0].Produtos[0].Quantidade)
	assert.Equal(t, 6, dists[0].Produtos[1].Quantidade)
}

func TestAgruparDistribuicoes_DiasDiferentesSeparam(t *testing.T) {
	ontem := time.Now().AddDate(0, 0, -1)
	hoje := time.Now()
	rows := []*repository.DoacaoEnviadaDetalhe{
		{
			DoacaoEnviada:    entity.DoacaoEnviada{ID: "1", Quantidade: 2, BeneficiarioID: "b1", Data: ontem},
			BeneficiarioNome: "Maria",
			TipoDescricao:    "Casaco",
		},
		{
			DoacaoEnviada:    entity.DoacaoEnviada{ID: "2", Quantidade: 1, BeneficiarioID: "b1", Data: hoje},
			BeneficiarioNome: "Maria",
			TipoDescricao:    "Casaco",
		},
	}

	dists := doacao.AgruparDistribuicoes(rows)
	require.Len(t, dists, 2, "o mesmo beneficiário em dias distintos forma distribuições distintas")
	assert.True(t, dists[0].Data.After(dists[1].Data), "a lista vem em ordem decrescente de data")
}

func TestAgruparDistribuicoes_DataMaisAntigaDoGrupo(t *testing.T) {
	manha := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	tarde := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)
	rows := []*repository.DoacaoEnviadaDetalhe{
		{
			DoacaoEnviada:    entity.DoacaoEnviada{ID: "1", Quantidade: 1, BeneficiarioID: "b1", Data: tarde},
			BeneficiarioNome: "Maria",
			TipoDescricao:    "Meias",
			OperadorNome:     "Carlos",
		},
		{
			DoacaoEnviada:    entity.DoacaoEnviada{ID: "2", Quantidade: 2, BeneficiarioID: "b1", Data: manha},
			BeneficiarioNome: "Maria",
			TipoDescricao:    "Casaco",
			OperadorNome:     "Carlos",
		},
	}

	dists := doacao.AgruparDistribuicoes(rows)
	require.Len(t, dists, 1)
	assert.Equal(t, manha, dists[0].Data, "a data de exibição é a mais antiga do grupo")
	assert.Equal(t, "Carlos", dists[0].Responsavel)
	assert.Equal(t, "b1_2026-08-30", dists[0].ID)
}
