package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanem/doacoes-api/internal/domain"
)

func TestShadowAddProduto_DuplicataIgnoraCaixaEEspacos(t *testing.T) {
	sh := &Shadow{}

	p, err := sh.AddProduto("Camiseta", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	_, err = sh.AddProduto(" camiseta ", 5)
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"offline vale a mesma regra de unicidade do servidor")

	_, err = sh.AddProduto("   ", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShadowAddDistribuicao_DebitaEstoqueEAtribuiIDSequencial(t *testing.T) {
	sh := &Shadow{}
	p, err := sh.AddProduto("Casaco", 55)
	require.NoError(t, err)
	b, err := sh.AddBeneficiario(Beneficiario{Nome: "Maria Silva Santos"})
	require.NoError(t, err)

	d, err := sh.AddDistribuicao(b.ID, "Carlos", []LinhaEntrega{
		{ProdutoID: p.ID, Nome: "Casaco", Quantidade: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, d.ID, "a primeira distribuição local recebe o ID 1")
	assert.Equal(t, "Maria Silva Santos", d.BeneficiarioNome)
	assert.Equal(t, "Carlos", d.Responsavel)
	assert.False(t, d.Data.IsZero())
	assert.Equal(t, 50, sh.Produtos[0].Estoque, "a entrega debita o estoque local")

	d2, err := sh.AddDistribuicao(b.ID, "Carlos", []LinhaEntrega{
		{ProdutoID: p.ID, Nome: "Casaco", Quantidade: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d2.ID, "IDs seguem max+1")
	assert.Equal(t, 48, sh.Produtos[0].Estoque)
}

func TestShadowAddDistribuicao_IDMaxMaisUmComBuracos(t *testing.T) {
	sh := &Shadow{
		Distribuicoes: []Distribuicao{{ID: 7}},
	}
	b, err := sh.AddBeneficiario(Beneficiario{Nome: "Ana"})
	require.NoError(t, err)
	_, err = sh.AddProduto("Meias", 100)
	require.NoError(t, err)

	d, err := sh.AddDistribuicao(b.ID, "", []LinhaEntrega{{Nome: "Meias", Quantidade: 1}})
	require.NoError(t, err)
	assert.Equal(t, 8, d.ID, "o próximo ID é o maior atual mais um")
}

func TestShadowAddDistribuicao_Validacoes(t *testing.T) {
	sh := &Shadow{}
	b, err := sh.AddBeneficiario(Beneficiario{Nome: "Ana"})
	require.NoError(t, err)

	_, err = sh.AddDistribuicao("nao-existe", "", []LinhaEntrega{{Nome: "Meias", Quantidade: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = sh.AddDistribuicao(b.ID, "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = sh.AddDistribuicao(b.ID, "", []LinhaEntrega{{Nome: "Meias", Quantidade: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShadowAddDistribuicao_ProdutoDesconhecidoRejeitaEntregaInteira(t *testing.T) {
	sh := &Shadow{}
	b, err := sh.AddBeneficiario(Beneficiario{Nome: "Ana"})
	require.NoError(t, err)
	p, err := sh.AddProduto("Casaco", 10)
	require.NoError(t, err)

	_, err = sh.AddDistribuicao(b.ID, "", []LinhaEntrega{
		{ProdutoID: "nao-existe", Quantidade: 3},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"linha sem produto correspondente rejeita a entrega, como no servidor")
	assert.Empty(t, sh.Distribuicoes, "nada fica registrado")

	// Linha válida misturada com inválida: nenhum débito parcial.
	_, err = sh.AddDistribuicao(b.ID, "", []LinhaEntrega{
		{ProdutoID: p.ID, Nome: "Casaco", Quantidade: 2},
		{Nome: "Luvas", Quantidade: 1},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, sh.Produtos[0].Estoque, "o estoque segue intacto")
	assert.Empty(t, sh.Distribuicoes)
}

func TestShadowUpdateProduto_RenomeiaECorrigeSaldo(t *testing.T) {
	sh := &Shadow{}
	p, err := sh.AddProduto("Camiseta", 10)
	require.NoError(t, err)
	_, err = sh.AddProduto("Calça", 4)
	require.NoError(t, err)

	out, err := sh.UpdateProduto(p.ID, "Camiseta Infantil", 12)
	require.NoError(t, err)
	assert.Equal(t, "Camiseta Infantil", out.Nome)
	assert.Equal(t, 12, out.Estoque)

	// Renomear por cima de outro produto cai na regra de unicidade.
	_, err = sh.UpdateProduto(p.ID, " calça ", 12)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Regravar o próprio nome com outra caixa não é colisão.
	_, err = sh.UpdateProduto(p.ID, "CAMISETA INFANTIL", 12)
	assert.NoError(t, err)

	_, err = sh.UpdateProduto(p.ID, "   ", 12)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = sh.UpdateProduto("nao-existe", "Bermuda", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShadowRemoveProduto(t *testing.T) {
	sh := &Shadow{}
	p, err := sh.AddProduto("Camiseta", 10)
	require.NoError(t, err)

	require.NoError(t, sh.RemoveProduto(p.ID))
	assert.Empty(t, sh.Produtos)

	assert.ErrorIs(t, sh.RemoveProduto(p.ID), domain.ErrNotFound)
}

func TestShadowUpdateERemoveBeneficiario(t *testing.T) {
	sh := &Shadow{}
	b, err := sh.AddBeneficiario(Beneficiario{Nome: "Maria", Documento: "111"})
	require.NoError(t, err)

	out, err := sh.UpdateBeneficiario(Beneficiario{ID: b.ID, Nome: "Maria Silva", Documento: "222"})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", out.Nome)
	assert.Equal(t, "222", sh.Beneficiarios[0].Documento)

	_, err = sh.UpdateBeneficiario(Beneficiario{ID: b.ID, Nome: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = sh.UpdateBeneficiario(Beneficiario{ID: "nao-existe", Nome: "Ana"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, sh.RemoveBeneficiario(b.ID))
	assert.Empty(t, sh.Beneficiarios)
	assert.ErrorIs(t, sh.RemoveBeneficiario(b.ID), domain.ErrNotFound)
}
