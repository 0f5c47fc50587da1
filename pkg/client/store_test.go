package client

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abrirStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "sombra.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_ArquivoNovoCarregaSombraVazia(t *testing.T) {
	store := abrirStore(t)

	sh, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, sh.Produtos)
	assert.Empty(t, sh.Beneficiarios)
	assert.Empty(t, sh.Distribuicoes)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := abrirStore(t)

	entrega := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	original := &Shadow{
		Produtos: []Produto{
			{ID: "p1", Nome: "Camiseta Masculina", TipoID: "t1", Estoque: 150},
			{ID: "p2", Nome: "Meias", TipoID: "t2", Estoque: 300},
		},
		Beneficiarios: []Beneficiario{
			{ID: "b1", Nome: "Maria Silva Santos", Documento: "123.456.789-00"},
		},
		Distribuicoes: []Distribuicao{
			{
				ID:               1,
				BeneficiarioID:   "b1",
				BeneficiarioNome: "Maria Silva Santos",
				Data:             entrega,
				Responsavel:      "Carlos",
				Produtos:         []LinhaEntrega{{Nome: "Meias", Quantidade: 4}},
			},
		},
	}
	require.NoError(t, store.Save(original))

	carregado, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, original.Produtos, carregado.Produtos)
	assert.Equal(t, original.Beneficiarios, carregado.Beneficiarios)
	require.Len(t, carregado.Distribuicoes, 1)
	assert.True(t, entrega.Equal(carregado.Distribuicoes[0].Data),
		"a data deve reidratar como time.Time")
	assert.Equal(t, original.Distribuicoes[0].Produtos, carregado.Distribuicoes[0].Produtos)
}

func TestStore_SaveSubstituiSnapshotAnterior(t *testing.T) {
	store := abrirStore(t)

	primeiro := &Shadow{Produtos: []Produto{{ID: "p1", Nome: "Casaco", Estoque: 55}}}
	require.NoError(t, store.Save(primeiro))

	segundo := &Shadow{Produtos: []Produto{{ID: "p2", Nome: "Tênis", Estoque: 45}}}
	require.NoError(t, store.Save(segundo))

	carregado, err := store.Load()
	require.NoError(t, err)
	require.Len(t, carregado.Produtos, 1, "o snapshot é substituído, não acumulado")
	assert.Equal(t, "Tênis", carregado.Produtos[0].Nome)
}
